package profile

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/media"
)

type fakeBackend struct {
	mu        sync.Mutex
	users     map[string]api.User
	posts     map[string]api.Post
	files     map[string][]byte
	failPosts map[string]bool
	failFiles map[string]bool
	userErr   error
}

func (b *fakeBackend) GetUser(ctx context.Context, userID string) (*api.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.userErr != nil {
		return nil, b.userErr
	}
	u, ok := b.users[userID]
	if !ok {
		return nil, fmt.Errorf("no such user %s", userID)
	}
	return &u, nil
}

func (b *fakeBackend) GetPost(ctx context.Context, postID string) (*api.Post, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failPosts[postID] {
		return nil, fmt.Errorf("post fetch failed for %s", postID)
	}
	p, ok := b.posts[postID]
	if !ok {
		return nil, fmt.Errorf("no such post %s", postID)
	}
	return &p, nil
}

func (b *fakeBackend) GetFile(ctx context.Context, kind media.Kind, fileID string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failFiles[fileID] {
		return nil, fmt.Errorf("file fetch failed for %s", fileID)
	}
	data, ok := b.files[fileID]
	if !ok {
		return nil, fmt.Errorf("no such file %s", fileID)
	}
	return data, nil
}

func newTestController(backend *fakeBackend) *Controller {
	return NewController(backend, media.NewResolver("http://localhost:3000"))
}

func ts(offsetMinutes int) time.Time {
	return time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(offsetMinutes) * time.Minute)
}

func TestLoadProfileFullHydration(t *testing.T) {
	backend := &fakeBackend{
		users: map[string]api.User{
			"u1": {ID: "u1", UserName: "alice", AvatarRef: "av1", OwnedPosts: []string{"p1", "p2"}},
		},
		posts: map[string]api.Post{
			"p1": {ID: "p1", AlbumCoverRef: "c1", AudioRef: "a1", Timestamp: ts(0)},
			"p2": {ID: "p2", Timestamp: ts(10)},
		},
		files: map[string][]byte{
			"av1": []byte("avatar-bytes"),
			"c1":  []byte("cover-bytes"),
		},
	}
	c := newTestController(backend)

	if err := c.LoadProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}

	v := c.View()
	if v == nil {
		t.Fatal("view is nil after load")
	}
	if v.User.UserName != "alice" {
		t.Errorf("user = %s, want alice", v.User.UserName)
	}
	if string(v.Avatar) != "avatar-bytes" {
		t.Errorf("avatar = %q", v.Avatar)
	}
	if HasPlaceholderAvatar(v) {
		t.Error("fetched avatar misreported as placeholder")
	}
	if len(v.Posts) != 2 {
		t.Fatalf("posts = %d, want 2", len(v.Posts))
	}
	// newest first
	if v.Posts[0].Post.ID != "p2" || v.Posts[1].Post.ID != "p1" {
		t.Errorf("post order = %s, %s; want p2, p1", v.Posts[0].Post.ID, v.Posts[1].Post.ID)
	}
	if string(v.Posts[1].AlbumArt) != "cover-bytes" {
		t.Errorf("album art = %q", v.Posts[1].AlbumArt)
	}
	if v.Posts[0].AlbumArt != nil {
		t.Error("post without cover should carry no album art")
	}
	if v.Posts[1].AudioURL != "http://localhost:3000/api/files/audio/a1" {
		t.Errorf("audio url = %q", v.Posts[1].AudioURL)
	}
	if v.Posts[0].AudioURL != "" {
		t.Error("post without audio should have no audio url")
	}
}

func TestLoadProfilePlaceholderAvatar(t *testing.T) {
	backend := &fakeBackend{
		users: map[string]api.User{"u1": {ID: "u1"}},
	}
	c := newTestController(backend)

	if err := c.LoadProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if !HasPlaceholderAvatar(c.View()) {
		t.Error("missing avatarRef should yield the placeholder")
	}
}

func TestAvatarFetchFailureFallsBack(t *testing.T) {
	backend := &fakeBackend{
		users:     map[string]api.User{"u1": {ID: "u1", AvatarRef: "av1"}},
		failFiles: map[string]bool{"av1": true},
	}
	c := newTestController(backend)

	if err := c.LoadProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("avatar failure must not fail the load: %v", err)
	}
	if !HasPlaceholderAvatar(c.View()) {
		t.Error("failed avatar fetch should yield the placeholder")
	}
}

// A single bad post (or its album art) drops that post only.
func TestLoadProfilePerPostIsolation(t *testing.T) {
	backend := &fakeBackend{
		users: map[string]api.User{
			"u1": {ID: "u1", OwnedPosts: []string{"p1", "pbad", "p3"}},
		},
		posts: map[string]api.Post{
			"p1": {ID: "p1", Timestamp: ts(0)},
			"p3": {ID: "p3", AlbumCoverRef: "cbad", Timestamp: ts(5)},
		},
		failPosts: map[string]bool{"pbad": true},
		failFiles: map[string]bool{"cbad": true},
	}
	c := newTestController(backend)

	if err := c.LoadProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}

	v := c.View()
	if len(v.Posts) != 1 || v.Posts[0].Post.ID != "p1" {
		t.Errorf("posts = %+v, want only p1", v.Posts)
	}
}

func TestLoadProfileUserFailureAborts(t *testing.T) {
	backend := &fakeBackend{userErr: fmt.Errorf("connection refused")}
	c := newTestController(backend)

	if err := c.LoadProfile(context.Background(), "u1"); err == nil {
		t.Fatal("user fetch failure must fail the load")
	}
	if c.View() != nil {
		t.Error("failed load should leave no view")
	}
}

// Refresh raises Refreshing, not Loading, so the UI can tell a
// pull-to-refresh from a first paint.
func TestRefreshFlagDistinctFromLoading(t *testing.T) {
	backend := &fakeBackend{
		users: map[string]api.User{"u1": {ID: "u1"}},
	}
	c := newTestController(backend)

	if c.Loading() || c.Refreshing() {
		t.Fatal("flags should start false")
	}

	if err := c.LoadProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if c.Loading() || c.Refreshing() {
		t.Error("flags should clear after load")
	}

	if err := c.Refresh(context.Background(), "u1"); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if c.Loading() || c.Refreshing() {
		t.Error("flags should clear after refresh")
	}
	if c.View() == nil {
		t.Error("refresh should rebuild the view")
	}
}

func TestLoadFollowingIsolation(t *testing.T) {
	backend := &fakeBackend{
		users: map[string]api.User{
			"u1": {ID: "u1", Following: []string{"u2", "ughost", "u3"}},
			"u2": {ID: "u2", UserName: "bob"},
			"u3": {ID: "u3", UserName: "carol"},
		},
	}
	c := newTestController(backend)

	users, err := c.LoadFollowing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LoadFollowing failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("users = %d, want 2", len(users))
	}
	if users[0].UserName != "bob" || users[1].UserName != "carol" {
		t.Errorf("users = %+v", users)
	}
}
