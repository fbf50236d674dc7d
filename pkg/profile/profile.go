// Package profile hydrates a full profile view: the user record, their
// avatar image, and every owned post with its album art.
package profile

import (
	"context"
	"sort"
	"sync"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/logger"
	"github.com/soundreel/cli/pkg/media"
)

// Backend is the slice of the REST API the profile view needs
type Backend interface {
	GetUser(ctx context.Context, userID string) (*api.User, error)
	GetPost(ctx context.Context, postID string) (*api.Post, error)
	GetFile(ctx context.Context, kind media.Kind, fileID string) ([]byte, error)
}

// APIBackend forwards to the package api bindings.
type APIBackend struct{}

func (APIBackend) GetUser(ctx context.Context, userID string) (*api.User, error) {
	return api.GetUser(ctx, userID)
}

func (APIBackend) GetPost(ctx context.Context, postID string) (*api.Post, error) {
	return api.GetPost(ctx, postID)
}

func (APIBackend) GetFile(ctx context.Context, kind media.Kind, fileID string) ([]byte, error) {
	return api.GetFile(ctx, kind, fileID)
}

// PostView is one owned post ready to render. AlbumArt is nil when the
// post carries no cover or its fetch failed. AudioURL is the resolved
// playable URL, empty for posts without audio.
type PostView struct {
	Post     api.Post
	AlbumArt []byte
	AudioURL string
}

// View is the hydrated profile. Avatar holds the fetched image bytes,
// or the placeholder when the user has no avatar.
type View struct {
	User   api.User
	Avatar []byte
	Posts  []PostView
}

// placeholderAvatar stands in when a user has no avatar image set
var placeholderAvatar = []byte("soundreel-default-avatar")

// Controller loads and refreshes one user's profile view.
type Controller struct {
	mu       sync.Mutex
	backend  Backend
	resolver media.Resolver

	view       *View
	loading    bool
	refreshing bool
}

// NewController creates a profile controller
func NewController(backend Backend, resolver media.Resolver) *Controller {
	return &Controller{backend: backend, resolver: resolver}
}

// LoadProfile performs the first paint: fetch the user, their avatar,
// and all owned posts in parallel with nested album-art fetches. A
// failure on any single post drops that post only.
func (c *Controller) LoadProfile(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	return c.load(ctx, userID)
}

// Refresh re-runs the load with the refreshing flag raised instead of
// loading, so the UI can tell pull-to-refresh from first paint.
func (c *Controller) Refresh(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.refreshing = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.refreshing = false
		c.mu.Unlock()
	}()

	return c.load(ctx, userID)
}

func (c *Controller) load(ctx context.Context, userID string) error {
	user, err := c.backend.GetUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to fetch profile user", "user", userID, "error", err)
		return err
	}

	avatar := placeholderAvatar
	if user.AvatarRef != "" {
		data, err := c.backend.GetFile(ctx, media.KindAvatar, user.AvatarRef)
		if err != nil {
			logger.Warn("Avatar fetch failed, using placeholder", "user", userID, "error", err)
		} else {
			avatar = data
		}
	}

	// Posts fan out in parallel; each post's album art fetch rides in the
	// same goroutine so a post appears only once fully assembled. A nil
	// slot marks a dropped post.
	slots := make([]*PostView, len(user.OwnedPosts))
	var wg sync.WaitGroup
	for i, postID := range user.OwnedPosts {
		wg.Add(1)
		go func(i int, postID string) {
			defer wg.Done()
			post, err := c.backend.GetPost(ctx, postID)
			if err != nil {
				logger.Warn("Owned post fetch failed", "post", postID, "error", err)
				return
			}
			view := &PostView{Post: *post}
			if url, ok := c.resolver.Resolve(media.KindAudio, post.AudioRef); ok {
				view.AudioURL = url
			}
			if post.AlbumCoverRef != "" {
				art, err := c.backend.GetFile(ctx, media.KindAlbumCover, post.AlbumCoverRef)
				if err != nil {
					logger.Warn("Album art fetch failed", "post", postID, "error", err)
					return
				}
				view.AlbumArt = art
			}
			slots[i] = view
		}(i, postID)
	}
	wg.Wait()

	posts := make([]PostView, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			posts = append(posts, *s)
		}
	}
	// newest first, matching the feed's presentation
	sort.Slice(posts, func(a, b int) bool {
		return posts[a].Post.Timestamp.After(posts[b].Post.Timestamp)
	})

	c.mu.Lock()
	c.view = &View{User: *user, Avatar: avatar, Posts: posts}
	c.mu.Unlock()
	return nil
}

// View returns the last loaded profile, nil before the first load
// completes.
func (c *Controller) View() *View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Loading reports whether a first paint is in flight
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Refreshing reports whether a pull-to-refresh is in flight
func (c *Controller) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

// HasPlaceholderAvatar reports whether the view is showing the default
// avatar rather than a fetched image.
func HasPlaceholderAvatar(v *View) bool {
	return v != nil && string(v.Avatar) == string(placeholderAvatar)
}

// LoadFollowing hydrates the users this profile follows. Lookups run in
// parallel and a failed lookup drops that user only.
func (c *Controller) LoadFollowing(ctx context.Context, userID string) ([]api.User, error) {
	user, err := c.backend.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots := make([]*api.User, len(user.Following))
	var wg sync.WaitGroup
	for i, id := range user.Following {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			followed, err := c.backend.GetUser(ctx, id)
			if err != nil {
				logger.Warn("Followed user lookup failed", "user", id, "error", err)
				return
			}
			slots[i] = followed
		}(i, id)
	}
	wg.Wait()

	users := make([]api.User, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			users = append(users, *s)
		}
	}
	return users, nil
}
