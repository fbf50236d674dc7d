// Package feed sequences a user's feed and keeps exactly one current
// entry's audio in sync with the visible card.
package feed

import (
	"context"
	"sync"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
	"github.com/soundreel/cli/pkg/media"
	"github.com/soundreel/cli/pkg/player"
)

// Backend is the slice of the REST API the feed needs. Tests substitute
// a fake; production code uses APIBackend.
type Backend interface {
	GetFeed(ctx context.Context, userID string) (*api.FeedResponse, error)
	GetUser(ctx context.Context, userID string) (*api.User, error)
	UpdatePost(ctx context.Context, postID string, fields map[string]interface{}) error
	UpdateUser(ctx context.Context, userID string, fields map[string]interface{}) error
}

// APIBackend forwards to the package api bindings.
type APIBackend struct{}

func (APIBackend) GetFeed(ctx context.Context, userID string) (*api.FeedResponse, error) {
	return api.GetFeed(ctx, userID)
}

func (APIBackend) GetUser(ctx context.Context, userID string) (*api.User, error) {
	return api.GetUser(ctx, userID)
}

func (APIBackend) UpdatePost(ctx context.Context, postID string, fields map[string]interface{}) error {
	return api.UpdatePost(ctx, postID, fields)
}

func (APIBackend) UpdateUser(ctx context.Context, userID string, fields map[string]interface{}) error {
	return api.UpdateUser(ctx, userID, fields)
}

// AudioPlayer is the playback surface the feed drives. Satisfied by
// *player.Controller.
type AudioPlayer interface {
	Load(sourceURL string, autoplay bool, policy player.FinishPolicy) error
	TogglePlayPause() error
	Seek(positionSeconds float64) error
	State() player.State
	Snapshot() player.Session
	Dispose()
}

// Entry is one feed card. Owner is nil until its hydration lookup
// completes, and stays nil when that lookup fails.
type Entry struct {
	Post  api.Post
	Owner *api.User
	Liked bool
}

// Controller owns the ordered entry list, the current index, and the
// playback controller for the feed screen.
type Controller struct {
	mu       sync.Mutex
	backend  Backend
	player   AudioPlayer
	resolver media.Resolver
	viewerID string

	entries  []Entry
	index    int
	expanded map[string]bool

	// gen tags each page load so a completion from a superseded load
	// cannot overwrite a newer page
	gen uint64
}

// NewController creates a feed controller for the given viewer
func NewController(backend Backend, audioPlayer AudioPlayer, resolver media.Resolver, viewerID string) *Controller {
	return &Controller{
		backend:  backend,
		player:   audioPlayer,
		resolver: resolver,
		viewerID: viewerID,
		expanded: make(map[string]bool),
	}
}

// LoadInitialPage fetches the viewer's feed and hydrates each entry's
// owner concurrently. A failed owner lookup leaves that entry's Owner
// nil and never fails the page. An empty page leaves the feed empty
// without error. The index resets to 0 and the first entry's audio, if
// any, starts playing.
func (c *Controller) LoadInitialPage(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	resp, err := c.backend.GetFeed(ctx, c.viewerID)
	if err != nil {
		logger.Error("Failed to fetch feed", "user", c.viewerID, "error", err)
		return err
	}

	entries := make([]Entry, len(resp.Feed))
	for i, post := range resp.Feed {
		entries[i] = Entry{Post: post}
	}

	// Each entry's owner lookup is independent; completion order does
	// not matter and each goroutine writes only its own slot.
	var wg sync.WaitGroup
	for i := range entries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner, err := c.backend.GetUser(ctx, entries[i].Post.OwnerUser)
			if err != nil {
				logger.Warn("Owner hydration failed",
					"post", entries[i].Post.ID,
					"owner", entries[i].Post.OwnerUser,
					"error", err)
				return
			}
			entries[i].Owner = owner
		}(i)
	}
	wg.Wait()

	c.mu.Lock()
	if c.gen != gen {
		// A newer load superseded this one while hydration was in
		// flight; discard.
		c.mu.Unlock()
		return nil
	}
	c.entries = entries
	c.index = 0
	c.expanded = make(map[string]bool)
	c.mu.Unlock()

	c.syncPlayback()
	return nil
}

// Advance moves to the next entry, tearing down the previous audio
// session before loading the next. Advancing past the last entry
// re-fetches the page and lands back at index 0 (the feed is a
// refreshed ring, not a fixed deck).
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	atEnd := len(c.entries) == 0 || c.index >= len(c.entries)-1
	if !atEnd {
		c.index++
	}
	c.mu.Unlock()

	if atEnd {
		return c.LoadInitialPage(ctx)
	}
	c.syncPlayback()
	return nil
}

// Retreat moves to the previous entry with the same teardown-then-load
// ordering. A no-op at index 0.
func (c *Controller) Retreat() {
	c.mu.Lock()
	if c.index == 0 {
		c.mu.Unlock()
		return
	}
	c.index--
	c.mu.Unlock()

	c.syncPlayback()
}

// syncPlayback brings the audio session in line with the current entry:
// entries without audio leave the player torn down, entries with audio
// start playing. Load itself unloads any previous session first, so the
// no-overlap ordering holds on every path.
func (c *Controller) syncPlayback() {
	c.mu.Lock()
	var audioRef string
	if c.index < len(c.entries) {
		audioRef = c.entries[c.index].Post.AudioRef
	}
	c.mu.Unlock()

	if audioRef == "" {
		c.player.Dispose()
		return
	}

	url, ok := c.resolver.Resolve(media.KindAudio, audioRef)
	if !ok {
		c.player.Dispose()
		return
	}
	if err := c.player.Load(url, true, player.FinishHold); err != nil {
		logger.Warn("Feed audio failed to load", "source", url, "error", err)
	}
}

// ToggleLike flips the viewer's liked flag and the entry's like count
// together, then writes the new count to the post and, when the owner
// snapshot is hydrated, the owner's aggregate. Write failures are
// logged and never rolled back; the local state is the source of truth
// for the session.
func (c *Controller) ToggleLike(ctx context.Context, entryID string) error {
	c.mu.Lock()
	idx := -1
	for i := range c.entries {
		if c.entries[i].Post.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return errors.NotFoundError("feed entry", entryID)
	}

	entry := &c.entries[idx]
	delta := 1
	if entry.Liked {
		delta = -1
	}
	entry.Liked = !entry.Liked
	entry.Post.LikesCount += delta

	postID := entry.Post.ID
	newCount := entry.Post.LikesCount

	ownerHydrated := entry.Owner != nil
	var ownerID string
	var ownerTotal int
	if ownerHydrated {
		entry.Owner.TotalLikeCount += delta
		ownerID = entry.Owner.ID
		ownerTotal = entry.Owner.TotalLikeCount
	}
	c.mu.Unlock()

	if err := c.backend.UpdatePost(ctx, postID, map[string]interface{}{
		"likesCount": newCount,
	}); err != nil {
		logger.Warn("Like write failed", "post", postID, "error", err)
	}

	if !ownerHydrated {
		logger.Debug("Owner not hydrated, skipping aggregate like update", "post", postID)
		return nil
	}
	if err := c.backend.UpdateUser(ctx, ownerID, map[string]interface{}{
		"totalLikeCount": ownerTotal,
	}); err != nil {
		logger.Warn("Owner like aggregate write failed", "user", ownerID, "error", err)
	}
	return nil
}

// ExpandCaption marks an entry's caption as fully shown
func (c *Controller) ExpandCaption(entryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[entryID] = true
}

// CollapseCaption returns an entry's caption to its truncated form
func (c *Controller) CollapseCaption(entryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.expanded, entryID)
}

// IsCaptionExpanded reports an entry's caption toggle; entries start
// collapsed.
func (c *Controller) IsCaptionExpanded(entryID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded[entryID]
}

// Current returns the entry under the cursor, false when the feed is
// empty.
func (c *Controller) Current() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[c.index], true
}

// Index returns the current cursor position
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of entries on the current page
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns a copy of the current page
func (c *Controller) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// TogglePlayPause forwards to the playback controller
func (c *Controller) TogglePlayPause() error {
	return c.player.TogglePlayPause()
}

// Seek forwards to the playback controller
func (c *Controller) Seek(positionSeconds float64) error {
	return c.player.Seek(positionSeconds)
}

// Playback returns the live playback snapshot
func (c *Controller) Playback() player.Session {
	return c.player.Snapshot()
}

// PlaybackState returns the playback lifecycle state
func (c *Controller) PlaybackState() player.State {
	return c.player.State()
}

// Dispose tears down any live audio. The UI shell calls this on screen
// exit.
func (c *Controller) Dispose() {
	c.player.Dispose()
}
