// Package player owns the single live audio session for a screen.
//
// A Controller wraps the platform media subsystem behind the Engine
// interface and guarantees that at most one decoded source is live at a
// time: loading a new source always tears the previous one down first.
package player

import (
	"sync"

	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// State is the controller lifecycle state
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// FinishPolicy selects what happens when a track plays to its natural end
type FinishPolicy int

const (
	// FinishHold resets the position to 0 and keeps the source loaded,
	// paused; the feed screen uses this so a tapped replay starts instantly
	FinishHold FinishPolicy = iota
	// FinishUnload resets and unloads; the next play starts fresh
	// (single-post screen behavior)
	FinishUnload
)

// Tick is a progress report delivered by the media engine
type Tick struct {
	Position  float64
	Duration  float64
	Playing   bool
	DidFinish bool
}

// Handle is a live binding to one opened audio source
type Handle interface {
	Play() error
	Pause() error
	Seek(positionSeconds float64) error
	Unload() error
}

// Engine is the platform media subsystem. Open decodes a source and starts
// delivering ticks to onTick until the returned handle is unloaded.
type Engine interface {
	Open(sourceURL string, onTick func(Tick)) (Handle, error)
}

// Session is a snapshot of the live playback binding
type Session struct {
	SourceURL string
	Position  float64
	Duration  float64
	Playing   bool
}

// Controller sequences load/play/pause/seek/dispose over a single session
type Controller struct {
	mu      sync.Mutex
	engine  Engine
	state   State
	handle  Handle
	policy  FinishPolicy
	session Session
	gen     uint64 // bumped on every teardown; stale ticks are dropped
}

// NewController creates an idle controller over the given media engine
func NewController(engine Engine) *Controller {
	return &Controller{engine: engine, state: StateIdle}
}

// Load opens sourceURL, tearing down any live session first. The teardown
// must complete before the new source is opened; overlapping audio is
// never allowed.
func (c *Controller) Load(sourceURL string, autoplay bool, policy FinishPolicy) error {
	c.teardown()

	c.mu.Lock()
	c.state = StateLoading
	c.policy = policy
	gen := c.gen
	c.mu.Unlock()

	handle, err := c.engine.Open(sourceURL, func(t Tick) {
		c.applyTick(gen, t)
	})
	if err != nil {
		c.mu.Lock()
		c.state = StateIdle
		c.mu.Unlock()
		logger.Error("Failed to load audio", "source", sourceURL, "error", err)
		return errors.PlaybackLoadError(sourceURL, err)
	}

	c.mu.Lock()
	if c.gen != gen {
		// A dispose or newer load won the race; this session must not
		// come alive.
		c.mu.Unlock()
		_ = handle.Unload()
		return nil
	}
	c.handle = handle
	c.state = StateReady
	c.session = Session{SourceURL: sourceURL, Playing: autoplay}
	c.mu.Unlock()

	if autoplay {
		if err := handle.Play(); err != nil {
			logger.Warn("Autoplay failed", "source", sourceURL, "error", err)
		}
	}

	return nil
}

// TogglePlayPause flips between playing and paused; valid only in Ready
func (c *Controller) TogglePlayPause() error {
	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return errors.InvalidStateError("play/pause", string(state))
	}
	handle := c.handle
	playing := !c.session.Playing
	c.session.Playing = playing
	c.mu.Unlock()

	if playing {
		return handle.Play()
	}
	return handle.Pause()
}

// Seek moves the playhead, clamped to [0, duration]; valid only in Ready
func (c *Controller) Seek(positionSeconds float64) error {
	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return errors.InvalidStateError("seek", string(state))
	}
	if positionSeconds < 0 {
		positionSeconds = 0
	}
	if positionSeconds > c.session.Duration {
		positionSeconds = c.session.Duration
	}
	handle := c.handle
	c.session.Position = positionSeconds
	c.mu.Unlock()

	return handle.Seek(positionSeconds)
}

// Dispose unloads any live session. Idempotent; always safe to call, and
// the UI shell must call it on screen exit so no audio outlives its screen.
func (c *Controller) Dispose() {
	c.teardown()
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the live session data
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// applyTick folds an engine progress report into the session snapshot.
// Ticks carrying a stale generation belong to a torn-down handle and are
// dropped.
func (c *Controller) applyTick(gen uint64, t Tick) {
	c.mu.Lock()
	if c.gen != gen || c.state != StateReady {
		c.mu.Unlock()
		return
	}

	c.session.Position = t.Position
	c.session.Duration = t.Duration
	c.session.Playing = t.Playing

	if !t.DidFinish {
		c.mu.Unlock()
		return
	}

	// Natural completion: apply the policy fixed at load time.
	c.session.Position = 0
	c.session.Playing = false
	policy := c.policy
	handle := c.handle
	c.mu.Unlock()

	switch policy {
	case FinishHold:
		if err := handle.Seek(0); err != nil {
			logger.Warn("Failed to rewind finished track", "error", err)
		}
	case FinishUnload:
		c.teardown()
	}
}

// teardown releases the live handle, detaches its tick delivery and
// returns the controller to Idle. Safe to call from any state.
func (c *Controller) teardown() {
	c.mu.Lock()
	handle := c.handle
	c.handle = nil
	c.state = StateIdle
	c.session = Session{}
	c.gen++
	c.mu.Unlock()

	if handle != nil {
		if err := handle.Unload(); err != nil {
			logger.Warn("Failed to unload audio handle", "error", err)
		}
	}
}
