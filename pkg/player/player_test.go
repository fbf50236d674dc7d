package player

import (
	"fmt"
	"testing"

	"github.com/soundreel/cli/pkg/errors"
)

// fakeHandle records engine interactions for assertions
type fakeHandle struct {
	source   string
	plays    int
	pauses   int
	seeks    []float64
	unloaded bool
}

func (h *fakeHandle) Play() error  { h.plays++; return nil }
func (h *fakeHandle) Pause() error { h.pauses++; return nil }
func (h *fakeHandle) Seek(pos float64) error {
	h.seeks = append(h.seeks, pos)
	return nil
}
func (h *fakeHandle) Unload() error { h.unloaded = true; return nil }

// fakeEngine opens fake handles and lets tests drive ticks
type fakeEngine struct {
	handles  []*fakeHandle
	onTicks  []func(Tick)
	failNext bool
}

func (e *fakeEngine) Open(sourceURL string, onTick func(Tick)) (Handle, error) {
	if e.failNext {
		e.failNext = false
		return nil, fmt.Errorf("decoder rejected %s", sourceURL)
	}
	h := &fakeHandle{source: sourceURL}
	e.handles = append(e.handles, h)
	e.onTicks = append(e.onTicks, onTick)
	return h, nil
}

func (e *fakeEngine) liveCount() int {
	live := 0
	for _, h := range e.handles {
		if !h.unloaded {
			live++
		}
	}
	return live
}

func TestLoadTransitionsToReady(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if c.State() != StateIdle {
		t.Fatalf("new controller state = %s, want idle", c.State())
	}

	if err := c.Load("http://host/api/files/audio/a1", true, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.State() != StateReady {
		t.Errorf("state = %s, want ready", c.State())
	}
	if !c.Snapshot().Playing {
		t.Error("autoplay load should report playing")
	}
	if engine.handles[0].plays != 1 {
		t.Errorf("autoplay should call Play once, got %d", engine.handles[0].plays)
	}
}

func TestLoadWithoutAutoplay(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("http://host/api/files/audio/a1", false, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Snapshot().Playing {
		t.Error("non-autoplay load should not report playing")
	}
	if engine.handles[0].plays != 0 {
		t.Error("non-autoplay load should not call Play")
	}
}

// Loading B while A is live must fully unload A before B becomes ready,
// and the controller must never hold two live handles.
func TestLoadTearsDownPreviousSession(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", true, FinishHold); err != nil {
		t.Fatalf("Load A failed: %v", err)
	}
	if err := c.Load("urlB", true, FinishHold); err != nil {
		t.Fatalf("Load B failed: %v", err)
	}

	if !engine.handles[0].unloaded {
		t.Error("handle A should be unloaded before B is established")
	}
	if engine.liveCount() != 1 {
		t.Errorf("exactly one live handle expected, got %d", engine.liveCount())
	}
	if c.Snapshot().SourceURL != "urlB" {
		t.Errorf("session source = %s, want urlB", c.Snapshot().SourceURL)
	}
}

func TestLoadFailureReturnsToIdle(t *testing.T) {
	engine := &fakeEngine{failNext: true}
	c := NewController(engine)

	err := c.Load("urlA", true, FinishHold)
	if err == nil {
		t.Fatal("Load should fail when the engine rejects the source")
	}

	cliErr := errors.CategorizeError(err)
	if cliErr.Type != errors.ErrorTypePlaybackLoad {
		t.Errorf("error type = %s, want playback_load", cliErr.Type)
	}
	if c.State() != StateIdle {
		t.Errorf("state after failed load = %s, want idle", c.State())
	}
}

func TestDisposeIdempotent(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	// Dispose from idle is a no-op, never an error
	c.Dispose()
	if c.State() != StateIdle {
		t.Errorf("state = %s, want idle", c.State())
	}

	if err := c.Load("urlA", true, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c.Dispose()
	c.Dispose()

	if c.State() != StateIdle {
		t.Errorf("state after double dispose = %s, want idle", c.State())
	}
	if !engine.handles[0].unloaded {
		t.Error("dispose should unload the live handle")
	}
	if c.Snapshot() != (Session{}) {
		t.Error("dispose should clear the session snapshot")
	}
}

func TestTogglePlayPauseRequiresReady(t *testing.T) {
	c := NewController(&fakeEngine{})

	err := c.TogglePlayPause()
	if !errors.IsInvalidState(err) {
		t.Errorf("toggle while idle should be an invalid-state error, got %v", err)
	}
}

func TestTogglePlayPauseFlips(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", true, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := c.TogglePlayPause(); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if c.Snapshot().Playing {
		t.Error("first toggle should pause")
	}
	if engine.handles[0].pauses != 1 {
		t.Errorf("Pause calls = %d, want 1", engine.handles[0].pauses)
	}

	if err := c.TogglePlayPause(); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !c.Snapshot().Playing {
		t.Error("second toggle should resume")
	}
}

func TestSeekClampsToDuration(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", false, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Duration arrives with the first tick
	engine.onTicks[0](Tick{Position: 0, Duration: 30, Playing: false})

	if err := c.Seek(45); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if got := c.Snapshot().Position; got != 30 {
		t.Errorf("position after over-seek = %f, want 30", got)
	}

	if err := c.Seek(-5); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if got := c.Snapshot().Position; got != 0 {
		t.Errorf("position after negative seek = %f, want 0", got)
	}

	if got := engine.handles[0].seeks; len(got) != 2 || got[0] != 30 || got[1] != 0 {
		t.Errorf("handle seeks = %v, want [30 0]", got)
	}
}

func TestSeekRequiresReady(t *testing.T) {
	c := NewController(&fakeEngine{})
	if err := c.Seek(3); !errors.IsInvalidState(err) {
		t.Errorf("seek while idle should be an invalid-state error, got %v", err)
	}
}

func TestTickUpdatesSnapshot(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", true, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	engine.onTicks[0](Tick{Position: 12.5, Duration: 30, Playing: true})

	snap := c.Snapshot()
	if snap.Position != 12.5 || snap.Duration != 30 || !snap.Playing {
		t.Errorf("snapshot = %+v", snap)
	}
}

// The feed screen's policy: on natural completion, rewind to 0, keep the
// source loaded, do not auto-replay.
func TestFinishHoldKeepsSessionLoaded(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", true, FinishHold); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	engine.onTicks[0](Tick{Position: 30, Duration: 30, Playing: false, DidFinish: true})

	if c.State() != StateReady {
		t.Errorf("state after finish = %s, want ready", c.State())
	}
	snap := c.Snapshot()
	if snap.Position != 0 {
		t.Errorf("position after finish = %f, want 0", snap.Position)
	}
	if snap.Playing {
		t.Error("finished track must not auto-replay")
	}
	if engine.handles[0].unloaded {
		t.Error("hold policy must keep the handle loaded")
	}
	if len(engine.handles[0].seeks) != 1 || engine.handles[0].seeks[0] != 0 {
		t.Errorf("hold policy should rewind the handle, seeks = %v", engine.handles[0].seeks)
	}
}

// The single-post screen's policy: on natural completion, unload; the next
// play starts fresh.
func TestFinishUnloadReturnsToIdle(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", true, FinishUnload); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	engine.onTicks[0](Tick{Position: 30, Duration: 30, Playing: false, DidFinish: true})

	if c.State() != StateIdle {
		t.Errorf("state after finish = %s, want idle", c.State())
	}
	if !engine.handles[0].unloaded {
		t.Error("unload policy must release the handle")
	}
}

// Ticks from a torn-down handle must not corrupt the session that
// replaced it.
func TestStaleTickDropped(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	if err := c.Load("urlA", true, FinishHold); err != nil {
		t.Fatalf("Load A failed: %v", err)
	}
	staleTick := engine.onTicks[0]

	if err := c.Load("urlB", true, FinishHold); err != nil {
		t.Fatalf("Load B failed: %v", err)
	}

	staleTick(Tick{Position: 99, Duration: 120, Playing: true})

	snap := c.Snapshot()
	if snap.Position == 99 || snap.Duration == 120 {
		t.Errorf("stale tick leaked into current session: %+v", snap)
	}
	if snap.SourceURL != "urlB" {
		t.Errorf("session source = %s, want urlB", snap.SourceURL)
	}
}

// Property sweep: arbitrary operation sequences never leave two live
// handles and dispose always lands in idle.
func TestOperationSequencesNeverOverlapHandles(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	ops := []func(){
		func() { _ = c.Load("url1", true, FinishHold) },
		func() { _ = c.Load("url2", false, FinishUnload) },
		func() { _ = c.TogglePlayPause() },
		func() { _ = c.Seek(5) },
		func() { c.Dispose() },
		func() { _ = c.Load("url3", true, FinishHold) },
		func() { c.Dispose() },
		func() { c.Dispose() },
		func() { _ = c.Load("url4", true, FinishUnload) },
	}

	for i, op := range ops {
		op()
		if engine.liveCount() > 1 {
			t.Fatalf("after op %d: %d live handles", i, engine.liveCount())
		}
	}

	c.Dispose()
	if c.State() != StateIdle || engine.liveCount() != 0 {
		t.Errorf("final state = %s with %d live handles", c.State(), engine.liveCount())
	}
}
