package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/logger"
)

// streamBytesPerSecond approximates 128 kbps audio, which is what the
// backend serves; the terminal has no decoder, so the clock runs on
// this estimate.
const streamBytesPerSecond = 16000

// tickInterval is how often a live handle reports progress
const tickInterval = 500 * time.Millisecond

// StreamEngine fetches the audio bytes over HTTP and simulates
// real-time playback for the terminal, where no platform audio output
// exists. Opening fails when the source cannot be fetched, which is
// what surfaces missing or broken audio to the caller.
type StreamEngine struct{}

// NewStreamEngine creates a stream engine
func NewStreamEngine() *StreamEngine {
	return &StreamEngine{}
}

// Open downloads the source and starts its playback clock paused
func (e *StreamEngine) Open(sourceURL string, onTick func(Tick)) (Handle, error) {
	resp, err := client.GetClient().R().Get(sourceURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("audio fetch failed with status %d", resp.StatusCode())
	}

	duration := float64(len(resp.Body())) / streamBytesPerSecond
	if duration < 1 {
		duration = 1
	}
	logger.Debug("Opened audio stream", "source", sourceURL, "duration", duration)

	h := &streamHandle{
		duration: duration,
		onTick:   onTick,
		stop:     make(chan struct{}),
	}
	go h.run()
	return h, nil
}

type streamHandle struct {
	mu       sync.Mutex
	position float64
	playing  bool
	finished bool

	duration float64
	onTick   func(Tick)
	stop     chan struct{}
	stopOnce sync.Once
}

func (h *streamHandle) Play() error {
	h.mu.Lock()
	h.playing = true
	h.finished = false
	h.mu.Unlock()
	return nil
}

func (h *streamHandle) Pause() error {
	h.mu.Lock()
	h.playing = false
	h.mu.Unlock()
	return nil
}

func (h *streamHandle) Seek(positionSeconds float64) error {
	h.mu.Lock()
	h.position = positionSeconds
	h.finished = false
	h.mu.Unlock()
	return nil
}

func (h *streamHandle) Unload() error {
	h.stopOnce.Do(func() { close(h.stop) })
	return nil
}

// run is the playback clock. Ticks carry the handle's own position so
// the controller sees the same monotonic stream a platform player would
// deliver.
func (h *streamHandle) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			h.mu.Lock()
			if !h.playing {
				h.mu.Unlock()
				continue
			}
			h.position += tickInterval.Seconds()
			didFinish := false
			if h.position >= h.duration && !h.finished {
				h.position = h.duration
				h.playing = false
				h.finished = true
				didFinish = true
			}
			t := Tick{
				Position:  h.position,
				Duration:  h.duration,
				Playing:   h.playing,
				DidFinish: didFinish,
			}
			h.mu.Unlock()

			h.onTick(t)
		}
	}
}
