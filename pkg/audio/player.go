// Package audio plays the notification alert tone through the system
// speaker. The speaker is a single shared handle: a new trigger restarts the
// tone from the beginning instead of layering over a still-playing one.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Player holds the decoded alert tone and the initialized speaker.
type Player struct {
	mu     sync.Mutex
	buffer *beep.Buffer
}

// NewPlayer decodes the tone at path and initializes the speaker at its
// native sample rate.
func NewPlayer(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound file: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode sound file: %w", err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)

	return &Player{buffer: buf}, nil
}

// Play starts the tone from the beginning at the given gain (0.0-1.0),
// stopping any playback already in progress. Gain 0 is silence and skips
// playback entirely.
func (p *Player) Play(gain float64) error {
	if gain <= 0 {
		return nil
	}
	if gain > 1 {
		gain = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	shot := p.buffer.Streamer(0, p.buffer.Len())
	vol := &effects.Volume{
		Streamer: shot,
		Base:     2,
		Volume:   math.Log2(gain),
	}

	speaker.Clear()
	speaker.Play(vol)

	return nil
}

// Muted is a no-op Player used when no audio device is available, so the
// rest of the delivery flow keeps working on headless machines.
type Muted struct{}

// Play does nothing.
func (Muted) Play(float64) error { return nil }
