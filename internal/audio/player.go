package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the output device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond))
	})
	return speakerErr
}

// Player plays named sound events on the local speaker. A Player without an
// output device stays silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ctrl   *beep.Ctrl
	silent bool
}

// NewPlayer opens the speaker. When muted is set, or no device is
// available, the returned player discards everything.
func NewPlayer(muted bool) *Player {
	if muted {
		return Silent()
	}
	if err := initSpeaker(); err != nil {
		log.Warn("audio disabled", "error", fmt.Errorf("audio: init speaker: %w", err))
		return Silent()
	}
	p := &Player{mixer: &beep.Mixer{}}
	p.ctrl = &beep.Ctrl{Streamer: p.mixer}
	speaker.Play(p.ctrl)
	return p
}

// Silent returns a player that never produces sound.
func Silent() *Player {
	return &Player{silent: true}
}

// Silent reports whether the player discards sounds.
func (p *Player) Silent() bool {
	return p.silent
}

// Play queues the named sounds. Unknown names are ignored.
func (p *Player) Play(names ...string) {
	if p.silent || len(names) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	for _, name := range names {
		if s := Sound(name); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops every sound this player started.
func (p *Player) Close() {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.ctrl.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
}
