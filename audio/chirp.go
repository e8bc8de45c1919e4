package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces short sine chirps as command feedback. Every method is
// a no-op when the speaker failed to initialize; the application runs
// silent rather than failing.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. Initialization failure is non-fatal.
func NewPlayer() *Player {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		p.ready = true
	}
	return p
}

// Feed plays a short confirmation blip.
func (p *Player) Feed() {
	p.tone(880, 60*time.Millisecond)
}

// Play plays a brighter blip for the play command.
func (p *Player) Play() {
	p.tone(1320, 80*time.Millisecond)
}

// Hatch plays a low blip when a creature is (re)hatched.
func (p *Player) Hatch() {
	p.tone(440, 120*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}
