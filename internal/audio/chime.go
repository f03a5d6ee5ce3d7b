// internal/audio/chime.go
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-magic-circle/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Chime озвучивает события визуала: аккорд при сборке круга и низкий
// тон при рассеивании. Подписывается на диспетчер событий как обычный
// слушатель.
type Chime struct {
	initDone bool
}

// NewChime инициализирует аудиовыход. Отказ звука не фатален:
// визуал работает и молча.
func NewChime() *Chime {
	c := &Chime{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio init failed, running silent: %v", err)
		return c
	}
	c.initDone = true
	return c
}

// OnEvent реализует event.Listener
func (c *Chime) OnEvent(e event.Event) {
	if !c.initDone {
		return
	}
	switch e.Type {
	case event.FormationFormed:
		// Малое трезвучие — круг собран
		c.play(440, 600*time.Millisecond)
		c.play(523.25, 600*time.Millisecond)
		c.play(659.25, 600*time.Millisecond)
	case event.FormationDispersed:
		c.play(196, 400*time.Millisecond)
	}
}

// play запускает один синусоидальный тон заданной длительности
func (c *Chime) play(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("failed to generate tone %v Hz: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
