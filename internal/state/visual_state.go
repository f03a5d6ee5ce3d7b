// internal/state/visual_state.go
package state

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-magic-circle/internal/app"
	"go-magic-circle/internal/audio"
	"go-magic-circle/internal/camera"
	"go-magic-circle/internal/config"
	"go-magic-circle/internal/event"
	"go-magic-circle/internal/gesture"
	"go-magic-circle/internal/ui"
	"go-magic-circle/internal/utils"
)

// VisualState — основное состояние: живой магический круг
type VisualState struct {
	sm     *StateMachine
	visual *app.Visual
	poller *gesture.Poller
	mjpeg  *camera.MJPEG // nil при синтетических кадрах

	indicator   *ui.GestureIndicator
	pauseButton *ui.PauseButton
	handCursor  *ui.HandCursor
	infoPanel   *ui.InfoPanel
	chime       *audio.Chime
}

// NewVisualState собирает источники кадров и жестов по настройкам
// и запускает опрос.
func NewVisualState(sm *StateMachine, opts Options, fontFace font.Face) *VisualState {
	var frames camera.FrameSource
	var mjpeg *camera.MJPEG
	if opts.StreamURL != "" {
		mjpeg = camera.NewMJPEG(opts.StreamURL)
		if err := mjpeg.Start(); err != nil {
			// Без камеры визуал всё равно живёт — на синтетике
			log.Printf("camera stream unavailable, using synthetic frames: %v", err)
			mjpeg = nil
		}
	}
	if mjpeg != nil {
		frames = mjpeg
	} else {
		frames = camera.NewSynthetic()
	}

	var source gesture.Source
	switch {
	case opts.ReplayPath != "":
		replay, err := gesture.LoadReplay(opts.ReplayPath)
		if err != nil {
			log.Printf("failed to load gesture replay, falling back to demo cycle: %v", err)
			source = gesture.NewCycle(8 * time.Second)
		} else {
			source = replay
		}
	case opts.Endpoint != "":
		source = gesture.NewVisionClient(opts.Endpoint)
	default:
		source = gesture.NewCycle(8 * time.Second)
	}

	poller := gesture.NewPoller(source, frames, config.GesturePollInterval*time.Millisecond)
	visual := app.NewVisual(utils.NewPRNGService(opts.Seed), poller, fontFace)

	chime := audio.NewChime()
	visual.EventDispatcher.Subscribe(event.FormationFormed, chime)
	visual.EventDispatcher.Subscribe(event.FormationDispersed, chime)

	return &VisualState{
		sm:     sm,
		visual: visual,
		poller: poller,
		mjpeg:  mjpeg,
		indicator: ui.NewGestureIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		pauseButton: ui.NewPauseButton(
			float32(config.PauseButtonX),
			float32(config.PauseButtonY),
			float32(config.PauseButtonSize),
			config.UnknownColor,
			config.OpenColor,
		),
		handCursor: ui.NewHandCursor(60),
		infoPanel:  ui.NewInfoPanel(fontFace),
		chime:      chime,
	}
}

func (s *VisualState) Enter() {
	s.poller.Start()
}

func (s *VisualState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.Swap(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.pauseButton.IsClicked(mx, my) {
			s.pauseButton.Toggle()
			s.sm.Swap(NewPauseState(s.sm, s))
			return
		}
	}

	s.visual.Update(deltaTime)
	s.handCursor.Update(s.visual.LastSignal())
}

func (s *VisualState) Draw(screen *ebiten.Image) {
	s.visual.Draw(screen)

	sig := s.visual.LastSignal()
	s.indicator.Draw(screen, sig.Openness)
	s.handCursor.Draw(screen, sig.Openness)
	s.pauseButton.Draw(screen)
	s.infoPanel.Draw(screen, sig, s.visual.Anim.Blend.Value, s.visual.Field.Len())
}

func (s *VisualState) Exit() {
	s.poller.Stop()
	if s.mjpeg != nil {
		s.mjpeg.Stop()
	}
}
