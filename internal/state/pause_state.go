// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-magic-circle/internal/config"
)

// PauseState замораживает визуал, но продолжает его рисовать под оверлеем.
// Источник жестов при этом не останавливается: после возврата поза актуальна.
type PauseState struct {
	sm       *StateMachine
	previous *VisualState
}

func NewPauseState(sm *StateMachine, previous *VisualState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.resume()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.previous.pauseButton.IsClicked(mx, my) {
			s.previous.pauseButton.Toggle()
			s.resume()
		}
	}
}

func (s *PauseState) resume() {
	s.sm.Swap(s.previous)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "PAUSED", config.ScreenWidth/2-20, config.ScreenHeight/2)
}

func (s *PauseState) Exit() {}
