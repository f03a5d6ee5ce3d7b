// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font"

	"go-magic-circle/internal/config"
)

// MenuState — стартовый экран
type MenuState struct {
	sm       *StateMachine
	opts     Options
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, opts Options, fontFace font.Face) *MenuState {
	return &MenuState{sm: sm, opts: opts, fontFace: fontFace}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewVisualState(s.sm, s.opts, s.fontFace))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		path, err := zenity.SelectFile(
			zenity.Title("Select gesture replay"),
			zenity.FileFilter{Name: "Replay", Patterns: []string{"*.jsonl"}},
		)
		if err != nil {
			if err != zenity.ErrCanceled {
				log.Printf("replay selection failed: %v", err)
			}
			return
		}
		s.opts.ReplayPath = path
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	msg := "MAGIC CIRCLE\n\nSPACE - begin\nR - load gesture replay"
	if s.opts.ReplayPath != "" {
		msg += fmt.Sprintf("\n\nreplay: %s", s.opts.ReplayPath)
	}
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-90, config.ScreenHeight/2-40)
}

func (s *MenuState) Exit() {}
