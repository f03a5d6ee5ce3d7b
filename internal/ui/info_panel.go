// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/gesture"
)

// InfoPanel — строка состояния в левом нижнем углу: жест, вес сборки,
// число частиц.
type InfoPanel struct {
	fontFace font.Face
}

func NewInfoPanel(fontFace font.Face) *InfoPanel {
	return &InfoPanel{fontFace: fontFace}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, sig gesture.Signal, blend float64, particles int) {
	if p.fontFace == nil {
		return
	}
	status := fmt.Sprintf("hand: %s   circle: %3.0f%%   particles: %d",
		sig.Openness, blend*100, particles)
	text.Draw(screen, status, p.fontFace, 16, config.ScreenHeight-16, config.TextLightColor)
}
