// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы: два прямоугольника или треугольник (play)
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play) из трёх линий с заливкой веером
		p := b.PlayColor
		x0, y0 := b.X-size, b.Y-size*1.2
		x1, y1 := b.X-size, b.Y+size*1.2
		x2, y2 := b.X+size, b.Y
		for t := float32(0); t <= 1; t += 0.05 {
			vector.StrokeLine(screen, x0+(x1-x0)*t, y0+(y1-y0)*t, x2, y2, 2, p, true)
		}
	} else {
		c := b.PauseColor
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, c, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, c, true)
	}
}

// IsClicked проверяет, был ли клик внутри кнопки
func (b *PauseButton) IsClicked(mouseX, mouseY int) bool {
	dx := float64(mouseX) - float64(b.X)
	dy := float64(mouseY) - float64(b.Y)
	hit := float64(b.Size) * 2
	return math.Abs(dx) <= hit && math.Abs(dy) <= hit
}

// Toggle переключает состояние паузы
func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}
