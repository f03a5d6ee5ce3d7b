// internal/ui/hand_cursor.go
package ui

import (
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/gesture"
)

// HandCursor показывает, где визуал видит ладонь. Сырая позиция из
// распознавания приходит редко и скачками, поэтому курсор догоняет её
// пружиной — движение выходит плавным без ручной фильтрации.
type HandCursor struct {
	spring harmonica.Spring
	x, vx  float64
	y, vy  float64
}

func NewHandCursor(fps int) *HandCursor {
	return &HandCursor{
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.CursorSpringFreq, config.CursorSpringDamp),
		x:      0.5,
		y:      0.5,
	}
}

// Update подтягивает курсор к последней распознанной позиции ладони
func (c *HandCursor) Update(sig gesture.Signal) {
	c.x, c.vx = c.spring.Update(c.x, c.vx, sig.X)
	c.y, c.vy = c.spring.Update(c.y, c.vy, sig.Y)
}

// Draw отрисовывает курсор; при нераспознанной ладони он не показывается
func (c *HandCursor) Draw(screen *ebiten.Image, state gesture.Openness) {
	if state == gesture.Unknown {
		return
	}
	sx := float32(c.x * config.ScreenWidth)
	sy := float32(c.y * config.ScreenHeight)
	col := config.OpenColor
	if state == gesture.Closed {
		col = config.ClosedColor
	}
	vector.StrokeCircle(screen, sx, sy, 14, 2, col, true)
	vector.DrawFilledCircle(screen, sx, sy, 3, col, true)
}

// Position возвращает сглаженную позицию курсора (нормализованную)
func (c *HandCursor) Position() (x, y float64) {
	return c.x, c.y
}
