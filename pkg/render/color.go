// pkg/render/color.go
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the two anchor colors of one particle family; a particle's
// own hue is picked between them by its twinkle phase, so the layer does not
// look flat.
type Palette struct {
	A, B color.RGBA
}

// Pick возвращает цвет палитры для доли t в [0,1]
func (p Palette) Pick(t float64) color.RGBA {
	return LerpRGBA(p.A, p.B, t)
}

// LerpRGBA интерполирует два цвета в перцептивном пространстве Luv —
// переход хаос→круг не проседает по яркости, как при наивном RGB-лерпе.
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendLuv(cb, t).Clamped()
	return color.RGBA{
		R: uint8(m.R*255 + 0.5),
		G: uint8(m.G*255 + 0.5),
		B: uint8(m.B*255 + 0.5),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t + 0.5),
	}
}

// Scale умножает яркость цвета на множитель k в [0,1] (мерцание)
func Scale(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
