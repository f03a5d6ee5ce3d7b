// internal/camera/synthetic.go
package camera

import (
	"image"
	"image/color"
	"math"
	"time"

	"go-magic-circle/internal/config"
)

// Synthetic — источник кадров без камеры: тёмный градиент со светлым
// пятном, дрейфующим по фигуре Лиссажу. Годится для демо-режима и для
// проверки всего конвейера кадр→API без настоящего железа.
type Synthetic struct {
	start time.Time
}

func NewSynthetic() *Synthetic {
	return &Synthetic{start: time.Now()}
}

// Grab рендерит очередной кадр фиксированного размера
func (s *Synthetic) Grab() (*image.RGBA, error) {
	t := time.Since(s.start).Seconds()
	w, h := config.FrameWidth, config.FrameHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Позиция «ладони»
	bx := (0.5 + 0.35*math.Sin(t*0.6)) * float64(w)
	by := (0.5 + 0.35*math.Sin(t*0.9+1.2)) * float64(h)
	radius := 0.12 * float64(w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := uint8(20 + 15*float64(y)/float64(h))
			c := color.RGBA{base / 2, base / 2, base, 255}

			dx, dy := float64(x)-bx, float64(y)-by
			if d := math.Hypot(dx, dy); d < radius {
				v := uint8(255 * (1 - d/radius))
				c = color.RGBA{v, v, v, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}
