// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/gesture"
)

// GestureIndicator — кружок в углу экрана, показывающий распознанное
// состояние ладони. При смене состояния индикатор коротко вспухает.
type GestureIndicator struct {
	X, Y           float32
	Radius         float32
	lastState      gesture.Openness
	lastChangeTime time.Time
}

func NewGestureIndicator(x, y, radius float32) *GestureIndicator {
	return &GestureIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор для текущего состояния ладони
func (i *GestureIndicator) Draw(screen *ebiten.Image, state gesture.Openness) {
	if state != i.lastState {
		i.lastState = state
		i.lastChangeTime = time.Now()
	}

	elapsed := time.Since(i.lastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, i.stateColor(state), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, float32(config.StrokeWidth), config.IndicatorStroke, true)
}

func (i *GestureIndicator) stateColor(state gesture.Openness) color.RGBA {
	switch state {
	case gesture.Open:
		return config.OpenColor
	case gesture.Closed:
		return config.ClosedColor
	default:
		return config.UnknownColor
	}
}
