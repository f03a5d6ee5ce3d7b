// internal/gesture/cycle.go
package gesture

import (
	"image"
	"math"
	"time"
)

// Cycle — демонстрационный источник жестов: ладонь периодически
// раскрывается и сжимается, позиция плывёт по фигуре Лиссажу.
// Используется в демо-режиме, когда vision-endpoint не задан.
type Cycle struct {
	period time.Duration
	start  time.Time
}

func NewCycle(period time.Duration) *Cycle {
	return &Cycle{period: period, start: time.Now()}
}

// Detect возвращает сигнал текущей фазы цикла; кадр игнорируется
func (c *Cycle) Detect(_ image.Image) (Signal, error) {
	t := time.Since(c.start).Seconds()
	phase := math.Mod(t, c.period.Seconds()) / c.period.Seconds()

	openness := Open
	if phase >= 0.5 {
		openness = Closed
	}
	return Signal{
		Openness: openness,
		X:        0.5 + 0.3*math.Sin(t*0.5),
		Y:        0.5 + 0.3*math.Sin(t*0.8+0.7),
	}, nil
}
