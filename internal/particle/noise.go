// internal/particle/noise.go
package particle

import (
	"math"

	"go-magic-circle/internal/config"
)

// Turbulence возвращает процедурный сдвиг для точки (x, y, z) в момент t.
// Несколько слоёв синусов с несоизмеримыми частотами дают видимую
// «кипящую» турбулентность без настоящего шума Перлина; значения по
// каждой оси ограничены [-1, 1], поэтому итоговый сдвиг всегда
// ограничен амплитудой.
func Turbulence(x, y, z, t float64) (dx, dy, dz float64) {
	dx = 0.6*math.Sin(1.7*y+t*1.1) + 0.4*math.Sin(2.3*z+t*0.7)
	dy = 0.6*math.Sin(1.9*z+t*0.9) + 0.4*math.Sin(2.1*x+t*1.3)
	dz = 0.6*math.Sin(1.3*x+t*1.2) + 0.4*math.Sin(2.7*y+t*0.8)
	return dx, dy, dz
}

// Twinkle возвращает множитель мерцания в диапазоне [1-depth, 1].
// Это чисто визуальный фликер: синусоида времени и фазы частицы,
// на корректность состояния он не влияет.
func Twinkle(phase, t, depth float64) float64 {
	return 1 - depth*0.5*(1+math.Sin(t*config.TwinkleSpeed+phase))
}
