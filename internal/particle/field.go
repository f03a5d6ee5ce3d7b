// internal/particle/field.go
package particle

import (
	"go-magic-circle/internal/config"
	"go-magic-circle/internal/utils"
	"go-magic-circle/pkg/mandala"
)

// Field — все частицы магического круга в виде параллельных массивов
// (structure-of-arrays). Все частицы живут одинаково долго — столько же,
// сколько сам визуал, поэтому по-объектного управления временем жизни нет.
// После генерации массивы не меняются: от кадра к кадру меняется только
// общий вес интерполяции.
type Field struct {
	ChaosX, ChaosY, ChaosZ    []float64
	TargetX, TargetY, TargetZ []float64
	Size                      []float64
	Kind                      []mandala.Kind
	Phase                     []float64 // фаза мерцания, выводится из позиции хаоса
}

// Len возвращает число частиц
func (f *Field) Len() int {
	return len(f.Size)
}

// Generate создаёт поле частиц. Каждая частица генерируется независимо:
// позиция хаоса — равномерно по объёму сферы, целевая позиция — по слоям
// мандалы, размер — равномерно в фиксированном диапазоне. Частицы слоя
// полумесяца получают категорию KindMoon.
func Generate(rng *utils.PRNGService, layout *mandala.Layout, count int) *Field {
	f := &Field{
		ChaosX:  make([]float64, count),
		ChaosY:  make([]float64, count),
		ChaosZ:  make([]float64, count),
		TargetX: make([]float64, count),
		TargetY: make([]float64, count),
		TargetZ: make([]float64, count),
		Size:    make([]float64, count),
		Kind:    make([]mandala.Kind, count),
		Phase:   make([]float64, count),
	}
	for i := 0; i < count; i++ {
		x, y, z := mandala.SpherePoint(rng, config.ChaosRadius)
		f.ChaosX[i], f.ChaosY[i], f.ChaosZ[i] = x, y, z

		// Мандала лежит в горизонтальной плоскости: её (X, Y) — это
		// мировые (X, Z), по вертикали добавляется лёгкий разброс.
		p, kind := layout.Sample(rng)
		f.TargetX[i] = p.X
		f.TargetY[i] = rng.InRange(-config.PlaneJitter, config.PlaneJitter)
		f.TargetZ[i] = p.Y
		f.Kind[i] = kind

		f.Size[i] = rng.InRange(config.MinSize, config.MaxSize)
		f.Phase[i] = x*1.7 + y*2.3 + z*1.3
	}
	return f
}

// At возвращает отрисовочную позицию частицы i для текущего веса blend
// и времени clock: интерполяция хаос→цель плюс турбулентный сдвиг,
// амплитуда которого сама интерполируется (большая в хаосе, малая в
// собранном круге).
func (f *Field) At(i int, blend, clock float64) (x, y, z float64) {
	x = utils.Lerp(f.ChaosX[i], f.TargetX[i], blend)
	y = utils.Lerp(f.ChaosY[i], f.TargetY[i], blend)
	z = utils.Lerp(f.ChaosZ[i], f.TargetZ[i], blend)

	amp := utils.Lerp(config.TurbulenceChaos, config.TurbulenceFormed, blend)
	dx, dy, dz := Turbulence(f.ChaosX[i], f.ChaosY[i], f.ChaosZ[i], clock)
	return x + dx*amp, y + dy*amp, z + dz*amp
}
