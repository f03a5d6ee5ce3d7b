// internal/particle/particle_test.go
package particle

import (
	"math"
	"testing"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/utils"
	"go-magic-circle/pkg/mandala"
)

func testField(t *testing.T, count int) *Field {
	t.Helper()
	rng := utils.NewPRNGService(42)
	return Generate(rng, mandala.DefaultLayout(), count)
}

func TestGenerateParallelArrays(t *testing.T) {
	f := testField(t, 500)
	if f.Len() != 500 {
		t.Fatalf("Len() = %d, ожидалось 500", f.Len())
	}
	for _, n := range []int{
		len(f.ChaosX), len(f.ChaosY), len(f.ChaosZ),
		len(f.TargetX), len(f.TargetY), len(f.TargetZ),
		len(f.Kind), len(f.Phase),
	} {
		if n != 500 {
			t.Fatalf("длины параллельных массивов расходятся: %d", n)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	f := testField(t, 5000)
	for i := 0; i < f.Len(); i++ {
		chaos := math.Sqrt(f.ChaosX[i]*f.ChaosX[i] + f.ChaosY[i]*f.ChaosY[i] + f.ChaosZ[i]*f.ChaosZ[i])
		if chaos > config.ChaosRadius+1e-9 {
			t.Fatalf("частица %d: позиция хаоса вне сферы (%v)", i, chaos)
		}
		target := math.Hypot(f.TargetX[i], f.TargetZ[i])
		if target > config.OuterRadius+1e-9 {
			t.Fatalf("частица %d: целевая позиция вне мандалы (%v)", i, target)
		}
		if math.Abs(f.TargetY[i]) > config.PlaneJitter {
			t.Fatalf("частица %d: вертикальный разброс %v больше предела", i, f.TargetY[i])
		}
		if f.Size[i] < config.MinSize || f.Size[i] >= config.MaxSize {
			t.Fatalf("частица %d: размер %v вне диапазона", i, f.Size[i])
		}
	}
}

func TestBlendMonotonicApproach(t *testing.T) {
	b := Blend{}
	b.SetTarget(1)
	const dt = 1.0 / 60.0
	prev := b.Value
	for i := 0; i < 600; i++ {
		b.Tick(dt)
		if b.Value < prev {
			t.Fatalf("тик %d: значение уменьшилось (%v -> %v) при постоянной цели 1", i, prev, b.Value)
		}
		if b.Value > 1 {
			t.Fatalf("тик %d: значение %v вышло за 1", i, b.Value)
		}
		prev = b.Value
	}
	if b.Value >= 1 {
		t.Fatalf("значение достигло цели точно, ожидалось асимптотическое приближение: %v", b.Value)
	}
}

func TestBlendStaysInUnitInterval(t *testing.T) {
	b := Blend{}
	rng := utils.NewPRNGService(7)
	// Произвольные переключения бинарной цели и рваный dt
	for i := 0; i < 50000; i++ {
		if rng.Float64() < 0.05 {
			b.SetTarget(float64(rng.Intn(2)))
		}
		b.Tick(rng.Float64() * config.MaxDeltaTime)
		if b.Value < 0 || b.Value > 1 {
			t.Fatalf("тик %d: значение %v вне [0,1]", i, b.Value)
		}
	}
}

func TestBlendFiveSecondsAtSixtyHz(t *testing.T) {
	b := Blend{}
	b.SetTarget(1)
	const dt = 1.0 / 60.0
	for i := 0; i < 5*60; i++ {
		b.Tick(dt)
	}
	if b.Value <= 0.99 {
		t.Fatalf("после 5 секунд при 60 тиках/с значение %v, ожидалось > 0.99", b.Value)
	}
}

func TestBlendLargeStepDoesNotOvershoot(t *testing.T) {
	b := Blend{}
	b.SetTarget(1)
	b.Tick(10) // dt много больше 1/BlendRate
	if b.Value > 1 {
		t.Fatalf("огромный dt привёл к перелёту: %v", b.Value)
	}
}

func TestAnimationRotationGating(t *testing.T) {
	a := &Animation{}
	a.Blend.SetTarget(1)
	const dt = 1.0 / 60.0
	for a.Blend.Value <= config.RotationThreshold {
		if a.Rotation != 0 {
			t.Fatalf("вращение началось при весе %v, порог %v", a.Blend.Value, config.RotationThreshold)
		}
		a.Tick(dt)
	}
	before := a.Rotation
	a.Tick(dt)
	if a.Rotation <= before {
		t.Fatalf("выше порога вращение не накапливается")
	}
}

func TestAtFiniteAndCalm(t *testing.T) {
	f := testField(t, 1000)
	for _, blend := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for i := 0; i < f.Len(); i++ {
			x, y, z := f.At(i, blend, 3.7)
			if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
				t.Fatalf("NaN в позиции частицы %d при весе %v", i, blend)
			}
			// Позиция всегда ограничена: сфера хаоса плюс максимальная
			// амплитуда турбулентности.
			limit := config.ChaosRadius + config.TurbulenceChaos + 1e-9
			if math.Abs(x) > limit || math.Abs(y) > limit || math.Abs(z) > limit {
				t.Fatalf("частица %d улетела: (%v, %v, %v) при весе %v", i, x, y, z, blend)
			}
		}
	}
	// В собранном состоянии остаточное дрожание много меньше хаотического
	i := 0
	x0, y0, z0 := f.At(i, 1, 2.0)
	dx := x0 - f.TargetX[i]
	dy := y0 - f.TargetY[i]
	dz := z0 - f.TargetZ[i]
	if math.Sqrt(dx*dx+dy*dy+dz*dz) > 2*config.TurbulenceFormed {
		t.Fatalf("в собранном состоянии частица дрожит слишком сильно: %v", math.Sqrt(dx*dx+dy*dy+dz*dz))
	}
}

func TestTurbulenceBounded(t *testing.T) {
	rng := utils.NewPRNGService(9)
	for i := 0; i < 10000; i++ {
		x := rng.InRange(-10, 10)
		y := rng.InRange(-10, 10)
		z := rng.InRange(-10, 10)
		tm := rng.InRange(0, 100)
		dx, dy, dz := Turbulence(x, y, z, tm)
		for _, v := range []float64{dx, dy, dz} {
			if math.Abs(v) > 1 {
				t.Fatalf("компонента турбулентности %v вне [-1, 1]", v)
			}
		}
	}
}

func TestTwinkleRange(t *testing.T) {
	for tm := 0.0; tm < 10; tm += 0.01 {
		v := Twinkle(1.3, tm, 0.5)
		if v < 0.5-1e-9 || v > 1+1e-9 {
			t.Fatalf("мерцание %v вне диапазона [0.5, 1]", v)
		}
	}
}
