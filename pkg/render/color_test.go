// pkg/render/color_test.go
package render

import (
	"image/color"
	"math"
	"testing"

	"go-magic-circle/internal/config"
)

func TestLerpRGBAEndpoints(t *testing.T) {
	a := color.RGBA{10, 20, 30, 255}
	b := color.RGBA{200, 150, 100, 255}
	if got := LerpRGBA(a, b, 0); got != a {
		t.Fatalf("LerpRGBA(t=0) = %v, ожидалось %v", got, a)
	}
	if got := LerpRGBA(a, b, 1); got != b {
		t.Fatalf("LerpRGBA(t=1) = %v, ожидалось %v", got, b)
	}
}

func TestLerpRGBAMidpointSane(t *testing.T) {
	m := LerpRGBA(config.ChaosColorA, config.FormedColorA, 0.5)
	// Перцептивный лерп двух ярких цветов не должен проваливаться в темноту
	if int(m.R)+int(m.G)+int(m.B) < 200 {
		t.Fatalf("середина перехода подозрительно тёмная: %v", m)
	}
	if m.A != 255 {
		t.Fatalf("альфа середины %d, ожидалось 255", m.A)
	}
}

func TestScaleClamps(t *testing.T) {
	c := color.RGBA{100, 100, 100, 200}
	if got := Scale(c, -1); got.R != 0 {
		t.Fatalf("Scale с отрицательным множителем: %v", got)
	}
	if got := Scale(c, 5); got.R != 100 {
		t.Fatalf("Scale с множителем больше единицы: %v", got)
	}
	if got := Scale(c, 0.5); got.A != 200 {
		t.Fatalf("Scale изменил альфу: %v", got)
	}
}

func TestProjectCenter(t *testing.T) {
	sx, sy, scale := Project(0, 0, 0, 0)
	if sx != config.ScreenWidth/2 {
		t.Fatalf("центр формации спроецирован в x=%v", sx)
	}
	if sy != config.ScreenHeight/2 {
		t.Fatalf("центр формации спроецирован в y=%v", sy)
	}
	if scale <= 0 || scale > 1 {
		t.Fatalf("перспективный множитель центра %v вне (0, 1]", scale)
	}
}

func TestProjectDepthAttenuation(t *testing.T) {
	_, _, near := Project(0, 0, -config.OuterRadius, 0)
	_, _, far := Project(0, 0, config.OuterRadius, 0)
	if near <= far {
		t.Fatalf("дальняя точка крупнее ближней: near=%v far=%v", near, far)
	}
}

func TestProjectRotationKeepsBounds(t *testing.T) {
	for r := 0.0; r < 2*math.Pi; r += 0.1 {
		sx, sy, scale := Project(config.OuterRadius, 0, 0, r)
		if math.IsNaN(sx) || math.IsNaN(sy) || math.IsNaN(scale) {
			t.Fatalf("NaN в проекции при повороте %v", r)
		}
		if scale <= 0 {
			t.Fatalf("неположительный множитель размера при повороте %v", r)
		}
	}
}
