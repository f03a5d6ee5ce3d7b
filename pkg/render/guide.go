// pkg/render/guide.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-magic-circle/internal/config"
	"go-magic-circle/pkg/mandala"
)

const ringSegments = 64

// GuideRenderer рисует тонкие направляющие линии мандалы под частицами.
// Геометрия в мировых координатах считается один раз при создании;
// на кадре остаётся только проекция и штриховка.
type GuideRenderer struct {
	segments []worldSegment
	color    color.RGBA
}

type worldSegment struct {
	ax, az, bx, bz float64
}

// NewGuideRenderer переводит контур мандалы в список отрезков:
// каждое кольцо — ломаная из ringSegments звеньев, пентаграммы —
// свои отрезки как есть.
func NewGuideRenderer(layout *mandala.Layout) *GuideRenderer {
	var segs []worldSegment
	for _, radius := range layout.GuideRadii() {
		for i := 0; i < ringSegments; i++ {
			a0 := float64(i) / ringSegments * 2 * math.Pi
			a1 := float64(i+1) / ringSegments * 2 * math.Pi
			segs = append(segs, worldSegment{
				ax: radius * math.Cos(a0), az: radius * math.Sin(a0),
				bx: radius * math.Cos(a1), bz: radius * math.Sin(a1),
			})
		}
	}
	for _, s := range layout.GuideSegments() {
		segs = append(segs, worldSegment{ax: s.A.X, az: s.A.Y, bx: s.B.X, bz: s.B.Y})
	}
	return &GuideRenderer{segments: segs, color: config.GuideLineColor}
}

// Draw отрисовывает направляющие с прозрачностью, пропорциональной весу
// интерполяции: в хаосе линий не видно, к собранному кругу они проявляются.
func (g *GuideRenderer) Draw(screen *ebiten.Image, blend, rotation float64) {
	if blend <= 0.05 {
		return
	}
	c := g.color
	c.A = uint8(float64(c.A) * blend)
	for _, s := range g.segments {
		ax, ay, _ := Project(s.ax, 0, s.az, rotation)
		bx, by, _ := Project(s.bx, 0, s.bz, rotation)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1.0, c, true)
	}
}
