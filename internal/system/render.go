// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/entity"
	"go-magic-circle/internal/particle"
	"go-magic-circle/pkg/mandala"
	"go-magic-circle/pkg/render"
)

// RenderSystem рисует поле частиц, направляющие линии и украшения
type RenderSystem struct {
	ecs   *entity.ECS
	field *particle.Field
	guide *render.GuideRenderer

	chaosPalette  render.Palette
	formedPalette render.Palette
	moonPalette   render.Palette

	fontFace font.Face
}

func NewRenderSystem(ecs *entity.ECS, field *particle.Field, layout *mandala.Layout, fontFace font.Face) *RenderSystem {
	return &RenderSystem{
		ecs:           ecs,
		field:         field,
		guide:         render.NewGuideRenderer(layout),
		chaosPalette:  render.Palette{A: config.ChaosColorA, B: config.ChaosColorB},
		formedPalette: render.Palette{A: config.FormedColorA, B: config.FormedColorB},
		moonPalette:   render.Palette{A: config.MoonColorA, B: config.MoonColorB},
		fontFace:      fontFace,
	}
}

// Draw отрисовывает кадр целиком: фон, направляющие, частицы, украшения,
// вспышки. Вся математика кадра завершается до его показа — никакой
// межкадровой частичной работы.
func (s *RenderSystem) Draw(screen *ebiten.Image, anim *particle.Animation) {
	screen.Fill(config.BackgroundColor)

	blend := anim.Blend.Value
	s.guide.Draw(screen, blend, anim.Rotation)

	// Частицы: позиция — интерполяция хаос→цель с турбулентностью,
	// размер — с перспективным ослаблением, цвет — лерп палитр по весу
	// с мерцанием. Всё — чистые функции веса, времени и констант частицы.
	for i := 0; i < s.field.Len(); i++ {
		x, y, z := s.field.At(i, blend, anim.Clock)
		sx, sy, depthScale := render.Project(x, y, z, anim.Rotation)

		radius := s.field.Size[i] * config.ViewScale * depthScale

		// Статичный собственный оттенок частицы внутри палитры
		hueT := 0.5 + 0.5*math.Sin(s.field.Phase[i]*0.7)
		formed := s.formedPalette
		if s.field.Kind[i] == mandala.KindMoon {
			formed = s.moonPalette
		}
		c := render.LerpRGBA(s.chaosPalette.Pick(hueT), formed.Pick(hueT), blend)
		c = render.Scale(c, particle.Twinkle(s.field.Phase[i], anim.Clock, 0.35))

		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), c, true)
	}

	s.drawOrnaments(screen, anim)
	s.drawFlashes(screen)
}

// drawOrnaments рисует орбитальные руны. Украшения проявляются вместе с
// кругом, а когда он собран — дышат.
func (s *RenderSystem) drawOrnaments(screen *ebiten.Image, anim *particle.Animation) {
	blend := anim.Blend.Value
	if blend <= 0.05 {
		return
	}
	for id, renderable := range s.ecs.Renderables {
		if _, isFlash := s.ecs.Flashes[id]; isFlash {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		sx, sy, depthScale := render.Project(pos.X, pos.Y, pos.Z, anim.Rotation)

		radius := float64(renderable.Radius) * config.ViewScale * depthScale
		if pulse, hasPulse := s.ecs.Pulses[id]; hasPulse && anim.Formed() {
			radius *= 1 + pulse.Amount*math.Sin(anim.Clock*pulse.Rate*math.Pi)
		}

		c := renderable.Color
		c.A = uint8(float64(c.A) * blend * blend)

		if renderable.HasStroke {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius)+2, float32(config.StrokeWidth), config.IndicatorStroke, true)
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), c, true)

		if glyph, hasGlyph := s.ecs.Glyphs[id]; hasGlyph && s.fontFace != nil {
			// Приблизительное центрирование руны по кружку
			text.Draw(screen, string(glyph.Rune), s.fontFace, int(sx)-5, int(sy)+5, config.TextLightColor)
		}
	}
}

// drawFlashes рисует вспышки сборки — расходящиеся кольца в экранных
// координатах вокруг центра формации.
func (s *RenderSystem) drawFlashes(screen *ebiten.Image) {
	for id := range s.ecs.Flashes {
		renderable, ok := s.ecs.Renderables[id]
		if !ok {
			continue
		}
		cx := float32(config.ScreenWidth) / 2
		cy := float32(config.ScreenHeight) / 2
		vector.StrokeCircle(screen, cx, cy, renderable.Radius, 3.0, renderable.Color, true)
	}
}
