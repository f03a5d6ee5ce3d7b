// internal/app/visual.go
package app

import (
	"math"

	"golang.org/x/image/font"

	"go-magic-circle/internal/component"
	"go-magic-circle/internal/config"
	"go-magic-circle/internal/defs"
	"go-magic-circle/internal/entity"
	"go-magic-circle/internal/event"
	"go-magic-circle/internal/gesture"
	"go-magic-circle/internal/particle"
	"go-magic-circle/internal/system"
	"go-magic-circle/internal/utils"
	"go-magic-circle/pkg/mandala"

	"github.com/hajimehoshi/ebiten/v2"
)

// SignalSource выдаёт последний завершившийся сигнал жеста.
// Обёртка над gesture.Poller; в тестах подменяется заглушкой.
type SignalSource interface {
	Latest() gesture.Signal
}

// Visual владеет всем состоянием магического круга: полем частиц,
// анимацией, сущностями украшений и системами. Всё мутабельное
// состояние анимации собрано здесь и продвигается только через
// Update(deltaTime) — это позволяет детерминированно прогонять визуал
// синтетическими последовательностями времени.
type Visual struct {
	ECS    *entity.ECS
	Field  *particle.Field
	Anim   *particle.Animation
	Layout *mandala.Layout

	OrbitSystem        *system.OrbitSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	signals    SignalSource
	lastSignal gesture.Signal
	wasFormed  bool
}

// NewVisual генерирует поле частиц и собирает все системы.
// fontFace может быть nil — тогда руны украшений не подписываются.
func NewVisual(rng *utils.PRNGService, signals SignalSource, fontFace font.Face) *Visual {
	ecs := entity.NewECS()
	layout := mandala.DefaultLayout()
	field := particle.Generate(rng, layout, config.ParticleCount)

	v := &Visual{
		ECS:                ecs,
		Field:              field,
		Anim:               &particle.Animation{},
		Layout:             layout,
		OrbitSystem:        system.NewOrbitSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		RenderSystem:       system.NewRenderSystem(ecs, field, layout, fontFace),
		EventDispatcher:    event.NewDispatcher(),
		Rng:                rng,
		signals:            signals,
		lastSignal:         gesture.Neutral(),
	}
	v.spawnOrnaments()
	return v
}

// spawnOrnaments создаёт сущности украшений по библиотеке определений,
// равномерно расставляя их по орбите.
func (v *Visual) spawnOrnaments() {
	i := 0
	total := len(defs.OrnamentLibrary)
	for _, def := range defs.OrnamentLibrary {
		id := v.ECS.NewEntity()
		angle := float64(i) / float64(total) * 2 * math.Pi
		v.ECS.Orbits[id] = &component.Orbit{
			Angle:  angle,
			Radius: def.Orbit,
			Speed:  def.Speed,
		}
		v.ECS.Positions[id] = &component.Position{
			X: def.Orbit * math.Cos(angle),
			Z: def.Orbit * math.Sin(angle),
		}
		v.ECS.Renderables[id] = &component.Renderable{
			Color:  config.OrnamentColor,
			Radius: float32(def.Radius),
		}
		v.ECS.Pulses[id] = &component.Pulse{Rate: def.PulseRate, Amount: 0.18}
		if def.Glyph != "" {
			v.ECS.Glyphs[id] = &component.Glyph{Rune: []rune(def.Glyph)[0]}
		}
		i++
	}
}

// Update продвигает визуал на один тик. Сигнал жеста читается здесь же,
// на потоке отрисовки: применяется всегда только последний
// завершившийся результат опроса.
func (v *Visual) Update(deltaTime float64) {
	sig := v.signals.Latest()
	if sig.Openness != v.lastSignal.Openness {
		v.EventDispatcher.Dispatch(event.Event{Type: event.GestureChanged, Data: sig})
	}
	v.lastSignal = sig

	// Раскрытая ладонь собирает круг, кулак рассеивает,
	// нераспознанный жест оставляет текущую цель без изменений.
	switch sig.Openness {
	case gesture.Open:
		v.Anim.Blend.SetTarget(1)
	case gesture.Closed:
		v.Anim.Blend.SetTarget(0)
	}

	v.Anim.Tick(deltaTime)
	v.ECS.GameTime += deltaTime

	v.OrbitSystem.Update(deltaTime, v.Anim.Formed())
	v.VisualEffectSystem.Update(deltaTime)

	formed := v.Anim.Formed()
	if formed && !v.wasFormed {
		v.spawnFlash()
		v.EventDispatcher.Dispatch(event.Event{Type: event.FormationFormed})
	}
	if !formed && v.wasFormed {
		v.EventDispatcher.Dispatch(event.Event{Type: event.FormationDispersed})
	}
	v.wasFormed = formed
}

// Draw отрисовывает текущий кадр
func (v *Visual) Draw(screen *ebiten.Image) {
	v.RenderSystem.Draw(screen, v.Anim)
}

// LastSignal возвращает сигнал, применённый на последнем тике
func (v *Visual) LastSignal() gesture.Signal {
	return v.lastSignal
}

// spawnFlash создаёт вспышку сборки
func (v *Visual) spawnFlash() {
	id := v.ECS.NewEntity()
	v.ECS.Flashes[id] = &component.FormationFlash{Duration: config.FlashDuration}
	v.ECS.Renderables[id] = &component.Renderable{Color: config.FlashColor}
}
