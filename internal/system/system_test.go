// internal/system/system_test.go
package system

import (
	"math"
	"testing"

	"go-magic-circle/internal/component"
	"go-magic-circle/internal/config"
	"go-magic-circle/internal/entity"
)

func newOrnament(ecs *entity.ECS) (orbit *component.Orbit, pos *component.Position) {
	eid := ecs.NewEntity()
	orbit = &component.Orbit{Radius: config.OrnamentOrbit, Speed: config.OrnamentSpeed}
	pos = &component.Position{X: orbit.Radius}
	ecs.Orbits[eid] = orbit
	ecs.Positions[eid] = pos
	ecs.Renderables[eid] = &component.Renderable{Radius: 0.2}
	return orbit, pos
}

func TestOrbitOnlyWhenFormed(t *testing.T) {
	ecs := entity.NewECS()
	orbit, _ := newOrnament(ecs)
	sys := NewOrbitSystem(ecs)

	for i := 0; i < 100; i++ {
		sys.Update(1.0/60.0, false)
	}
	if orbit.Angle != 0 {
		t.Fatalf("угол накапливается в несобранном состоянии: %v", orbit.Angle)
	}

	sys.Update(1.0, true)
	if math.Abs(orbit.Angle-config.OrnamentSpeed) > 1e-12 {
		t.Fatalf("за секунду угол %v, ожидалось %v", orbit.Angle, config.OrnamentSpeed)
	}
}

func TestOrbitKeepsRadius(t *testing.T) {
	ecs := entity.NewECS()
	orbit, pos := newOrnament(ecs)
	sys := NewOrbitSystem(ecs)

	for i := 0; i < 1000; i++ {
		sys.Update(1.0/60.0, true)
		d := math.Hypot(pos.X, pos.Z)
		if math.Abs(d-orbit.Radius) > 1e-9 {
			t.Fatalf("украшение сошло с орбиты: расстояние %v, радиус %v", d, orbit.Radius)
		}
		if pos.Y != 0 {
			t.Fatalf("украшение покинуло плоскость мандалы: Y=%v", pos.Y)
		}
	}
}

func TestFlashExpires(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Flashes[id] = &component.FormationFlash{Duration: config.FlashDuration}
	ecs.Renderables[id] = &component.Renderable{Color: config.FlashColor}
	sys := NewVisualEffectSystem(ecs)

	steps := int(config.FlashDuration*60) + 2
	for i := 0; i < steps; i++ {
		sys.Update(1.0 / 60.0)
	}
	if len(ecs.Flashes) != 0 {
		t.Fatalf("вспышка не удалилась после истечения длительности")
	}
	if len(ecs.Renderables) != 0 {
		t.Fatalf("компоненты вспышки остались после удаления сущности")
	}
}

func TestFlashGrowsAndFades(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Flashes[id] = &component.FormationFlash{Duration: 1.0}
	r := &component.Renderable{Color: config.FlashColor}
	ecs.Renderables[id] = r
	sys := NewVisualEffectSystem(ecs)

	sys.Update(0.25)
	radiusQuarter := r.Radius
	alphaQuarter := r.Color.A
	sys.Update(0.5)
	if r.Radius <= radiusQuarter {
		t.Fatalf("радиус вспышки не растёт: %v -> %v", radiusQuarter, r.Radius)
	}
	if r.Color.A >= alphaQuarter {
		t.Fatalf("вспышка не гаснет: альфа %d -> %d", alphaQuarter, r.Color.A)
	}
}
