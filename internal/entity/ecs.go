// internal/entity/ecs.go
package entity

import (
	"go-magic-circle/internal/component"
	"go-magic-circle/internal/types"
)

// ECS хранит дискретные сущности визуала — орбитальные украшения и
// эффекты. Само поле частиц сюда не входит: у всех частиц одно время
// жизни и один общий вес интерполяции, для них достаточно параллельных
// массивов без по-объектного учёта.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Renderables map[types.EntityID]*component.Renderable
	Orbits      map[types.EntityID]*component.Orbit
	Pulses      map[types.EntityID]*component.Pulse
	Glyphs      map[types.EntityID]*component.Glyph
	Flashes     map[types.EntityID]*component.FormationFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Orbits:      make(map[types.EntityID]*component.Orbit),
		Pulses:      make(map[types.EntityID]*component.Pulse),
		Glyphs:      make(map[types.EntityID]*component.Glyph),
		Flashes:     make(map[types.EntityID]*component.FormationFlash),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех компонентных карт
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
	delete(ecs.Orbits, id)
	delete(ecs.Pulses, id)
	delete(ecs.Glyphs, id)
	delete(ecs.Flashes, id)
}
