// internal/system/orbit.go
package system

import (
	"math"

	"go-magic-circle/internal/entity"
)

// OrbitSystem двигает украшения по орбитам вокруг центра формации.
// Орбиты живут только у собранного круга: пока идёт сборка или распад,
// углы не накапливаются.
type OrbitSystem struct {
	ecs *entity.ECS
}

func NewOrbitSystem(ecs *entity.ECS) *OrbitSystem {
	return &OrbitSystem{ecs: ecs}
}

// Update обновляет углы и позиции украшений
func (s *OrbitSystem) Update(deltaTime float64, formed bool) {
	if !formed {
		return
	}
	for id, orbit := range s.ecs.Orbits {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		orbit.Angle += orbit.Speed * deltaTime
		pos.X = orbit.Radius * math.Cos(orbit.Angle)
		pos.Y = 0
		pos.Z = orbit.Radius * math.Sin(orbit.Angle)
	}
}
