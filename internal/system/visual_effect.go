// internal/system/visual_effect.go
package system

import (
	"go-magic-circle/internal/entity"
)

// VisualEffectSystem управляет короткоживущими эффектами — вспышками
// в момент сборки круга.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer += deltaTime

		if flash.Timer >= flash.Duration {
			// Эффект завершился, удаляем сущность целиком
			s.ecs.RemoveEntity(id)
			continue
		}

		// Радиус растёт, прозрачность гаснет по ходу эффекта
		renderable, ok := s.ecs.Renderables[id]
		if ok {
			progress := flash.Timer / flash.Duration
			renderable.Radius = float32(progress) * flashMaxRadius
			renderable.Color.A = uint8(255 * (1 - progress))
		}
	}
}

const flashMaxRadius = 260
