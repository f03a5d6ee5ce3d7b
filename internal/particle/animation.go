// internal/particle/animation.go
package particle

import "go-magic-circle/internal/config"

// Blend — единственный скаляр состояния chaos↔formed.
// Value каждый тик экспоненциально приближается к Target; шаг
// пропорционален прошедшему времени, поэтому переход не зависит от
// частоты кадров.
type Blend struct {
	Value  float64
	Target float64
}

// SetTarget задаёт цель интерполяции; значение зажимается в [0, 1]
func (b *Blend) SetTarget(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.Target = v
}

// Tick продвигает значение к цели. При бинарной цели значение никогда
// не выходит из [0, 1] и не перескакивает через цель: множитель шага
// ограничен единицей.
func (b *Blend) Tick(dt float64) {
	step := config.BlendRate * dt
	if step > 1 {
		step = 1
	}
	if step < 0 {
		step = 0
	}
	b.Value += (b.Target - b.Value) * step
}

// Animation — явное состояние анимации, которым владеет управляющий
// компонент: вес интерполяции, накопленный угол вращения и часы.
// Состояние продвигается только через Tick с заданным dt, что позволяет
// детерминированно тестировать анимацию синтетическими
// последовательностями времени.
type Animation struct {
	Blend    Blend
	Rotation float64
	Clock    float64
}

// Tick продвигает часы, вес интерполяции и — только когда круг почти
// собран — медленное вращение всей формации. Ниже порога круг сперва
// «усаживается» и лишь потом начинает вращаться.
func (a *Animation) Tick(dt float64) {
	a.Clock += dt
	a.Blend.Tick(dt)
	if a.Blend.Value > config.RotationThreshold {
		a.Rotation += config.RotationSpeed * dt
	}
}

// Formed сообщает, считается ли круг собранным
func (a *Animation) Formed() bool {
	return a.Blend.Value > config.RotationThreshold
}
