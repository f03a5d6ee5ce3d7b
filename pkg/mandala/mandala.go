// pkg/mandala/mandala.go
package mandala

import (
	"go-magic-circle/internal/config"
)

// Kind — категория частицы. Влияет только на цвет: частицы полумесяца
// рисуются золотыми, все остальные — розово-белыми.
type Kind uint8

const (
	KindStandard Kind = iota
	KindMoon
)

// Shape — тип геометрического примитива слоя
type Shape uint8

const (
	ShapeRing Shape = iota
	ShapeStar
	ShapeCrescent
	ShapeDisk
)

// Rand is the randomness a sampler needs. *utils.PRNGService satisfies it,
// as does any seeded source used in tests.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Point — точка на плоскости мандалы
type Point struct {
	X, Y float64
}

// Layer описывает один слой мандалы: верхнюю границу его поддиапазона
// в [0,1), примитив и его параметры.
type Layer struct {
	Limit    float64 // верхняя граница поддиапазона, слои идут по возрастанию
	Shape    Shape
	Radius   float64
	Rotation float64
	Kind     Kind
}

// Layout — полный набор слоёв мандалы плюс геометрия полумесяца
type Layout struct {
	Layers []Layer
	Moon   Crescent
}

// DefaultLayout возвращает девятислойную мандалу: внешнее кольцо, две
// пентаграммы, среднее кольцо, внутренняя пентаграмма, полумесяц,
// внутреннее кольцо, малая пентаграмма со сдвигом на пол-луча и
// заполненный центр. Границы поддиапазонов и радиусы — дизайн-константы.
func DefaultLayout() *Layout {
	return &Layout{
		Layers: []Layer{
			{Limit: config.RangeOuterRing, Shape: ShapeRing, Radius: config.OuterRadius},
			{Limit: config.RangeStarA, Shape: ShapeStar, Radius: config.OuterRadius},
			{Limit: config.RangeStarB, Shape: ShapeStar, Radius: config.OuterRadius, Rotation: starTipOffset},
			{Limit: config.RangeMiddleRing, Shape: ShapeRing, Radius: config.MiddleRadius},
			{Limit: config.RangeInnerStar, Shape: ShapeStar, Radius: config.MiddleRadius},
			{Limit: config.RangeMoon, Shape: ShapeCrescent, Kind: KindMoon},
			{Limit: config.RangeInnerRing, Shape: ShapeRing, Radius: config.InnerRadius},
			{Limit: config.RangeCenterStar, Shape: ShapeStar, Radius: config.InnerRadius, Rotation: starTipOffset},
			{Limit: 1.0, Shape: ShapeDisk, Radius: config.CenterRadius},
		},
		Moon: Crescent{
			BodyX: config.MoonBodyX, BodyY: config.MoonBodyY, BodyR: config.MoonBodyRadius,
			CutX: config.MoonCutX, CutY: config.MoonCutY, CutR: config.MoonCutRadius,
			MaxTries: config.MoonMaxTries,
		},
	}
}

// Sample выбирает слой по одному равномерному числу и возвращает точку
// на его примитиве вместе с категорией частицы.
func (l *Layout) Sample(r Rand) (Point, Kind) {
	u := r.Float64()
	for _, layer := range l.Layers {
		if u >= layer.Limit {
			continue
		}
		switch layer.Shape {
		case ShapeRing:
			return RingPoint(r, layer.Radius), layer.Kind
		case ShapeStar:
			return StarPoint(r, layer.Radius, layer.Rotation), layer.Kind
		case ShapeCrescent:
			return l.Moon.Point(r), layer.Kind
		case ShapeDisk:
			return DiskPoint(r, layer.Radius), layer.Kind
		}
	}
	// u попал ровно в 1.0 быть не может (Float64 < 1), но на всякий случай
	last := l.Layers[len(l.Layers)-1]
	return DiskPoint(r, last.Radius), last.Kind
}
