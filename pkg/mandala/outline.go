// pkg/mandala/outline.go
package mandala

// Segment — отрезок контура для отрисовки направляющих линий
type Segment struct {
	A, B Point
}

// GuideRadii возвращает радиусы всех колец мандалы (для направляющих окружностей)
func (l *Layout) GuideRadii() []float64 {
	var radii []float64
	for _, layer := range l.Layers {
		if layer.Shape == ShapeRing {
			radii = append(radii, layer.Radius)
		}
	}
	return radii
}

// GuideSegments возвращает отрезки всех пентаграмм мандалы
func (l *Layout) GuideSegments() []Segment {
	var segs []Segment
	for _, layer := range l.Layers {
		if layer.Shape != ShapeStar {
			continue
		}
		tips := StarTips(layer.Radius, layer.Rotation)
		for i := 0; i < starTips; i++ {
			segs = append(segs, Segment{A: tips[i], B: tips[(i+2)%starTips]})
		}
	}
	return segs
}
