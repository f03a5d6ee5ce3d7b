// internal/gesture/types.go
package gesture

import (
	"fmt"
	"image"
)

// Openness — распознанное состояние ладони
type Openness uint8

const (
	Unknown Openness = iota // распознать не удалось
	Open                    // раскрытая ладонь
	Closed                  // сжатый кулак
)

func (o Openness) String() string {
	switch o {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// ParseOpenness разбирает строковое значение из ответа API
func ParseOpenness(s string) (Openness, error) {
	switch s {
	case "open":
		return Open, nil
	case "closed":
		return Closed, nil
	case "unknown", "":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown openness value %q", s)
}

// Signal — результат распознавания: состояние ладони и её
// нормализованная позиция в кадре ([0,1] по обеим осям).
type Signal struct {
	Openness Openness
	X, Y     float64
}

// Neutral — нейтральный сигнал, подставляемый при любой ошибке
// распознавания: ладонь неизвестна, позиция — центр кадра.
func Neutral() Signal {
	return Signal{Openness: Unknown, X: 0.5, Y: 0.5}
}

// Source выдаёт сигнал жеста по кадру. Может вернуть ошибку или
// зависнуть до таймаута — обе ситуации сводятся к нейтральному сигналу
// на границе опроса.
type Source interface {
	Detect(frame image.Image) (Signal, error)
}
