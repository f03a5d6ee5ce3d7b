// internal/defs/types.go
package defs

// OrnamentDefinition описывает одно орбитальное украшение круга
type OrnamentDefinition struct {
	ID        string  `json:"id"`
	Glyph     string  `json:"glyph"`      // один символ-руна
	Orbit     float64 `json:"orbit"`      // радиус орбиты
	Speed     float64 `json:"speed"`      // радиан в секунду
	Radius    float64 `json:"radius"`     // базовый радиус кружка
	PulseRate float64 `json:"pulse_rate"` // частота дыхания
}
