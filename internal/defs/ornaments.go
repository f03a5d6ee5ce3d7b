// internal/defs/ornaments.go
package defs

import "go-magic-circle/internal/config"

// DefaultOrnaments возвращает встроенный набор украшений: пять рун на
// орбите внешнего кольца. Файл определений (если задан) заменяет его
// целиком.
func DefaultOrnaments() []OrnamentDefinition {
	runes := []string{"ᚠ", "ᚢ", "ᚦ", "ᚨ", "ᚱ"}
	defs := make([]OrnamentDefinition, 0, len(runes))
	for _, r := range runes {
		defs = append(defs, OrnamentDefinition{
			ID:        "rune-" + r,
			Glyph:     r,
			Orbit:     config.OrnamentOrbit,
			Speed:     config.OrnamentSpeed,
			Radius:    0.22,
			PulseRate: config.OrnamentPulseRate,
		})
	}
	return defs
}
