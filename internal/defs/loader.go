// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// OrnamentLibrary is a map to hold all ornament definitions, keyed by their ID.
var OrnamentLibrary map[string]OrnamentDefinition

// LoadOrnamentDefinitions reads the ornament configuration file and populates
// the OrnamentLibrary. When the path is empty the built-in defaults are used.
func LoadOrnamentDefinitions(path string) error {
	var ornamentDefs []OrnamentDefinition
	if path == "" {
		ornamentDefs = DefaultOrnaments()
	} else {
		file, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read ornament definitions file: %w", err)
		}
		if err := json.Unmarshal(file, &ornamentDefs); err != nil {
			return fmt.Errorf("failed to unmarshal ornament definitions: %w", err)
		}
	}

	OrnamentLibrary = make(map[string]OrnamentDefinition)
	for _, def := range ornamentDefs {
		if def.ID == "" {
			return fmt.Errorf("ornament definition without id")
		}
		OrnamentLibrary[def.ID] = def
	}
	return nil
}
