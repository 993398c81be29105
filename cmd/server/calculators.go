package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buildmode/floorgrid/internal/geometry"
)

// LotDefinition describes one lot's grid calculator: extent, cell size and
// the lot's placement in the world.
type LotDefinition struct {
	Key        string  `json:"key"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	CellSize   float64 `json:"cellSize"`
	OriginX    float64 `json:"originX"`
	OriginY    float64 `json:"originY"`
	YawDegrees float64 `json:"yawDegrees"`
}

// LotRegistry resolves lot keys to shared read-only calculators. It
// replaces the original build-mode manager's global lookup with an explicit
// dependency handed to each floor.
type LotRegistry struct {
	calculators map[string]*geometry.Calculator
}

// LoadLots reads the lot definitions JSON file and builds a calculator per
// lot.
func LoadLots(path string) (*LotRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lots file: %w", err)
	}
	var definitions []LotDefinition
	if err := json.Unmarshal(data, &definitions); err != nil {
		return nil, fmt.Errorf("failed to parse lots JSON: %w", err)
	}
	return NewLotRegistry(definitions)
}

func NewLotRegistry(definitions []LotDefinition) (*LotRegistry, error) {
	registry := &LotRegistry{calculators: make(map[string]*geometry.Calculator, len(definitions))}
	for _, def := range definitions {
		calc, err := geometry.NewCalculator(def.Width, def.Height, def.CellSize, def.OriginX, def.OriginY, def.YawDegrees)
		if err != nil {
			return nil, fmt.Errorf("lot %q: %w", def.Key, err)
		}
		registry.calculators[def.Key] = calc
	}
	return registry, nil
}

// Calculator returns the calculator for a lot key, or nil when the key has
// no definition.
func (r *LotRegistry) Calculator(lotKey string) *geometry.Calculator {
	return r.calculators[lotKey]
}
