package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buildmode/floorgrid/internal/geometry"
	"github.com/buildmode/floorgrid/internal/grid"
)

// objectDefinition mirrors one catalog entry in the objects JSON file.
type objectDefinition struct {
	ID                string `json:"id"`
	Footprint         []struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"footprint"`
	Passable          bool `json:"passable"`
	ForbidWallsBeside bool `json:"forbidWallsBeside"`
}

// LoadObjectCatalog reads the placeable-object definitions from a JSON
// file. A missing file falls back to the built-in catalog so the server
// stays usable without content on disk.
func LoadObjectCatalog(path string) ([]grid.ObjectType, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultObjectCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read object catalog: %w", err)
	}

	var definitions []objectDefinition
	if err := json.Unmarshal(data, &definitions); err != nil {
		return nil, fmt.Errorf("failed to parse object catalog JSON: %w", err)
	}

	catalog := make([]grid.ObjectType, 0, len(definitions))
	for _, def := range definitions {
		objType := grid.ObjectType{
			ID:                def.ID,
			Passable:          def.Passable,
			ForbidWallsBeside: def.ForbidWallsBeside,
		}
		for _, off := range def.Footprint {
			objType.Footprint = append(objType.Footprint, geometry.TileAddress{X: off.X, Y: off.Y})
		}
		catalog = append(catalog, objType)
	}
	return catalog, nil
}

// DefaultObjectCatalog is the built-in set of placeable objects.
func DefaultObjectCatalog() []grid.ObjectType {
	return []grid.ObjectType{
		{ID: "crate"},
		{ID: "rug", Passable: true},
		{
			ID: "workbench",
			Footprint: []geometry.TileAddress{
				{X: 0, Y: 0},
				{X: 1, Y: 0},
			},
			ForbidWallsBeside: true,
		},
	}
}
