package grid

import (
	"github.com/google/uuid"

	"github.com/buildmode/floorgrid/internal/geometry"
)

// ObjectType is a catalog entry describing a placeable object: the tiles it
// covers relative to its origin and its interaction rules.
type ObjectType struct {
	ID        string
	Footprint []geometry.TileAddress // offsets from the origin tile; empty means single tile
	// Passable objects do not block pathfinding across their tiles.
	Passable bool
	// ForbidWallsBeside rejects wall placement on any edge adjacent to the
	// object's tiles.
	ForbidWallsBeside bool
}

// PlacedObject is one placed instance of a catalog type.
type PlacedObject struct {
	ID                string
	Type              string
	Origin            geometry.TileAddress
	Tiles             []geometry.TileAddress
	Passable          bool
	ForbidWallsBeside bool
}

// ObjectInteractions validates and applies object placement and removal on
// tiles. It owns no state beyond the active tool configuration; all grid
// state lives in TileData.
type ObjectInteractions struct {
	click  *geometry.Click
	tiles  *TileData
	log    Logger
	types  map[string]ObjectType
	active string
}

func NewObjectInteractions(click *geometry.Click, tiles *TileData, log Logger, catalog []ObjectType) *ObjectInteractions {
	types := make(map[string]ObjectType, len(catalog))
	for _, t := range catalog {
		types[t.ID] = t
	}
	return &ObjectInteractions{
		click: click,
		tiles: tiles,
		log:   orNopLogger(log),
		types: types,
	}
}

// SelectType switches the object type the placement tool works with.
func (o *ObjectInteractions) SelectType(id string) bool {
	if _, ok := o.types[id]; !ok {
		return false
	}
	o.active = id
	return true
}

func (o *ObjectInteractions) footprint(t ObjectType, origin geometry.TileAddress) []geometry.TileAddress {
	if len(t.Footprint) == 0 {
		return []geometry.TileAddress{origin}
	}
	tiles := make([]geometry.TileAddress, len(t.Footprint))
	for i, off := range t.Footprint {
		tiles[i] = geometry.TileAddress{X: origin.X + off.X, Y: origin.Y + off.Y}
	}
	return tiles
}

// HandlePlaceObject resolves a tile for the world point and places the
// active object type with its origin there. The footprint is validated
// first and applied all-or-nothing, so an object never partially overlaps
// the grid edge or another object. Rejections are non-fatal; the coded
// error distinguishes OutOfBounds, Occupied and FootprintOverlap.
func (o *ObjectInteractions) HandlePlaceObject(wx, wy float64, pressed bool) (*PlacedObject, error) {
	if !pressed {
		return nil, nil
	}
	objType, ok := o.types[o.active]
	if !ok {
		o.log.Printf("place-object ignored: no active object type")
		return nil, nil
	}

	result, err := o.click.Resolve(wx, wy)
	if err != nil {
		return nil, geometry.Errorf(geometry.CodeOutOfBounds,
			"object target (%.2f,%.2f) outside floor", wx, wy)
	}
	origin := *result.Tile

	tiles := o.footprint(objType, origin)
	for _, tile := range tiles {
		state, err := o.tiles.Tile(tile)
		if err != nil {
			return nil, geometry.Errorf(geometry.CodeOutOfBounds,
				"footprint tile (%d,%d) outside floor", tile.X, tile.Y)
		}
		if state.Occupant == "" {
			continue
		}
		if tile == origin {
			return nil, geometry.Errorf(geometry.CodeOccupied,
				"tile (%d,%d) already occupied by %s", tile.X, tile.Y, state.Occupant)
		}
		return nil, geometry.Errorf(geometry.CodeFootprintOverlap,
			"footprint tile (%d,%d) already occupied by %s", tile.X, tile.Y, state.Occupant)
	}

	obj := &PlacedObject{
		ID:                uuid.NewString(),
		Type:              objType.ID,
		Origin:            origin,
		Tiles:             tiles,
		Passable:          objType.Passable,
		ForbidWallsBeside: objType.ForbidWallsBeside,
	}
	o.tiles.PutObject(obj)
	for _, tile := range tiles {
		// Validated above; the write cannot fail.
		_, _ = o.tiles.SetOccupant(tile, obj.ID)
	}
	return obj, nil
}

// HandleRemoveObject resolves a tile and removes whichever object occupies
// it, clearing the occupant across the object's whole footprint.
func (o *ObjectInteractions) HandleRemoveObject(wx, wy float64, pressed bool) (*PlacedObject, error) {
	if !pressed {
		return nil, nil
	}
	result, err := o.click.Resolve(wx, wy)
	if err != nil {
		return nil, geometry.Errorf(geometry.CodeOutOfBounds,
			"erase target (%.2f,%.2f) outside floor", wx, wy)
	}
	obj, ok := o.tiles.ObjectAt(*result.Tile)
	if !ok {
		return nil, nil
	}
	for _, tile := range obj.Tiles {
		_, _ = o.tiles.SetOccupant(tile, "")
	}
	o.tiles.DeleteObject(obj.ID)
	return obj, nil
}
