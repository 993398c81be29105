package grid

import (
	"github.com/buildmode/floorgrid/internal/geometry"
)

// DefaultWallType is the wall type used until a tool selects another.
const DefaultWallType = "plain"

// WallChange records one applied wall mutation for collaborators
// (broadcast, persistence) to react to.
type WallChange struct {
	Edge     geometry.EdgeAddress
	Previous WallState
	Current  WallState
}

// WallInteractions validates and applies wall placement and removal on
// edges. Each resolved edge of a drag stream is processed independently;
// there is no batching or rollback across a drag.
type WallInteractions struct {
	click    *geometry.Click
	tiles    *TileData
	log      Logger
	wallType string
}

func NewWallInteractions(click *geometry.Click, tiles *TileData, log Logger) *WallInteractions {
	return &WallInteractions{
		click:    click,
		tiles:    tiles,
		log:      orNopLogger(log),
		wallType: DefaultWallType,
	}
}

// SelectType switches the wall type the placement tool works with.
func (w *WallInteractions) SelectType(wallType string) {
	if wallType != "" {
		w.wallType = wallType
	}
}

// HandlePlaceWall resolves an edge for the world point and places a wall of
// the active type on it. Placing the same type on an already-walled edge is
// an idempotent no-op. Validation failures are non-fatal: the mutation is
// skipped, logged, and reported through the returned error.
func (w *WallInteractions) HandlePlaceWall(wx, wy float64, pressed bool) (*WallChange, error) {
	if !pressed {
		return nil, nil
	}
	edge, err := w.resolveEdge(wx, wy)
	if err != nil {
		w.log.Printf("place-wall skipped: %v", err)
		return nil, err
	}

	existing := w.tiles.Wall(edge)
	if existing.Present && existing.Type == w.wallType {
		return nil, nil
	}
	if err := w.checkAdjacentObjects(edge); err != nil {
		w.log.Printf("place-wall rejected: %v", err)
		return nil, err
	}

	previous, err := w.tiles.SetWall(edge, true, w.wallType)
	if err != nil {
		return nil, err
	}
	return &WallChange{
		Edge:     edge,
		Previous: previous,
		Current:  WallState{Present: true, Type: w.wallType},
	}, nil
}

// HandleRemoveWall resolves an edge and clears its wall. Removing an
// already-empty edge is a no-op.
func (w *WallInteractions) HandleRemoveWall(wx, wy float64, pressed bool) (*WallChange, error) {
	if !pressed {
		return nil, nil
	}
	edge, err := w.resolveEdge(wx, wy)
	if err != nil {
		w.log.Printf("remove-wall skipped: %v", err)
		return nil, err
	}
	if !w.tiles.Wall(edge).Present {
		return nil, nil
	}
	previous, err := w.tiles.SetWall(edge, false, "")
	if err != nil {
		return nil, err
	}
	return &WallChange{Edge: edge, Previous: previous, Current: WallState{}}, nil
}

func (w *WallInteractions) resolveEdge(wx, wy float64) (geometry.EdgeAddress, error) {
	result, err := w.click.Resolve(wx, wy)
	if err != nil {
		return geometry.EdgeAddress{}, err
	}
	if result.Edge == nil {
		return geometry.EdgeAddress{}, geometry.Errorf(geometry.CodeNoEdgeNearby,
			"no edge near (%.2f,%.2f)", wx, wy)
	}
	return *result.Edge, nil
}

// checkAdjacentObjects rejects walls beside objects whose catalog rules
// forbid them.
func (w *WallInteractions) checkAdjacentObjects(edge geometry.EdgeAddress) error {
	a, b := geometry.AdjacentTiles(edge)
	for _, tile := range []geometry.TileAddress{a, b} {
		obj, ok := w.tiles.ObjectAt(tile)
		if ok && obj.ForbidWallsBeside {
			return geometry.Errorf(geometry.CodeOccupied,
				"object %s at (%d,%d) forbids adjacent walls", obj.Type, tile.X, tile.Y)
		}
	}
	return nil
}
