package grid

import (
	"testing"

	"github.com/buildmode/floorgrid/internal/geometry"
)

func newTestObjects(t *testing.T, width, height int, catalog []ObjectType) (*TileData, *ObjectInteractions) {
	t.Helper()
	tiles, _, click := newTestGrid(t, width, height)
	return tiles, NewObjectInteractions(click, tiles, nil, catalog)
}

func TestHandlePlaceObject_SingleTile(t *testing.T) {
	tiles, objects := newTestObjects(t, 4, 4, []ObjectType{{ID: "crate"}})
	if !objects.SelectType("crate") {
		t.Fatal("SelectType failed")
	}

	obj, err := objects.HandlePlaceObject(150, 150, true)
	if err != nil {
		t.Fatalf("HandlePlaceObject failed: %v", err)
	}
	if obj == nil || obj.Type != "crate" {
		t.Fatalf("expected placed crate, got %+v", obj)
	}
	if (obj.Origin != geometry.TileAddress{X: 1, Y: 1}) {
		t.Errorf("expected origin (1,1), got %v", obj.Origin)
	}

	state, err := tiles.Tile(obj.Origin)
	if err != nil || state.Occupant != obj.ID {
		t.Errorf("tile occupant mismatch: %+v (%v)", state, err)
	}
}

func TestHandlePlaceObject_SecondPlacementFailsOccupied(t *testing.T) {
	tiles, objects := newTestObjects(t, 4, 4, []ObjectType{{ID: "crate"}})
	objects.SelectType("crate")

	first, err := objects.HandlePlaceObject(150, 150, true)
	if err != nil {
		t.Fatalf("first placement failed: %v", err)
	}

	_, err = objects.HandlePlaceObject(150, 150, true)
	if geometry.ErrorCode(err) != geometry.CodeOccupied {
		t.Fatalf("expected Occupied, got %v", err)
	}

	// The first placement stays intact.
	state, err := tiles.Tile(geometry.TileAddress{X: 1, Y: 1})
	if err != nil || state.Occupant != first.ID {
		t.Errorf("first object must remain, got %+v (%v)", state, err)
	}
}

func TestHandlePlaceObject_FootprintOverlapIsAllOrNothing(t *testing.T) {
	catalog := []ObjectType{
		{ID: "crate"},
		{ID: "workbench", Footprint: []geometry.TileAddress{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}
	tiles, objects := newTestObjects(t, 4, 4, catalog)

	objects.SelectType("crate")
	if _, err := objects.HandlePlaceObject(250, 150, true); err != nil { // tile (2,1)
		t.Fatalf("crate placement failed: %v", err)
	}
	occupancy := tiles.OccupancyVersion()

	// Workbench origin (1,1) would extend onto the crate at (2,1).
	objects.SelectType("workbench")
	_, err := objects.HandlePlaceObject(150, 150, true)
	if geometry.ErrorCode(err) != geometry.CodeFootprintOverlap {
		t.Fatalf("expected FootprintOverlap, got %v", err)
	}

	// All-or-nothing: the origin tile must not have been touched.
	state, err := tiles.Tile(geometry.TileAddress{X: 1, Y: 1})
	if err != nil || state.Occupant != "" {
		t.Errorf("partial footprint application: %+v (%v)", state, err)
	}
	if tiles.OccupancyVersion() != occupancy {
		t.Error("rejected placement must not mutate occupancy")
	}
}

func TestHandlePlaceObject_FootprintOutOfBounds(t *testing.T) {
	catalog := []ObjectType{
		{ID: "workbench", Footprint: []geometry.TileAddress{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}
	tiles, objects := newTestObjects(t, 4, 4, catalog)
	objects.SelectType("workbench")

	// Origin (3,0): the second footprint tile would be (4,0).
	_, err := objects.HandlePlaceObject(350, 50, true)
	if geometry.ErrorCode(err) != geometry.CodeOutOfBounds {
		t.Fatalf("expected OutOfBounds, got %v", err)
	}
	state, err := tiles.Tile(geometry.TileAddress{X: 3, Y: 0})
	if err != nil || state.Occupant != "" {
		t.Errorf("partial footprint application: %+v (%v)", state, err)
	}
}

func TestHandlePlaceObject_OutsideFloor(t *testing.T) {
	_, objects := newTestObjects(t, 4, 4, []ObjectType{{ID: "crate"}})
	objects.SelectType("crate")

	_, err := objects.HandlePlaceObject(-50, 50, true)
	if geometry.ErrorCode(err) != geometry.CodeOutOfBounds {
		t.Errorf("expected OutOfBounds, got %v", err)
	}
}

func TestHandleRemoveObject_ClearsWholeFootprint(t *testing.T) {
	catalog := []ObjectType{
		{ID: "workbench", Footprint: []geometry.TileAddress{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}
	tiles, objects := newTestObjects(t, 4, 4, catalog)
	objects.SelectType("workbench")

	placed, err := objects.HandlePlaceObject(150, 150, true)
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}

	// Erase by clicking the second footprint tile, not the origin.
	removed, err := objects.HandleRemoveObject(250, 150, true)
	if err != nil {
		t.Fatalf("removal failed: %v", err)
	}
	if removed == nil || removed.ID != placed.ID {
		t.Fatalf("expected removal of %s, got %+v", placed.ID, removed)
	}
	for _, tile := range placed.Tiles {
		state, err := tiles.Tile(tile)
		if err != nil || state.Occupant != "" {
			t.Errorf("tile %v still occupied after removal: %+v", tile, state)
		}
	}
	if _, ok := tiles.Object(placed.ID); ok {
		t.Error("object record must be deleted")
	}
}

func TestHandleRemoveObject_EmptyTileIsNoOp(t *testing.T) {
	_, objects := newTestObjects(t, 4, 4, []ObjectType{{ID: "crate"}})

	removed, err := objects.HandleRemoveObject(150, 150, true)
	if removed != nil || err != nil {
		t.Errorf("expected no-op on empty tile, got %+v %v", removed, err)
	}
}
