package grid

import (
	"testing"

	"github.com/buildmode/floorgrid/internal/geometry"
)

func TestHandlePlaceWall_PlacesOnResolvedEdge(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)

	// Midpoint of the vertical edge between (0,0) and (1,0).
	change, err := walls.HandlePlaceWall(100, 50, true)
	if err != nil {
		t.Fatalf("HandlePlaceWall failed: %v", err)
	}
	if change == nil {
		t.Fatal("expected a wall change")
	}
	want := geometry.EdgeAddress{X: 0, Y: 0, Orientation: geometry.Vertical}
	if change.Edge != want {
		t.Errorf("expected edge %v, got %v", want, change.Edge)
	}
	if !tiles.Wall(want).Present {
		t.Error("wall not present after placement")
	}
}

func TestHandlePlaceWall_IdempotentForSameType(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)

	if _, err := walls.HandlePlaceWall(100, 50, true); err != nil {
		t.Fatalf("first placement failed: %v", err)
	}
	version := tiles.TopologyVersion()

	change, err := walls.HandlePlaceWall(100, 50, true)
	if err != nil {
		t.Fatalf("second placement failed: %v", err)
	}
	if change != nil {
		t.Errorf("repeat placement of the same type must be a no-op, got %+v", change)
	}
	if tiles.TopologyVersion() != version {
		t.Error("no-op placement must not bump the topology version")
	}
}

func TestHandlePlaceWall_ReplacesDifferentType(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)

	if _, err := walls.HandlePlaceWall(100, 50, true); err != nil {
		t.Fatal(err)
	}
	walls.SelectType("stone")
	change, err := walls.HandlePlaceWall(100, 50, true)
	if err != nil {
		t.Fatalf("retype failed: %v", err)
	}
	if change == nil || change.Current.Type != "stone" {
		t.Fatalf("expected stone wall, got %+v", change)
	}
	if change.Previous.Type != DefaultWallType {
		t.Errorf("expected previous type %q, got %q", DefaultWallType, change.Previous.Type)
	}
}

func TestHandlePlaceWall_ReleaseAndMissAreIgnored(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)

	if change, err := walls.HandlePlaceWall(100, 50, false); change != nil || err != nil {
		t.Errorf("release must be ignored, got %+v %v", change, err)
	}

	// Tile center: no edge within tolerance. Non-fatal, reported as a
	// coded error, nothing mutated.
	_, err := walls.HandlePlaceWall(150, 150, true)
	if geometry.ErrorCode(err) != geometry.CodeNoEdgeNearby {
		t.Errorf("expected NoEdgeNearby, got %v", err)
	}
	if tiles.TopologyVersion() != 0 {
		t.Error("failed placement must not mutate the grid")
	}
}

func TestHandlePlaceWall_RejectedBesideProtectedObject(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)
	objects := NewObjectInteractions(click, tiles, nil, []ObjectType{
		{ID: "workbench", ForbidWallsBeside: true},
	})
	if !objects.SelectType("workbench") {
		t.Fatal("SelectType failed")
	}

	// Place the workbench on tile (1,0).
	if _, err := objects.HandlePlaceObject(150, 50, true); err != nil {
		t.Fatalf("object placement failed: %v", err)
	}

	// The edge between (0,0) and (1,0) borders the workbench.
	_, err := walls.HandlePlaceWall(100, 50, true)
	if geometry.ErrorCode(err) != geometry.CodeOccupied {
		t.Errorf("expected Occupied rejection, got %v", err)
	}
	if tiles.Wall(geometry.EdgeAddress{X: 0, Y: 0, Orientation: geometry.Vertical}).Present {
		t.Error("rejected wall must not be placed")
	}
}

func TestHandleRemoveWall_ClearsWall(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)

	if _, err := walls.HandlePlaceWall(100, 50, true); err != nil {
		t.Fatal(err)
	}
	change, err := walls.HandleRemoveWall(100, 50, true)
	if err != nil {
		t.Fatalf("HandleRemoveWall failed: %v", err)
	}
	if change == nil || change.Current.Present {
		t.Fatalf("expected wall removal, got %+v", change)
	}
	if tiles.Wall(change.Edge).Present {
		t.Error("wall still present after removal")
	}

	// Removing again is a no-op.
	change, err = walls.HandleRemoveWall(100, 50, true)
	if change != nil || err != nil {
		t.Errorf("repeat removal must be a no-op, got %+v %v", change, err)
	}
}

func TestHandlePlaceWall_DragAppliesEachEdgeIndependently(t *testing.T) {
	tiles, _, click := newTestGrid(t, 4, 4)
	walls := NewWallInteractions(click, tiles, nil)

	// A drag along the vertical grid line x=100 crosses three edges; each
	// resolved point is processed on its own.
	points := [][2]float64{{100, 50}, {100, 150}, {100, 250}}
	for _, p := range points {
		if _, err := walls.HandlePlaceWall(p[0], p[1], true); err != nil {
			t.Fatalf("drag point %v failed: %v", p, err)
		}
	}
	walls.HandlePlaceWall(100, 250, false) // release

	for y := range 3 {
		edge := geometry.EdgeAddress{X: 0, Y: y, Orientation: geometry.Vertical}
		if !tiles.Wall(edge).Present {
			t.Errorf("expected wall on %v after drag", edge)
		}
	}
}
