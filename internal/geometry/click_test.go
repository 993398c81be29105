package geometry

import "testing"

func TestResolve_AlwaysReturnsEnclosingTile(t *testing.T) {
	calc := mustCalculator(t, 4, 4, 100, 0, 0, 0)
	click := NewClick(calc, 25)

	// Tile center: no edge or corner within tolerance, tile still resolves.
	result, err := click.Resolve(150, 150)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result.Tile == nil {
		t.Fatal("expected a tile candidate")
	}
	if (*result.Tile != TileAddress{X: 1, Y: 1}) {
		t.Errorf("expected tile (1,1), got %v", *result.Tile)
	}
	if result.Edge != nil {
		t.Errorf("expected no edge candidate, got %v", *result.Edge)
	}
	if result.Corner != nil {
		t.Errorf("expected no corner candidate, got %v", *result.Corner)
	}
}

func TestResolve_NearEdgeMidpoint(t *testing.T) {
	calc := mustCalculator(t, 4, 4, 100, 0, 0, 0)
	click := NewClick(calc, 30)

	result, err := click.Resolve(150, 105)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result.Tile == nil || (*result.Tile != TileAddress{X: 1, Y: 1}) {
		t.Fatalf("expected tile (1,1), got %+v", result.Tile)
	}
	want := EdgeAddress{X: 1, Y: 0, Orientation: Horizontal}
	if result.Edge == nil || *result.Edge != want {
		t.Fatalf("expected edge %v, got %+v", want, result.Edge)
	}
}

func TestResolve_NearCorner(t *testing.T) {
	calc := mustCalculator(t, 4, 4, 100, 0, 0, 0)
	click := NewClick(calc, 30)

	result, err := click.Resolve(105, 110)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result.Corner == nil || (*result.Corner != CornerAddress{X: 1, Y: 1}) {
		t.Fatalf("expected corner (1,1), got %+v", result.Corner)
	}
	// Near a corner every edge midpoint is about half a cell away, so no
	// edge candidate is expected.
	if result.Edge != nil {
		t.Errorf("expected no edge candidate, got %v", *result.Edge)
	}
}

func TestResolve_NoMatchOutsideFloor(t *testing.T) {
	calc := mustCalculator(t, 4, 4, 100, 0, 0, 0)
	click := NewClick(calc, 25)

	_, err := click.Resolve(-50, 200)
	if err == nil {
		t.Fatal("expected NoMatch outside the floor")
	}
	if ErrorCode(err) != CodeNoMatch {
		t.Errorf("expected code %s, got %s", CodeNoMatch, ErrorCode(err))
	}
}
