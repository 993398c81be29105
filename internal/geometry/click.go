package geometry

// ClickResult is the candidate set a resolved world point maps onto. Each
// category is optional; tools pick whichever category they need. Tile is
// always set when the point lies inside the floor bounds.
type ClickResult struct {
	Tile   *TileAddress
	Edge   *EdgeAddress
	Corner *CornerAddress
}

// Click resolves world-space points into grid references using a shared
// read-only calculator.
type Click struct {
	calc      *Calculator
	tolerance float64
}

// NewClick builds a resolver with a snap tolerance in world units, applied
// to both edge and corner candidates.
func NewClick(calc *Calculator, tolerance float64) *Click {
	return &Click{calc: calc, tolerance: tolerance}
}

// Resolve maps a world point to its nearest grid references. It fails with
// NoMatch only when the point is entirely outside the floor's bounds;
// otherwise at least the enclosing tile is returned.
func (c *Click) Resolve(wx, wy float64) (ClickResult, error) {
	tile, err := c.calc.WorldToTile(wx, wy)
	if err != nil {
		return ClickResult{}, Errorf(CodeNoMatch, "point (%.2f,%.2f) outside floor", wx, wy)
	}

	result := ClickResult{Tile: &tile}
	if edge, err := c.calc.WorldToEdge(wx, wy, c.tolerance); err == nil {
		result.Edge = &edge
	}
	if corner, err := c.calc.WorldToCorner(wx, wy, c.tolerance); err == nil {
		result.Corner = &corner
	}
	return result, nil
}
