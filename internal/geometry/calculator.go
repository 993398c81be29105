package geometry

import (
	"fmt"
	"math"
)

// Calculator converts between world-space points and grid-space tile, edge
// and corner addresses for one floor extent. Cell size, world offset and yaw
// rotation are fixed at construction. Floor elevation is intentionally not
// modeled: one calculator serves any number of floors stacked at different
// heights, and only yaw rotation of the floor plane is considered.
type Calculator struct {
	width    int
	height   int
	cellSize float64
	originX  float64
	originY  float64
	yawSin   float64
	yawCos   float64
}

func NewCalculator(width, height int, cellSize, originX, originY, yawDegrees float64) (*Calculator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("calculator extent must be positive, got %dx%d", width, height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("calculator cell size must be positive, got %f", cellSize)
	}
	yaw := yawDegrees * math.Pi / 180
	return &Calculator{
		width:    width,
		height:   height,
		cellSize: cellSize,
		originX:  originX,
		originY:  originY,
		yawSin:   math.Sin(yaw),
		yawCos:   math.Cos(yaw),
	}, nil
}

func (c *Calculator) Width() int        { return c.width }
func (c *Calculator) Height() int       { return c.height }
func (c *Calculator) CellSize() float64 { return c.cellSize }

// worldToLocal translates into the floor's local frame: origin at the
// north-west floor corner, axes aligned with the grid.
func (c *Calculator) worldToLocal(wx, wy float64) (float64, float64) {
	dx := wx - c.originX
	dy := wy - c.originY
	return dx*c.yawCos + dy*c.yawSin, -dx*c.yawSin + dy*c.yawCos
}

func (c *Calculator) localToWorld(lx, ly float64) (float64, float64) {
	return c.originX + lx*c.yawCos - ly*c.yawSin, c.originY + lx*c.yawSin + ly*c.yawCos
}

func (c *Calculator) InBounds(tile TileAddress) bool {
	return tile.X >= 0 && tile.X < c.width && tile.Y >= 0 && tile.Y < c.height
}

// ValidEdge reports whether an edge address names a physical edge of this
// extent, including the floor-boundary edges.
func (c *Calculator) ValidEdge(edge EdgeAddress) bool {
	if edge.Orientation == Vertical {
		return edge.X >= -1 && edge.X < c.width && edge.Y >= 0 && edge.Y < c.height
	}
	return edge.X >= 0 && edge.X < c.width && edge.Y >= -1 && edge.Y < c.height
}

func (c *Calculator) ValidCorner(corner CornerAddress) bool {
	return corner.X >= 0 && corner.X <= c.width && corner.Y >= 0 && corner.Y <= c.height
}

// WorldToTile resolves a world point to the tile containing it.
func (c *Calculator) WorldToTile(wx, wy float64) (TileAddress, error) {
	lx, ly := c.worldToLocal(wx, wy)
	tile := TileAddress{X: int(math.Floor(lx / c.cellSize)), Y: int(math.Floor(ly / c.cellSize))}
	if !c.InBounds(tile) {
		return TileAddress{}, Errorf(CodeOutOfBounds,
			"point (%.2f,%.2f) outside %dx%d floor", wx, wy, c.width, c.height)
	}
	return tile, nil
}

// TileToWorld returns the world-space center of a tile. It is the exact
// inverse of WorldToTile for in-bounds tiles.
func (c *Calculator) TileToWorld(tile TileAddress) (float64, float64) {
	lx := (float64(tile.X) + 0.5) * c.cellSize
	ly := (float64(tile.Y) + 0.5) * c.cellSize
	return c.localToWorld(lx, ly)
}

// EdgeMidpoint returns the world-space midpoint of an edge segment.
func (c *Calculator) EdgeMidpoint(edge EdgeAddress) (float64, float64) {
	if edge.Orientation == Vertical {
		return c.localToWorld((float64(edge.X)+1)*c.cellSize, (float64(edge.Y)+0.5)*c.cellSize)
	}
	return c.localToWorld((float64(edge.X)+0.5)*c.cellSize, (float64(edge.Y)+1)*c.cellSize)
}

// CornerToWorld returns the world-space position of a grid intersection.
func (c *Calculator) CornerToWorld(corner CornerAddress) (float64, float64) {
	return c.localToWorld(float64(corner.X)*c.cellSize, float64(corner.Y)*c.cellSize)
}

// WorldToEdge resolves the nearest edge whose midpoint lies within tolerance
// of the world point.
func (c *Calculator) WorldToEdge(wx, wy, tolerance float64) (EdgeAddress, error) {
	lx, ly := c.worldToLocal(wx, wy)

	col := clamp(int(math.Floor(lx/c.cellSize)), 0, c.width-1)
	row := clamp(int(math.Floor(ly/c.cellSize)), 0, c.height-1)

	// Nearest vertical grid line sits at x = (vx+1)*cell for edge index vx.
	vertical := EdgeAddress{X: int(math.Round(lx/c.cellSize)) - 1, Y: row, Orientation: Vertical}
	horizontal := EdgeAddress{X: col, Y: int(math.Round(ly/c.cellSize)) - 1, Orientation: Horizontal}

	best := EdgeAddress{}
	bestDist := math.Inf(1)
	for _, cand := range []EdgeAddress{vertical, horizontal} {
		if !c.ValidEdge(cand) {
			continue
		}
		mx, my := c.EdgeMidpoint(cand)
		if d := math.Hypot(wx-mx, wy-my); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	if bestDist > tolerance {
		return EdgeAddress{}, Errorf(CodeNoEdgeNearby,
			"no edge midpoint within %.2f of (%.2f,%.2f)", tolerance, wx, wy)
	}
	return best, nil
}

// WorldToCorner resolves the nearest grid intersection within tolerance.
func (c *Calculator) WorldToCorner(wx, wy, tolerance float64) (CornerAddress, error) {
	lx, ly := c.worldToLocal(wx, wy)
	corner := CornerAddress{X: int(math.Round(lx / c.cellSize)), Y: int(math.Round(ly / c.cellSize))}
	if !c.ValidCorner(corner) {
		return CornerAddress{}, Errorf(CodeNoCornerNearby,
			"nearest corner to (%.2f,%.2f) outside floor", wx, wy)
	}
	cx, cy := c.CornerToWorld(corner)
	if math.Hypot(wx-cx, wy-cy) > tolerance {
		return CornerAddress{}, Errorf(CodeNoCornerNearby,
			"no corner within %.2f of (%.2f,%.2f)", tolerance, wx, wy)
	}
	return corner, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
