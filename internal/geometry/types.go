package geometry

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// TileAddress identifies one tile of a floor grid.
type TileAddress struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EdgeAddress identifies the boundary between two adjacent tiles.
// The horizontal edge at (x,y) separates tile (x,y) from tile (x,y+1);
// the vertical edge at (x,y) separates tile (x,y) from tile (x+1,y).
// Boundary edges on the north and west sides of the floor use y = -1
// and x = -1 respectively.
type EdgeAddress struct {
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Orientation Orientation `json:"orientation"`
}

// CornerAddress identifies a grid-line intersection. Corner (x,y) is the
// north-west corner of tile (x,y), so valid corners run 0..Width and
// 0..Height inclusive.
type CornerAddress struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// EdgeForTile returns the canonical edge identity for one side of a tile.
// North and west sides map onto the neighbouring tile's south/east edge,
// so both tiles sharing a physical boundary name the same EdgeAddress.
func EdgeForTile(tile TileAddress, side Direction) EdgeAddress {
	switch side {
	case North:
		return EdgeAddress{X: tile.X, Y: tile.Y - 1, Orientation: Horizontal}
	case West:
		return EdgeAddress{X: tile.X - 1, Y: tile.Y, Orientation: Vertical}
	case East:
		return EdgeAddress{X: tile.X, Y: tile.Y, Orientation: Vertical}
	default: // South
		return EdgeAddress{X: tile.X, Y: tile.Y, Orientation: Horizontal}
	}
}

// AdjacentTiles returns the two tile addresses on either side of an edge.
// For boundary edges one of the results lies outside the floor extent;
// callers filter with Calculator.InBounds.
func AdjacentTiles(edge EdgeAddress) (TileAddress, TileAddress) {
	if edge.Orientation == Vertical {
		return TileAddress{X: edge.X, Y: edge.Y}, TileAddress{X: edge.X + 1, Y: edge.Y}
	}
	return TileAddress{X: edge.X, Y: edge.Y}, TileAddress{X: edge.X, Y: edge.Y + 1}
}

// Step returns the neighbouring tile one step in the given direction.
func Step(tile TileAddress, side Direction) TileAddress {
	switch side {
	case North:
		return TileAddress{X: tile.X, Y: tile.Y - 1}
	case South:
		return TileAddress{X: tile.X, Y: tile.Y + 1}
	case West:
		return TileAddress{X: tile.X - 1, Y: tile.Y}
	default: // East
		return TileAddress{X: tile.X + 1, Y: tile.Y}
	}
}
