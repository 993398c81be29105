package grid

import (
	"github.com/buildmode/floorgrid/internal/geometry"
)

// neighborSides is the expansion order of the search: lowest (y,x)
// coordinate first, so repeated queries on unchanged topology return an
// identical path.
var neighborSides = [4]geometry.Direction{geometry.North, geometry.West, geometry.East, geometry.South}

// PathFinder computes tile-to-tile paths over the connectivity graph
// implied by the current walls and occupants. It reads TileData live on
// every query, so a computed path always reflects the latest mutation.
type PathFinder struct {
	tiles *TileData
}

func NewPathFinder(tiles *TileData) *PathFinder {
	return &PathFinder{tiles: tiles}
}

func (p *PathFinder) traversable(tile geometry.TileAddress) bool {
	obj, ok := p.tiles.ObjectAt(tile)
	return !ok || obj.Passable
}

// FindPath returns the shortest wall-free 4-adjacency path from start to
// goal, both inclusive. Tiles occupied by non-passable objects are treated
// as removed from the graph. Unreachable is a normal result; endpoints
// outside the floor fail with IndexOutOfRange instead.
func (p *PathFinder) FindPath(start, goal geometry.TileAddress) ([]geometry.TileAddress, error) {
	for _, endpoint := range []geometry.TileAddress{start, goal} {
		if _, err := p.tiles.Tile(endpoint); err != nil {
			return nil, err
		}
	}
	if start == goal {
		return []geometry.TileAddress{start}, nil
	}
	if !p.traversable(goal) {
		return nil, geometry.Errorf(geometry.CodeUnreachable,
			"goal (%d,%d) is occupied", goal.X, goal.Y)
	}

	parent := map[geometry.TileAddress]geometry.TileAddress{start: start}
	queue := []geometry.TileAddress{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, side := range neighborSides {
			next := geometry.Step(current, side)
			if _, visited := parent[next]; visited {
				continue
			}
			if _, err := p.tiles.Tile(next); err != nil {
				continue
			}
			if p.tiles.Wall(geometry.EdgeForTile(current, side)).Present {
				continue
			}
			if !p.traversable(next) {
				continue
			}
			parent[next] = current
			if next == goal {
				return reconstruct(parent, start, goal), nil
			}
			queue = append(queue, next)
		}
	}

	return nil, geometry.Errorf(geometry.CodeUnreachable,
		"no wall-free path from (%d,%d) to (%d,%d)", start.X, start.Y, goal.X, goal.Y)
}

func reconstruct(parent map[geometry.TileAddress]geometry.TileAddress, start, goal geometry.TileAddress) []geometry.TileAddress {
	var reversed []geometry.TileAddress
	for tile := goal; tile != start; tile = parent[tile] {
		reversed = append(reversed, tile)
	}
	path := make([]geometry.TileAddress, 0, len(reversed)+1)
	path = append(path, start)
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
