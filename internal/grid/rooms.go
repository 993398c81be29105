package grid

import (
	"github.com/buildmode/floorgrid/internal/geometry"
)

// RoomMap labels every tile with the room it belongs to: a maximal set of
// tiles mutually reachable without crossing a walled edge. Room ids are
// stable only within one labeling pass; a tile's id may change arbitrarily
// across passes. This is a documented limitation, not a bug.
type RoomMap struct {
	TileRoomIDs []int
	RoomsCount  int
}

// RoomsManager partitions the tile set into enclosed rooms by flood fill
// over wall-free adjacency. The labeling is cached and recomputed lazily on
// the first read after a wall mutation, so staleness is never observable.
type RoomsManager struct {
	tiles   *TileData
	cached  RoomMap
	version uint64
	valid   bool
}

func NewRoomsManager(tiles *TileData) *RoomsManager {
	return &RoomsManager{tiles: tiles}
}

// Rooms returns the labeling for the current wall topology.
func (r *RoomsManager) Rooms() RoomMap {
	if !r.valid || r.version != r.tiles.TopologyVersion() {
		r.cached = r.recompute()
		r.version = r.tiles.TopologyVersion()
		r.valid = true
	}
	return r.cached
}

// RoomOf returns the room id of one tile under the current topology.
func (r *RoomsManager) RoomOf(tile geometry.TileAddress) (int, error) {
	if _, err := r.tiles.Tile(tile); err != nil {
		return 0, err
	}
	return r.Rooms().TileRoomIDs[tile.Y*r.tiles.Width()+tile.X], nil
}

func (r *RoomsManager) recompute() RoomMap {
	w := r.tiles.Width()
	h := r.tiles.Height()
	ids := make([]int, w*h)
	for i := range ids {
		ids[i] = -1
	}

	roomID := 0
	queue := make([]geometry.TileAddress, 0, w*h)

	for seed := range r.tiles.Tiles() {
		seedIdx := seed.Y*w + seed.X
		if ids[seedIdx] != -1 {
			continue
		}
		ids[seedIdx] = roomID
		queue = append(queue[:0], seed)

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, side := range neighborSides {
				next := geometry.Step(current, side)
				if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
					continue
				}
				nextIdx := next.Y*w + next.X
				if ids[nextIdx] != -1 {
					continue
				}
				if r.tiles.Wall(geometry.EdgeForTile(current, side)).Present {
					continue
				}
				ids[nextIdx] = roomID
				queue = append(queue, next)
			}
		}
		roomID++
	}

	return RoomMap{TileRoomIDs: ids, RoomsCount: roomID}
}
