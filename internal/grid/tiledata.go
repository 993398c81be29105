package grid

import (
	"iter"
	"sort"

	"github.com/buildmode/floorgrid/internal/geometry"
)

// WallState is the wall record of one edge.
type WallState struct {
	Present bool
	Type    string
}

// TileState is the mutable state of one tile. Tiles are created once at
// floor initialization and never destroyed; only their state changes.
type TileState struct {
	Occupant string // placed object id, empty when vacant
}

// TileData owns the authoritative tile, edge and object state for exactly
// one floor. It is a pure state container: placement legality lives in
// WallInteractions and ObjectInteractions. Mutations bump version counters
// that derived readers (rooms, paths) use to detect staleness.
type TileData struct {
	calc    *geometry.Calculator
	width   int
	height  int
	tiles   []TileState
	walls   map[geometry.EdgeAddress]WallState
	objects map[string]*PlacedObject

	topologyVersion  uint64
	occupancyVersion uint64
}

func NewTileData(calc *geometry.Calculator) *TileData {
	w, h := calc.Width(), calc.Height()
	return &TileData{
		calc:    calc,
		width:   w,
		height:  h,
		tiles:   make([]TileState, w*h),
		walls:   make(map[geometry.EdgeAddress]WallState),
		objects: make(map[string]*PlacedObject),
	}
}

func (d *TileData) Width() int  { return d.width }
func (d *TileData) Height() int { return d.height }

// TopologyVersion changes on every effective wall mutation.
func (d *TileData) TopologyVersion() uint64 { return d.topologyVersion }

// OccupancyVersion changes on every effective occupant mutation.
func (d *TileData) OccupancyVersion() uint64 { return d.occupancyVersion }

func (d *TileData) index(tile geometry.TileAddress) int {
	return tile.Y*d.width + tile.X
}

// Tile returns the state of one tile.
func (d *TileData) Tile(tile geometry.TileAddress) (TileState, error) {
	if !d.calc.InBounds(tile) {
		return TileState{}, geometry.Errorf(geometry.CodeIndexOutOfRange,
			"tile (%d,%d) outside %dx%d floor", tile.X, tile.Y, d.width, d.height)
	}
	return d.tiles[d.index(tile)], nil
}

// Wall returns the wall record of an edge; absent edges read as no wall.
func (d *TileData) Wall(edge geometry.EdgeAddress) WallState {
	return d.walls[edge]
}

// SetWall writes the wall record of an edge and returns the previous state.
// The update is symmetric: both adjacent tiles observe the same record,
// because the edge identity itself is canonical.
func (d *TileData) SetWall(edge geometry.EdgeAddress, present bool, wallType string) (WallState, error) {
	if !d.calc.ValidEdge(edge) {
		return WallState{}, geometry.Errorf(geometry.CodeIndexOutOfRange,
			"edge (%d,%d,%s) outside floor", edge.X, edge.Y, edge.Orientation)
	}
	previous := d.walls[edge]
	next := WallState{Present: present, Type: wallType}
	if !present {
		next.Type = ""
		delete(d.walls, edge)
	} else {
		d.walls[edge] = next
	}
	if previous != next {
		d.topologyVersion++
	}
	return previous, nil
}

// SetOccupant writes a tile's occupant and returns the previous one.
func (d *TileData) SetOccupant(tile geometry.TileAddress, occupant string) (string, error) {
	if !d.calc.InBounds(tile) {
		return "", geometry.Errorf(geometry.CodeIndexOutOfRange,
			"tile (%d,%d) outside %dx%d floor", tile.X, tile.Y, d.width, d.height)
	}
	idx := d.index(tile)
	previous := d.tiles[idx].Occupant
	d.tiles[idx].Occupant = occupant
	if previous != occupant {
		d.occupancyVersion++
	}
	return previous, nil
}

// PutObject registers a placed object record. Occupancy is written
// separately per tile; ObjectInteractions composes the two.
func (d *TileData) PutObject(obj *PlacedObject) {
	d.objects[obj.ID] = obj
}

// DeleteObject removes a placed object record.
func (d *TileData) DeleteObject(id string) {
	delete(d.objects, id)
}

// Object returns a registered object by id.
func (d *TileData) Object(id string) (*PlacedObject, bool) {
	obj, ok := d.objects[id]
	return obj, ok
}

// ObjectAt returns the object occupying a tile, if any.
func (d *TileData) ObjectAt(tile geometry.TileAddress) (*PlacedObject, bool) {
	state, err := d.Tile(tile)
	if err != nil || state.Occupant == "" {
		return nil, false
	}
	return d.Object(state.Occupant)
}

// Objects returns all placed objects ordered by id, for deterministic
// iteration by persistence and render collaborators.
func (d *TileData) Objects() []*PlacedObject {
	out := make([]*PlacedObject, 0, len(d.objects))
	for _, obj := range d.objects {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Tiles yields every tile coordinate in row-major order. The sequence is
// lazy and restartable; RoomsManager and bulk collaborators scan with it.
func (d *TileData) Tiles() iter.Seq[geometry.TileAddress] {
	return func(yield func(geometry.TileAddress) bool) {
		for y := range d.height {
			for x := range d.width {
				if !yield(geometry.TileAddress{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Walls yields every present wall in canonical order: horizontal edges
// row-major first, then vertical edges column-by-row.
func (d *TileData) Walls() iter.Seq2[geometry.EdgeAddress, WallState] {
	return func(yield func(geometry.EdgeAddress, WallState) bool) {
		for y := -1; y < d.height; y++ {
			for x := range d.width {
				edge := geometry.EdgeAddress{X: x, Y: y, Orientation: geometry.Horizontal}
				if state, ok := d.walls[edge]; ok {
					if !yield(edge, state) {
						return
					}
				}
			}
		}
		for y := range d.height {
			for x := -1; x < d.width; x++ {
				edge := geometry.EdgeAddress{X: x, Y: y, Orientation: geometry.Vertical}
				if state, ok := d.walls[edge]; ok {
					if !yield(edge, state) {
						return
					}
				}
			}
		}
	}
}

// Reset clears all wall, occupant and object state while keeping the floor
// extent. Used when reloading a floor from a persisted snapshot.
func (d *TileData) Reset() {
	clear(d.tiles)
	clear(d.walls)
	clear(d.objects)
	d.topologyVersion++
	d.occupancyVersion++
}
