package main

import (
	"errors"
	"fmt"

	"github.com/buildmode/floorgrid/internal/geometry"
	"github.com/buildmode/floorgrid/internal/grid"
	"github.com/buildmode/floorgrid/internal/protocol"
)

// ErrNotInitialized is returned by every FloorGrid operation invoked before
// Initialize has established the floor's invariants.
var ErrNotInitialized = errors.New("floor grid not initialized")

// NoFloor marks an absent above/below link.
const NoFloor = -1

// FloorGrid coordinates one floor's grid subsystems. It is a two-phase
// shell: construct first, then Initialize with a lot key and elevation.
// Every tool input enters through HandleClick as a world-space point.
type FloorGrid struct {
	Index      int
	Elevation  float64
	FloorAbove int // registry index, NoFloor when absent
	FloorBelow int

	log         Logger
	broadcaster Broadcaster
	debug       bool

	calc       *geometry.Calculator
	tiles      *grid.TileData
	click      *geometry.Click
	walls      *grid.WallInteractions
	objects    *grid.ObjectInteractions
	pathfinder *grid.PathFinder
	rooms      *grid.RoomsManager

	initialized bool
}

func NewFloorGrid(index int, log Logger, broadcaster Broadcaster, debug bool) *FloorGrid {
	if broadcaster == nil {
		broadcaster = nopBroadcaster{}
	}
	if log == nil {
		log = nopServerLogger{}
	}
	return &FloorGrid{
		Index:       index,
		FloorAbove:  NoFloor,
		FloorBelow:  NoFloor,
		log:         log,
		broadcaster: broadcaster,
		debug:       debug,
	}
}

// Initialize establishes the floor's calculator, tile data and subsystems.
// A missing lot definition is fatal to the floor's setup: the floor stays
// uninitialized and every later operation fails fast.
func (f *FloorGrid) Initialize(lots *LotRegistry, lotKey string, elevation float64, catalog []grid.ObjectType) error {
	calc := lots.Calculator(lotKey)
	if calc == nil {
		return fmt.Errorf("no grid calculator for lot key %q", lotKey)
	}

	// Elevation is applied here, outside the calculator, so one calculator
	// definition serves every floor of the lot.
	f.Elevation = elevation
	f.calc = calc
	f.tiles = grid.NewTileData(calc)
	f.click = geometry.NewClick(calc, calc.CellSize()*0.3)
	f.walls = grid.NewWallInteractions(f.click, f.tiles, f.log)
	f.objects = grid.NewObjectInteractions(f.click, f.tiles, f.log, catalog)
	f.pathfinder = grid.NewPathFinder(f.tiles)
	f.rooms = grid.NewRoomsManager(f.tiles)
	f.initialized = true

	if f.debug {
		f.log.Printf("floor %d initialized: lot=%s extent=%dx%d elevation=%.1f",
			f.Index, lotKey, calc.Width(), calc.Height(), elevation)
	}
	return nil
}

func (f *FloorGrid) Tiles() (*grid.TileData, error) {
	if !f.initialized {
		return nil, ErrNotInitialized
	}
	return f.tiles, nil
}

// HandleClick routes one tool interaction at a world-space point into the
// matching subsystem and broadcasts the resulting patches. Validation
// failures are recovered locally and reported as EditRejected patches.
func (f *FloorGrid) HandleClick(tool EditTool, wx, wy float64, pressed bool) error {
	if !f.initialized {
		return ErrNotInitialized
	}

	switch tool {
	case ToolPlaceWall:
		change, err := f.walls.HandlePlaceWall(wx, wy, pressed)
		f.afterWallEdit(tool, change, err)
	case ToolRemoveWall:
		change, err := f.walls.HandleRemoveWall(wx, wy, pressed)
		f.afterWallEdit(tool, change, err)
	case ToolPlaceObject:
		obj, err := f.objects.HandlePlaceObject(wx, wy, pressed)
		if err != nil {
			f.reject(tool, err)
		} else if obj != nil {
			f.broadcaster.Publish("ObjectPlaced", protocol.ObjectPlaced{
				Floor:      f.Index,
				ID:         obj.ID,
				ObjectType: obj.Type,
				Tiles:      toProtocolTiles(obj.Tiles),
			})
		}
	case ToolRemoveObject:
		obj, err := f.objects.HandleRemoveObject(wx, wy, pressed)
		if err != nil {
			f.reject(tool, err)
		} else if obj != nil {
			f.broadcaster.Publish("ObjectRemoved", protocol.ObjectRemoved{
				Floor: f.Index,
				ID:    obj.ID,
				Tiles: toProtocolTiles(obj.Tiles),
			})
		}
	case ToolNone:
		// no-op
	default:
		if f.debug {
			f.log.Printf("floor %d: unhandled tool %q", f.Index, tool)
		}
	}
	return nil
}

func (f *FloorGrid) afterWallEdit(tool EditTool, change *grid.WallChange, err error) {
	if err != nil {
		f.reject(tool, err)
		return
	}
	if change == nil {
		return
	}
	f.broadcaster.Publish("WallChanged", protocol.WallChanged{
		Floor:       f.Index,
		X:           change.Edge.X,
		Y:           change.Edge.Y,
		Orientation: string(change.Edge.Orientation),
		Present:     change.Current.Present,
		WallType:    change.Current.Type,
	})
	rooms := f.rooms.Rooms()
	f.broadcaster.Publish("RoomsChanged", protocol.RoomsChanged{
		Floor:       f.Index,
		RoomsCount:  rooms.RoomsCount,
		TileRoomIDs: rooms.TileRoomIDs,
	})
}

func (f *FloorGrid) reject(tool EditTool, err error) {
	if f.debug {
		f.log.Printf("floor %d: %s rejected: %v", f.Index, tool, err)
	}
	f.broadcaster.Publish("EditRejected", protocol.EditRejected{
		Floor: f.Index,
		Tool:  string(tool),
		Code:  geometry.ErrorCode(err),
	})
}

// SelectWallType switches the wall placement tool's active type.
func (f *FloorGrid) SelectWallType(wallType string) error {
	if !f.initialized {
		return ErrNotInitialized
	}
	f.walls.SelectType(wallType)
	return nil
}

// SelectObjectType switches the object placement tool's active type.
func (f *FloorGrid) SelectObjectType(objectType string) error {
	if !f.initialized {
		return ErrNotInitialized
	}
	if !f.objects.SelectType(objectType) {
		return fmt.Errorf("unknown object type %q", objectType)
	}
	return nil
}

// FindPath answers a reachability query between two tiles on this floor.
func (f *FloorGrid) FindPath(start, goal geometry.TileAddress) ([]geometry.TileAddress, error) {
	if !f.initialized {
		return nil, ErrNotInitialized
	}
	return f.pathfinder.FindPath(start, goal)
}

// RoomOf returns the room id of one tile under the current topology.
func (f *FloorGrid) RoomOf(tile geometry.TileAddress) (int, error) {
	if !f.initialized {
		return 0, ErrNotInitialized
	}
	return f.rooms.RoomOf(tile)
}

// Snapshot builds the full read-only view of this floor for the index page
// and late-joining clients.
func (f *FloorGrid) Snapshot() (protocol.Snapshot, error) {
	if !f.initialized {
		return protocol.Snapshot{}, ErrNotInitialized
	}

	walls := make([]protocol.WallLite, 0)
	for edge, wall := range f.tiles.Walls() {
		walls = append(walls, protocol.WallLite{
			X:           edge.X,
			Y:           edge.Y,
			Orientation: string(edge.Orientation),
			WallType:    wall.Type,
		})
	}

	objects := make([]protocol.ObjectLite, 0)
	for _, obj := range f.tiles.Objects() {
		objects = append(objects, protocol.ObjectLite{
			ID:         obj.ID,
			ObjectType: obj.Type,
			Origin:     protocol.TileAddress{X: obj.Origin.X, Y: obj.Origin.Y},
			Tiles:      toProtocolTiles(obj.Tiles),
		})
	}

	rooms := f.rooms.Rooms()
	return protocol.Snapshot{
		FloorIndex:      f.Index,
		FloorAbove:      f.FloorAbove,
		FloorBelow:      f.FloorBelow,
		Elevation:       f.Elevation,
		MapWidth:        f.calc.Width(),
		MapHeight:       f.calc.Height(),
		CellSize:        f.calc.CellSize(),
		Walls:           walls,
		Objects:         objects,
		RoomsCount:      rooms.RoomsCount,
		TileRoomIDs:     rooms.TileRoomIDs,
		ProtocolVersion: "v1",
	}, nil
}

func toProtocolTiles(tiles []geometry.TileAddress) []protocol.TileAddress {
	out := make([]protocol.TileAddress, len(tiles))
	for i, t := range tiles {
		out[i] = protocol.TileAddress{X: t.X, Y: t.Y}
	}
	return out
}

// FloorRegistry holds the stacked floors of one lot. Above/below links are
// registry indexes, never pointers, so floors stay independently owned.
type FloorRegistry struct {
	floors map[int]*FloorGrid
}

func NewFloorRegistry() *FloorRegistry {
	return &FloorRegistry{floors: make(map[int]*FloorGrid)}
}

func (r *FloorRegistry) Add(floor *FloorGrid) {
	r.floors[floor.Index] = floor
}

func (r *FloorRegistry) Get(index int) (*FloorGrid, bool) {
	floor, ok := r.floors[index]
	return floor, ok
}

// Link records the vertical neighbour relation between two floor indexes.
func (r *FloorRegistry) Link(lower, upper int) {
	if floor, ok := r.floors[lower]; ok {
		floor.FloorAbove = upper
	}
	if floor, ok := r.floors[upper]; ok {
		floor.FloorBelow = lower
	}
}
