package protocol

type WallLite struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
	WallType    string `json:"wallType"`
}

type ObjectLite struct {
	ID         string        `json:"id"`
	ObjectType string        `json:"objectType"`
	Origin     TileAddress   `json:"origin"`
	Tiles      []TileAddress `json:"tiles"`
}

// Snapshot is the full read-only view of one floor, rendered into the index
// page and sent to late-joining clients.
type Snapshot struct {
	FloorIndex      int          `json:"floorIndex"`
	FloorAbove      int          `json:"floorAbove"`
	FloorBelow      int          `json:"floorBelow"`
	Elevation       float64      `json:"elevation"`
	MapWidth        int          `json:"mapWidth"`
	MapHeight       int          `json:"mapHeight"`
	CellSize        float64      `json:"cellSize"`
	Walls           []WallLite   `json:"walls"`
	Objects         []ObjectLite `json:"objects"`
	RoomsCount      int          `json:"roomsCount"`
	TileRoomIDs     []int        `json:"tileRoomIds"`
	ProtocolVersion string       `json:"protocolVersion"`
}
