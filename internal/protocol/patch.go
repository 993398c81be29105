package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type TileAddress struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type WallChanged struct {
	Floor       int    `json:"floor"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
	Present     bool   `json:"present"`
	WallType    string `json:"wallType,omitempty"`
}

type ObjectPlaced struct {
	Floor      int           `json:"floor"`
	ID         string        `json:"id"`
	ObjectType string        `json:"objectType"`
	Tiles      []TileAddress `json:"tiles"`
}

type ObjectRemoved struct {
	Floor int           `json:"floor"`
	ID    string        `json:"id"`
	Tiles []TileAddress `json:"tiles"`
}

type RoomsChanged struct {
	Floor       int   `json:"floor"`
	RoomsCount  int   `json:"roomsCount"`
	TileRoomIDs []int `json:"tileRoomIds"`
}

type PathComputed struct {
	Floor int           `json:"floor"`
	Start TileAddress   `json:"start"`
	Goal  TileAddress   `json:"goal"`
	Found bool          `json:"found"`
	Path  []TileAddress `json:"path,omitempty"`
}

type EditRejected struct {
	Floor int    `json:"floor"`
	Tool  string `json:"tool"`
	Code  string `json:"code"`
}
