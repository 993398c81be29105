package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestEdit carries one tool interaction: a world-space point plus the
// pressed state of the active pointer. A drag is a stream of these with
// pressed=true, finished by one with pressed=false.
type RequestEdit struct {
	Floor   int     `json:"floor"`
	Tool    string  `json:"tool"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Pressed bool    `json:"pressed"`
}

type RequestFindPath struct {
	Floor int         `json:"floor"`
	Start TileAddress `json:"start"`
	Goal  TileAddress `json:"goal"`
}

type RequestSelectWallType struct {
	Floor    int    `json:"floor"`
	WallType string `json:"wallType"`
}

type RequestSelectObjectType struct {
	Floor      int    `json:"floor"`
	ObjectType string `json:"objectType"`
}

type RequestSaveFloor struct {
	Floor int `json:"floor"`
}
