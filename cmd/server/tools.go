package main

// EditTool is the closed enumeration of build-mode tools. Unrecognized
// values reaching HandleClick are a logged no-op.
type EditTool string

const (
	ToolNone         EditTool = "None"
	ToolPlaceWall    EditTool = "PlaceWall"
	ToolRemoveWall   EditTool = "RemoveWall"
	ToolPlaceObject  EditTool = "PlaceObject"
	ToolRemoveObject EditTool = "RemoveObject"
)

// ParseTool maps a wire string onto a known tool; anything else comes back
// as ToolNone with ok=false so callers can log it.
func ParseTool(value string) (EditTool, bool) {
	switch EditTool(value) {
	case ToolNone, ToolPlaceWall, ToolRemoveWall, ToolPlaceObject, ToolRemoveObject:
		return EditTool(value), true
	default:
		return ToolNone, false
	}
}
