package main

import (
	"encoding/json"

	"github.com/buildmode/floorgrid/internal/geometry"
	"github.com/buildmode/floorgrid/internal/grid"
	"github.com/buildmode/floorgrid/internal/protocol"
)

// server ties the floor registry, the hub and the persistence collaborator
// together for intent handling.
type server struct {
	registry    *FloorRegistry
	broadcaster Broadcaster
	log         Logger
	store       FloorStore
}

// FloorStore is the persistence collaborator surface the handlers need.
type FloorStore interface {
	SaveFloor(floor int, tiles *grid.TileData) error
}

func (s *server) handleIntent(data []byte) {
	var envelope protocol.IntentEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.log.Printf("bad intent envelope: %v", err)
		return
	}

	switch envelope.Type {
	case "Edit":
		var req protocol.RequestEdit
		if err := json.Unmarshal(envelope.Payload, &req); err != nil {
			s.log.Printf("bad Edit payload: %v", err)
			return
		}
		s.handleEdit(req)
	case "FindPath":
		var req protocol.RequestFindPath
		if err := json.Unmarshal(envelope.Payload, &req); err != nil {
			s.log.Printf("bad FindPath payload: %v", err)
			return
		}
		s.handleFindPath(req)
	case "SelectWallType":
		var req protocol.RequestSelectWallType
		if err := json.Unmarshal(envelope.Payload, &req); err != nil {
			s.log.Printf("bad SelectWallType payload: %v", err)
			return
		}
		if floor, ok := s.registry.Get(req.Floor); ok {
			if err := floor.SelectWallType(req.WallType); err != nil {
				s.log.Printf("select wall type: %v", err)
			}
		}
	case "SelectObjectType":
		var req protocol.RequestSelectObjectType
		if err := json.Unmarshal(envelope.Payload, &req); err != nil {
			s.log.Printf("bad SelectObjectType payload: %v", err)
			return
		}
		if floor, ok := s.registry.Get(req.Floor); ok {
			if err := floor.SelectObjectType(req.ObjectType); err != nil {
				s.log.Printf("select object type: %v", err)
			}
		}
	case "SaveFloor":
		var req protocol.RequestSaveFloor
		if err := json.Unmarshal(envelope.Payload, &req); err != nil {
			s.log.Printf("bad SaveFloor payload: %v", err)
			return
		}
		s.handleSaveFloor(req)
	default:
		s.log.Printf("unhandled intent type %q", envelope.Type)
	}
}

func (s *server) handleEdit(req protocol.RequestEdit) {
	floor, ok := s.registry.Get(req.Floor)
	if !ok {
		s.log.Printf("edit for unknown floor %d", req.Floor)
		return
	}
	tool, known := ParseTool(req.Tool)
	if !known {
		s.log.Printf("edit with unknown tool %q", req.Tool)
		return
	}
	if err := floor.HandleClick(tool, req.X, req.Y, req.Pressed); err != nil {
		s.log.Printf("edit on floor %d failed: %v", req.Floor, err)
	}
}

func (s *server) handleFindPath(req protocol.RequestFindPath) {
	floor, ok := s.registry.Get(req.Floor)
	if !ok {
		s.log.Printf("path query for unknown floor %d", req.Floor)
		return
	}
	start := geometry.TileAddress{X: req.Start.X, Y: req.Start.Y}
	goal := geometry.TileAddress{X: req.Goal.X, Y: req.Goal.Y}

	path, err := floor.FindPath(start, goal)
	result := protocol.PathComputed{
		Floor: req.Floor,
		Start: req.Start,
		Goal:  req.Goal,
	}
	switch {
	case err == nil:
		result.Found = true
		result.Path = toProtocolTiles(path)
	case geometry.ErrorCode(err) == geometry.CodeUnreachable:
		// Unreachable is a normal outcome, reported as found=false.
	default:
		s.log.Printf("path query on floor %d failed: %v", req.Floor, err)
		return
	}
	s.broadcaster.Publish("PathComputed", result)
}

func (s *server) handleSaveFloor(req protocol.RequestSaveFloor) {
	if s.store == nil {
		s.log.Printf("save requested but no store configured")
		return
	}
	floor, ok := s.registry.Get(req.Floor)
	if !ok {
		s.log.Printf("save for unknown floor %d", req.Floor)
		return
	}
	tiles, err := floor.Tiles()
	if err != nil {
		s.log.Printf("save floor %d: %v", req.Floor, err)
		return
	}
	if err := s.store.SaveFloor(req.Floor, tiles); err != nil {
		s.log.Printf("save floor %d: %v", req.Floor, err)
	}
}
