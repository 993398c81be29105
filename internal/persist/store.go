// Package persist is the save/load collaborator layered on top of the
// grid's iteration and mutation surface. The core engine defines no on-disk
// format of its own; this store keeps one SQLite row per wall and per
// placed object.
package persist

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/buildmode/floorgrid/internal/geometry"
	"github.com/buildmode/floorgrid/internal/grid"
)

const schema = `
CREATE TABLE IF NOT EXISTS walls (
	floor INTEGER NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL,
	orientation TEXT NOT NULL,
	wall_type TEXT NOT NULL,
	PRIMARY KEY (floor, x, y, orientation)
);
CREATE TABLE IF NOT EXISTS objects (
	floor INTEGER NOT NULL,
	id TEXT NOT NULL,
	object_type TEXT NOT NULL,
	origin_x INTEGER NOT NULL,
	origin_y INTEGER NOT NULL,
	passable INTEGER NOT NULL,
	forbid_walls INTEGER NOT NULL,
	PRIMARY KEY (floor, id)
);
CREATE TABLE IF NOT EXISTS object_tiles (
	floor INTEGER NOT NULL,
	object_id TEXT NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL,
	PRIMARY KEY (floor, object_id, x, y)
);
`

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open grid store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create grid store schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveFloor replaces the persisted state of one floor with the current
// contents of its tile data.
func (s *Store) SaveFloor(floor int, tiles *grid.TileData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save floor %d: %w", floor, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"walls", "objects", "object_tiles"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE floor = ?", floor); err != nil {
			return fmt.Errorf("clear %s for floor %d: %w", table, floor, err)
		}
	}

	for edge, wall := range tiles.Walls() {
		_, err := tx.Exec(
			"INSERT INTO walls (floor, x, y, orientation, wall_type) VALUES (?, ?, ?, ?, ?)",
			floor, edge.X, edge.Y, string(edge.Orientation), wall.Type)
		if err != nil {
			return fmt.Errorf("save wall (%d,%d,%s): %w", edge.X, edge.Y, edge.Orientation, err)
		}
	}

	for _, obj := range tiles.Objects() {
		_, err := tx.Exec(
			"INSERT INTO objects (floor, id, object_type, origin_x, origin_y, passable, forbid_walls) VALUES (?, ?, ?, ?, ?, ?, ?)",
			floor, obj.ID, obj.Type, obj.Origin.X, obj.Origin.Y, obj.Passable, obj.ForbidWallsBeside)
		if err != nil {
			return fmt.Errorf("save object %s: %w", obj.ID, err)
		}
		for _, tile := range obj.Tiles {
			_, err := tx.Exec(
				"INSERT INTO object_tiles (floor, object_id, x, y) VALUES (?, ?, ?, ?)",
				floor, obj.ID, tile.X, tile.Y)
			if err != nil {
				return fmt.Errorf("save object tile (%d,%d): %w", tile.X, tile.Y, err)
			}
		}
	}

	return tx.Commit()
}

// LoadFloor resets the tile data and replays the persisted walls and
// objects of one floor into it.
func (s *Store) LoadFloor(floor int, tiles *grid.TileData) error {
	tiles.Reset()

	wallRows, err := s.db.Query("SELECT x, y, orientation, wall_type FROM walls WHERE floor = ?", floor)
	if err != nil {
		return fmt.Errorf("load walls for floor %d: %w", floor, err)
	}
	defer wallRows.Close()
	for wallRows.Next() {
		var edge geometry.EdgeAddress
		var orientation, wallType string
		if err := wallRows.Scan(&edge.X, &edge.Y, &orientation, &wallType); err != nil {
			return fmt.Errorf("scan wall row: %w", err)
		}
		edge.Orientation = geometry.Orientation(orientation)
		if _, err := tiles.SetWall(edge, true, wallType); err != nil {
			return fmt.Errorf("restore wall (%d,%d,%s): %w", edge.X, edge.Y, orientation, err)
		}
	}
	if err := wallRows.Err(); err != nil {
		return fmt.Errorf("load walls for floor %d: %w", floor, err)
	}

	objects, err := s.loadObjects(floor)
	if err != nil {
		return err
	}
	for _, obj := range objects {
		tiles.PutObject(obj)
		for _, tile := range obj.Tiles {
			if _, err := tiles.SetOccupant(tile, obj.ID); err != nil {
				return fmt.Errorf("restore object %s occupancy: %w", obj.ID, err)
			}
		}
	}
	return nil
}

func (s *Store) loadObjects(floor int) ([]*grid.PlacedObject, error) {
	rows, err := s.db.Query(
		"SELECT id, object_type, origin_x, origin_y, passable, forbid_walls FROM objects WHERE floor = ? ORDER BY id",
		floor)
	if err != nil {
		return nil, fmt.Errorf("load objects for floor %d: %w", floor, err)
	}
	defer rows.Close()

	var objects []*grid.PlacedObject
	for rows.Next() {
		obj := &grid.PlacedObject{}
		if err := rows.Scan(&obj.ID, &obj.Type, &obj.Origin.X, &obj.Origin.Y, &obj.Passable, &obj.ForbidWallsBeside); err != nil {
			return nil, fmt.Errorf("scan object row: %w", err)
		}
		objects = append(objects, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load objects for floor %d: %w", floor, err)
	}

	for _, obj := range objects {
		tileRows, err := s.db.Query(
			"SELECT x, y FROM object_tiles WHERE floor = ? AND object_id = ? ORDER BY y, x",
			floor, obj.ID)
		if err != nil {
			return nil, fmt.Errorf("load tiles for object %s: %w", obj.ID, err)
		}
		for tileRows.Next() {
			var tile geometry.TileAddress
			if err := tileRows.Scan(&tile.X, &tile.Y); err != nil {
				tileRows.Close()
				return nil, fmt.Errorf("scan object tile row: %w", err)
			}
			obj.Tiles = append(obj.Tiles, tile)
		}
		if err := tileRows.Err(); err != nil {
			tileRows.Close()
			return nil, fmt.Errorf("load tiles for object %s: %w", obj.ID, err)
		}
		tileRows.Close()
	}
	return objects, nil
}
