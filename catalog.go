package tilemap

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/tilemap/asm"
	"github.com/bodgit/tilemap/event"
	_ "github.com/mattn/go-sqlite3" // database driver
)

// Catalog is a sqlite summary of every map in a project, for answering
// questions like "which maps use this tileset" without loading them all.
type Catalog struct {
	db *sql.DB
}

// NewCatalog opens or creates the catalog stored in file.
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"CREATE TABLE IF NOT EXISTS map (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, map_group TEXT NOT NULL, width INTEGER, height INTEGER, primary_tileset TEXT, secondary_tileset TEXT, song TEXT)",
		"CREATE TABLE IF NOT EXISTS connection (map_id INTEGER NOT NULL, direction TEXT NOT NULL, map_offset TEXT NOT NULL, target TEXT NOT NULL, FOREIGN KEY(map_id) REFERENCES map(id) ON DELETE CASCADE)",
		"CREATE TABLE IF NOT EXISTS event (map_id INTEGER NOT NULL, kind TEXT NOT NULL, x INTEGER, y INTEGER, FOREIGN KEY(map_id) REFERENCES map(id) ON DELETE CASCADE)",
	} {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// addMap replaces any existing entry for m.
func (c *Catalog) addMap(group string, m *Map) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM map WHERE name = ?", m.Name); err != nil {
		return err
	}

	result, err := tx.Exec("INSERT INTO map (name, map_group, width, height, primary_tileset, secondary_tileset, song) VALUES (?, ?, ?, ?, ?, ?, ?)",
		m.Name, group, asm.Int(m.Width), asm.Int(m.Height), m.PrimaryTilesetLabel, m.SecondaryTilesetLabel, m.Song)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, conn := range m.Connections {
		if _, err := tx.Exec("INSERT INTO connection (map_id, direction, map_offset, target) VALUES (?, ?, ?, ?)", id, conn.Direction, conn.Offset, conn.Map); err != nil {
			return err
		}
	}

	for _, events := range [][]*event.Event{m.Events.Objects, m.Events.Warps, m.Events.Coords, m.Events.BGs} {
		for _, e := range events {
			if _, err := tx.Exec("INSERT INTO event (map_id, kind, x, y) VALUES (?, ?, ?, ?)", id, e.Kind.String(), e.Int(event.X), e.Int(event.Y)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// MapsUsingTileset returns the name of every map using the tileset label as
// either its primary or secondary tileset.
func (c *Catalog) MapsUsingTileset(label string) ([]string, error) {
	rows, err := c.db.Query("SELECT name FROM map WHERE primary_tileset = ? OR secondary_tileset = ? ORDER BY name", label, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Connections returns the connections of the named map.
func (c *Catalog) Connections(name string) ([]Connection, error) {
	rows, err := c.db.Query("SELECT c.direction, c.map_offset, c.target FROM connection AS c JOIN map AS m ON c.map_id = m.id WHERE m.name = ? ORDER BY c.rowid", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []Connection
	for rows.Next() {
		var conn Connection
		if err := rows.Scan(&conn.Direction, &conn.Offset, &conn.Map); err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}
	return connections, rows.Err()
}

// EventCount returns the number of events of kind k on the named map.
func (c *Catalog) EventCount(name string, k event.Kind) (int, error) {
	var n int
	switch err := c.db.QueryRow("SELECT COUNT(*) FROM event AS e JOIN map AS m ON e.map_id = m.id WHERE m.name = ? AND e.kind = ?", name, k.String()).Scan(&n); err {
	case nil, sql.ErrNoRows:
		return n, nil
	default:
		return 0, err
	}
}
