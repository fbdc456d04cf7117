// Package palettestore persists the palette list and the manual input value
// so they survive across sessions.
//
// Storage is backed by the shared SQLite database (see internal/database),
// tables palette_colors and palette_meta. The portable record layout
// {"colors": [{"value": "RRGGBB"}, ...]} is handled by Snapshot.
package palettestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nathanbeddoewebdev/hexpair/internal/database"
	"nathanbeddoewebdev/hexpair/internal/palette"
	"nathanbeddoewebdev/hexpair/internal/retry"
)

const inputKey = "input"

// State is everything the store restores at session start.
type State struct {
	Colors palette.List
	Input  palette.Color
}

// Repository defines the persistence interface for palette state.
type Repository interface {
	// Load returns the stored state. An empty store yields an empty list and
	// palette.DefaultInput.
	Load() (*State, error)

	// SaveColors replaces the stored list.
	SaveColors(list palette.List) error

	// SaveInput stores the manual input value.
	SaveInput(input palette.Color) error

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the palette store at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("palettestore: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a palette store in the SQLite file at path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palettestore: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	err := database.Migrate(r.db,
		`CREATE TABLE IF NOT EXISTS palette_colors (
			position INTEGER PRIMARY KEY,
			value    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS palette_meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	)
	if err != nil {
		return fmt.Errorf("palettestore: %w", err)
	}
	return nil
}

// Load returns the stored list and input.
func (r *SQLiteRepository) Load() (*State, error) {
	rows, err := r.db.Query(`SELECT value FROM palette_colors ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("palettestore: query failed: %w", err)
	}
	defer rows.Close()

	var values []palette.Color
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("palettestore: scan failed: %w", err)
		}
		values = append(values, palette.Color(v))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("palettestore: query failed: %w", err)
	}

	list, err := palette.Restore(values)
	if err != nil {
		return nil, fmt.Errorf("palettestore: stored list is corrupt: %w", err)
	}

	input, err := r.loadInput()
	if err != nil {
		return nil, err
	}

	return &State{Colors: list, Input: input}, nil
}

func (r *SQLiteRepository) loadInput() (palette.Color, error) {
	var v string
	err := r.db.QueryRow(`SELECT value FROM palette_meta WHERE key = ?`, inputKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return palette.DefaultInput, nil
	}
	if err != nil {
		return "", fmt.Errorf("palettestore: query failed: %w", err)
	}
	input := palette.Color(v)
	if !input.Valid() {
		return palette.DefaultInput, nil
	}
	return input, nil
}

// SaveColors replaces the stored list in a single transaction, retrying
// while another process holds the write lock.
func (r *SQLiteRepository) SaveColors(list palette.List) error {
	return retry.Do(context.Background(), retry.DefaultConfig(), retry.IsBusy, func() error {
		return r.saveColors(list)
	})
}

func (r *SQLiteRepository) saveColors(list palette.List) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("palettestore: begin failed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM palette_colors`); err != nil {
		return fmt.Errorf("palettestore: delete failed: %w", err)
	}
	for i, e := range list {
		if _, err := tx.Exec(`INSERT INTO palette_colors (position, value) VALUES (?, ?)`, i, string(e.Value)); err != nil {
			return fmt.Errorf("palettestore: insert failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("palettestore: commit failed: %w", err)
	}
	return nil
}

// SaveInput upserts the manual input value.
func (r *SQLiteRepository) SaveInput(input palette.Color) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("palettestore: %w", err)
	}
	err := retry.Do(context.Background(), retry.DefaultConfig(), retry.IsBusy, func() error {
		_, err := r.db.Exec(`
			INSERT INTO palette_meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			inputKey, string(input),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("palettestore: upsert failed: %w", err)
	}
	return nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Observer returns a palette.Observer that persists every list and input
// change to repo.
func Observer(repo Repository) palette.Observer {
	return palette.ObserverFuncs{
		OnColorsChanged: repo.SaveColors,
		OnInputChanged: func(input, _ palette.Color) error {
			return repo.SaveInput(input)
		},
	}
}
