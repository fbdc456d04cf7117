package palettestore

import (
	"encoding/json"
	"fmt"
	"io"

	"nathanbeddoewebdev/hexpair/internal/palette"
)

// Snapshot is the portable persisted record: {"colors": [{"value": "..."}]}.
type Snapshot struct {
	Colors []palette.Entry `json:"colors"`
}

// NewSnapshot captures list in persisted form.
func NewSnapshot(list palette.List) Snapshot {
	colors := make([]palette.Entry, len(list))
	copy(colors, list)
	return Snapshot{Colors: colors}
}

// List validates the snapshot and returns it as a palette.List.
func (s Snapshot) List() (palette.List, error) {
	values := make([]palette.Color, len(s.Colors))
	for i, e := range s.Colors {
		values[i] = e.Value
	}
	return palette.Restore(values)
}

// WriteJSON encodes list as an indented Snapshot.
func WriteJSON(w io.Writer, list palette.List) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewSnapshot(list)); err != nil {
		return fmt.Errorf("palettestore: failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadJSON decodes a Snapshot and returns its validated list.
func ReadJSON(r io.Reader) (palette.List, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("palettestore: failed to parse snapshot: %w", err)
	}
	list, err := s.List()
	if err != nil {
		return nil, fmt.Errorf("palettestore: invalid snapshot: %w", err)
	}
	return list, nil
}
