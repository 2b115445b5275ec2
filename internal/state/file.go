package state

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// LoadFile reads a TOML state file written by the producer. Fields missing
// from the file keep their Default values. A missing file yields Default.
func LoadFile(path string) (Snapshot, error) {
	snap := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, nil
		}
		return Snapshot{}, fmt.Errorf("read state: %w", err)
	}

	if err := toml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse state: %w", err)
	}
	return snap, nil
}
