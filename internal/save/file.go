package save

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the save file location, following the XDG Base
// Directory spec: $XDG_DATA_HOME/vexdrift/save.dat, defaulting to
// ~/.local/share/vexdrift/save.dat.
func DefaultPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vexdrift", "save.dat"), nil
}

// Write encodes d and writes it to path, creating parent directories as
// needed.
func Write(path string, d *Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(path, Encode(d), 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Read loads and decodes the save at path.
func Read(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	return Decode(raw)
}

// Exists reports whether path holds a valid save. It is non-destructive:
// the file is only read, never repaired or cleared.
func Exists(path string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, err = Decode(raw)
	return err == nil
}

// Erase zero-fills the record so the slot reads as empty, keeping the
// file in place.
func Erase(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := os.WriteFile(path, make([]byte, Size), 0o644); err != nil {
		return fmt.Errorf("save: erase: %w", err)
	}
	return nil
}

// Peek returns the level and zone from a save file without applying it,
// for the title screen.
func Peek(path string) (level, zone int, ok bool) {
	d, err := Read(path)
	if err != nil {
		return 0, 0, false
	}
	return d.Level, d.Zone, true
}
