package editor

import (
	"os"
	"strings"
)

// Storage is the narrow file boundary the editor talks through.
type Storage interface {
	// Load reads the file at path and returns its lines.
	Load(path string) ([]string, error)
	// Save writes the serialized document contents to path.
	Save(path, contents string) error
}

// OSStorage is the operating-system-backed Storage.
type OSStorage struct{}

func (OSStorage) Load(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := strings.TrimSuffix(string(b), "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

func (OSStorage) Save(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
