package storage

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Memory is an in-process store for tests and ephemeral sessions. It
// round-trips through TOML so values keep the same copy semantics as the
// durable backends.
type Memory struct {
	data  []byte
	saved bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Load implements Store.
func (s *Memory) Load(v any) (bool, error) {
	if !s.saved {
		return false, nil
	}
	if err := toml.Unmarshal(s.data, v); err != nil {
		return false, fmt.Errorf("decode record: %w", err)
	}
	return true, nil
}

// Save implements Store.
func (s *Memory) Save(v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	s.data = data
	s.saved = true
	return nil
}
