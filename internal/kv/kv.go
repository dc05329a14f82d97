package kv

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrClosed is returned by operations on a store that has been closed.
var ErrClosed = errors.New("kv store closed")

// Store is a synchronous string-keyed store. A missing key is reported through
// ok rather than an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Memory keeps entries in process memory only.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
	closed  bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.entries[key] = value
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend normalizes a backend name. Blank input selects the file backend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendFile:
		return BackendFile, nil
	case BackendMemory:
		return BackendMemory, nil
	case BackendSQLite, "sqlite3":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown store backend %q", s)
	}
}

// Open returns the store for backend. path is ignored by the memory backend.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
