// Package likes holds the page's like counter and its persistence.
package likes

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/five82/petpad/internal/kv"
)

// StorageKey is the store entry holding the counter as decimal text.
const StorageKey = "numberLikes"

// Repository loads and saves the counter value.
type Repository interface {
	Load() (int, error)
	Save(n int) error
}

// KVRepository stores the counter under StorageKey.
type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

// Load returns 0 when no value is stored. Values that are not a non-negative
// integer also load as 0 and are reported through the error.
func (r *KVRepository) Load() (int, error) {
	value, ok, err := r.store.Get(StorageKey)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", StorageKey, err)
	}
	if !ok {
		return 0, nil
	}
	return parseCount(value)
}

func (r *KVRepository) Save(n int) error {
	if err := r.store.Set(StorageKey, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("write %s: %w", StorageKey, err)
	}
	return nil
}

// parseCount accepts any JSON number with a whole, non-negative value, so
// "5", "5.0" and "1e1" all load. Counts past math.MaxInt saturate.
func parseCount(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "null" {
		return 0, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("decode %s: negative count %d", StorageKey, n)
		}
		return n, nil
	}

	var num json.Number
	if err := json.Unmarshal([]byte(trimmed), &num); err != nil {
		return 0, fmt.Errorf("decode %s: %w", StorageKey, err)
	}
	f, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", StorageKey, err)
	}
	switch {
	case f < 0:
		return 0, fmt.Errorf("decode %s: negative count %s", StorageKey, num)
	case f != math.Trunc(f):
		return 0, fmt.Errorf("decode %s: %s is not a whole number", StorageKey, num)
	case f >= math.MaxInt:
		return math.MaxInt, nil
	}
	return int(f), nil
}

// Counter is a non-negative count saved once per change.
type Counter struct {
	repo  Repository
	value int
}

func NewCounter(repo Repository) *Counter {
	return &Counter{repo: repo}
}

// Initialize loads the stored value. On failure the counter stays at 0.
func (c *Counter) Initialize() error {
	n, err := c.repo.Load()
	if err != nil {
		c.value = 0
		return err
	}
	c.value = n
	return nil
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// Increment adds one and saves the result. The count stops at math.MaxInt.
func (c *Counter) Increment() (int, error) {
	if c.value == math.MaxInt {
		return c.value, nil
	}
	return c.set(c.value + 1)
}

// Decrement subtracts one, clamping at zero. A clamped call is not a change
// and saves nothing.
func (c *Counter) Decrement() (int, error) {
	return c.set(max(c.value-1, 0))
}

func (c *Counter) set(next int) (int, error) {
	if next == c.value {
		return c.value, nil
	}
	if err := c.repo.Save(next); err != nil {
		return c.value, err
	}
	c.value = next
	return c.value, nil
}
