package pets

import (
	"encoding/json"
	"fmt"

	"github.com/five82/petpad/internal/kv"
)

// StorageKey is the store entry holding the serialized collection.
const StorageKey = "examplePetData"

// Repository loads and saves the whole collection.
type Repository interface {
	Load() ([]Pet, error)
	Save(pets []Pet) error
}

// KVRepository keeps the collection as a JSON array under StorageKey.
type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

// Load returns nil when nothing has been saved yet.
func (r *KVRepository) Load() ([]Pet, error) {
	value, ok, err := r.store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", StorageKey, err)
	}
	if !ok {
		return nil, nil
	}
	var out []Pet
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", StorageKey, err)
	}
	return out, nil
}

func (r *KVRepository) Save(pets []Pet) error {
	if pets == nil {
		pets = []Pet{}
	}
	data, err := json.Marshal(pets)
	if err != nil {
		return fmt.Errorf("encode %s: %w", StorageKey, err)
	}
	if err := r.store.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", StorageKey, err)
	}
	return nil
}
