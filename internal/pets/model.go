package pets

import "time"

// Append returns a new slice holding pets followed by p. The input is never
// modified.
func Append(pets []Pet, p Pet) []Pet {
	out := make([]Pet, len(pets), len(pets)+1)
	copy(out, pets)
	return append(out, p)
}

// Without returns a new slice with every pet whose ID equals id removed. When
// nothing matches the input slice itself is returned.
func Without(pets []Pet, id int64) []Pet {
	matched := false
	for _, p := range pets {
		if p.ID == id {
			matched = true
			break
		}
	}
	if !matched {
		return pets
	}
	out := make([]Pet, 0, len(pets)-1)
	for _, p := range pets {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// Model owns the in-memory collection and writes it through to a Repository
// after every change. Each change commits only when the save succeeds.
type Model struct {
	repo        Repository
	now         func() time.Time
	pets        []Pet
	lastID      int64
	initialized bool
}

// Option customizes a Model.
type Option func(*Model)

// WithClock overrides the time source used to stamp new pets.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func NewModel(repo Repository, opts ...Option) *Model {
	m := &Model{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize loads the saved collection once. A load failure leaves the
// collection empty; the error is returned only so the caller can report it.
func (m *Model) Initialize() error {
	if m.initialized {
		return nil
	}
	m.initialized = true

	loaded, err := m.repo.Load()
	if err != nil {
		return err
	}
	m.pets = loaded
	for _, p := range loaded {
		m.lastID = max(m.lastID, p.ID)
	}
	return nil
}

// Pets returns a copy of the current collection.
func (m *Model) Pets() []Pet {
	out := make([]Pet, len(m.pets))
	copy(out, m.pets)
	return out
}

// Len reports the number of pets.
func (m *Model) Len() int {
	return len(m.pets)
}

// Add appends a new pet and saves the collection. Fields are stored as given.
func (m *Model) Add(name, species, age string) (Pet, error) {
	p := Pet{Name: name, Species: species, Age: age, ID: m.nextID()}
	next := Append(m.pets, p)
	if err := m.repo.Save(next); err != nil {
		return Pet{}, err
	}
	m.pets = next
	m.lastID = p.ID
	return p, nil
}

// Remove deletes every pet with the given id. It reports whether anything was
// removed; an unknown id saves nothing.
func (m *Model) Remove(id int64) (bool, error) {
	next := Without(m.pets, id)
	if len(next) == len(m.pets) {
		return false, nil
	}
	if err := m.repo.Save(next); err != nil {
		return false, err
	}
	m.pets = next
	return true, nil
}

// nextID stamps a pet with the current time, bumped past the newest known id
// so two pets added in the same millisecond stay distinct.
func (m *Model) nextID() int64 {
	id := m.now().UnixMilli()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	return id
}
