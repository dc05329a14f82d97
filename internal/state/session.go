package state

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/five82/petpad/internal/kv"
	"github.com/five82/petpad/internal/likes"
	"github.com/five82/petpad/internal/pets"
)

// Snapshot is an immutable view of everything the UI renders.
type Snapshot struct {
	Pets                []pets.Pet
	Likes               int
	LastSaved           time.Time
	LastError           error
	ConsecutiveFailures int
}

// Failing reports whether the last write failed.
func (s Snapshot) Failing() bool {
	return s.LastError != nil
}

// Session routes user intents to the pet and like models and tracks the
// outcome of their writes. It is driven from a single goroutine.
type Session struct {
	pets  *pets.Model
	likes *likes.Counter
	now   func() time.Time

	lastSaved time.Time
	lastErr   error
	failures  int
}

// New wires a session to the given models.
func New(petModel *pets.Model, counter *likes.Counter) *Session {
	return &Session{pets: petModel, likes: counter, now: time.Now}
}

// Open builds both models on top of one key-value store.
func Open(store kv.Store, opts ...pets.Option) *Session {
	return New(
		pets.NewModel(pets.NewKVRepository(store), opts...),
		likes.NewCounter(likes.NewKVRepository(store)),
	)
}

// Initialize loads persisted state. Unreadable data is logged and replaced
// by defaults; the joined load errors are returned for the caller's benefit.
func (s *Session) Initialize() error {
	var errs []error
	if err := s.pets.Initialize(); err != nil {
		log.Printf("pets: ignoring stored data: %v", err)
		errs = append(errs, fmt.Errorf("load pets: %w", err))
	}
	if err := s.likes.Initialize(); err != nil {
		log.Printf("likes: ignoring stored data: %v", err)
		errs = append(errs, fmt.Errorf("load likes: %w", err))
	}
	return errors.Join(errs...)
}

// AddPet appends a pet. Blank fields are accepted as-is.
func (s *Session) AddPet(name, species, age string) error {
	p, err := s.pets.Add(name, species, age)
	if err != nil {
		return s.fail(fmt.Errorf("add pet: %w", err))
	}
	log.Printf("pets: added id=%d name=%q", p.ID, p.Name)
	s.saved()
	return nil
}

// RemovePet deletes every pet with id. Unknown ids are ignored.
func (s *Session) RemovePet(id int64) error {
	removed, err := s.pets.Remove(id)
	if err != nil {
		return s.fail(fmt.Errorf("remove pet: %w", err))
	}
	if removed {
		log.Printf("pets: removed id=%d", id)
		s.saved()
	}
	return nil
}

// IncrementLikes adds one like.
func (s *Session) IncrementLikes() error {
	if _, err := s.likes.Increment(); err != nil {
		return s.fail(fmt.Errorf("increase likes: %w", err))
	}
	s.saved()
	return nil
}

// DecrementLikes removes one like, never going below zero.
func (s *Session) DecrementLikes() error {
	before := s.likes.Value()
	after, err := s.likes.Decrement()
	if err != nil {
		return s.fail(fmt.Errorf("decrease likes: %w", err))
	}
	if after != before {
		s.saved()
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Pets:                s.pets.Pets(),
		Likes:               s.likes.Value(),
		LastSaved:           s.lastSaved,
		LastError:           s.lastErr,
		ConsecutiveFailures: s.failures,
	}
}

func (s *Session) fail(err error) error {
	s.lastErr = err
	s.failures++
	log.Printf("write failed: %v", err)
	return err
}

func (s *Session) saved() {
	s.lastErr = nil
	s.failures = 0
	s.lastSaved = s.now()
}
