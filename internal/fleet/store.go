// Package fleet owns the ordered in-memory collection of vehicle records and
// enforces the uniqueness invariants on their identifying fields.
package fleet

import (
	"fmt"
	"strings"

	"github.com/nurpe/fleetguardian/internal/model"
)

// NoExclude is passed to CodeExists/NumberExists when no record should be
// skipped, i.e. when checking a brand-new record.
const NoExclude = -1

// Store holds the fleet in insertion order. Delete shifts subsequent records
// left rather than swapping, so relative order is stable across mutations.
// Not safe for concurrent use; the session owns it exclusively.
type Store struct {
	vehicles []model.Vehicle
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Count() int {
	return len(s.vehicles)
}

// FindByNumber returns the index of the first record with the given number.
func (s *Store) FindByNumber(number int) (int, error) {
	for i := range s.vehicles {
		if s.vehicles[i].Number == number {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: number %d", ErrNotFound, number)
}

// ByNumber returns a copy of the record with the given number.
func (s *Store) ByNumber(number int) (model.Vehicle, error) {
	idx, err := s.FindByNumber(number)
	if err != nil {
		return model.Vehicle{}, err
	}
	return s.vehicles[idx], nil
}

// CodeExists reports whether any record other than the one at excludeIndex
// carries the code, compared case-insensitively. Pass NoExclude when adding.
func (s *Store) CodeExists(code string, excludeIndex int) bool {
	for i := range s.vehicles {
		if i == excludeIndex {
			continue
		}
		if strings.EqualFold(s.vehicles[i].Code, code) {
			return true
		}
	}
	return false
}

// NumberExists is the exact-match counterpart of CodeExists.
func (s *Store) NumberExists(number int, excludeIndex int) bool {
	for i := range s.vehicles {
		if i == excludeIndex {
			continue
		}
		if s.vehicles[i].Number == number {
			return true
		}
	}
	return false
}

// Insert appends v after re-checking both uniqueness invariants. Callers are
// expected to have validated already; the re-check keeps the invariants
// unconditional.
func (s *Store) Insert(v model.Vehicle) error {
	if s.CodeExists(v.Code, NoExclude) {
		return fmt.Errorf("%w: %s", ErrDuplicateCode, v.Code)
	}
	if s.NumberExists(v.Number, NoExclude) {
		return fmt.Errorf("%w: %d", ErrDuplicateNumber, v.Number)
	}
	s.vehicles = append(s.vehicles, v)
	return nil
}

// UpdateAtPosition applies mutate to the record at the 1-based position.
// If mutate returns an error the record keeps any changes mutate already
// made, so mutators must validate before writing.
func (s *Store) UpdateAtPosition(position int, mutate func(*model.Vehicle) error) error {
	if position < 1 || position > len(s.vehicles) {
		return fmt.Errorf("%w: %d (have %d records)", ErrPositionOutOfRange, position, len(s.vehicles))
	}
	return mutate(&s.vehicles[position-1])
}

// DeleteByNumber removes the record with the given number, preserving the
// order of the rest.
func (s *Store) DeleteByNumber(number int) error {
	idx, err := s.FindByNumber(number)
	if err != nil {
		return err
	}
	s.vehicles = append(s.vehicles[:idx], s.vehicles[idx+1:]...)
	return nil
}

// Each calls fn with a pointer to every record in order. Used by the service
// layer to refresh derived fields in place.
func (s *Store) Each(fn func(*model.Vehicle)) {
	for i := range s.vehicles {
		fn(&s.vehicles[i])
	}
}

// Snapshot returns a copy of the fleet in insertion order.
func (s *Store) Snapshot() []model.Vehicle {
	out := make([]model.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Replace swaps in a freshly loaded fleet, discarding the current contents.
func (s *Store) Replace(vehicles []model.Vehicle) {
	s.vehicles = make([]model.Vehicle, len(vehicles))
	copy(s.vehicles, vehicles)
}
