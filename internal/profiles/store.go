// Package profiles persists named mortgage parameter sets under generated
// identifiers. Stores hold inputs only; computed schedules are never saved.
package profiles

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no profile exists for an identifier.
var ErrNotFound = errors.New("profile not found")

// Profile is one stored parameter set.
type Profile struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Params    engine.Parameters `json:"params"`
}

// Store is the persistence interface for mortgage parameter sets.
type Store interface {
	Create(ctx context.Context, name string, params engine.Parameters) (Profile, error)
	Get(ctx context.Context, id string) (Profile, error)
	Update(ctx context.Context, id string, name string, params engine.Parameters) (Profile, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Profile, error)
}

// MemoryStore is an in-memory implementation of Store, used by tests and as
// the default when no redis backend is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewMemoryStore creates a new in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]Profile)}
}

// Create stores a new profile under a generated identifier.
func (s *MemoryStore) Create(_ context.Context, name string, params engine.Parameters) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	profile := Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Params:    params,
	}
	s.profiles[profile.ID] = profile
	return profile, nil
}

// Get returns the profile stored under id.
func (s *MemoryStore) Get(_ context.Context, id string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

// Update replaces the name and parameters of an existing profile.
func (s *MemoryStore) Update(_ context.Context, id string, name string, params engine.Parameters) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	profile.Name = name
	profile.Params = params
	profile.UpdatedAt = time.Now().UTC()
	s.profiles[id] = profile
	return profile, nil
}

// Delete removes the profile stored under id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return ErrNotFound
	}
	delete(s.profiles, id)
	return nil
}

// List returns all stored profiles ordered by creation time.
func (s *MemoryStore) List(_ context.Context) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Profile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		list = append(list, profile)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}
