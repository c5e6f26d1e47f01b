package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	profileKeyPrefix = "mortgage:profile:"
	profileIndexKey  = "mortgage:profiles"
)

// RedisStore is a redis-backed implementation of Store. Profiles are stored
// as JSON under per-ID keys with a set acting as the index for List.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a profile store to the redis instance at addr.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func profileKey(id string) string {
	return profileKeyPrefix + id
}

func (s *RedisStore) save(ctx context.Context, profile Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", profile.ID, err)
	}
	if err := s.client.Set(ctx, profileKey(profile.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store profile %s: %w", profile.ID, err)
	}
	if err := s.client.SAdd(ctx, profileIndexKey, profile.ID).Err(); err != nil {
		return fmt.Errorf("failed to index profile %s: %w", profile.ID, err)
	}
	return nil
}

// Create stores a new profile under a generated identifier.
func (s *RedisStore) Create(ctx context.Context, name string, params engine.Parameters) (Profile, error) {
	now := time.Now().UTC()
	profile := Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Params:    params,
	}
	if err := s.save(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Get returns the profile stored under id.
func (s *RedisStore) Get(ctx context.Context, id string) (Profile, error) {
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return profile, nil
}

// Update replaces the name and parameters of an existing profile.
func (s *RedisStore) Update(ctx context.Context, id string, name string, params engine.Parameters) (Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	profile.Name = name
	profile.Params = params
	profile.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Delete removes the profile stored under id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, profileKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	if err := s.client.SRem(ctx, profileIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex profile %s: %w", id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored profiles.
func (s *RedisStore) List(ctx context.Context) ([]Profile, error) {
	ids, err := s.client.SMembers(ctx, profileIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]Profile, 0, len(ids))
	for _, id := range ids {
		profile, err := s.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// Index entry without a backing key; skip rather than fail the listing.
			continue
		}
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
