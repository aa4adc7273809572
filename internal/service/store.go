package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"address-catalog/internal/models"
	"address-catalog/internal/repository"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// SnapshotSlot is the durable key/value slot the store persists to
type SnapshotSlot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// PersistenceError reports a failed read or write of the snapshot
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("service: snapshot %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// AddressStore owns the ordered collection of address entries and keeps the
// snapshot slot in sync with it. Every mutation rewrites the whole snapshot.
type AddressStore struct {
	slot SnapshotSlot
	key  string

	mu      sync.RWMutex
	entries map[string]models.AddressEntry
	order   []string
}

// NewAddressStore creates an empty store bound to the snapshot stored under key
func NewAddressStore(slot SnapshotSlot, key string) *AddressStore {
	return &AddressStore{
		slot:    slot,
		key:     key,
		entries: make(map[string]models.AddressEntry),
	}
}

// Load replaces the in-memory collection with the stored snapshot.
// A missing or unreadable snapshot leaves the store empty; the cause is logged.
func (s *AddressStore) Load(ctx context.Context) {
	data, err := s.slot.Load(ctx, s.key)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]models.AddressEntry)
	s.order = nil

	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			log.Info().Str("key", s.key).Msg("no address snapshot found, starting empty")
			return
		}
		log.Error().Err(&PersistenceError{Op: "read", Err: err}).Str("key", s.key).Msg("cannot load addresses")
		return
	}

	entries, err := decodeSnapshot(data)
	if err != nil {
		log.Error().Err(&PersistenceError{Op: "decode", Err: err}).Str("key", s.key).Msg("cannot load addresses")
		return
	}

	for _, entry := range entries {
		if _, ok := s.entries[entry.ID]; ok {
			log.Warn().Str("id", entry.ID).Msg("duplicate address id in snapshot, keeping the first")
			continue
		}
		s.entries[entry.ID] = entry
		s.order = append(s.order, entry.ID)
	}

	log.Info().Int("count", len(s.order)).Str("key", s.key).Msg("addresses loaded")
}

// Save writes the whole collection to the snapshot slot and reports any failure
func (s *AddressStore) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save(ctx)
}

// Add appends entry unless an entry with the same id already exists.
// It reports whether the collection changed.
func (s *AddressStore) Add(ctx context.Context, entry models.AddressEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.ID]; ok {
		return false
	}
	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)

	s.persist(ctx)
	return true
}

// Update merges patch into the entry with id, keeping its position.
// It reports whether such an entry exists.
func (s *AddressStore) Update(ctx context.Context, id string, patch models.EntryPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	if patch.DisplayName == nil {
		return true
	}
	entry.DisplayName = *patch.DisplayName
	s.entries[id] = entry

	s.persist(ctx)
	return true
}

// Remove deletes the entry with id and reports whether it existed
func (s *AddressStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}

	s.persist(ctx)
	return true
}

// Get returns the entry with id
func (s *AddressStore) Get(id string) (models.AddressEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	return entry, ok
}

// All returns a copy of the collection in insertion order
func (s *AddressStore) All() []models.AddressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Len returns the number of stored entries
func (s *AddressStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *AddressStore) snapshot() []models.AddressEntry {
	entries := make([]models.AddressEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.entries[id])
	}
	return entries
}

// persist must be called with the write lock held. Failures are logged only;
// the in-memory collection keeps the mutation.
func (s *AddressStore) persist(ctx context.Context) {
	if err := s.save(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("cannot save addresses")
	}
}

func (s *AddressStore) save(ctx context.Context) error {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.slot.Save(ctx, s.key, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

func decodeSnapshot(data []byte) ([]models.AddressEntry, error) {
	var entries []models.AddressEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
