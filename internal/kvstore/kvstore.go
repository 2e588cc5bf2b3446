package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// Well-known keys used by the offline variant. Each holds one JSON document.
const (
	KeyMentors         = "mentors"
	KeyBookings        = "bookings"
	KeyProgress        = "progress"
	KeySession         = "session"
	KeyRememberedEmail = "rememberedEmail"
)

// Store is a key -> JSON document store. Values are kept JSON-encoded in an
// in-memory cache and optionally written through to a snapshot file on every
// mutation, so state survives restarts the way browser localStorage does.
//
// A nil *Store is valid: reads yield the caller's default and writes are
// silently dropped. Callers never need to guard against a missing store.
type Store struct {
	cache        *gocache.Cache
	mu           sync.Mutex
	snapshotPath string
}

// New creates a store. snapshotPath may be empty for a purely in-memory store.
// An existing snapshot file is loaded; a corrupt or missing one starts empty.
func New(snapshotPath string) *Store {
	s := &Store{
		cache:        gocache.New(gocache.NoExpiration, 10*time.Minute),
		snapshotPath: snapshotPath,
	}

	if snapshotPath != "" {
		if err := s.loadSnapshot(); err != nil {
			logger.Warn("Starting with empty local store",
				zap.String("path", snapshotPath),
				zap.Error(err))
		}
	}

	return s
}

// Get decodes the value stored under key into out. It returns false (leaving
// out untouched) when the key is absent, the stored document doesn't decode,
// or the store itself is unavailable.
func (s *Store) Get(key string, out interface{}) bool {
	if s == nil {
		return false
	}

	raw, found := s.cache.Get(key)
	if !found {
		return false
	}

	doc, ok := raw.(json.RawMessage)
	if !ok {
		return false
	}

	if err := json.Unmarshal(doc, out); err != nil {
		logger.Warn("Discarding undecodable store value",
			zap.String("key", key),
			zap.Error(err))
		s.cache.Delete(key)
		return false
	}

	return true
}

// Set JSON-encodes value and stores it under key. A nil value removes the key
// entirely. The snapshot file, when configured, is rewritten before returning.
func (s *Store) Set(key string, value interface{}) error {
	if s == nil {
		return nil
	}

	start := time.Now()

	if value == nil {
		s.Remove(key)
		return nil
	}

	doc, err := json.Marshal(value)
	if err != nil {
		metrics.StoreOperationTotal.WithLabelValues("local", "set", "error").Inc()
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	s.cache.Set(key, json.RawMessage(doc), gocache.NoExpiration)
	err = s.writeSnapshot()

	duration := metrics.MeasureDuration(start)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StoreOperationTotal.WithLabelValues("local", "set", status).Inc()
	metrics.StoreOperationDuration.WithLabelValues("local", "set", status).Observe(duration)

	return err
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(key string) {
	if s == nil {
		return
	}

	s.cache.Delete(key)
	if err := s.writeSnapshot(); err != nil {
		logger.Warn("Failed to persist store snapshot after remove",
			zap.String("key", key),
			zap.Error(err))
	}
	metrics.StoreOperationTotal.WithLabelValues("local", "remove", "success").Inc()
}

// loadSnapshot restores the cache from the snapshot file.
func (s *Store) loadSnapshot() error {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		return err
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("corrupt snapshot: %w", err)
	}

	for key, doc := range snapshot {
		s.cache.Set(key, doc, gocache.NoExpiration)
	}

	logger.Info("Local store snapshot loaded",
		zap.String("path", s.snapshotPath),
		zap.Int("keys", len(snapshot)))

	return nil
}

// writeSnapshot rewrites the snapshot file from the full cache contents.
// Writes go through a temp file + rename so a crash can't truncate the store.
func (s *Store) writeSnapshot() error {
	if s.snapshotPath == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]json.RawMessage)
	for key, item := range s.cache.Items() {
		if doc, ok := item.Object.(json.RawMessage); ok {
			snapshot[key] = doc
		}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := s.snapshotPath + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.snapshotPath); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
