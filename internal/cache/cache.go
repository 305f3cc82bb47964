package cache

import (
	"context"
	"fmt"
	"sync"

	"hanscan/internal/textutil"
)

// Store is a persistent key-value backend for the translation memory.
// Get treats every failure as a miss; Set reports failures to the caller.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend  string
	Path     string
	RedisURL string
}

// Open builds a translation memory on the configured backend.
func Open(cfg Config) (*TranslationMemory, error) {
	var (
		store Store
		err   error
	)
	switch cfg.Backend {
	case "", "bolt":
		store, err = NewBoltStore(cfg.Path)
	case "redis":
		store, err = NewRedisStore(cfg.RedisURL)
	case "memory":
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return NewTranslationMemory(store), nil
}

// TranslationMemory caches phrase translations across runs. A read-through
// map in front of the store keeps repeated lookups within one run cheap.
// Keys are content hashes, so the store never sees raw source text.
type TranslationMemory struct {
	store  Store
	mu     sync.RWMutex
	memory map[string]string
}

func NewTranslationMemory(store Store) *TranslationMemory {
	return &TranslationMemory{
		store:  store,
		memory: make(map[string]string),
	}
}

// Get retrieves a cached translation for a source phrase.
func (m *TranslationMemory) Get(ctx context.Context, source string) (string, bool) {
	hash := textutil.Hash(source)

	m.mu.RLock()
	if v, ok := m.memory[hash]; ok {
		m.mu.RUnlock()
		return v, true
	}
	m.mu.RUnlock()

	translated, ok := m.store.Get(ctx, hash)
	if !ok {
		return "", false
	}

	m.mu.Lock()
	m.memory[hash] = translated
	m.mu.Unlock()

	return translated, true
}

// Set stores a translation in both layers.
func (m *TranslationMemory) Set(ctx context.Context, source, translated string) error {
	hash := textutil.Hash(source)

	m.mu.Lock()
	m.memory[hash] = translated
	m.mu.Unlock()

	if err := m.store.Set(ctx, hash, translated); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// SetBatch stores multiple translations, stopping at the first failure.
func (m *TranslationMemory) SetBatch(ctx context.Context, pairs map[string]string) error {
	for source, translated := range pairs {
		if err := m.Set(ctx, source, translated); err != nil {
			return err
		}
	}
	return nil
}

func (m *TranslationMemory) Close() error {
	return m.store.Close()
}
