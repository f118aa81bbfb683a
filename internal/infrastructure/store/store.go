// Package store is the Record Store: whole-collection JSON persistence of
// namespaced record sequences over a key-value Backend.
//
// Every collection is read in full, modified in memory and written back in
// full. Writers to the same namespace are serialised by a per-key mutex held
// for the duration of the load-modify-save cycle.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Namespace keys of the persisted state.
const (
	KeyUsers      = "recipe_book_users"
	KeyCategories = "recipe_book_categories"
	KeyRecipes    = "recipe_book_recipes"
	KeyBookmarks  = "saved-recipes"
	KeySession    = "recipe_book_session"
)

// ErrKeyNotFound is returned by a Backend when a key was never written.
var ErrKeyNotFound = errors.New("store: key not found")

// Backend is a durable key-value space. Get returns ErrKeyNotFound for absent
// keys; Delete of an absent key is not an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options controls how a Store treats data it cannot parse.
type Options struct {
	// ResetCorrupt makes unparseable namespaces load as empty (logged and
	// counted) instead of failing with domain.ErrCorruptStorage.
	ResetCorrupt bool
	Log          zerolog.Logger
}

// Store owns the backend and the per-namespace locks.
type Store struct {
	backend      Backend
	resetCorrupt bool
	log          zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wraps backend in a Store.
func New(backend Backend, opts Options) *Store {
	return &Store{
		backend:      backend,
		resetCorrupt: opts.ResetCorrupt,
		log:          opts.Log,
		locks:        make(map[string]*sync.Mutex),
	}
}

// Backend returns the underlying key-value space.
func (s *Store) Backend() Backend {
	return s.backend
}

// Ping checks backend connectivity when the backend supports it.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.backend.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Store) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}
