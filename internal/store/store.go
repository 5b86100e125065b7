// Package store owns the four authoritative collections — clients, services,
// appointments and shop settings. Every mutation persists the whole affected
// collection synchronously before returning; readers get deep copies so
// nothing outside the store can touch collection state.
package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/jinzhu/copier"

	"barber-agenda/internal/domain"
	"barber-agenda/internal/infra/kv"
	"barber-agenda/internal/pkg/clock"
	"barber-agenda/internal/pkg/errs"
	"barber-agenda/internal/pkg/ident"
)

// Storage keys, namespaced per collection. Each key holds one JSON document.
const (
	keyClients      = "barber_clients"
	keyServices     = "barber_services"
	keyAppointments = "barber_appointments"
	keySettings     = "barber_settings"
)

type Store struct {
	kv    kv.Store
	clock clock.Clock
	ids   ident.Generator
	log   *slog.Logger

	mu           sync.RWMutex
	clients      []domain.Client
	services     []domain.Service
	appointments []domain.Appointment
	settings     domain.Settings
}

// New loads persisted state from kvs. A missing services key means first run:
// the default catalog is seeded so the shop is not empty. A services key that
// holds an empty list is honored verbatim. Unreadable or malformed blobs
// degrade to empty collections; startup never fails on bad data, only on a
// failed seed write.
func New(kvs kv.Store, clk clock.Clock, ids ident.Generator, log *slog.Logger) (*Store, error) {
	s := &Store{
		kv:    kvs,
		clock: clk,
		ids:   ids,
		log:   log,
	}

	s.clients = loadSlice[domain.Client](kvs, log, keyClients)

	services, found := loadSliceFound[domain.Service](kvs, log, keyServices)
	if found {
		s.services = services
	} else {
		s.services = defaultCatalog()
		if err := s.persist(keyServices, s.services); err != nil {
			return nil, err
		}
		log.Info("seeded default service catalog", "services", len(s.services))
	}

	s.appointments = loadSlice[domain.Appointment](kvs, log, keyAppointments)
	s.settings = loadSettings(kvs, log)

	return s, nil
}

func loadSlice[T any](kvs kv.Store, log *slog.Logger, key string) []T {
	out, _ := loadSliceFound[T](kvs, log, key)
	return out
}

// loadSliceFound reports whether the key held usable data, which the caller
// needs to tell "first run" apart from "deliberately empty".
func loadSliceFound[T any](kvs kv.Store, log *slog.Logger, key string) ([]T, bool) {
	raw, ok, err := kvs.Get(key)
	if err != nil {
		log.Warn("unreadable collection, starting empty", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn("corrupt collection, starting empty", "key", key, "error", err)
		return nil, false
	}
	return out, true
}

func loadSettings(kvs kv.Store, log *slog.Logger) domain.Settings {
	raw, ok, err := kvs.Get(keySettings)
	if err != nil || !ok {
		if err != nil {
			log.Warn("unreadable settings, using defaults", "error", err)
		}
		return domain.DefaultSettings()
	}
	settings := domain.DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Warn("corrupt settings, using defaults", "error", err)
		return domain.DefaultSettings()
	}
	return settings
}

// persist writes one whole collection under its key. Failures carry
// errs.ErrStorage regardless of provider.
func (s *Store) persist(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "encode %s", key), errs.ErrStorage)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return errs.Mark(errs.Wrapf(err, "persist %s", key), errs.ErrStorage)
	}
	return nil
}

// deepCopy hands callers their own copy of src so internal slices are never
// shared outside the store.
func deepCopy[T any](src T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on incompatible shapes; src and dst share a type.
		panic(err)
	}
	return dst
}

// orEmpty keeps exported snapshots shaped as arrays, never null.
func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func (s *Store) now() int64 {
	return s.clock.Now().UnixMilli()
}
