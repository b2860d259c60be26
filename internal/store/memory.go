package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-mempass/models"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = ":memory:"

// memoryStorage keeps the whole vault in memory and, unless it is purely
// in-memory, mirrors every change to a single JSON file. A change is applied
// to a copy of the state, written out, and only then adopted, so a failed
// write leaves both the file and the in-memory state untouched.
type memoryStorage struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	state *persistedVault
}

type persistedVault struct {
	Settings   *models.VaultSettings `json:"settings,omitempty"`
	Entries    []models.VaultEntry   `json:"entries"`
	Lockout    models.LockoutState   `json:"lockout"`
	LastExport *time.Time            `json:"lastExport,omitempty"`
}

// NewMemoryStorage returns a [VaultStorage] kept in memory. A dbPath other
// than "", ":memory:" or "memory" names the JSON file the vault is loaded
// from and saved to.
func NewMemoryStorage(dbPath string) (VaultStorage, error) {
	if dbPath == "" {
		dbPath = MemoryDSN
	}

	inMemory := dbPath == MemoryDSN || dbPath == "memory"
	s := &memoryStorage{
		path:     dbPath,
		inMemory: inMemory,
		state:    &persistedVault{},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *memoryStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st persistedVault
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode local storage file: %w", ErrCorruptState, err)
	}

	for i := range st.Entries {
		st.Entries[i].ID = models.NormalizeEntryID(st.Entries[i].ID.String())
	}
	s.state = &st

	return nil
}

func (s *memoryStorage) persist(st *persistedVault) error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}

// update applies fn to a copy of the state and adopts it once it is saved.
func (s *memoryStorage) update(fn func(st *persistedVault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (st *persistedVault) clone() *persistedVault {
	c := &persistedVault{Lockout: st.Lockout}
	if st.Settings != nil {
		settings := *st.Settings
		if settings.Canary != nil {
			canary := *settings.Canary
			settings.Canary = &canary
		}
		c.Settings = &settings
	}
	if st.Lockout.LockUntil != nil {
		until := *st.Lockout.LockUntil
		c.Lockout.LockUntil = &until
	}
	if st.LastExport != nil {
		at := *st.LastExport
		c.LastExport = &at
	}
	c.Entries = make([]models.VaultEntry, len(st.Entries))
	for i, e := range st.Entries {
		c.Entries[i] = e.Clone()
	}
	return c
}

func (st *persistedVault) indexOf(id models.EntryID) int {
	id = models.NormalizeEntryID(id.String())
	for i := range st.Entries {
		if st.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *memoryStorage) GetSettings(_ context.Context) (*models.VaultSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Settings == nil {
		return nil, nil
	}
	return s.state.clone().Settings, nil
}

func (s *memoryStorage) SaveSettings(_ context.Context, settings models.VaultSettings) error {
	return s.update(func(st *persistedVault) error {
		st.Settings = &settings
		return nil
	})
}

func (s *memoryStorage) ListEntries(_ context.Context) ([]models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.VaultEntry, len(s.state.Entries))
	for i, e := range s.state.Entries {
		out[i] = e.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created.Before(out[j].Created)
	})
	return out, nil
}

func (s *memoryStorage) GetEntry(_ context.Context, id models.EntryID) (models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.state.indexOf(id)
	if i < 0 {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	return s.state.Entries[i].Clone(), nil
}

func (s *memoryStorage) SaveEntry(_ context.Context, entry models.VaultEntry) error {
	entry = entry.Clone()
	entry.ID = models.NormalizeEntryID(entry.ID.String())

	return s.update(func(st *persistedVault) error {
		if i := st.indexOf(entry.ID); i >= 0 {
			st.Entries[i] = entry
			return nil
		}
		st.Entries = append(st.Entries, entry)
		return nil
	})
}

func (s *memoryStorage) DeleteEntry(_ context.Context, id models.EntryID) error {
	return s.update(func(st *persistedVault) error {
		i := st.indexOf(id)
		if i < 0 {
			return ErrEntryNotFound
		}
		st.Entries = append(st.Entries[:i], st.Entries[i+1:]...)
		return nil
	})
}

func (s *memoryStorage) ReplaceVault(_ context.Context, settings *models.VaultSettings, entries []models.VaultEntry) error {
	return s.update(func(st *persistedVault) error {
		if settings != nil {
			c := *settings
			st.Settings = &c
		}
		st.Entries = make([]models.VaultEntry, len(entries))
		for i, e := range entries {
			e = e.Clone()
			e.ID = models.NormalizeEntryID(e.ID.String())
			st.Entries[i] = e
		}
		return nil
	})
}

func (s *memoryStorage) GetLockout(_ context.Context) (models.LockoutState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone().Lockout, nil
}

func (s *memoryStorage) SaveLockout(_ context.Context, state models.LockoutState) error {
	return s.update(func(st *persistedVault) error {
		st.Lockout = state
		return nil
	})
}

func (s *memoryStorage) LastExport(_ context.Context) (*time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.LastExport == nil {
		return nil, nil
	}
	at := *s.state.LastExport
	return &at, nil
}

func (s *memoryStorage) RecordExport(_ context.Context, at time.Time) error {
	return s.update(func(st *persistedVault) error {
		st.LastExport = &at
		return nil
	})
}

func (s *memoryStorage) Wipe(_ context.Context) error {
	return s.update(func(st *persistedVault) error {
		*st = persistedVault{}
		return nil
	})
}

func (s *memoryStorage) Close() error {
	return nil
}

