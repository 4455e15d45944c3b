// Package app holds the application services and business logic.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"sort"
	"sync"
	"time"

	"weightloss/internal/domain"
)

// EntryStore owns the collection of weight entries and mirrors it into a
// key-value store. Mutations replace the backing slice so snapshots handed
// out by List are never modified afterwards.
type EntryStore struct {
	kv  domain.KVStore
	now func() time.Time

	// writeMu serializes publishing a snapshot with writing it to kv.
	// Acquired before mu.
	writeMu sync.Mutex

	mu      sync.RWMutex
	entries []domain.WeightEntry
	lastID  int64
}

// NewEntryStore creates an empty EntryStore backed by the given store.
// Call Load to populate it from persisted state.
func NewEntryStore(kv domain.KVStore) *EntryStore {
	return &EntryStore{kv: kv, now: time.Now}
}

// WithClock replaces the time source used for id generation.
func (s *EntryStore) WithClock(now func() time.Time) *EntryStore {
	s.now = now
	return s
}

// Load replaces the in-memory collection with the persisted one. Missing,
// unreadable or malformed data yields an empty collection.
func (s *EntryStore) Load(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	entries := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.lastID = 0
	for _, e := range entries {
		s.lastID = max(s.lastID, e.ID)
	}
}

func (s *EntryStore) read(ctx context.Context) []domain.WeightEntry {
	raw, ok, err := s.kv.Get(ctx, domain.KeyEntries)
	if err != nil {
		log.Printf("entries: load: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var stored []domain.WeightEntry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("entries: discarding malformed %s: %v", domain.KeyEntries, err)
		return nil
	}

	seen := make(map[int64]bool, len(stored))
	out := make([]domain.WeightEntry, 0, len(stored))
	for _, e := range stored {
		if seen[e.ID] || e.Weight <= 0 {
			continue
		}
		if _, err := e.Day(); err != nil {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	if dropped := len(stored) - len(out); dropped > 0 {
		log.Printf("entries: dropped %d invalid records", dropped)
	}
	return out
}

// Save writes the full collection to the store.
func (s *EntryStore) Save(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.RLock()
	snapshot := s.entries
	s.mu.RUnlock()
	return s.write(ctx, snapshot)
}

func (s *EntryStore) write(ctx context.Context, entries []domain.WeightEntry) error {
	if entries == nil {
		entries = []domain.WeightEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := s.kv.Set(ctx, domain.KeyEntries, string(b)); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}

// persist mirrors a freshly published snapshot. The in-memory state stays
// authoritative when the write fails.
func (s *EntryStore) persist(ctx context.Context, snapshot []domain.WeightEntry) {
	if err := s.write(ctx, snapshot); err != nil {
		log.Printf("entries: %v", err)
	}
}

// Add records a new entry with weight given in kilograms.
func (s *EntryStore) Add(ctx context.Context, weight, date string) (domain.WeightEntry, error) {
	return s.AddIn(ctx, weight, date, domain.Kilograms)
}

// AddIn records a new entry with weight given in unit.
func (s *EntryStore) AddIn(ctx context.Context, weight, date string, unit domain.Unit) (domain.WeightEntry, error) {
	kg, day, err := parseEntry(weight, date, unit)
	if err != nil {
		return domain.WeightEntry{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	id := s.nextID()
	e := domain.WeightEntry{ID: id, Weight: kg, Date: day}
	next := append(slices.Clone(s.entries), e)
	s.entries = next
	s.mu.Unlock()

	s.persist(ctx, next)
	return e, nil
}

// nextID returns a millisecond timestamp, bumped past the last issued id so
// ids stay unique and increasing. Caller must hold mu.
func (s *EntryStore) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Edit replaces the weight (kilograms) and date of the entry with the given id.
func (s *EntryStore) Edit(ctx context.Context, id int64, weight, date string) (domain.WeightEntry, error) {
	return s.EditIn(ctx, id, weight, date, domain.Kilograms)
}

// EditIn replaces the weight (given in unit) and date of an entry.
func (s *EntryStore) EditIn(ctx context.Context, id int64, weight, date string, unit domain.Unit) (domain.WeightEntry, error) {
	kg, day, err := parseEntry(weight, date, unit)
	if err != nil {
		return domain.WeightEntry{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.WeightEntry{}, &domain.NotFoundError{ID: id}
	}
	next := slices.Clone(s.entries)
	next[i].Weight = kg
	next[i].Date = day
	e := next[i]
	s.entries = next
	s.mu.Unlock()

	s.persist(ctx, next)
	return e, nil
}

// Delete removes the entry with the given id. Unknown ids are ignored.
func (s *EntryStore) Delete(ctx context.Context, id int64) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	next := slices.Delete(slices.Clone(s.entries), i, i+1)
	s.entries = next
	s.mu.Unlock()

	s.persist(ctx, next)
}

func (s *EntryStore) indexOf(id int64) int {
	return slices.IndexFunc(s.entries, func(e domain.WeightEntry) bool { return e.ID == id })
}

// Get returns the entry with the given id.
func (s *EntryStore) Get(id int64) (domain.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.entries[i], nil
	}
	return domain.WeightEntry{}, &domain.NotFoundError{ID: id}
}

// List returns a copy of the entries sorted ascending by date. Entries on the
// same date keep their insertion order.
func (s *EntryStore) List() []domain.WeightEntry {
	s.mu.RLock()
	snapshot := s.entries
	s.mu.RUnlock()
	return SortByDate(snapshot)
}

// Latest returns the most recent entry by date.
func (s *EntryStore) Latest() (domain.WeightEntry, bool) {
	sorted := s.List()
	if len(sorted) == 0 {
		return domain.WeightEntry{}, false
	}
	return sorted[len(sorted)-1], true
}

// Len returns the number of entries.
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// SortByDate returns a date-ordered copy of entries, stable on input order.
func SortByDate(entries []domain.WeightEntry) []domain.WeightEntry {
	out := make([]domain.WeightEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func parseEntry(weight, date string, unit domain.Unit) (float64, string, error) {
	if !unit.Valid() {
		return 0, "", &domain.ValidationError{Field: "unit", Reason: fmt.Sprintf("unknown unit %q", unit)}
	}
	v, err := domain.ParseWeight(weight)
	if err != nil {
		return 0, "", err
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return 0, "", err
	}
	return domain.Convert(v, unit, domain.Kilograms), day, nil
}
