package app

import (
	"context"
	"log"
	"sync"

	"weightloss/internal/domain"
)

// SettingsService holds the display unit preference.
type SettingsService struct {
	kv domain.KVStore

	writeMu sync.Mutex // held across publish and kv write

	mu   sync.RWMutex
	unit domain.Unit
}

// NewSettingsService creates a SettingsService defaulting to kilograms.
func NewSettingsService(kv domain.KVStore) *SettingsService {
	return &SettingsService{kv: kv, unit: domain.Kilograms}
}

// Load reads the persisted display unit; unknown values fall back to kilograms.
func (s *SettingsService) Load(ctx context.Context) {
	unit := domain.Kilograms
	raw, ok, err := s.kv.Get(ctx, domain.KeyDisplayUnit)
	switch {
	case err != nil:
		log.Printf("settings: load: %v", err)
	case ok:
		if u, perr := domain.ParseUnit(raw); perr == nil {
			unit = u
		} else {
			log.Printf("settings: discarding %s=%q", domain.KeyDisplayUnit, raw)
		}
	}
	s.mu.Lock()
	s.unit = unit
	s.mu.Unlock()
}

// DisplayUnit returns the preferred display unit.
func (s *SettingsService) DisplayUnit() domain.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unit
}

// SetDisplayUnit validates and stores the preferred display unit.
func (s *SettingsService) SetDisplayUnit(ctx context.Context, unit string) (domain.Unit, error) {
	u, err := domain.ParseUnit(unit)
	if err != nil {
		return "", err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	s.unit = u
	s.mu.Unlock()

	if err := s.kv.Set(ctx, domain.KeyDisplayUnit, string(u)); err != nil {
		log.Printf("settings: save: %v", err)
	}
	return u, nil
}
