// Package services owns the in-memory profile sessions. A session is the
// authoritative copy of a profile for the lifetime of the process; the
// snapshot store only holds serialized copies with no lifecycle of their own.
package services

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/database"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/models"
	"github.com/pushp314/stenpan-backend/pkg/logger"
)

// Catalog is set once at startup, before the router starts serving.
var Catalog *catalog.Catalog

type session struct {
	mu      sync.Mutex
	profile *models.Profile
	custom  *models.Customization

	// seq counts mutations; saveMu serializes the background writers and
	// savedSeq drops out-of-order saves so an older snapshot can never
	// overwrite a newer one.
	seq      uint64
	saveMu   sync.Mutex
	savedSeq uint64

	// persistWarning is set when the last snapshot save failed. It is
	// reported to the client on the next read and cleared on the next
	// successful save; the in-memory state stays authoritative either way.
	persistWarning bool
}

var (
	sessionsMu sync.Mutex
	sessions   = map[string]*session{}
)

func profileKey(id string) string       { return "profile:" + id }
func customizationKey(id string) string { return "customization:" + id }

// getSession returns the session for a profile id, loading it from the
// snapshot store (or creating defaults) on first touch.
func getSession(id string) (*session, error) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	if s, ok := sessions[id]; ok {
		return s, nil
	}

	profile, err := loadProfile(id)
	if err != nil {
		return nil, err
	}
	custom, err := loadCustomization(id)
	if err != nil {
		return nil, err
	}

	s := &session{profile: profile, custom: custom}
	sessions[id] = s
	return s, nil
}

func loadProfile(id string) (*models.Profile, error) {
	raw, err := database.LoadSnapshot(profileKey(id))
	if errors.Is(err, database.ErrSnapshotNotFound) {
		return models.NewProfile(id), nil
	}
	if err != nil {
		return nil, err
	}
	profile := models.NewProfile(id)
	if err := json.Unmarshal([]byte(raw), profile); err != nil {
		// A corrupt snapshot should not brick the profile; start fresh
		// and let the next save overwrite it.
		logger.Warn().Str("profileId", id).Err(err).Msg("Corrupt profile snapshot, starting fresh")
		return models.NewProfile(id), nil
	}
	profile.ID = id
	profile.Normalize()
	return profile, nil
}

func loadCustomization(id string) (*models.Customization, error) {
	raw, err := database.LoadSnapshot(customizationKey(id))
	if errors.Is(err, database.ErrSnapshotNotFound) {
		return models.NewCustomization(), nil
	}
	if err != nil {
		return nil, err
	}
	custom := models.NewCustomization()
	if err := json.Unmarshal([]byte(raw), custom); err != nil {
		logger.Warn().Str("profileId", id).Err(err).Msg("Corrupt customization snapshot, starting fresh")
		return models.NewCustomization(), nil
	}
	custom.Normalize()
	return custom, nil
}

// Result carries the state a handler needs after an operation completed.
// Both copies are detached from the session: handlers serialize them after
// the session lock is released, while other requests keep mutating.
type Result struct {
	Profile        models.Profile
	Customization  models.Customization
	PersistWarning bool
}

// result builds a detached Result. Caller must hold s.mu.
func (s *session) result() Result {
	return Result{
		Profile:        s.profile.Clone(),
		Customization:  *s.custom,
		PersistWarning: s.persistWarning,
	}
}

// WithLedger runs fn with exclusive access to the profile's ledger, then
// persists both snapshots fire-and-forget. Operations on the same profile
// are serialized by the session mutex; the save never blocks the caller,
// and a save failure is a warning, not a rollback.
func WithLedger(profileID string, fn func(l *economy.Ledger) error) (Result, error) {
	s, err := getSession(profileID)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := economy.NewLedger(s.profile, s.custom, Catalog)
	if err := fn(ledger); err != nil {
		return s.result(), err
	}

	s.saveAsync(profileID)

	return s.result(), nil
}

// View runs fn read-only, without triggering a save.
func View(profileID string, fn func(l *economy.Ledger)) (Result, error) {
	s, err := getSession(profileID)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fn(economy.NewLedger(s.profile, s.custom, Catalog))

	return s.result(), nil
}

// Reset discards the profile and customization and persists the defaults.
func Reset(profileID string) (Result, error) {
	s, err := getSession(profileID)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = models.NewProfile(profileID)
	s.custom = models.NewCustomization()
	s.saveAsync(profileID)

	return s.result(), nil
}

// saveAsync snapshots the current state and writes it in the background.
// Caller must hold s.mu; the copies taken here keep the write consistent
// even as later operations keep mutating the session.
func (s *session) saveAsync(id string) {
	s.seq++
	seq := s.seq

	profileJSON, err := json.Marshal(s.profile)
	if err != nil {
		logger.Error().Str("profileId", id).Err(err).Msg("Failed to serialize profile")
		return
	}
	customJSON, err := json.Marshal(s.custom)
	if err != nil {
		logger.Error().Str("profileId", id).Err(err).Msg("Failed to serialize customization")
		return
	}

	go func() {
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq <= s.savedSeq {
			// A newer snapshot already landed; writing this one would
			// persist stale state.
			return
		}

		failed := false
		if err := database.SaveSnapshot(profileKey(id), string(profileJSON)); err != nil {
			logger.Warn().Str("profileId", id).Err(err).Msg("Profile snapshot save failed; recent progress may not survive a restart")
			failed = true
		}
		if err := database.SaveSnapshot(customizationKey(id), string(customJSON)); err != nil {
			logger.Warn().Str("profileId", id).Err(err).Msg("Customization snapshot save failed")
			failed = true
		}
		s.savedSeq = seq

		s.mu.Lock()
		s.persistWarning = failed
		s.mu.Unlock()
	}()
}

// DropSessions clears the in-memory session cache. Test helper.
func DropSessions() {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	sessions = map[string]*session{}
}
