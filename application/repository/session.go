package repository

import (
	"sync"

	"github.com/patrickmn/go-cache"
	"veriface.io/application/constants"
	"veriface.io/application/services/deepfake"
	"veriface.io/application/services/liveness"
	"veriface.io/entities"
)

// SessionRecord bundles a session with its per-session detector state.
// All frame-processing mutations take the record mutex, so a session has
// at most one writer at a time while different sessions process in
// parallel.
type SessionRecord struct {
	Mu       sync.Mutex
	Session  *entities.Session
	Liveness *liveness.Detector
	Deepfake *deepfake.Detector
}

// SessionStore keeps verification sessions in process memory with a TTL.
// Expired sessions take their detector buffers with them.
type SessionStore struct {
	store *cache.Cache
}

var sessionOnce = sync.Once{}

var sessionStore *SessionStore

func SessionRepo() *SessionStore {
	sessionOnce.Do(func() {
		c := cache.New(constants.SessionTTL, constants.SessionSweepInterval)
		c.OnEvicted(func(key string, value interface{}) {
			record, ok := value.(*SessionRecord)
			if !ok {
				return
			}
			record.Mu.Lock()
			defer record.Mu.Unlock()
			if record.Liveness != nil {
				record.Liveness.Close()
			}
			if record.Deepfake != nil {
				record.Deepfake.Close()
			}
		})
		sessionStore = &SessionStore{store: c}
	})
	return sessionStore
}

// Save stores a new session record under its id, refreshing the TTL.
func (s *SessionStore) Save(record *SessionRecord) {
	s.store.Set(record.Session.ID, record, cache.DefaultExpiration)
}

// FindByID returns the live record for a session, or nil when the session
// never existed or has expired.
func (s *SessionStore) FindByID(sessionID string) *SessionRecord {
	value, ok := s.store.Get(sessionID)
	if !ok {
		return nil
	}
	record, ok := value.(*SessionRecord)
	if !ok {
		return nil
	}
	return record
}

// Touch extends a session's TTL after activity.
func (s *SessionStore) Touch(sessionID string) {
	if record := s.FindByID(sessionID); record != nil {
		s.store.Set(sessionID, record, cache.DefaultExpiration)
	}
}

// Delete removes a session immediately, firing the eviction cleanup.
func (s *SessionStore) Delete(sessionID string) {
	s.store.Delete(sessionID)
}

// Count reports the number of live sessions.
func (s *SessionStore) Count() int {
	return s.store.ItemCount()
}
