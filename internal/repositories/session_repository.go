package repositories

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"aarav/internal/models/trip_models"
)

// Sessions idle past the TTL are evicted to keep memory bounded.
const (
	sessionTTL    = 24 * time.Hour
	sweepInterval = 10 * time.Minute
)

// SessionRepository hands out and persists in-memory sessions. An unknown or
// empty id always yields a fresh session, never an error. Writes are
// last-write-wins; the expected usage is one in-flight turn per session.
type SessionRepository interface {
	GetOrCreate(id string) (string, *trip_models.Session)
	Get(id string) (*trip_models.Session, bool)
	Save(s *trip_models.Session)
}

type cacheSessionRepository struct {
	store *gocache.Cache
}

func NewSessionRepository() SessionRepository {
	return &cacheSessionRepository{
		store: gocache.New(sessionTTL, sweepInterval),
	}
}

func (r *cacheSessionRepository) GetOrCreate(id string) (string, *trip_models.Session) {
	if id != "" {
		if v, ok := r.store.Get(id); ok {
			return id, v.(*trip_models.Session)
		}
	}

	if id == "" {
		id = uuid.New().String()
	}
	s := trip_models.NewSession(id)
	r.store.Set(id, s, gocache.DefaultExpiration)
	return id, s
}

func (r *cacheSessionRepository) Get(id string) (*trip_models.Session, bool) {
	v, ok := r.store.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*trip_models.Session), true
}

// Save refreshes the TTL so active conversations are never evicted mid-trip.
func (r *cacheSessionRepository) Save(s *trip_models.Session) {
	r.store.Set(s.ID, s, gocache.DefaultExpiration)
}
