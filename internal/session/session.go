// Package session tracks authenticated users and the in-memory state that
// lives exactly as long as their login: favorites, watchlist, last results
// shown, and recent searches. Nothing here is persisted; logout or process
// exit discards it.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/flickfinder/flickfinder/internal/collection"
	"github.com/flickfinder/flickfinder/internal/models"
)

const (
	tokenLifetime    = 24 * time.Hour
	maxRecentQueries = 10
)

type Session struct {
	ID          string
	UserID      int
	Username    string
	Collections *collection.Store
	StartedAt   time.Time

	mu          sync.Mutex
	lastResults []models.Movie
	recent      []string
}

// SetLastResults remembers the movies the user was last shown, so that a
// later "add movie 603" can be resolved against them.
func (s *Session) SetLastResults(movies []models.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResults = make([]models.Movie, len(movies))
	copy(s.lastResults, movies)
}

// FindInLastResults looks a movie up in the last shown results.
func (s *Session) FindInLastResults(movieID int) (models.Movie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.lastResults {
		if m.ID == movieID {
			return m, true
		}
	}
	return models.Movie{}, false
}

// RecordQuery pushes a search query onto the recent-search history, most
// recent first. Repeated queries move to the front instead of duplicating.
func (s *Session) RecordQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.recent {
		if q == query {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append([]string{query}, s.recent...)
	if len(s.recent) > maxRecentQueries {
		s.recent = s.recent[:maxRecentQueries]
	}
}

func (s *Session) RecentQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// Manager issues signed bearer tokens and maps them to live sessions. The
// server-side map makes logout an actual revocation: a token whose session
// is gone is rejected even before it expires.
type Manager struct {
	secret []byte

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret:   []byte(secret),
		sessions: make(map[string]*Session),
	}
}

// Create starts a session for an authenticated user and returns the signed
// token the client presents on subsequent requests.
func (m *Manager) Create(userID int, username string) (string, *Session, error) {
	sessionID := uuid.New().String()

	claims := jwt.MapClaims{
		"sub": username,
		"uid": userID,
		"jti": sessionID,
		"exp": time.Now().Add(tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("signing session token: %w", err)
	}

	sess := &Session{
		ID:          sessionID,
		UserID:      userID,
		Username:    username,
		Collections: collection.NewStore(),
		StartedAt:   time.Now(),
	}

	m.mu.Lock()
	m.sessions[sessionID] = sess
	m.mu.Unlock()

	return token, sess, nil
}

// Lookup verifies a token and resolves its live session.
func (m *Manager) Lookup(token string) (*Session, bool) {
	sessionID, ok := m.parseSessionID(token)
	if !ok {
		return nil, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	return sess, ok
}

// Destroy ends the session for a token. Ending an already-ended session is
// a no-op.
func (m *Manager) Destroy(token string) {
	sessionID, ok := m.parseSessionID(token)
	if !ok {
		return
	}

	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}

func (m *Manager) parseSessionID(token string) (string, bool) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sessionID, ok := claims["jti"].(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
