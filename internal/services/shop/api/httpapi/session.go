package httpapi

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/louisbranch/storefront/internal/services/shop/engine"
)

const sessionCookieName = "storefront_session"

// sessionTTL bounds how long an idle browser session keeps its cart.
const sessionTTL = 24 * time.Hour

// webSession pairs one engine session with its expiry.
type webSession struct {
	session   *engine.Session
	expiresAt time.Time
}

// sessionStore is a thread-safe in-memory session store keyed by cookie ID.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*webSession
	ttl      time.Duration
	clock    func() time.Time
}

// newSessionStore creates an empty session store.
func newSessionStore(ttl time.Duration, clock func() time.Time) *sessionStore {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &sessionStore{
		sessions: make(map[string]*webSession),
		ttl:      ttl,
		clock:    clock,
	}
}

// create stores a new session and returns its ID. Creation also reaps
// every expired entry so abandoned cookies cannot pin engine sessions
// forever.
func (s *sessionStore) create(session *engine.Session) string {
	id := randomHex(16)
	now := s.clock()

	s.mu.Lock()
	var expired []*engine.Session
	for key, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, key)
			expired = append(expired, sess.session)
		}
	}
	s.sessions[id] = &webSession{
		session:   session,
		expiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Logout()
	}
	return id
}

// get returns a session by ID, or nil if missing or expired. A hit slides
// the expiry forward. Expiring a session logs it out of the engine, so a
// lapsed operator session stops arming the restock monitor.
func (s *sessionStore) get(id string) *engine.Session {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	if s.clock().After(sess.expiresAt) {
		delete(s.sessions, id)
		s.mu.Unlock()
		sess.session.Logout()
		return nil
	}
	sess.expiresAt = s.clock().Add(s.ttl)
	s.mu.Unlock()
	return sess.session
}

// randomHex generates a cryptographically random hex string of n bytes.
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// sessionFor resolves the engine session behind the request cookie,
// creating a fresh anonymous session and setting the cookie when none
// exists.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *engine.Session {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if session := s.sessions.get(cookie.Value); session != nil {
			return session
		}
	}

	session := s.engine.NewSession()
	id := s.sessions.create(session)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session
}
