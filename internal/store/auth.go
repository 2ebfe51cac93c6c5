package store

import (
	"time"

	"freshcart/internal/model"

	"golang.org/x/crypto/bcrypt"
)

const maxCodeAttempts = 3

// CreateVerificationCode stores a one-time login code for the phone.
// Only the bcrypt hash of the code is kept.
func (s *MemStore) CreateVerificationCode(phone string, codeHash []byte, ttl time.Duration) model.VerificationCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := model.VerificationCode{
		ID:        newID(),
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	s.codes[c.ID] = c
	addToIndex(s.codeIDsByPhone, phone, c.ID)
	return c
}

// ConsumeVerificationCode validates code against the phone's outstanding
// codes. A code is only considered while it is unused, unexpired and has
// fewer than maxCodeAttempts failed attempts. A successful match marks
// the code used; a mismatch counts as a failed attempt against the
// candidate it was compared to.
func (s *MemStore) ConsumeVerificationCode(phone, code string) (model.VerificationCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id := range s.codeIDsByPhone[phone] {
		c, ok := s.codes[id]
		if !ok || c.IsUsed || c.Attempts >= maxCodeAttempts || c.ExpiresAt.Before(now) {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.CodeHash, []byte(code)) == nil {
			c.IsUsed = true
			s.codes[id] = c
			return c, true
		}
		c.Attempts++
		s.codes[id] = c
	}
	return model.VerificationCode{}, false
}

// CreateSession stores a login session keyed by the SHA-256 digest of
// the signed token.
func (s *MemStore) CreateSession(userID, tokenDigest string, expiresAt time.Time) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := model.Session{
		ID:          newID(),
		UserID:      userID,
		TokenDigest: tokenDigest,
		IsActive:    true,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now(),
	}
	s.sessions[sess.ID] = sess
	s.sessionIDByDigest[tokenDigest] = sess.ID
	return sess
}

// GetSession resolves a token digest to its session, only while the
// session is active and unexpired.
func (s *MemStore) GetSession(tokenDigest string) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessionIDByDigest[tokenDigest]
	if !ok {
		return model.Session{}, false
	}
	sess, ok := s.sessions[id]
	if !ok || !sess.IsActive || sess.ExpiresAt.Before(time.Now()) {
		return model.Session{}, false
	}
	return sess, true
}

func (s *MemStore) InvalidateSession(tokenDigest string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.sessionIDByDigest[tokenDigest]
	if !ok {
		return false
	}
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.IsActive = false
	s.sessions[id] = sess
	return true
}

// CleanupExpiredAuth drops expired verification codes and expired or
// invalidated sessions, returning how many of each were removed. Called
// on a ticker from the entrypoint.
func (s *MemStore) CleanupExpiredAuth() (codes, sessions int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, c := range s.codes {
		if c.IsUsed || c.ExpiresAt.Before(now) {
			delete(s.codes, id)
			removeFromIndex(s.codeIDsByPhone, c.Phone, id)
			codes++
		}
	}
	for id, sess := range s.sessions {
		if !sess.IsActive || sess.ExpiresAt.Before(now) {
			delete(s.sessions, id)
			delete(s.sessionIDByDigest, sess.TokenDigest)
			sessions++
		}
	}
	return codes, sessions
}
