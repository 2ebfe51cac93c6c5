package store

import (
	"time"

	"freshcart/internal/model"
)

func (s *MemStore) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// GetUserByPhone resolves the unique phone index.
func (s *MemStore) GetUserByPhone(phone string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.userIDByPhone[phone]
	if !ok {
		return model.User{}, false
	}
	u, ok := s.users[id]
	return u, ok
}

// CreateUser inserts a user. It reports false without inserting when the
// phone number is already taken; the check and the insert share one
// critical section, so the phone index stays unique under concurrent
// signups.
func (s *MemStore) CreateUser(u model.User) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userIDByPhone[u.Phone]; taken {
		return model.User{}, false
	}
	u.ID = newID()
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	s.userIDByPhone[u.Phone] = u.ID
	return u, true
}

func (s *MemStore) UpdateUser(id string, upd model.UserUpdate) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	s.users[id] = u
	return u, true
}
