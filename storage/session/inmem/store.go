package inmemstore

import (
	"sync"

	"github.com/mentoralabs/mentora/core/user"
)

// store keeps the session in memory only; used in tests and as a fallback
// when no local database is wanted.
type store struct {
	mutex  sync.RWMutex
	token  string
	usr    user.User
	usrSet bool
}

var _ user.Store = (*store)(nil)

func NewStore() user.Store {
	return &store{}
}

func (s *store) Token() (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.token, nil
}

func (s *store) SaveToken(token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.token = token
	return nil
}

func (s *store) User() (user.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.usrSet {
		return user.User{}, user.ErrNotAuthenticated
	}
	return s.usr, nil
}

func (s *store) SaveUser(usr user.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.usr = usr
	s.usrSet = true
	return nil
}

func (s *store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.token = ""
	s.usr = user.User{}
	s.usrSet = false
	return nil
}
