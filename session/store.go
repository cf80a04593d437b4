package session

import (
	"arka/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

// Store keeps sessions in memory, guarded by a RWMutex. Sessions expire
// after sessionTTL and are swept by the cleanup routine.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
	}
}

func (s *Store) Create(member *models.Member) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.New().String()
	session := &models.Session{
		ID:         sessionID,
		MemberID:   member.ID,
		FamilyID:   member.FamilyID,
		Email:      member.Email,
		Name:       member.Name,
		Role:       member.Role,
		ExpiresAt:  time.Now().Add(sessionTTL),
		CreatedAt:  time.Now(),
		LastUsedAt: time.Now(),
	}

	s.sessions[sessionID] = session
	return session, nil
}

func (s *Store) Get(sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}

	return session, nil
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// DeleteByMember drops every session belonging to a member. Used when a
// member is removed from the family.
func (s *Store) DeleteByMember(memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.MemberID == memberID {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			s.CleanupExpired()
		}
	}()
}
