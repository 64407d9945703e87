/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package store provides the in-memory store of visitor sessions.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moonwalkers/moonmap/internal/session/model"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const storeName = "SessionStore"

// SessionStoreInterface defines the interface for visitor session storage.
type SessionStoreInterface interface {
	CreateSession() *model.Session
	AddSession(session *model.Session)
	GetSession(id string) (bool, *model.Session)
	ClearSession(id string)
	ClearSessionStore()
	CleanupExpired()
	GetName() string
}

// sessionStoreEntry represents an entry in the session store.
type sessionStoreEntry struct {
	session    *model.Session
	expiryTime time.Time
}

// SessionStore keeps sessions in memory until their validity period elapses.
type SessionStore struct {
	sessions       map[string]sessionStoreEntry
	validityPeriod time.Duration
	clock          func() time.Time
	mu             sync.RWMutex
}

// NewSessionStore creates a session store. A nil clock defaults to time.Now.
func NewSessionStore(validityPeriod time.Duration, clock func() time.Time) SessionStoreInterface {
	if clock == nil {
		clock = time.Now
	}
	return &SessionStore{
		sessions:       make(map[string]sessionStoreEntry),
		validityPeriod: validityPeriod,
		clock:          clock,
	}
}

// CreateSession creates and stores a new unauthenticated session with a random id.
func (s *SessionStore) CreateSession() *model.Session {
	session := model.NewSession(uuid.NewString(), s.clock())
	s.AddSession(session)
	return session
}

// AddSession adds a session to the store, resetting its expiry.
func (s *SessionStore) AddSession(session *model.Session) {
	if session == nil || session.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = sessionStoreEntry{
		session:    session,
		expiryTime: s.clock().Add(s.validityPeriod),
	}
}

// GetSession retrieves an unexpired session.
func (s *SessionStore) GetSession(id string) (bool, *model.Session) {
	if id == "" {
		return false, nil
	}

	s.mu.RLock()
	entry, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}
	if s.clock().Before(entry.expiryTime) {
		return true, entry.session
	}

	s.ClearSession(id)
	return false, nil
}

// ClearSession removes a session from the store.
func (s *SessionStore) ClearSession(id string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// ClearSessionStore removes all sessions.
func (s *SessionStore) ClearSessionStore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]sessionStoreEntry)
}

// CleanupExpired removes all expired sessions.
func (s *SessionStore) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	cleaned := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiryTime) {
			delete(s.sessions, id)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.GetLogger().Debug("Expired sessions cleaned", log.String(log.LoggerKeyComponentName, storeName),
			log.Int("count", cleaned))
	}
}

// GetName returns the name of the store.
func (s *SessionStore) GetName() string {
	return storeName
}
