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

// Package model defines the visitor session and the identity it carries.
package model

import (
	"sync"
	"time"
)

// State is the authentication state of a visitor session.
type State string

const (
	// StateUnauthenticated is the initial state of every session.
	StateUnauthenticated State = "UNAUTHENTICATED"
	// StateAuthenticated is reached only after the role check admits the visitor.
	StateAuthenticated State = "AUTHENTICATED"
)

// Identity is the identity provider's view of a signed-in visitor.
type Identity struct {
	ID         string                 `json:"id"`
	Username   string                 `json:"username"`
	Attributes map[string]interface{} `json:"-"`
}

// IsEmpty reports whether the identity carries no user id.
func (i *Identity) IsEmpty() bool {
	return i == nil || i.ID == ""
}

// Session is the per-visitor authentication state. Identity is set if and only if
// the state is AUTHENTICATED.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu            sync.Mutex
	state         State
	identity      *Identity
	consumedCodes map[string]struct{}
	notice        string
}

// NewSession creates an unauthenticated session.
func NewSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:            id,
		CreatedAt:     createdAt,
		state:         StateUnauthenticated,
		consumedCodes: make(map[string]struct{}),
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the stored identity, or nil when unauthenticated.
func (s *Session) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// IsAuthenticated reports whether the session is AUTHENTICATED.
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Authenticate moves the session to AUTHENTICATED with the given identity.
// It returns false, leaving the session unchanged, if the session is already
// authenticated or the identity is empty.
func (s *Session) Authenticate(identity *Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnauthenticated || identity.IsEmpty() {
		return false
	}
	s.state = StateAuthenticated
	s.identity = identity
	return true
}

// End drops the identity and returns the session to UNAUTHENTICATED.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateUnauthenticated
	s.identity = nil
}

// ConsumeCode marks a callback code as used. It returns false if the code was
// already consumed by this session.
func (s *Session) ConsumeCode(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, used := s.consumedCodes[code]; used {
		return false
	}
	s.consumedCodes[code] = struct{}{}
	return true
}

// SetNotice stores a one-time message to show on the visitor's next request.
func (s *Session) SetNotice(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = message
}

// TakeNotice returns and clears the pending one-time message.
func (s *Session) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	notice := s.notice
	s.notice = ""
	return notice
}
