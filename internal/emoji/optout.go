// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package emoji

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// OptOutRegistry tracks users who turned shortcut translation off for
// themselves. Membership is the only state: a user is present iff their
// shortcuts are off. It is thread-safe for concurrent access.
//
// The registry survives configuration reloads on purpose: opt-out is a
// user preference, not operator configuration. It lives only for the
// running process and is cleared on full handler teardown.
type OptOutRegistry struct {
	users map[ulid.ULID]struct{}
	mu    sync.RWMutex
}

// NewOptOutRegistry creates an empty registry.
func NewOptOutRegistry() *OptOutRegistry {
	return &OptOutRegistry{users: make(map[ulid.ULID]struct{})}
}

// Has reports whether the user has shortcuts off.
func (r *OptOutRegistry) Has(userID ulid.ULID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userID]
	return ok
}

// Toggle flips the user's opt-out state and returns the new state
// (true means shortcuts are now off). Toggling twice restores the
// original state.
func (r *OptOutRegistry) Toggle(userID ulid.ULID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; ok {
		delete(r.users, userID)
		return false
	}
	r.users[userID] = struct{}{}
	return true
}

// Len returns the number of opted-out users.
func (r *OptOutRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// Clear removes all users.
func (r *OptOutRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.users)
}
