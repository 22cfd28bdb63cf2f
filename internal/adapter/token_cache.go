// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sync"
	"time"
)

const (
	// tokenRefreshMargin is subtracted from the advertised lifetime so a token
	// is never used in the last minutes before it expires.
	tokenRefreshMargin = 5 * time.Minute

	defaultTokenLifetime = time.Hour
)

// TokenCache holds one OAuth access token together with its expiry.
// It is safe for concurrent use.
type TokenCache struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	now func() time.Time
}

// NewTokenCache returns an empty cache.
func NewTokenCache() *TokenCache {
	return &TokenCache{now: time.Now}
}

// Get returns the cached token if it is still outside the refresh margin.
func (c *TokenCache) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" || !c.now().Before(c.expiresAt.Add(-tokenRefreshMargin)) {
		return "", false
	}
	return c.token, true
}

// Set stores token for lifetime. A non-positive lifetime uses one hour.
func (c *TokenCache) Set(token string, lifetime time.Duration) {
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.expiresAt = c.now().Add(lifetime)
}

// Invalidate drops the cached token so the next Get misses.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}

// ExpiresAt returns the expiry of the cached token.
func (c *TokenCache) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiresAt
}
