package utils

import (
	"context"
	"sync"
	"time"
)

// revokedEntry keeps expiration metadata for a revoked session.
type revokedEntry struct {
	expiresAt time.Time
}

var (
	revoked   = map[string]revokedEntry{}
	revokedMu sync.RWMutex
)

// RevokeSession marks a session id (jti) as logged out until the token's
// natural expiration. Redis is preferred so revocation survives restarts;
// when Redis is unreachable the in-memory map is used instead.
func RevokeSession(jti string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, "session:revoked:"+jti, "1", ttl).Err(); err == nil {
			return
		}
	}
	revokedMu.Lock()
	revoked[jti] = revokedEntry{expiresAt: expiresAt}
	revokedMu.Unlock()
}

// IsSessionRevoked reports whether a session id was logged out before
// natural expiration.
func IsSessionRevoked(jti string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if n, err := rc.Exists(ctx, "session:revoked:"+jti).Result(); err == nil && n > 0 {
			return true
		}
	}

	revokedMu.RLock()
	entry, ok := revoked[jti]
	revokedMu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(entry.expiresAt) {
		revokedMu.Lock()
		delete(revoked, jti)
		revokedMu.Unlock()
		return false
	}

	return true
}
