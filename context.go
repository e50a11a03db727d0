package localize

import (
	"context"
	"sync/atomic"
)

type sessionKey struct{}

// NewContext returns a derived context carrying the session, for handing it
// to downstream code that performs translations.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session carried by ctx, falling back to the
// process-wide active session when ctx carries none. Returns nil when
// neither is set.
func FromContext(ctx context.Context) *Session {
	if ctx != nil {
		if s, ok := ctx.Value(sessionKey{}).(*Session); ok {
			return s
		}
	}
	return Active()
}

var active atomic.Pointer[Session]

// SetActive registers s as the process-wide session returned by Active.
// Call it once at application startup; pass nil to clear.
func SetActive(s *Session) {
	active.Store(s)
}

// Active returns the process-wide session registered with SetActive, or nil.
func Active() *Session {
	return active.Load()
}
