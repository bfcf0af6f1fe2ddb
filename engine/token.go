package engine

// Token is a liveness handle for deferred work
// A task scheduled with a dead token is skipped silently
type Token struct {
	alive bool
}

// NewToken returns a live token
func NewToken() *Token {
	return &Token{alive: true}
}

// Alive reports whether work guarded by the token may still run
// A nil token never expires
func (t *Token) Alive() bool {
	return t == nil || t.alive
}

// Kill invalidates the token; idempotent
func (t *Token) Kill() {
	if t != nil {
		t.alive = false
	}
}
