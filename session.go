package whale

import "net/http"

// Session is the explicit authentication context of a run. It is created
// once at startup and handed to the collaborators that need it, there is
// no ambient credential lookup anywhere else.
type Session struct {
	token     string
	anonymous bool
}

// NewSession returns an authenticated session carrying an opaque API
// token. The token's meaning belongs to the backend, it is only ever
// echoed back in the Authorization header.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// AnonymousSession returns the session of a user without an account.
// Anonymous sessions never reach the network, their portfolio lives in a
// local file.
func AnonymousSession() *Session {
	return &Session{anonymous: true}
}

// Anonymous reports whether this session has no account behind it.
func (s *Session) Anonymous() bool { return s.anonymous }

// Clear drops the credential, turning the session anonymous. This is the
// logout operation.
func (s *Session) Clear() {
	s.token = ""
	s.anonymous = true
}

// authorize stamps the bearer token on an outgoing request.
func (s *Session) authorize(req *http.Request) {
	if s.anonymous || s.token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
}
