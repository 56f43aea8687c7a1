package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kevinaaaquil/oct-library/selection"
	"github.com/kevinaaaquil/oct-library/utils"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionCookieName is the cookie holding the visitor's selections. It has no
// Expires or Max-Age so it lives for the browser session only.
const SessionCookieName = "oct_session"

// Session holds the per-visitor selection sets.
type Session struct {
	Reserved   selection.Set
	WantToRead selection.Set
}

type sessionPayload struct {
	Reserved   []string `json:"reserved"`
	WantToRead []string `json:"wantToRead"`
}

type Sessions struct {
	sealer *utils.Sealer
	secure bool
	logger *slog.Logger
}

// NewSessions creates the session cookie codec. secure sets the Secure flag on written cookies.
func NewSessions(sealer *utils.Sealer, secure bool, logger *slog.Logger) *Sessions {
	return &Sessions{sealer: sealer, secure: secure, logger: logger}
}

// Load decodes the visitor's session into the request context. A missing,
// tampered or undecodable cookie yields empty selections.
func (s *Sessions) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), SessionKey, s.read(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Sessions) read(r *http.Request) Session {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return Session{}
	}
	raw, err := s.sealer.Open(c.Value)
	if err != nil {
		s.logger.Debug("discarding unreadable session cookie", "error", err)
		return Session{}
	}
	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Debug("discarding malformed session cookie", "error", err)
		return Session{}
	}
	return Session{
		Reserved:   selection.Of(p.Reserved...),
		WantToRead: selection.Of(p.WantToRead...),
	}
}

// Save writes sess as the visitor's session cookie.
func (s *Sessions) Save(w http.ResponseWriter, sess Session) error {
	raw, err := json.Marshal(sessionPayload{
		Reserved:   sess.Reserved.IDs(),
		WantToRead: sess.WantToRead.IDs(),
	})
	if err != nil {
		return err
	}
	value, err := s.sealer.Seal(raw)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SessionFromContext returns the session loaded by Sessions.Load, or an empty one.
func SessionFromContext(ctx context.Context) Session {
	sess, _ := ctx.Value(SessionKey).(Session)
	return sess
}
