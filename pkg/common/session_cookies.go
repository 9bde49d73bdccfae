package common

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const sessionCookieName = "sid"

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionId,
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteNoneMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// SessionTracker is the subset of tracking a session touch needs.
type SessionTracker interface {
	TrackSession(sessionId string, r *http.Request)
}

// HandleSessionCookie returns the visitor's session id, minting and setting
// a new one (and emitting a session event) on first contact.
func HandleSessionCookie(trk SessionTracker, w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err == nil && c.Value != "" {
		return c.Value
	}
	sessionId := uuid.NewString()
	if trk != nil {
		go trk.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
