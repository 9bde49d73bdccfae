package common

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
)

// WriteJson encodes v onto the response stream.
func WriteJson(w http.ResponseWriter, v any) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

func ReadJson(r *http.Request, v any) error {
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

// JsonHandler wraps a handler with OPTIONS handling and the session cookie.
// Handler errors are logged, the handler itself decides what status was
// already written.
func JsonHandler(trk SessionTracker, fn func(w http.ResponseWriter, r *http.Request, sessionId string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(trk, w, r)

		if err := fn(w, r, sessionId); err != nil {
			log.Printf("Error handling request: %v", err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
