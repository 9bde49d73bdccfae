package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// AdminServer exposes the maintenance surface: refresh, snapshot save and
// cache purge. Everything behind it requires a valid admin token.
type AdminServer struct {
	WebServer *WebServer
	JwtSecret []byte
}

func (as *AdminServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /refresh", as.AuthMiddleware(as.TriggerRefresh))
	mux.HandleFunc("POST /save", as.AuthMiddleware(as.SaveSnapshot))
	mux.HandleFunc("DELETE /cache", as.AuthMiddleware(as.PurgeCache))
	return mux
}

// CreateToken mints an admin token, used by the bootstrap tooling.
func (as *AdminServer) CreateToken(username string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"username": username,
			"role":     "admin",
			"exp":      time.Now().Add(ttl).Unix(),
		})
	return token.SignedString(as.JwtSecret)
}

func (as *AdminServer) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return as.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (as *AdminServer) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	as.WebServer.Catalog.RequestRefresh()
	w.WriteHeader(http.StatusAccepted)
}

func (as *AdminServer) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := as.WebServer.Catalog.SaveToDisk(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (as *AdminServer) PurgeCache(w http.ResponseWriter, r *http.Request) {
	if as.WebServer.Cache == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := as.WebServer.Cache.Purge(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
