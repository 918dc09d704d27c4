package httpapi

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/cahfua/restaurant-api/internal/service"

	"github.com/gorilla/mux"
)

const (
	sessionCookie = "session"
	stateCookie   = "oauth_state"
)

func (h *Handler) registerAuthRoutes(r *mux.Router) {
	r.HandleFunc("/auth/google", h.startGoogleLogin).Methods("GET")
	r.HandleFunc("/auth/google/callback", h.googleCallback).Methods("GET")
	r.HandleFunc("/auth/failure", h.authFailure).Methods("GET")
	r.HandleFunc("/auth/logout", h.logout).Methods("GET")
	r.HandleFunc("/auth/status", h.authStatus).Methods("GET")
}

// RequireAuth rejects the request with 401 unless the session cookie
// resolves to an authenticated user. The user is placed on the context.
func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok, err := h.Auth.CurrentUser(r.Context(), sessionToken(r))
		if err != nil {
			log.Printf("session lookup: %v", err)
			writeError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}
		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

func (h *Handler) startGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := service.NewStateToken()
	if err != nil {
		h.failureRedirect(w, r, "start", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.Auth.LoginURL(state), http.StatusFound)
}

func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if denial := query.Get("error"); denial != "" {
		h.failureRedirect(w, r, "callback", errors.New(denial))
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != query.Get("state") {
		h.failureRedirect(w, r, "state", errors.New("state mismatch"))
		return
	}
	clearCookie(w, stateCookie)

	code := query.Get("code")
	if code == "" {
		h.failureRedirect(w, r, "callback", errors.New("no authorization code"))
		return
	}

	_, token, err := h.Auth.HandleCallback(r.Context(), code)
	if err != nil {
		stage := "login"
		var oe *service.OAuthError
		if errors.As(err, &oe) {
			stage = oe.Stage
		}
		h.failureRedirect(w, r, stage, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.LoginRedirect, http.StatusFound)
}

func (h *Handler) failureRedirect(w http.ResponseWriter, r *http.Request, stage string, err error) {
	log.Printf("OAuth failure at %s: %v", stage, err)
	q := url.Values{}
	q.Set("stage", stage)
	q.Set("message", err.Error())
	http.Redirect(w, r, "/auth/failure?"+q.Encode(), http.StatusFound)
}

func (h *Handler) authFailure(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error":   "OAuth login failed",
		"stage":   r.URL.Query().Get("stage"),
		"message": r.URL.Query().Get("message"),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), sessionToken(r)); err != nil {
		log.Printf("logout: %v", err)
	}
	clearCookie(w, sessionCookie)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *Handler) authStatus(w http.ResponseWriter, r *http.Request) {
	user, ok, err := h.Auth.CurrentUser(r.Context(), sessionToken(r))
	if err != nil {
		log.Printf("session lookup: %v", err)
	}

	status := map[string]any{"authenticated": ok, "user": nil}
	if ok {
		status["user"] = map[string]string{
			"_id":   user.ID.Hex(),
			"email": user.Email,
			"name":  user.Name,
		}
	}
	writeJSON(w, http.StatusOK, status)
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
