package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/cahfua/restaurant-api/internal/api/http"
	"github.com/cahfua/restaurant-api/internal/domain"
	"github.com/cahfua/restaurant-api/internal/mocks"
	"github.com/cahfua/restaurant-api/internal/service"
	"github.com/cahfua/restaurant-api/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
)

// fakeProvider stands in for Google: a token endpoint and a userinfo
// endpoint on one httptest server.
func fakeProvider(t *testing.T, profileStatus int, profile any) *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "fake-access-token",
			"token_type":   "Bearer",
		})
	})
	handler.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(profileStatus)
		json.NewEncoder(w).Encode(profile)
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func oauthConfigFor(server *httptest.Server) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/auth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  server.URL + "/auth",
			TokenURL: server.URL + "/token",
		},
	}
}

func TestAuthService_HandleCallback_UpsertsAndOpensSession(t *testing.T) {
	server := fakeProvider(t, http.StatusOK, map[string]string{
		"id":    "google-123",
		"email": "ann@example.com",
		"name":  "Ann",
	})

	users := mocks.NewUserDirectory(t)
	sessions := storage.NewMemorySessionStore()
	svc := service.NewAuthService(oauthConfigFor(server), users, sessions)
	svc.ProfileURL = server.URL + "/userinfo"

	storedUser := domain.User{ID: primitive.NewObjectID(), Name: "Ann", Email: "ann@example.com", GoogleID: "google-123"}
	users.On("UpsertGoogleUser", mock.Anything, "google-123", "Ann", "ann@example.com").
		Return(storedUser, nil).Once()

	ctx := context.Background()
	user, token, err := svc.HandleCallback(ctx, "auth-code")
	assert.NoError(t, err)
	assert.Equal(t, storedUser, user)
	assert.NotEmpty(t, token)

	// the token resolves back to the user
	users.On("FindUser", mock.Anything, storedUser.ID).
		Return(storedUser, true, nil).Once()
	resolved, ok, err := svc.CurrentUser(ctx, token)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, storedUser, resolved)

	// logout destroys the session
	assert.NoError(t, svc.Logout(ctx, token))
	_, ok, err = svc.CurrentUser(ctx, token)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_HandleCallback_StageErrors(t *testing.T) {
	t.Run("exchange_failure", func(t *testing.T) {
		users := mocks.NewUserDirectory(t)
		config := &oauth2.Config{
			Endpoint: oauth2.Endpoint{TokenURL: "http://127.0.0.1:0/token"},
		}
		svc := service.NewAuthService(config, users, storage.NewMemorySessionStore())

		_, _, err := svc.HandleCallback(context.Background(), "code")
		var oe *service.OAuthError
		assert.ErrorAs(t, err, &oe)
		assert.Equal(t, "exchange", oe.Stage)
	})

	t.Run("profile_failure", func(t *testing.T) {
		server := fakeProvider(t, http.StatusForbidden, map[string]string{})
		users := mocks.NewUserDirectory(t)
		svc := service.NewAuthService(oauthConfigFor(server), users, storage.NewMemorySessionStore())
		svc.ProfileURL = server.URL + "/userinfo"

		_, _, err := svc.HandleCallback(context.Background(), "code")
		var oe *service.OAuthError
		assert.ErrorAs(t, err, &oe)
		assert.Equal(t, "profile", oe.Stage)
	})

	t.Run("upsert_failure", func(t *testing.T) {
		server := fakeProvider(t, http.StatusOK, map[string]string{"id": "google-123"})
		users := mocks.NewUserDirectory(t)
		svc := service.NewAuthService(oauthConfigFor(server), users, storage.NewMemorySessionStore())
		svc.ProfileURL = server.URL + "/userinfo"

		users.On("UpsertGoogleUser", mock.Anything, "google-123", "", "").
			Return(domain.User{}, assert.AnError).Once()

		_, _, err := svc.HandleCallback(context.Background(), "code")
		var oe *service.OAuthError
		assert.ErrorAs(t, err, &oe)
		assert.Equal(t, "login", oe.Stage)
	})
}

func TestAuthService_CurrentUser_AnonymousToken(t *testing.T) {
	users := mocks.NewUserDirectory(t)
	svc := service.NewAuthService(&oauth2.Config{}, users, storage.NewMemorySessionStore())

	_, ok, err := svc.CurrentUser(context.Background(), "")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = svc.CurrentUser(context.Background(), "unknown-token")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_CurrentUser_StoreFailureSurfaces(t *testing.T) {
	users := mocks.NewUserDirectory(t)
	sessions := mocks.NewSessionStore(t)
	svc := service.NewAuthService(&oauth2.Config{}, users, sessions)

	sessions.On("Get", mock.Anything, "some-token").
		Return("", assert.AnError).Once()

	_, ok, err := svc.CurrentUser(context.Background(), "some-token")
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, ok)
}

func authRouter(t *testing.T, auth service.AuthServiceInterface) *mux.Router {
	handler := &httpapi.Handler{
		Restaurants: mocks.NewResourceServiceInterface(t),
		MenuItems:   mocks.NewResourceServiceInterface(t),
		Orders:      mocks.NewResourceServiceInterface(t),
		Users:       mocks.NewResourceServiceInterface(t),
		Auth:        auth,
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestAuthRoutes_StatusAndFailure(t *testing.T) {
	auth := mocks.NewAuthServiceInterface(t)
	router := authRouter(t, auth)

	auth.On("CurrentUser", mock.Anything, "").
		Return(domain.User{}, false, nil).Once()

	req := httptest.NewRequest("GET", "/auth/status", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"authenticated":false`)

	req = httptest.NewRequest("GET", "/auth/failure?stage=exchange&message=boom", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "exchange")
	assert.Contains(t, recorder.Body.String(), "boom")
}

func TestAuthRoutes_LoginRedirectSetsState(t *testing.T) {
	auth := mocks.NewAuthServiceInterface(t)
	router := authRouter(t, auth)

	auth.On("LoginURL", mock.AnythingOfType("string")).
		Return("https://accounts.example/consent").Once()

	req := httptest.NewRequest("GET", "/auth/google", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "https://accounts.example/consent", recorder.Header().Get("Location"))

	cookies := recorder.Result().Cookies()
	var stateSet bool
	for _, c := range cookies {
		if c.Name == "oauth_state" && c.Value != "" {
			stateSet = true
		}
	}
	assert.True(t, stateSet)
}

func TestAuthRoutes_CallbackStateMismatchRedirectsToFailure(t *testing.T) {
	auth := mocks.NewAuthServiceInterface(t)
	router := authRouter(t, auth)

	req := httptest.NewRequest("GET", "/auth/google/callback?code=x&state=tampered", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Location"), "/auth/failure?")
	assert.Contains(t, recorder.Header().Get("Location"), "stage=state")
}

func TestAuthRoutes_Logout(t *testing.T) {
	auth := mocks.NewAuthServiceInterface(t)
	router := authRouter(t, auth)

	auth.On("Logout", mock.Anything, "tok").Return(nil).Once()

	req := httptest.NewRequest("GET", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Logged out")
}
