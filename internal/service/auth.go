package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cahfua/restaurant-api/internal/domain"
	"github.com/cahfua/restaurant-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
)

const defaultProfileURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleProfile is the slice of the userinfo response we care about.
type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthService runs the Google OAuth handshake and owns the session
// lifecycle. It is built once at startup and injected into the HTTP layer.
type AuthService struct {
	oauth    *oauth2.Config
	users    UserDirectory
	sessions SessionStore

	// ProfileURL is overridable for tests.
	ProfileURL string
}

func NewAuthService(oauth *oauth2.Config, users UserDirectory, sessions SessionStore) *AuthService {
	return &AuthService{
		oauth:      oauth,
		users:      users,
		sessions:   sessions,
		ProfileURL: defaultProfileURL,
	}
}

// LoginURL returns the provider redirect that starts the handshake.
func (s *AuthService) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// HandleCallback finishes the handshake: exchanges the authorization code,
// fetches the profile, upserts the user by Google subject id and opens a
// session. The returned string is the session token.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (domain.User, string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return domain.User{}, "", &OAuthError{Stage: "exchange", Err: err}
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return domain.User{}, "", &OAuthError{Stage: "profile", Err: err}
	}

	user, err := s.users.UpsertGoogleUser(ctx, profile.ID, profile.Name, profile.Email)
	if err != nil {
		return domain.User{}, "", &OAuthError{Stage: "login", Err: err}
	}

	sessionToken, err := newSessionToken()
	if err != nil {
		return domain.User{}, "", &OAuthError{Stage: "session", Err: err}
	}
	if err := s.sessions.Put(ctx, sessionToken, user.ID.Hex()); err != nil {
		return domain.User{}, "", &OAuthError{Stage: "session", Err: err}
	}

	return user, sessionToken, nil
}

func (s *AuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (googleProfile, error) {
	resp, err := s.oauth.Client(ctx, token).Get(s.ProfileURL)
	if err != nil {
		return googleProfile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return googleProfile{}, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return googleProfile{}, err
	}
	if profile.ID == "" {
		return googleProfile{}, fmt.Errorf("userinfo response missing subject id")
	}
	return profile, nil
}

// CurrentUser resolves a session token to its user. The second return is
// false for anonymous requests. A session store failure is surfaced so the
// caller does not confuse an outage with a logged-out client.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, bool, error) {
	if token == "" {
		return domain.User{}, false, nil
	}

	userID, err := s.sessions.Get(ctx, token)
	if errors.Is(err, storage.ErrNoSession) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.User{}, false, nil
	}

	return s.users.FindUser(ctx, oid)
}

// Logout destroys the session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// NewStateToken returns the anti-forgery state for the login redirect.
func NewStateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
