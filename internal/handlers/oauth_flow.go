package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"cryptopet/internal/config"
	"cryptopet/internal/security"
	"cryptopet/internal/service"
)

// stateTTL bounds how long an OAuth round trip may take
const stateTTL = 10 * time.Minute

// oauthFlow attaches a provider-verified email address to an existing
// account. The state parameter is a short-lived signed token carrying
// the user id, so the callback needs no cookie or server-side state.
type OAuthFlow struct {
	authService *service.AuthService
	config      *oauth2.Config
	userInfoURL string
	jwtSecret   []byte
}

// NewOAuthFlow wires the Google OAuth email-link flow. Returns nil when
// the client credentials are not configured.
func NewOAuthFlow(authService *service.AuthService, cfg *config.Config) *OAuthFlow {
	if cfg.OAuthClientID == "" || cfg.OAuthClientSecret == "" {
		return nil
	}
	return &OAuthFlow{
		authService: authService,
		config: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
		userInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		jwtSecret:   []byte(cfg.JWTSecret),
	}
}

func (f *OAuthFlow) start(w http.ResponseWriter, r *http.Request, userID string) {
	state, err := security.IssueAccessToken(f.jwtSecret, userID, stateTTL, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to start email link", err)
		return
	}

	authURL := f.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, authURL, http.StatusFound)
}

func (f *OAuthFlow) callback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		respondWithError(w, http.StatusBadRequest, "missing state or code", nil)
		return
	}

	userID, err := security.ParseAccessToken(f.jwtSecret, state)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid state", err)
		return
	}

	token, err := f.config.Exchange(r.Context(), code)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "code exchange failed", err)
		return
	}

	email, err := f.fetchEmail(r, token)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to fetch user info", err)
		return
	}

	user, err := f.authService.GetUser(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if _, err := f.authService.UpdateProfile(userID, user.DisplayName, &email); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"email": email})
}

func (f *OAuthFlow) fetchEmail(r *http.Request, token *oauth2.Token) (string, error) {
	client := f.config.Client(r.Context(), token)
	resp, err := client.Get(f.userInfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	if info.Email == "" || !info.EmailVerified {
		return "", fmt.Errorf("no verified email in userinfo response")
	}
	return info.Email, nil
}
