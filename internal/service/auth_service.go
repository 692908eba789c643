package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	config "github.com/influenceos/agent-api/configs"
	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/repository"
	"github.com/influenceos/agent-api/internal/transfer"
)

type AuthService interface {
	LoginURL(state string) string
	LoginCallback(ctx context.Context, code string) (userID string, err error)
}

type authService struct {
	cfg    config.Config
	oauth  *oauth2.Config
	client *http.Client
	users  repository.UserRepository
}

func NewAuthService(cfg config.Config, users repository.UserRepository) AuthService {
	endpoint := linkedin.Endpoint
	if cfg.LinkedinAuthURL != "" {
		endpoint.AuthURL = cfg.LinkedinAuthURL
	}
	if cfg.LinkedinTokenURL != "" {
		endpoint.TokenURL = cfg.LinkedinTokenURL
	}

	return &authService{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.LinkedinClientID,
			ClientSecret: cfg.LinkedinClientSecret,
			RedirectURL:  cfg.LinkedinRedirectURI,
			Scopes:       []string{"profile", "openid", "email"},
			Endpoint:     endpoint,
		},
		client: &http.Client{Timeout: 15 * time.Second},
		users:  users,
	}
}

func (s *authService) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// LoginCallback runs the authorization-code exchange: code -> access token ->
// userinfo -> canonical profile -> user upsert. The stored access_token is
// always refreshed to the latest value.
func (s *authService) LoginCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", models.NewInvalidRequestError("authorization code is missing")
	}

	// Bounded client for both the token exchange and the userinfo fetch.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return "", models.NewUpstreamAuthError("token exchange failed", err)
	}
	if token.AccessToken == "" {
		return "", models.NewUpstreamAuthError("token response contains no access_token", nil)
	}

	info, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		slog.Info(err.Error())
		return "", models.NewUpstreamAuthError("profile fetch failed", err)
	}

	profile, err := TranslateProfile(info)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:                profile.ID,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		ProfilePictureURL: profile.ProfilePictureURL,
		AccessToken:       token.AccessToken,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return "", err
	}

	return profile.ID, nil
}

func (s *authService) fetchUserInfo(ctx context.Context, accessToken string) (*transfer.LinkedinUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.LinkedinUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var info transfer.LinkedinUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	return &info, nil
}

// TranslateProfile maps a provider userinfo payload onto the canonical
// UserProfile. The subject is required downstream as the primary key; the
// userinfo endpoint supplies neither headline nor summary nor skills.
func TranslateProfile(info *transfer.LinkedinUserInfo) (*models.UserProfile, error) {
	if info == nil || info.Sub == "" {
		return nil, models.NewMappingError("userinfo payload has no subject identifier")
	}

	profile := &models.UserProfile{
		ID:        info.Sub,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
		Headline:  "",
		Summary:   "",
		Skills:    []string{},
	}

	if info.Picture != "" {
		if _, err := url.ParseRequestURI(info.Picture); err != nil {
			return nil, models.NewMappingError("profile picture is not a valid URL")
		}
		picture := info.Picture
		profile.ProfilePictureURL = &picture
	}

	return profile, nil
}
