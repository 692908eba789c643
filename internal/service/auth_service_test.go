package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "github.com/influenceos/agent-api/configs"
	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/repository"
	"github.com/influenceos/agent-api/internal/transfer"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func TestTranslateProfile(t *testing.T) {
	picture := "https://x/y.png"

	profile, err := TranslateProfile(&transfer.LinkedinUserInfo{
		Sub:        "u1",
		GivenName:  "A",
		FamilyName: "B",
		Picture:    picture,
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "A", profile.FirstName)
	assert.Equal(t, "B", profile.LastName)
	require.NotNil(t, profile.ProfilePictureURL)
	assert.Equal(t, picture, *profile.ProfilePictureURL)
	assert.Equal(t, "", profile.Headline)
	assert.Equal(t, "", profile.Summary)
	assert.Equal(t, []string{}, profile.Skills)
}

func TestTranslateProfileMissingSubject(t *testing.T) {
	_, err := TranslateProfile(&transfer.LinkedinUserInfo{GivenName: "A"})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeMapping, appErr.Code)
}

func TestTranslateProfileNoPicture(t *testing.T) {
	profile, err := TranslateProfile(&transfer.LinkedinUserInfo{Sub: "u1"})
	require.NoError(t, err)
	assert.Nil(t, profile.ProfilePictureURL)
}

func TestTranslateProfileMalformedPicture(t *testing.T) {
	_, err := TranslateProfile(&transfer.LinkedinUserInfo{Sub: "u1", Picture: "not a url"})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeMapping, appErr.Code)
}

// fakeProvider stands in for the vendor's token and userinfo endpoints.
func fakeProvider(t *testing.T, accessToken string, userInfo transfer.LinkedinUserInfo) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": accessToken,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+accessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(userInfo)
	})
	return httptest.NewServer(mux)
}

func newAuthServiceForTest(db *gorm.DB, provider *httptest.Server) AuthService {
	cfg := config.Config{
		LinkedinClientID:     "client",
		LinkedinClientSecret: "secret",
		LinkedinRedirectURI:  "http://localhost:8000/api/v1/auth/linkedin/callback",
		LinkedinAuthURL:      provider.URL + "/oauth/authorize",
		LinkedinTokenURL:     provider.URL + "/oauth/token",
		LinkedinUserInfoURL:  provider.URL + "/userinfo",
	}
	return NewAuthService(cfg, repository.NewUserRepository(db))
}

func TestLoginCallbackMissingCode(t *testing.T) {
	db := setupTestDB(t)
	provider := fakeProvider(t, "tok", transfer.LinkedinUserInfo{Sub: "u1"})
	defer provider.Close()

	s := newAuthServiceForTest(db, provider)
	_, err := s.LoginCallback(context.Background(), "")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeInvalidRequest, appErr.Code)
}

func TestLoginCallbackCreatesUser(t *testing.T) {
	db := setupTestDB(t)
	provider := fakeProvider(t, "tok-1", transfer.LinkedinUserInfo{
		Sub:        "member-42",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		Picture:    "https://cdn.example.com/ada.png",
	})
	defer provider.Close()

	s := newAuthServiceForTest(db, provider)

	userID, err := s.LoginCallback(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "member-42", userID)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "member-42").Error)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "tok-1", user.AccessToken)
}

func TestLoginCallbackUpsertIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	info := transfer.LinkedinUserInfo{Sub: "member-42", GivenName: "Ada", FamilyName: "Lovelace"}

	first := fakeProvider(t, "tok-old", info)
	s := newAuthServiceForTest(db, first)
	_, err := s.LoginCallback(context.Background(), "code-1")
	require.NoError(t, err)
	first.Close()

	second := fakeProvider(t, "tok-new", info)
	defer second.Close()
	s = newAuthServiceForTest(db, second)
	_, err = s.LoginCallback(context.Background(), "code-2")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "member-42").Error)
	assert.Equal(t, "tok-new", user.AccessToken)
}

func TestLoginCallbackUserInfoFailure(t *testing.T) {
	db := setupTestDB(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "token_type": "Bearer"})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	s := newAuthServiceForTest(db, provider)
	_, err := s.LoginCallback(context.Background(), "auth-code")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUpstreamAuth, appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginCallbackTokenWithoutAccessToken(t *testing.T) {
	db := setupTestDB(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	s := newAuthServiceForTest(db, provider)
	_, err := s.LoginCallback(context.Background(), "auth-code")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUpstreamAuth, appErr.Code)
}
