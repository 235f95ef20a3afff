package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactanuptop/movie-booking/internal/config"
	"github.com/contactanuptop/movie-booking/internal/utils"
)

func newAuthFixture(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthHandler(config.Config{
		Env:               "test",
		JWTSecret:         "test-secret",
		AccessTTLMin:      15,
		OwnerUsername:     "owner",
		OwnerPasswordHash: hash,
	})
}

func TestLogin(t *testing.T) {
	h := newAuthFixture(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", `{"username":"owner","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["access_token"])
}

func TestLogin_WrongCredentials(t *testing.T) {
	h := newAuthFixture(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", `{"username":"owner","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", `{"username":"intruder","password":"s3cret"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuest(t *testing.T) {
	h := newAuthFixture(t)

	rec := doJSON(t, h.Guest, http.MethodPost, "/v1/auth/guest", `{"name":"alice"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["access_token"])

	rec = doJSON(t, h.Guest, http.MethodPost, "/v1/auth/guest", `{"name":"  "}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
