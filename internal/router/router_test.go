package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactanuptop/movie-booking/internal/booking"
	"github.com/contactanuptop/movie-booking/internal/config"
	"github.com/contactanuptop/movie-booking/internal/handler"
	"github.com/contactanuptop/movie-booking/internal/utils"
)

// newTestServer wires the full route table against an in-memory engine
// with Redis absent, exactly how the server runs when the middleware
// degrades to pass-through.
func newTestServer(t *testing.T) (*echo.Echo, config.Config) {
	t.Helper()
	hash, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.Config{
		Env:               "test",
		Port:              "0",
		JWTSecret:         "router-test-secret",
		AccessTTLMin:      5,
		OwnerUsername:     "owner",
		OwnerPasswordHash: hash,
	}

	svc := booking.NewService()
	e := echo.New()
	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(cfg))
	RegisterPublic(e, handler.NewPublicHandler(svc), config.CacheConfig{}, nil)
	RegisterOwner(e, handler.NewOwnerHandler(svc), cfg.JWTSecret)
	RegisterCustomer(e, handler.NewCustomerHandler(svc, nil), cfg.JWTSecret, config.RateLimitConfig{}, nil)
	return e, cfg
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, e *echo.Echo, target, body string) string {
	t.Helper()
	rec := do(e, http.MethodPost, target, "", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestEndToEndBookingFlow(t *testing.T) {
	e, _ := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/healthz", "", "").Code)

	owner := token(t, e, "/v1/auth/login", `{"username":"owner","password":"s3cret"}`)

	require.Equal(t, http.StatusCreated,
		do(e, http.MethodPost, "/v1/movies", owner, `{"title":"Inception"}`).Code)
	require.Equal(t, http.StatusCreated,
		do(e, http.MethodPost, "/v1/theaters", owner, `{"name":"Cineplex"}`).Code)
	require.Equal(t, http.StatusCreated,
		do(e, http.MethodPost, "/v1/shows", owner, `{"movie_id":1,"theater_id":1}`).Code)

	// Anyone can browse without a token.
	rec := do(e, http.MethodGet, "/v1/shows/1/seats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"A1"`)
	assert.Contains(t, rec.Body.String(), `"A20"`)

	// Booking needs a token.
	assert.Equal(t, http.StatusUnauthorized,
		do(e, http.MethodPost, "/v1/shows/1/book", "", `{"seats":["A1"]}`).Code)

	guest := token(t, e, "/v1/auth/guest", `{"name":"alice"}`)
	rec = do(e, http.MethodPost, "/v1/shows/1/book", guest, `{"seats":["A1","A2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/v1/shows/1/seats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"A1"`)
	assert.NotContains(t, rec.Body.String(), `"A2"`)

	// The same seat cannot be sold twice, even by the owner.
	assert.Equal(t, http.StatusBadRequest,
		do(e, http.MethodPost, "/v1/shows/1/book", owner, `{"seats":["A2"]}`).Code)
}

func TestOwnerRoutesRejectCustomers(t *testing.T) {
	e, _ := newTestServer(t)
	guest := token(t, e, "/v1/auth/guest", `{"name":"mallory"}`)

	assert.Equal(t, http.StatusForbidden,
		do(e, http.MethodPost, "/v1/movies", guest, `{"title":"Heist"}`).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(e, http.MethodPost, "/v1/movies", "", `{"title":"Heist"}`).Code)
}
