package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactanuptop/movie-booking/internal/booking"
)

// doJSON runs a handler against a synthetic JSON request and returns
// the recorder. Path parameters can be set on the returned context
// before invoking the handler, so the request is built by the caller.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestCreateMovie(t *testing.T) {
	h := NewOwnerHandler(booking.NewService())

	rec := doJSON(t, h.CreateMovie, http.MethodPost, "/v1/movies", `{"title":"Inception"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Inception", body["title"])
}

func TestCreateMovie_DuplicateAnswersConflictWithExistingID(t *testing.T) {
	h := NewOwnerHandler(booking.NewService())
	doJSON(t, h.CreateMovie, http.MethodPost, "/v1/movies", `{"title":"Inception"}`, nil)

	rec := doJSON(t, h.CreateMovie, http.MethodPost, "/v1/movies", `{"title":"inception"}`, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["id"])
}

func TestCreateMovie_EmptyTitle(t *testing.T) {
	h := NewOwnerHandler(booking.NewService())
	rec := doJSON(t, h.CreateMovie, http.MethodPost, "/v1/movies", `{"title":"   "}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTheater_Duplicate(t *testing.T) {
	h := NewOwnerHandler(booking.NewService())
	doJSON(t, h.CreateTheater, http.MethodPost, "/v1/theaters", `{"name":"Cineplex"}`, nil)

	rec := doJSON(t, h.CreateTheater, http.MethodPost, "/v1/theaters", `{"name":"CINEPLEX"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateShow(t *testing.T) {
	svc := booking.NewService()
	h := NewOwnerHandler(svc)
	doJSON(t, h.CreateMovie, http.MethodPost, "/v1/movies", `{"title":"Inception"}`, nil)
	doJSON(t, h.CreateTheater, http.MethodPost, "/v1/theaters", `{"name":"Cineplex"}`, nil)

	rec := doJSON(t, h.CreateShow, http.MethodPost, "/v1/shows", `{"movie_id":1,"theater_id":1}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Inception", body["movie_title"])
	assert.EqualValues(t, booking.TotalSeats, body["available_seats"])

	// Same pair again conflicts.
	rec = doJSON(t, h.CreateShow, http.MethodPost, "/v1/shows", `{"movie_id":1,"theater_id":1}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateShow_UnknownReferences(t *testing.T) {
	svc := booking.NewService()
	h := NewOwnerHandler(svc)
	doJSON(t, h.CreateMovie, http.MethodPost, "/v1/movies", `{"title":"Inception"}`, nil)

	rec := doJSON(t, h.CreateShow, http.MethodPost, "/v1/shows", `{"movie_id":1,"theater_id":9}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h.CreateShow, http.MethodPost, "/v1/shows", `{"movie_id":9,"theater_id":1}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
