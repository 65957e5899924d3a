package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	creds := Credentials{Username: "admin", Password: "admin123"}
	sessions := NewSessions("test-secret", time.Hour)
	srv, err := NewServer(creds, sessions, Repos{}, zap.NewNop().Sugar())
	require.NoError(t, err)
	return srv, srv.Routes()
}

func sessionCookieFor(t *testing.T, srv *Server, username string) *http.Cookie {
	t.Helper()
	token, err := srv.sessions.Issue(username)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookie, Value: token}
}

func TestPageRoutesRedirectWhenLoggedOut(t *testing.T) {
	_, handler := newTestServer(t)

	for _, path := range []string{"/dashboard", "/users", "/jobs", "/messages", "/settings"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestAPIRoutesRejectWhenLoggedOut(t *testing.T) {
	_, handler := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/jobs"},
		{http.MethodGet, "/api/messages"},
		{http.MethodPost, "/api/broadcast"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), p.path)
		assert.Equal(t, "Unauthorized", body["error"], p.path)
	}
}

func TestIndexRedirectsBySession(t *testing.T) {
	srv, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookieFor(t, srv, "admin"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestLoginSuccessSetsSession(t *testing.T) {
	srv, handler := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"admin123"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "session cookie must be set")
	username, ok := srv.sessions.Verify(session.Value)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLoginFailureRendersError(t *testing.T) {
	_, handler := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogoutClearsCookie(t *testing.T) {
	srv, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookieFor(t, srv, "admin"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.Equal(t, -1, session.MaxAge)
}

func TestBroadcastValidation(t *testing.T) {
	srv, handler := newTestServer(t)
	cookie := sessionCookieFor(t, srv, "admin")

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/broadcast", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message required")

	rec = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(`{"message":"hello everyone"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Broadcast scheduled", resp["message"])
	assert.NotEmpty(t, resp["id"])
}
