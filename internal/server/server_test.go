package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/config"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/matryer/is"
)

func newHealthServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	s := New(&config.Config{})
	s.db = database.Wrap(sqlx.NewDb(mockDB, "postgres"))
	return s, mock
}

func TestHealthOK(t *testing.T) {
	is := is.New(t)
	s, mock := newHealthServer(t)
	mock.ExpectPing()

	rec := httptest.NewRecorder()
	s.handleHealth()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.Contains(rec.Body.String(), `"status":"ok"`))
	is.NoErr(mock.ExpectationsWereMet())
}

func TestHealthDatabaseDown(t *testing.T) {
	is := is.New(t)
	s, mock := newHealthServer(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	rec := httptest.NewRecorder()
	s.handleHealth()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	is.Equal(rec.Code, http.StatusServiceUnavailable)
	is.True(strings.Contains(rec.Body.String(), `"status":"unavailable"`))
}

func TestWrapHandlerAddsCORS(t *testing.T) {
	is := is.New(t)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := wrapHandler(config.ServerConfig{CORSOrigins: []string{"https://app.example.org"}}, inner)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("Access-Control-Allow-Origin"), "https://app.example.org")
}

func TestWrapHandlerRecoversPanics(t *testing.T) {
	is := is.New(t)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	h := wrapHandler(config.ServerConfig{}, inner)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	is.Equal(rec.Code, http.StatusInternalServerError)
}

func TestInitValidatorRejectsUnknownProvider(t *testing.T) {
	is := is.New(t)
	s := New(&config.Config{Auth: config.AuthConfig{Provider: "ldap"}})
	_, err := s.initValidator()
	is.True(err != nil)
}

func TestInitValidatorWithoutRedis(t *testing.T) {
	is := is.New(t)
	s := New(&config.Config{Auth: config.AuthConfig{
		Provider:     config.AuthProviderUserCycle,
		UserCycleURL: "http://usercycle.local",
	}})
	v, err := s.initValidator()
	is.NoErr(err)
	is.True(v != nil)
	is.True(s.redis == nil)
}
