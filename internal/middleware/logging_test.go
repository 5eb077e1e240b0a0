package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerAssignsIDAndLogs(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), entry.Data["request_id"])
}

func TestRequestLoggerKeepsIncomingIDAndLogsErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/boom", func(echo.Context) error { return errors.New("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
}

func TestRequestLoggerRecordsRecoveredPanics(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(log))
	e.Use(echomw.Recover())
	e.GET("/panic", func(echo.Context) error { panic("nil venue") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
	assert.Equal(t, "req-42", entry.Data["request_id"])
}
