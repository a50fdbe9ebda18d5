package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/handlers"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/service/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newTestRouter(secret string) (*mocks.MockGenerationService, http.Handler) {
	svc := new(mocks.MockGenerationService)
	h := handlers.NewHandler(svc, logger.NewNop())
	r := SetupRouter(h, Options{
		JWTSecret: secret,
		Metrics:   promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{}),
		Logger:    logger.NewNop(),
	})
	return svc, r
}

func TestRouter_Health(t *testing.T) {
	_, r := newTestRouter(testSecret)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Metrics(t *testing.T) {
	_, r := newTestRouter("")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Auth(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(req *http.Request)
		expectedStatus int
	}{
		{
			name:           "missing token",
			setup:          func(req *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Token abc")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour)))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour)))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid bearer token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour)))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "valid query token",
			setup: func(req *http.Request) {
				q := req.URL.Query()
				q.Set("token", signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour)))
				req.URL.RawQuery = q.Encode()
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newTestRouter(testSecret)
			svc.On("GetFlights", mock.Anything).Return([]database.Flight{}, nil).Maybe()

			req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRouter_PreflightSkipsAuth(t *testing.T) {
	_, r := newTestRouter(testSecret)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/flights", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AuthDisabled(t *testing.T) {
	svc, r := newTestRouter("")
	svc.On("GetFlights", mock.Anything).Return([]database.Flight{}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestResponseWriter_CapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, status: http.StatusOK}

	rw.WriteHeader(http.StatusTeapot)
	n, err := rw.Write([]byte("short"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, rw.size)

	_, _, err = rw.Hijack()
	assert.Error(t, err)
}
