package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
	}{
		{name: "valid", header: "42", wantStatus: http.StatusNoContent, wantUserID: 42},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a number", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative", header: "-1", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	generated := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, fromCtx)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}

type recordingLogger struct {
	infos []string
	warns []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func TestAccessLog_IncludesRequestID(t *testing.T) {
	log := &recordingLogger{}
	router := mux.NewRouter()
	router.Use(RequestID, AccessLog(log))
	router.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.HandleFunc("/api/v1/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	req.Header.Set(RequestIDHeader, incoming)
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "POST /api/v1/bookings - 201")
	assert.Contains(t, log.infos[0], "request_id="+incoming)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/broken", nil))

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "GET /api/v1/broken - 500")
	assert.Contains(t, log.warns[0], "request_id="+rec.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, nil)
	handler := limiter.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimiter_ForwardedForFromClientIsIgnored(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, nil)
	handler := limiter.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	allowed := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.9:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 2, allowed)
	assert.Equal(t, 1, limiter.size())
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(1, 2, nil)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep.Store(now.UnixNano())

	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2")
	require.Equal(t, 2, limiter.size())

	now = now.Add(limiterIdleTTL / 2)
	limiter.getLimiter("10.0.0.2")

	now = now.Add(limiterIdleTTL/2 + sweepInterval)
	limiter.getLimiter("10.0.0.3")

	_, stale := limiter.limiters.Load("10.0.0.1")
	assert.False(t, stale)
	_, active := limiter.limiters.Load("10.0.0.2")
	assert.True(t, active)
	assert.Equal(t, 2, limiter.size())
}

func TestRateLimiter_ClientIP(t *testing.T) {
	tests := []struct {
		name      string
		trusted   []string
		remote    string
		forwarded string
		want      string
	}{
		{name: "no proxy", remote: "192.168.1.5:1234", want: "192.168.1.5"},
		{name: "untrusted peer sends xff", remote: "192.168.1.5:1234", forwarded: "203.0.113.7", want: "192.168.1.5"},
		{name: "trusted proxy", trusted: []string{"10.0.0.0/8"}, remote: "10.1.2.3:80", forwarded: "203.0.113.7", want: "203.0.113.7"},
		{name: "client prepends fake hop", trusted: []string{"10.0.0.0/8"}, remote: "10.1.2.3:80", forwarded: "1.1.1.1, 203.0.113.7", want: "203.0.113.7"},
		{name: "proxy chain", trusted: []string{"10.0.0.1", "10.0.0.2"}, remote: "10.0.0.2:80", forwarded: "203.0.113.7, 10.0.0.1", want: "203.0.113.7"},
		{name: "garbage hop", trusted: []string{"10.0.0.0/8"}, remote: "10.1.2.3:80", forwarded: "not-an-ip", want: "10.1.2.3"},
		{name: "trusted proxy without xff", trusted: []string{"10.0.0.0/8"}, remote: "10.1.2.3:80", want: "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewRateLimiter(1, 1, tt.trusted)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, limiter.clientIP(req))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	networks := ParseTrustedProxies([]string{"10.0.0.0/8", "192.168.1.1", "::1", "bogus", ""})
	require.Len(t, networks, 3)
	assert.True(t, networks[1].Contains(net.ParseIP("192.168.1.1")))
	assert.False(t, networks[1].Contains(net.ParseIP("192.168.1.2")))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegisterer("venue-test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/7", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/bookings/{bookingId}", "404")))
}
