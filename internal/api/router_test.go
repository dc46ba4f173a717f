package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reviewlens/reviewlens/internal/api"
	mw "github.com/reviewlens/reviewlens/internal/api/middleware"
	"github.com/reviewlens/reviewlens/internal/cache"
	"github.com/stretchr/testify/assert"
)

// --- stub cache ---

type stubCache struct{}

func (c *stubCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error { return nil }
func (c *stubCache) Get(_ context.Context, _ string) ([]byte, bool, error)            { return nil, false, nil }
func (c *stubCache) Delete(_ context.Context, _ string) error                         { return nil }
func (c *stubCache) Ping(_ context.Context) error                                     { return nil }
func (c *stubCache) IncrWithExpiry(_ context.Context, _ string, _ time.Duration) (int64, error) {
	return 1, nil
}

// --- router tests ---

func newTestRouter(deps api.Dependencies) http.Handler {
	if deps.RateLimit == nil {
		deps.RateLimit = mw.NewRateLimit(&stubCache{}, 60)
	}
	return api.NewRouter(deps)
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router := newTestRouter(api.Dependencies{
		HealthHandler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RoutesDispatch(t *testing.T) {
	endpoints := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/reviews"},
		{"GET", "/api/v1/reviews"},
		{"GET", "/api/v1/reviews/5"},
		{"POST", "/api/v1/reviews/seed"},
		{"GET", "/api/v1/recommendations"},
		{"GET", "/api/v1/sentiment/summary"},
	}

	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			var hit bool
			handler := func(w http.ResponseWriter, _ *http.Request) {
				hit = true
				w.WriteHeader(http.StatusOK)
			}
			router := newTestRouter(api.Dependencies{
				CreateReviewHandler:    handler,
				ListReviewsHandler:     handler,
				GetReviewHandler:       handler,
				SeedHandler:            handler,
				RecommendationsHandler: handler,
				SentimentSummary:       handler,
			})

			req := httptest.NewRequest(ep.method, ep.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.True(t, hit, "handler for %s %s was not invoked", ep.method, ep.path)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_MissingHandlerReturns501(t *testing.T) {
	router := newTestRouter(api.Dependencies{})

	req := httptest.NewRequest("GET", "/api/v1/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestRouter_AssignsRequestID(t *testing.T) {
	router := newTestRouter(api.Dependencies{
		HealthHandler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter(api.Dependencies{})

	req := httptest.NewRequest("GET", "/api/v1/nonexistent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

var _ cache.Cache = (*stubCache)(nil)
