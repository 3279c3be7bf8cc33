package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-content-api/core/domain"
)

func TestRecorder_ObserveGeneration(t *testing.T) {
	r := NewRecorder()

	r.ObserveGeneration("gpt-4o", 2*time.Second, domain.ParsedContent{
		PageTitle:       "Summer Dresses",
		MetaDescription: domain.NotFoundPlaceholder,
		WordCount:       800,
	})
	r.ObserveGeneration("gpt-4o", time.Second, domain.ParsedContent{
		PageTitle:       domain.NotFoundPlaceholder,
		MetaDescription: domain.NotFoundPlaceholder,
		WordCount:       700,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.generations.WithLabelValues("gpt-4o")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.missingFields.WithLabelValues("title")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.missingFields.WithLabelValues("meta_description")))
}

func TestRecorder_ObserveProviderFailure(t *testing.T) {
	r := NewRecorder()

	r.ObserveProviderFailure("gpt-4", 401)
	r.ObserveProviderFailure("gpt-4", 401)
	r.ObserveProviderFailure("gpt-4", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.providerFailures.WithLabelValues("gpt-4", "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.providerFailures.WithLabelValues("gpt-4", "0")))
}

func TestRecorder_MiddlewareUsesRoutePattern(t *testing.T) {
	r := NewRecorder()
	router := chi.NewRouter()
	router.Use(r.Middleware)
	router.Get("/generations/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generations/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/generations/{id}", "404")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveProviderFailure("gpt-4o", 500)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `seo_content_provider_failures_total{model="gpt-4o",status="500"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
