// ABOUTME: Prometheus metrics for generations, provider failures and HTTP traffic
// ABOUTME: Uses a private registry so each recorder (and each test) is isolated

package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seo-content-api/core/domain"
)

const namespace = "seo_content"

// Recorder implements the MetricsRecorder interface
type Recorder struct {
	registry *prometheus.Registry

	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	wordCount          *prometheus.HistogramVec
	missingFields      *prometheus.CounterVec
	providerFailures   *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewRecorder registers all collectors on a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total number of successful generations.",
			},
			[]string{"model"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Duration of provider calls for successful generations.",
				Buckets:   []float64{1, 5, 10, 20, 30, 60, 120},
			},
			[]string{"model"},
		),
		wordCount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generated_words",
				Help:      "Word count of generated body text.",
				Buckets:   []float64{250, 500, 750, 1000, 1500, 2000, 3000},
			},
			[]string{"model"},
		),
		missingFields: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "missing_fields_total",
				Help:      "Generations where the title or meta description line was not found.",
			},
			[]string{"field"},
		),
		providerFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_failures_total",
				Help:      "Total number of failed provider calls.",
			},
			[]string{"model", "status"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveGeneration records a successful generation
func (r *Recorder) ObserveGeneration(model string, duration time.Duration, parsed domain.ParsedContent) {
	r.generations.WithLabelValues(model).Inc()
	r.generationDuration.WithLabelValues(model).Observe(duration.Seconds())
	r.wordCount.WithLabelValues(model).Observe(float64(parsed.WordCount))
	if !parsed.HasTitle() {
		r.missingFields.WithLabelValues("title").Inc()
	}
	if !parsed.HasMetaDescription() {
		r.missingFields.WithLabelValues("meta_description").Inc()
	}
}

// ObserveProviderFailure records a failed provider call; statusCode 0 means no response
func (r *Recorder) ObserveProviderFailure(model string, statusCode int) {
	r.providerFailures.WithLabelValues(model, strconv.Itoa(statusCode)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware counts requests by chi route pattern, so path ids do not explode label cardinality
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		r.httpRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
