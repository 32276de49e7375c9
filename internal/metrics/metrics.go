// Package metrics exposes Prometheus collectors for the loyalty domain and
// the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	pointsCredited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewpoints",
			Subsystem: "ledger",
			Name:      "points_credited_total",
			Help:      "Points credited to members by entry type.",
		},
		[]string{"type"},
	)

	pointsDebited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "brewpoints",
			Subsystem: "ledger",
			Name:      "points_debited_total",
			Help:      "Points spent by members.",
		},
	)

	redemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewpoints",
			Subsystem: "rewards",
			Name:      "redemptions_total",
			Help:      "Redemption attempts by result.",
		},
		[]string{"result"},
	)

	birthdayBonuses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "brewpoints",
			Subsystem: "referral",
			Name:      "birthday_bonuses_total",
			Help:      "Birthday bonuses granted.",
		},
	)

	codeGenerationExhausted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "brewpoints",
			Subsystem: "referral",
			Name:      "code_generation_exhausted_total",
			Help:      "Referral code generation runs that ran out of attempts.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewpoints",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brewpoints",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)
)

func init() {
	Registry.MustRegister(
		pointsCredited,
		pointsDebited,
		redemptions,
		birthdayBonuses,
		codeGenerationExhausted,
		httpRequests,
		httpDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func PointsCredited(entryType string, points int) {
	pointsCredited.WithLabelValues(entryType).Add(float64(points))
}

func PointsDebited(points int) {
	pointsDebited.Add(float64(points))
}

func Redemption(result string) {
	redemptions.WithLabelValues(result).Inc()
}

func BirthdayBonusGranted() {
	birthdayBonuses.Inc()
}

func CodeGenerationExhausted() {
	codeGenerationExhausted.Inc()
}

// unmatchedRoute labels requests no route matched, keeping raw paths out of
// the label set.
const unmatchedRoute = "unmatched"

func methodLabel(method string) string {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	}
	return "OTHER"
}

// InstrumentHandler records request counts and latencies labelled with the
// matched chi route pattern.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		method := methodLabel(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
