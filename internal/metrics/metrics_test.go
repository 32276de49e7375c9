package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPointsCredited(t *testing.T) {
	before := testutil.ToFloat64(pointsCredited.WithLabelValues("bonus"))
	PointsCredited("bonus", 10)
	assert.Equal(t, before+10, testutil.ToFloat64(pointsCredited.WithLabelValues("bonus")))
}

func TestInstrumentHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Use(InstrumentHandler)
	router.Get("/api/user/rewards/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/user/rewards/{id}", "418"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/rewards/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/user/rewards/{id}", "418")))
}

func TestInstrumentHandler_Unmatched(t *testing.T) {
	router := chi.NewRouter()
	router.Use(InstrumentHandler)
	router.Get("/api/rank", func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", unmatchedRoute, "404"))
	for _, path := range []string{"/wp-login.php", "/.env", "/phpmyadmin/index.php"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(httpRequests.WithLabelValues("GET", unmatchedRoute, "404")))
	assert.Zero(t, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/wp-login.php", "404")))
}

func TestMethodLabel(t *testing.T) {
	assert.Equal(t, "GET", methodLabel("get"))
	assert.Equal(t, "OTHER", methodLabel("PROPFIND"))
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "brewpoints_")
}
