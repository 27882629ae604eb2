package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.SetStored(5)
	m.EventCreated(6)
	m.Lookup(true)
	m.Lookup(false)
	m.Lookup(false)
	m.SubmissionDeduplicated()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.created))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.stored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("found")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues("absent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deduplicated))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/events/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/abc", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/events/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "local_events_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
