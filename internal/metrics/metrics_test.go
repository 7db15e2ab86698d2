package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_RecordsByRoute(t *testing.T) {
	c := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/work/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for _, path := range []string{"/work/1", "/work/2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("GET", "/work/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.HTTPRequestsInFlight))
}

func TestRecorders(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.RecordAdventureSelection("ladakh")
	c.RecordAdventureSelection("ladakh")
	c.RecordContact("sent")
	c.RecordStoreError("record_visit")
	c.VisitsRecorded.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.AdventureSelections.WithLabelValues("ladakh")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ContactMessages.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StoreErrorsTotal.WithLabelValues("record_visit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.VisitsRecorded))
}

func TestHandler_Exposition(t *testing.T) {
	c := NewWithRuntime()
	c.RecordAdventureSelection("kilimanjaro")

	r := gin.New()
	r.GET("/metrics", c.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portfolio_adventure_selections_total{location="kilimanjaro"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
