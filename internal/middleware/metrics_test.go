package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestMetricsCountsRequestsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()), m.Handler())
	r.GET("/profile/:kind", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/profile/skill", "/profile/interest", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP alumnet_http_requests_total Number of HTTP requests by route and status.
# TYPE alumnet_http_requests_total counter
alumnet_http_requests_total{method="GET",route="/profile/:kind",status="200"} 2
alumnet_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "alumnet_http_requests_total"); err != nil {
		t.Error(err)
	}
}
