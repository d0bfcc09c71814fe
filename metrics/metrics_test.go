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

func TestCounters(t *testing.T) {
	m := New()
	m.SessionCreated()
	m.Navigated("login")
	m.Navigated("login")
	m.LoggedIn("investor")
	m.FlowCompleted("registration")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.navigations.WithLabelValues("login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("investor")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.logins.WithLabelValues("entrepreneur")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.flowsCompleted.WithLabelValues("registration")))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.SessionCreated()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.sessionsCreated))
}

func TestHandlerAndMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/api/screen", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/screen", nil))
	m.Navigated("landing")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `fidexia_navigations_total{view="landing"} 1`))
	assert.True(t, strings.Contains(body, `route="/api/screen"`))
}
