package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fidexia/backend/config"
	"fidexia/backend/fixtures"
	"fidexia/backend/metrics"
	"fidexia/backend/middlewares"
	"fidexia/backend/models"
	"fidexia/backend/screens"
	"fidexia/backend/session"
	"fidexia/backend/utils"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	LogGateway
	err error
}

func (g stubGateway) ConfirmInvestment(ctx context.Context, sessionID, project string, amount decimal.Decimal) error {
	if g.err != nil {
		return g.err
	}
	return g.LogGateway.ConfirmInvestment(ctx, sessionID, project, amount)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	deps   *Deps
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithGateway(t, stubGateway{LogGateway: LogGateway{Log: zap.NewNop()}})
}

func newTestServerWithGateway(t *testing.T, gw Gateway) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data := fixtures.Static()
	reg, err := screens.NewRegistry(data)
	require.NoError(t, err)
	d := &Deps{
		Cfg:     config.Config{JWTSecret: "test-secret", SessionTTL: time.Hour},
		Store:   session.NewMemoryStore(time.Hour),
		Screens: reg,
		Data:    data,
		Gateway: gw,
		Metrics: metrics.New(),
	}

	// mirrors routes.Register; routes imports this package so it cannot be used here
	r := gin.New()
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	r.POST("/api/sessions", CreateSession(d))
	priv := r.Group("/api", middlewares.Session(d.Cfg.JWTSecret, d.Store))
	priv.GET("/screen", GetScreen(d))
	priv.POST("/navigate", Navigate(d))
	priv.POST("/logout", Logout(d))
	priv.POST("/overlays/:name/toggle", ToggleOverlay(d))
	priv.POST("/overlays/close", CloseOverlays(d))
	priv.POST("/auth/tab", SetRoleTab(d))
	priv.POST("/auth/login", Login(d))
	priv.POST("/register/next", RegisterNext(d))
	priv.POST("/register/previous", RegisterPrevious(d))
	priv.POST("/register/verify", VerifyEmail(d))
	priv.POST("/projects/new/next", ProjectNext(d))
	priv.POST("/projects/new/previous", ProjectPrevious(d))
	priv.POST("/projects/new/submit", SubmitProject(d))
	priv.POST("/opportunities/:index/select", SelectOpportunity(d))
	priv.POST("/investments/confirm", ConfirmInvestment(d))
	priv.GET("/portfolio/export", ExportPortfolio(d))
	priv.POST("/filters", SetFilters(d))
	priv.POST("/forum/category", SetForumCategory(d))
	priv.POST("/forum/posts/:id/like", LikePost(d))
	priv.POST("/learning/role", SetLearningRole(d))
	priv.POST("/messages/:id/select", SelectChat(d))
	priv.POST("/messages/:id/send", SendMessage(d))
	priv.POST("/notifications/:id/open", OpenNotification(d))
	priv.POST("/notifications/read-all", MarkAllRead(d))
	priv.POST("/profile/tab", SetProfileTab(d))
	priv.POST("/profile/editing", SetProfileEditing(d))

	ts := &testServer{t: t, router: r, deps: d}
	w := ts.do(http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	ts.token = resp.Token
	return ts
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

type screenBody struct {
	View   session.ViewID  `json:"view"`
	Title  string          `json:"title"`
	Header *screens.Header `json:"header"`
	Data   json.RawMessage `json:"data"`
}

// ok performs a request that must succeed and returns the screen it answered with.
func (ts *testServer) ok(method, path string, body any) screenBody {
	ts.t.Helper()
	w := ts.do(method, path, body)
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())
	var scr screenBody
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &scr))
	return scr
}

// status performs a request that must fail with code and returns the error message.
func (ts *testServer) status(code int, method, path string, body any) string {
	ts.t.Helper()
	w := ts.do(method, path, body)
	require.Equal(ts.t, code, w.Code, w.Body.String())
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func (ts *testServer) login(role session.Role) screenBody {
	ts.t.Helper()
	return ts.ok(http.MethodPost, "/api/auth/login", models.LoginRequest{Role: string(role)})
}

// stored reads the caller's session straight from the store.
func (ts *testServer) stored() *session.Session {
	ts.t.Helper()
	claims, err := utils.ParseJWT(ts.deps.Cfg.JWTSecret, ts.token)
	require.NoError(ts.t, err)
	s, err := ts.deps.Store.Get(context.Background(), claims.SessionID)
	require.NoError(ts.t, err)
	return s
}

func decodeData[T any](t *testing.T, scr screenBody) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(scr.Data, &out))
	return out
}

var errGatewayDown = errors.New("gateway down")
