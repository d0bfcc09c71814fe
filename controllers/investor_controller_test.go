package controllers

import (
	"bytes"
	"net/http"
	"testing"

	"fidexia/backend/screens"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestFilters(t *testing.T) {
	ts := newTestServer(t)
	ts.login(session.RoleInvestor)

	scr := ts.ok(http.MethodPost, "/api/filters", gin.H{"sector": "energia"})
	dash := decodeData[screens.InvestorDashboardData](t, scr)
	require.Len(t, dash.Opportunities, 1)
	assert.Equal(t, "Energía Solar Comunitaria", dash.Opportunities[0].Title)

	scr = ts.ok(http.MethodPost, "/api/filters", gin.H{"search": "agua", "sector": ""})
	dash = decodeData[screens.InvestorDashboardData](t, scr)
	require.Len(t, dash.Opportunities, 1)
	assert.Equal(t, "all", dash.FilterSector)
	assert.Equal(t, "agua", dash.SearchQuery)

	// absent fields keep their value
	scr = ts.ok(http.MethodPost, "/api/filters", gin.H{})
	assert.Equal(t, "agua", decodeData[screens.InvestorDashboardData](t, scr).SearchQuery)
}

func TestSelectOpportunityAndInvest(t *testing.T) {
	ts := newTestServer(t)
	ts.login(session.RoleInvestor)

	ts.status(http.StatusNotFound, http.MethodPost, "/api/opportunities/9/select", nil)
	ts.status(http.StatusBadRequest, http.MethodPost, "/api/opportunities/first/select", nil)
	ts.status(http.StatusConflict, http.MethodPost, "/api/investments/confirm", gin.H{"amount": "5000"})

	scr := ts.ok(http.MethodPost, "/api/opportunities/1/select", nil)
	assert.Equal(t, session.ViewProjectDetail, scr.View)
	detail := decodeData[screens.ProjectDetailData](t, scr)
	assert.Equal(t, "EduTech Para Todos", detail.Title)
	assert.True(t, detail.CanInvest)

	ts.status(http.StatusBadRequest, http.MethodPost, "/api/investments/confirm", gin.H{})
	ts.status(http.StatusBadRequest, http.MethodPost, "/api/investments/confirm", gin.H{"amount": "-5"})
	ts.status(http.StatusBadRequest, http.MethodPost, "/api/investments/confirm", gin.H{"amount": "999.99"})

	scr = ts.ok(http.MethodPost, "/api/investments/confirm", gin.H{"amount": "1000"})
	assert.Equal(t, session.ViewProjectDetail, scr.View)

	scr = ts.ok(http.MethodPost, "/api/navigate", gin.H{"view": "investor-dashboard"})
	assert.Nil(t, ts.stored().SelectedProject)
}

func TestInvest_OnlyInvestors(t *testing.T) {
	ts := newTestServer(t)
	ts.login(session.RoleEntrepreneur)
	ts.ok(http.MethodPost, "/api/navigate", gin.H{"view": "project-detail"})
	ts.status(http.StatusForbidden, http.MethodPost, "/api/investments/confirm", gin.H{"amount": "5000"})
}

func TestInvest_GatewayFailure(t *testing.T) {
	ts := newTestServerWithGateway(t, stubGateway{LogGateway: LogGateway{Log: zap.NewNop()}, err: errGatewayDown})
	ts.login(session.RoleInvestor)
	ts.ok(http.MethodPost, "/api/navigate", gin.H{"view": "project-detail"})
	ts.status(http.StatusInternalServerError, http.MethodPost, "/api/investments/confirm", gin.H{"amount": "5000"})
}

func TestExportPortfolio(t *testing.T) {
	ts := newTestServer(t)

	ts.status(http.StatusForbidden, http.MethodGet, "/api/portfolio/export", nil)

	ts.login(session.RoleInvestor)
	w := ts.do(http.MethodGet, "/api/portfolio/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(portfolioSheet)
	require.NoError(t, err)
	require.Len(t, rows, 9) // header, six investments, blank, totals
	assert.Equal(t, "Proyecto", rows[0][0])
	assert.Equal(t, "Agricultura Sostenible", rows[1][0])
	assert.Equal(t, "Total", rows[8][0])
	assert.Equal(t, "160500", rows[8][2])
}
