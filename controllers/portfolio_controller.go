package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"fidexia/backend/fixtures"
	"fidexia/backend/middlewares"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	portfolioSheet  = "Portafolio"
)

// ExportPortfolio downloads the investor's portfolio as a spreadsheet.
func ExportPortfolio(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := middlewares.CurrentSession(c)
		if s == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		if s.UserType != session.RoleInvestor {
			c.JSON(http.StatusForbidden, gin.H{"error": "only investors have a portfolio"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		invs, err := d.Data.Investments(ctx)
		if err != nil {
			internal(c, "load investments", err)
			return
		}
		buf, err := portfolioWorkbook(invs)
		if err != nil {
			internal(c, "build workbook", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="portafolio.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}

func portfolioWorkbook(invs []fixtures.Investment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", portfolioSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Proyecto", "Estado", "Monto (USD)", "ROI (%)", "Impacto"}
	if err := f.SetSheetRow(portfolioSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, inv := range invs {
		amount, _ := inv.Amount.Float64()
		row := []interface{}{inv.Title, string(inv.Status), amount, inv.ROI, inv.Impact}
		if err := f.SetSheetRow(portfolioSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	t := fixtures.Totals(invs)
	invested, _ := t.Invested.Float64()
	avg, _ := t.AvgROI.Float64()
	totals := []interface{}{"Total", fmt.Sprintf("%d activos / %d completados", t.Active, t.Completed), invested, avg}
	if err := f.SetSheetRow(portfolioSheet, fmt.Sprintf("A%d", len(invs)+3), &totals); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
