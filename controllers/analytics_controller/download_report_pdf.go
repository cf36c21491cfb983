package analytics_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadReportPDF godoc
// @Summary Download the monthly report PDF
// @Description Generates a PDF of the monthly summary and city comparison and downloads it
// @Tags Analytics
// @Produce octet-stream
// @Param area_id query string false "City filter (all cities when omitted)"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/report [get]
func DownloadReportPDF(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	areaID, err := parseAreaID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	snap, err := loadSnapshot()
	if err != nil {
		log.Printf("[analytics.report] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	cityLabel := "All Cities"
	if areaID != nil {
		for _, a := range snap.Areas {
			if a.ID == *areaID {
				cityLabel = a.Name
				break
			}
		}
	}

	summary := analytics.CalculateCityAnalytics(snap.Properties, snap.Bookings, areaID, month)
	comparison := analytics.CalculateCityComparison(snap.Areas, snap.Properties, snap.Bookings, month)

	buf, err := generateMonthlyReportPDF(month, cityLabel, summary, comparison)
	if err != nil {
		log.Printf("[analytics.report] ERROR generating PDF err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	filename := fmt.Sprintf("staytrack-report-%s.pdf", month.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())

	log.Printf("[analytics.report] PDF downloaded month=%s city=%s", month.Format("2006-01"), cityLabel)
}

func generateMonthlyReportPDF(month time.Time, cityLabel string, summary models.AnalyticsData, comparison []models.CityMetrics) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("MONTHLY PERFORMANCE REPORT", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s - %s", month.Format("January 2006"), cityLabel), props.Text{
				Size:  12,
				Color: mediumGray,
			})
		})
	})

	m.Row(10, func() {})
	for _, row := range summaryRows(summary) {
		label, value := row[0], row[1]
		m.Row(8, func() {
			m.Col(8, func() {
				m.Text(label, props.Text{Size: 10, Color: mediumGray})
			})
			m.Col(4, func() {
				m.Text(value, props.Text{
					Size:  10,
					Style: consts.Bold,
					Align: consts.Right,
					Color: darkGray,
				})
			})
		})
	}

	m.Row(12, func() {})
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("City Comparison", props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	header := []string{"City", "Properties", "Revenue", "Fill Rate", "ADR"}
	var rows [][]string
	for _, cm := range comparison {
		rows = append(rows, []string{
			cm.CityName,
			fmt.Sprintf("%d", cm.Properties),
			fmt.Sprintf("%.2f", cm.Revenue),
			fmt.Sprintf("%.1f%%", cm.OccupancyRate),
			fmt.Sprintf("%.2f", cm.AverageDailyRate),
		})
	}
	m.TableList(header, rows, props.TableList{
		HeaderProp:  props.TableListContent{Size: 10, Style: consts.Bold},
		ContentProp: props.TableListContent{Size: 9},
		Align:       consts.Left,
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
