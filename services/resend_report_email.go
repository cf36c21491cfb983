package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/StayTrack-Labs/staytrack-backend/models"
)

// ResendClient handles email sending via the Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "reports@staytrack.app"
	}

	return &ResendClient{apiKey: apiKey, from: from}, nil
}

// MonthlyReportEmailData holds data for the monthly analytics report email
type MonthlyReportEmailData struct {
	Recipient  string
	MonthLabel string
	CityLabel  string
	Summary    models.AnalyticsData
	PDFContent []byte
}

// SendMonthlyReportEmail sends the monthly summary with the PDF report
// attached via Resend
func (r *ResendClient) SendMonthlyReportEmail(data MonthlyReportEmailData) error {
	htmlBody := r.buildMonthlyReportHTML(data)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.Recipient,
		"subject": fmt.Sprintf("StayTrack report - %s (%s)", data.MonthLabel, data.CityLabel),
		"html":    htmlBody,
	}
	if len(data.PDFContent) > 0 {
		payload["attachments"] = []map[string]string{
			{
				"filename": fmt.Sprintf("staytrack-report-%s.pdf", strings.ReplaceAll(data.MonthLabel, " ", "-")),
				"content":  base64.StdEncoding.EncodeToString(data.PDFContent),
			},
		}
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[resend] request failed: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] non-2xx response: %d body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	log.Printf("[resend] monthly report sent to %s", data.Recipient)
	return nil
}

func (r *ResendClient) buildMonthlyReportHTML(data MonthlyReportEmailData) string {
	row := func(label, value string) string {
		return fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #79776d;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">%s</td>
      </tr>`, label, value)
	}

	var rows strings.Builder
	rows.WriteString(row("Total Revenue", fmt.Sprintf("%.2f", data.Summary.TotalRevenue)))
	rows.WriteString(row("Total Properties", fmt.Sprintf("%d", data.Summary.TotalProperties)))
	rows.WriteString(row("Average Occupancy Rate", fmt.Sprintf("%.1f%%", data.Summary.AverageOccupancyRate)))
	rows.WriteString(row("Average Daily Rate", fmt.Sprintf("%.2f", data.Summary.AverageDailyRate)))
	rows.WriteString(row("Total Booked Nights", fmt.Sprintf("%d", data.Summary.TotalBookedNights)))
	rows.WriteString(row("Month-over-Month Growth", fmt.Sprintf("%.1f%%", data.Summary.MonthOverMonthGrowth)))
	rows.WriteString(row("Properties with Bookings", fmt.Sprintf("%d", data.Summary.PropertiesWithBookings)))

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"></head>
<body style="margin: 0; background: #f5f4f0; font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 24px auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h1 style="font-size: 20px; color: #262622; margin: 0 0 4px;">Monthly Performance Report</h1>
    <p style="font-size: 14px; color: #79776d; margin: 0 0 24px;">%s &middot; %s</p>
    <table style="width: 100%%; border-collapse: collapse;">%s</table>
    <p style="font-size: 12px; color: #79776d; margin-top: 24px;">The full report is attached as a PDF.</p>
  </div>
</body>
</html>`, data.MonthLabel, data.CityLabel, rows.String())
}
