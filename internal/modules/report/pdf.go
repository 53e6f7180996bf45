package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPeriodPDF lays the period report out as an A4 document.
func RenderPeriodPDF(r *PeriodReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Period Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Sales Report (%s)", r.Period), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s", r.StartDate, r.EndDate), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	summaryRow(pdf, "Total visits", fmt.Sprintf("%d", r.TotalVisits))
	summaryRow(pdf, "Visited", fmt.Sprintf("%d", r.VisitedCount))
	summaryRow(pdf, "Not visited", fmt.Sprintf("%d", r.NotVisitedCount))
	summaryRow(pdf, "Pending", fmt.Sprintf("%d", r.PendingCount))
	summaryRow(pdf, "Visit rate", fmt.Sprintf("%.1f%%", r.VisitRate))
	summaryRow(pdf, "Total payment", fmt.Sprintf("%.2f", r.TotalPayment))
	summaryRow(pdf, "Working days", fmt.Sprintf("%d", r.WorkingDays))
	summaryRow(pdf, "Avg visits/day", fmt.Sprintf("%.1f", r.AvgVisitsPerDay))
	summaryRow(pdf, "Avg payment/day", fmt.Sprintf("%.1f", r.AvgPaymentPerDay))
	summaryRow(pdf, "Distance (km)", fmt.Sprintf("%.1f", r.TotalDistanceKM))
	summaryRow(pdf, "Fuel cost", fmt.Sprintf("%.2f", r.TotalFuelCost))
	pdf.Ln(4)

	if len(r.PaymentsByType) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Payments by type", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, typ := range []string{"Cash", "Card", "Transfer", "Check"} {
			if amount, ok := r.PaymentsByType[typ]; ok {
				summaryRow(pdf, typ, fmt.Sprintf("%.2f", amount))
			}
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Daily breakdown", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(28, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 7, "Day", "1", 0, "L", false, 0, "")
	pdf.CellFormat(24, 7, "Visited", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 7, "Not visited", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 7, "Pending", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Payment", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range r.DailyRows {
		pdf.CellFormat(28, 6, row.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, row.Weekday, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 6, fmt.Sprintf("%d", row.Visited), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%d", row.NotVisited), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, fmt.Sprintf("%d", row.Pending), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.Payment), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDailyPDF lays the single-day sheet out as an A4 document.
func RenderDailyPDF(r *DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Daily Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Daily Report - %s", r.Day), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, r.Date, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(50, 7, "Customer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Region", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Payment", "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 7, "Note", "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range r.Rows {
		pdf.CellFormat(50, 6, row.CustomerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, row.Region, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, row.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", row.PaymentAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(55, 6, row.Note, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total collected: %.2f", r.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
