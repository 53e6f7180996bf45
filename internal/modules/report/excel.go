package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderPeriodExcel writes the period report into a single-sheet workbook.
func RenderPeriodExcel(r *PeriodReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Sales Report (%s)", r.Period))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("%s - %s", r.StartDate, r.EndDate))

	summary := [][]any{
		{"Total visits", r.TotalVisits},
		{"Visited", r.VisitedCount},
		{"Not visited", r.NotVisitedCount},
		{"Pending", r.PendingCount},
		{"Visit rate (%)", r.VisitRate},
		{"Total payment", r.TotalPayment},
		{"Working days", r.WorkingDays},
		{"Avg visits/day", r.AvgVisitsPerDay},
		{"Avg payment/day", r.AvgPaymentPerDay},
		{"Distance (km)", r.TotalDistanceKM},
		{"Fuel cost", r.TotalFuelCost},
	}
	row := 4
	for _, pair := range summary {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), pair[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), pair[1])
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Payments by type")
	row++
	for _, typ := range []string{"Cash", "Card", "Transfer", "Check"} {
		if amount, ok := r.PaymentsByType[typ]; ok {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), typ)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), amount)
			row++
		}
	}

	row++
	headers := []string{"Date", "Day", "Visited", "Not visited", "Pending", "Payment"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	row++
	for _, d := range r.DailyRows {
		values := []any{d.Date, d.Weekday, d.Visited, d.NotVisited, d.Pending, d.Payment}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
