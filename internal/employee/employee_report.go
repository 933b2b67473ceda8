package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	employeeerrors "elms-portal/internal/employee/errors"

	"codeberg.org/go-pdf/fpdf"
)

const (
	ReportFormatJSON = "json"
	ReportFormatPDF  = "pdf"
)

// ReportFileName is leave-report-<employeeId>-<year>.<ext>.
func ReportFileName(employeeID string, year int, ext string) string {
	return fmt.Sprintf("leave-report-%s-%d.%s", employeeID, year, ext)
}

// RenderReport encodes r in format. An empty format means json.
func RenderReport(r Report, format string) (ReportFile, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ReportFormatJSON:
		body, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return ReportFile{}, employeeerrors.ErrReportRenderFailed
		}
		return ReportFile{
			Name:        ReportFileName(r.Employee.EmployeeID, r.Year, ReportFormatJSON),
			ContentType: "application/json",
			Body:        body,
		}, nil
	case ReportFormatPDF:
		body, err := buildReportPDF(r)
		if err != nil {
			return ReportFile{}, employeeerrors.ErrReportRenderFailed
		}
		return ReportFile{
			Name:        ReportFileName(r.Employee.EmployeeID, r.Year, ReportFormatPDF),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		return ReportFile{}, employeeerrors.ErrUnknownReportFormat
	}
}

// buildReportPDF lays the report out on A4 pages, breaking pages as the
// history grows. Streams stay uncompressed so the text remains searchable.
func buildReportPDF(r Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(fmt.Sprintf("Leave Report %d", r.Year), true)
	pdf.SetCreator("elms-portal", true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Leave Report %d", r.Year)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	b := r.LeaveBalance
	for _, line := range []string{
		fmt.Sprintf("Employee: %s (%s)", r.Employee.Name, r.Employee.EmployeeID),
		fmt.Sprintf("Department: %s", r.Employee.Department),
		fmt.Sprintf("Generated: %s", r.GeneratedDate),
		fmt.Sprintf("Allowance: %d days (%s)", b.TotalAllowance, b.AllowanceSource),
		fmt.Sprintf("Used: %d days  Remaining: %d days", b.UsedDays, b.RemainingDays),
		fmt.Sprintf("Approved: %d  Pending: %d  Rejected: %d", b.Approved, b.Pending, b.Rejected),
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(r.LeaveHistory) == 0 {
		pdf.Cell(0, 6, "No leave requests.")
		pdf.Ln(6)
	} else {
		widths := []float64{45, 30, 30, 20, 30}
		pdf.SetFont("Helvetica", "B", 10)
		for i, h := range []string{"Type", "Start", "End", "Days", "Status"} {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		for _, v := range r.LeaveHistory {
			row := []string{v.Type, v.StartDate, v.EndDate, strconv.Itoa(v.Days), v.Presentation.Label}
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
			if v.Reason != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.CellFormat(0, 5, tr("    "+v.Reason), "", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 10)
			}
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
