// Package report renders finished countdowns to PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/go-pdf/fpdf"
)

// FileName is the default report name for a day.
func FileName(date string) string {
	return fmt.Sprintf("countdown_%s.pdf", date)
}

// WritePDF renders the day summary to w.
func WritePDF(w io.Writer, summary models.DaySummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Countdown Report: %s", summary.Date), false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Countdown Report: %s", summary.Date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(20, 8, "#", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Length", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Started", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Finished", "B", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	if len(summary.Runs) == 0 {
		pdf.Cell(0, 8, "No countdowns finished.")
		pdf.Ln(8)
	}
	for i, r := range summary.Runs {
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, FormatClock(r.DurationSeconds), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, r.StartedAt.Format("15:04:05"), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, r.FinishedAt.Format("15:04:05"), "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Countdowns finished: %d", len(summary.Runs)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total time counted: %s", FormatClock(summary.TotalSeconds)))

	return pdf.Output(w)
}

// WriteFile renders the summary into path, creating parent directories.
func WriteFile(path string, summary models.DaySummary) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := WritePDF(f, summary); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// FormatClock renders seconds as HH:MM:SS.
func FormatClock(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
