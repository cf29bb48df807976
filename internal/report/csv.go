package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/clocked/internal/model"
)

var csvHeader = []string{"Date", "StartTime", "EndTime", "Hours", "Tags", "Description"}

// WriteCSV writes one row per task, CRLF terminated. No per-day totals are
// emitted.
func WriteCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			t.Date().String(),
			t.Start.Format("15:04"),
			t.End.Format("15:04"),
			fmt.Sprintf("%.1f", t.Hours()),
			strings.Join(t.Tags, " "),
			t.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
