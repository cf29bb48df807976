package vcslog

import (
	"fmt"
	"io"

	"github.com/Tiliavir/clocked/internal/model"
)

// WriteReport prints one line per day block, optionally followed by each
// commit, then a grand total over all blocks.
func WriteReport(w io.Writer, blocks []DayBlock, cat *Categorizer, verbose bool) error {
	var all []model.LogEntry
	for _, b := range blocks {
		cats, err := cat.FormatCategories(b.Entries)
		if err != nil {
			return err
		}
		d := b.Date
		if _, err := fmt.Fprintf(w, "%02d.%02d.%04d: %2d commits -- %4d hours -- %s\n",
			d.Day, int(d.Month), d.Year, len(b.Entries), EstimateHours(b.Entries), cats); err != nil {
			return err
		}
		if verbose {
			for _, e := range b.Entries {
				if _, err := fmt.Fprintf(w, "    %s %s (%s)\n", e.Timestamp.Format("15:04"), e.Description, e.Repo); err != nil {
					return err
				}
			}
		}
		all = append(all, b.Entries...)
	}

	cats, err := cat.FormatCategories(all)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Total: %d commits -- %s\n", len(all), cats)
	return err
}
