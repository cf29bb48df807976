package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/config"
	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/report"
	"github.com/Tiliavir/clocked/internal/storage"
	"github.com/Tiliavir/clocked/internal/timecalc"
	"github.com/Tiliavir/clocked/internal/tracker"
)

var (
	summaryStart  string
	summaryEnd    string
	summaryWeek   bool
	summaryFilter string
	summaryCSV    bool
	summaryInput  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print work sessions with per-day totals",
	Long: `Pair stamped events into work sessions and print them grouped by day with
per-day and per-tag totals, or as CSV with --csv.

--filter event keeps events whose UTC date lies within --start-date and
--end-date before pairing. --filter task pairs everything and then drops
sessions that started before --start-date.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryStart, "start-date", "s", "", "First date to include (YYYY-MM-DD)")
	summaryCmd.Flags().StringVarP(&summaryEnd, "end-date", "e", "", "Last date to include (YYYY-MM-DD)")
	summaryCmd.Flags().BoolVar(&summaryWeek, "week", false, "Limit to the current week")
	summaryCmd.Flags().StringVar(&summaryFilter, "filter", "", "Date filter granularity: event or task (default from config)")
	summaryCmd.Flags().BoolVar(&summaryCSV, "csv", false, "Write CSV instead of the text summary")
	summaryCmd.Flags().StringVar(&summaryInput, "input", "", "Read events from a snapshot file ('-' for stdin) instead of the service")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	loc := reportLocation(cfg)

	filter := summaryFilter
	if filter == "" {
		filter = cfg.Report.Filter
	}
	mode, err := tracker.ParseFilterMode(filter)
	if err != nil {
		fail(1, err)
	}

	rng, err := summaryRange(time.Now().In(loc))
	if err != nil {
		fail(1, err)
	}

	events, err := loadEvents(cmd.Context(), cfg, summaryInput)
	if err != nil {
		fail(2, err)
	}

	tasks, err := tracker.Select(events, mode, rng, tracker.Pairer{Location: loc})
	if err != nil {
		fail(1, err)
	}

	if summaryCSV {
		err = report.WriteCSV(os.Stdout, tasks)
	} else {
		err = report.Summarize(os.Stdout, tasks)
	}
	if err != nil {
		fail(2, err)
	}
	return nil
}

// summaryRange builds the date range from the flags. --week sets both bounds;
// explicit dates override them.
func summaryRange(now time.Time) (tracker.DateRange, error) {
	var rng tracker.DateRange
	if summaryWeek {
		rng.Start, rng.End = timecalc.WeekRange(now)
	}
	if summaryStart != "" {
		d, err := timecalc.ParseDate(summaryStart)
		if err != nil {
			return rng, fmt.Errorf("invalid --start-date: %w", err)
		}
		rng.Start = d
	}
	if summaryEnd != "" {
		d, err := timecalc.ParseDate(summaryEnd)
		if err != nil {
			return rng, fmt.Errorf("invalid --end-date: %w", err)
		}
		rng.End = d
	}
	if !rng.Start.IsZero() && !rng.End.IsZero() && rng.End.Before(rng.Start) {
		return rng, fmt.Errorf("--end-date %s is before --start-date %s", rng.End, rng.Start)
	}
	return rng, nil
}

// loadEvents reads events from input when set, otherwise from the service.
func loadEvents(ctx context.Context, cfg config.Config, input string) ([]model.Event, error) {
	switch input {
	case "":
		return newClient(ctx, cfg).ListEvents(ctx)
	case "-":
		return tracker.DecodeEvents(os.Stdin)
	}
	raw, err := storage.LoadSnapshot(input)
	if err != nil {
		return nil, err
	}
	return tracker.ParseEvents(raw)
}
