package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
	"github.com/Tiliavir/clocked/internal/tracker"
)

var (
	listWeek  bool
	listDate  string
	listInput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stamped events",
	Long: `List the raw in/out events for a day in local time. The clock shown is what
"clocked delete -t HH:MM -d YYYY-MM-DD" expects.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's events")
	listCmd.Flags().StringVarP(&listDate, "date", "d", timecalc.DateToday, "Day to show (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listInput, "input", "", "Read events from a snapshot file ('-' for stdin) instead of the service")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	loc := reportLocation(cfg)
	now := time.Now().In(loc)

	var rng tracker.DateRange
	switch {
	case listWeek:
		rng.Start, rng.End = timecalc.WeekRange(now)
	case listDate == timecalc.DateToday:
		rng.Start = timecalc.DateOf(now)
		rng.End = rng.Start
	default:
		d, err := timecalc.ParseDate(listDate)
		if err != nil {
			fail(1, err)
		}
		rng.Start, rng.End = d, d
	}

	events, err := loadEvents(cmd.Context(), cfg, listInput)
	if err != nil {
		fail(2, err)
	}

	if err := printList(os.Stdout, events, rng, loc); err != nil {
		fail(2, err)
	}
	return nil
}

// printList prints events within rng, by local date, grouped under a date line.
func printList(w io.Writer, events []model.Event, rng tracker.DateRange, loc *time.Location) error {
	var shown []model.Event
	for _, e := range events {
		if rng.Contains(timecalc.DateOf(e.Timestamp.In(loc))) {
			shown = append(shown, e)
		}
	}
	sort.SliceStable(shown, func(i, j int) bool {
		return shown[i].Timestamp.Before(shown[j].Timestamp)
	})

	if len(shown) == 0 {
		_, err := fmt.Fprintln(w, "No events found.")
		return err
	}

	var currentDay timecalc.Date
	for _, e := range shown {
		local := e.Timestamp.In(loc)
		if day := timecalc.DateOf(local); day != currentDay {
			if _, err := fmt.Fprintln(w, day); err != nil {
				return err
			}
			currentDay = day
		}
		line := fmt.Sprintf("  %s  %-3s  %s", local.Format("15:04"), e.Status, e.ID())
		if e.Status == model.StatusIn {
			line += fmt.Sprintf("  %s %s", e.Description, formatTags(e.Tags))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
