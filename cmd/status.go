package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
	"github.com/Tiliavir/clocked/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are clocked in",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	loc := reportLocation(cfg)
	now := time.Now().In(loc)

	events, err := newClient(cmd.Context(), cfg).ListEvents(cmd.Context())
	if err != nil {
		fail(2, err)
	}

	if open, ok := tracker.OpenSession(events); ok {
		elapsed := int64(now.Sub(open.Timestamp).Seconds())
		fmt.Println(styleActive.Render("Clocked in:"))
		fmt.Printf("  %s %s %s\n", styleLabel.Render("Message:"), open.Description, formatTags(open.Tags))
		fmt.Printf("  %s %s\n", styleLabel.Render("Since:"), open.Timestamp.In(loc).Format("2006-01-02 15:04"))
		fmt.Printf("  %s %s\n", styleLabel.Render("Elapsed:"), timecalc.FormatDurationHHMMSS(elapsed))
		return nil
	}

	fmt.Println("Not clocked in.")
	fmt.Printf("Today: %s logged.\n", timecalc.FormatDuration(loggedOn(events, timecalc.DateOf(now), loc)))
	return nil
}

// loggedOn sums the seconds of closed sessions that started on day.
func loggedOn(events []model.Event, day timecalc.Date, loc *time.Location) int64 {
	tasks := tracker.Pairer{Location: loc}.Pair(events, nil)
	var total int64
	for _, t := range tracker.FilterTasks(tasks, day) {
		if t.Date() == day {
			total += int64(t.End.Sub(t.Start).Seconds())
		}
	}
	return total
}
