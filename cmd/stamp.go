package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/config"
	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
)

var (
	inMessage string
	inTime    string
	inDate    string

	outTime string
	outDate string

	deleteTime string
	deleteDate string
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Stamp in",
	Long: `Stamp in with a status message. Words starting with '#' become tags:

  clocked in -m "fix login form #acme #web"`,
	Args: cobra.NoArgs,
	RunE: runIn,
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Stamp out",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the event stamped at the given time",
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

func init() {
	inCmd.Flags().StringVarP(&inMessage, "message", "m", "", "Status message (with #hashtags)")
	inCmd.Flags().StringVarP(&inTime, "time", "t", timecalc.ClockNow, "Clock to use instead of the current time (HH:MM)")
	inCmd.Flags().StringVarP(&inDate, "date", "d", timecalc.DateToday, "Date to use instead of today (YYYY-MM-DD)")
	_ = inCmd.MarkFlagRequired("message")

	outCmd.Flags().StringVarP(&outTime, "time", "t", timecalc.ClockNow, "Clock to use instead of the current time (HH:MM)")
	outCmd.Flags().StringVarP(&outDate, "date", "d", timecalc.DateToday, "Date to use instead of today (YYYY-MM-DD)")

	deleteCmd.Flags().StringVarP(&deleteTime, "time", "t", "", "Time of day of the event (HH:MM)")
	deleteCmd.Flags().StringVarP(&deleteDate, "date", "d", timecalc.DateToday, "Date to use instead of today (YYYY-MM-DD)")
	_ = deleteCmd.MarkFlagRequired("time")
}

func runIn(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ts, err := timecalc.ResolveClock(time.Now(), inTime, inDate, reportLocation(cfg))
	if err != nil {
		fail(1, err)
	}

	desc, tags := parseMessage(inMessage)
	post(cmd, cfg, model.Event{Status: model.StatusIn, Timestamp: ts, Description: desc, Tags: tags})

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Stamped IN at %s UTC: %s %s",
		ts.Format("2006-01-02 15:04:05"), desc, formatTags(tags))))
	return nil
}

func runOut(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ts, err := timecalc.ResolveClock(time.Now(), outTime, outDate, reportLocation(cfg))
	if err != nil {
		fail(1, err)
	}

	post(cmd, cfg, model.Event{Status: model.StatusOut, Timestamp: ts, Tags: []string{}})

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Stamped OUT at %s UTC", ts.Format("2006-01-02 15:04:05"))))
	return nil
}

func post(cmd *cobra.Command, cfg config.Config, e model.Event) {
	client := newClient(cmd.Context(), cfg)
	res, err := client.CreateEvent(cmd.Context(), e)
	if err != nil {
		fail(2, err)
	}
	if strings.TrimSpace(res) != "" {
		fmt.Println(styleHint.Render(strings.TrimSpace(res)))
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ts, err := timecalc.ResolveClock(time.Now(), deleteTime, deleteDate, reportLocation(cfg))
	if err != nil {
		fail(1, err)
	}

	client := newClient(cmd.Context(), cfg)
	res, err := client.DeleteEvent(cmd.Context(), ts)
	if err != nil {
		fail(2, err)
	}
	if strings.TrimSpace(res) != "" {
		fmt.Println(styleHint.Render(strings.TrimSpace(res)))
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Deleted event at %s UTC", ts.Format("2006-01-02 15:04:05"))))
	return nil
}
