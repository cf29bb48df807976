package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/clocked/internal/timecalc"
)

// Task is a work session derived from an "in" event and the event after it.
// Start and End are in the reporting location. Start <= End is not enforced.
type Task struct {
	Start       time.Time
	End         time.Time
	Description string
	Tags        []string
}

// Date returns the local calendar date the task started on.
func (t Task) Date() timecalc.Date {
	return timecalc.DateOf(t.Start)
}

// Hours returns the elapsed time between Start and End in hours.
func (t Task) Hours() float64 {
	return t.End.Sub(t.Start).Seconds() / 3600
}

// TagKey joins the tags in the order given; "" when untagged.
func (t Task) TagKey() string {
	return strings.Join(t.Tags, "/")
}

// Summary renders the task as one report line.
func (t Task) Summary() string {
	return fmt.Sprintf("%s %s -- %s (%.1fh): %s %s",
		t.Date(),
		t.Start.Format("15:04"),
		t.End.Format("15:04"),
		t.Hours(),
		t.Description,
		formatTags(t.Tags),
	)
}

func formatTags(tags []string) string {
	return "[" + strings.Join(tags, ", ") + "]"
}
