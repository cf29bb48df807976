package model

import (
	"fmt"
	"time"

	"github.com/Tiliavir/clocked/internal/timecalc"
)

// NightOwlHour is the hour before which a commit counts toward the previous day.
const NightOwlHour = 5

// LogEntry is one version-control commit.
type LogEntry struct {
	Repo        string
	Timestamp   time.Time // local wall clock, commit offset discarded
	Description string
	Files       string // raw changed-file list
}

// Date returns the workday the commit belongs to.
func (e LogEntry) Date() timecalc.Date {
	if e.Timestamp.Hour() < NightOwlHour {
		return timecalc.DateOf(e.Timestamp).AddDays(-1)
	}
	return timecalc.DateOf(e.Timestamp)
}

func (e LogEntry) String() string {
	return fmt.Sprintf("LogEntry(%s, repo=%q, files=%q, desc=%q)",
		e.Timestamp.Format("2006-01-02 15:04:05"), e.Repo, e.Files, e.Description)
}
