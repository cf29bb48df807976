// Package report renders paired tasks as a daily text summary or as CSV.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
)

// Aggregator folds a chronological task stream into per-day totals. Each
// task line is written as it arrives; a day's footer is written when the
// first task of the next day arrives, or on Close.
type Aggregator struct {
	w            io.Writer
	date         timecalc.Date
	started      bool
	dayHours     float64
	hoursPerTags map[string]float64
}

// NewAggregator returns an Aggregator writing to w.
func NewAggregator(w io.Writer) *Aggregator {
	return &Aggregator{w: w, hoursPerTags: map[string]float64{}}
}

// Add records one task.
func (a *Aggregator) Add(task model.Task) error {
	d := task.Date()
	if a.started && d != a.date {
		if err := a.flush(); err != nil {
			return err
		}
	}
	a.started = true
	a.date = d
	hours := task.Hours()
	a.dayHours += hours
	a.hoursPerTags[task.TagKey()] += hours
	_, err := fmt.Fprintln(a.w, task.Summary())
	return err
}

// Close writes the footer of the last day. It must be called exactly once,
// also when no task was added.
func (a *Aggregator) Close() error {
	return a.flush()
}

func (a *Aggregator) flush() error {
	if _, err := fmt.Fprintf(a.w, "Total hours: %.1f :: %s\n\n", a.dayHours, a.breakdown()); err != nil {
		return err
	}
	a.dayHours = 0
	a.hoursPerTags = map[string]float64{}
	return nil
}

func (a *Aggregator) breakdown() string {
	keys := make([]string, 0, len(a.hoursPerTags))
	for k := range a.hoursPerTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %.1f", k, a.hoursPerTags[k])
	}
	return strings.Join(parts, " | ")
}

// Summarize writes the daily summary for tasks, which must be chronological.
func Summarize(w io.Writer, tasks []model.Task) error {
	agg := NewAggregator(w)
	for _, t := range tasks {
		if err := agg.Add(t); err != nil {
			return err
		}
	}
	return agg.Close()
}
