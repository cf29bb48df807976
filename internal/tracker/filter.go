package tracker

import (
	"fmt"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
)

// FilterMode selects the granularity at which a date range is applied.
// The two modes disagree on days where the UTC date of a stamp differs from
// the local start date of its task.
type FilterMode string

const (
	// FilterByEvent drops events whose UTC date is outside [Start, End]
	// before pairing.
	FilterByEvent FilterMode = "event"
	// FilterByTask drops tasks whose local start date is before Start.
	// End is ignored.
	FilterByTask FilterMode = "task"
)

// ParseFilterMode validates a mode name.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case FilterByEvent, FilterByTask:
		return FilterMode(s), nil
	}
	return "", fmt.Errorf("unknown filter mode %q (want %q or %q)", s, FilterByEvent, FilterByTask)
}

// DateRange is an inclusive range of calendar dates. A zero bound is open.
type DateRange struct {
	Start timecalc.Date
	End   timecalc.Date
}

// Contains reports whether d lies within the range.
func (r DateRange) Contains(d timecalc.Date) bool {
	if !r.Start.IsZero() && d.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && d.After(r.End) {
		return false
	}
	return true
}

// FilterEvents keeps events whose own UTC date is inside rng.
func FilterEvents(events []model.Event, rng DateRange) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if rng.Contains(e.Date()) {
			out = append(out, e)
		}
	}
	return out
}

// FilterTasks drops tasks that started before from. A zero from keeps everything.
func FilterTasks(tasks []model.Task, from timecalc.Date) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !from.IsZero() && t.Date().Before(from) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Select pairs events into tasks, applying rng at the granularity given by mode.
func Select(events []model.Event, mode FilterMode, rng DateRange, p Pairer) ([]model.Task, error) {
	switch mode {
	case FilterByEvent:
		return p.Pair(events, &rng), nil
	case FilterByTask:
		return FilterTasks(p.Pair(events, nil), rng.Start), nil
	}
	return nil, fmt.Errorf("unknown filter mode %q", mode)
}
