package tracker

import (
	"sort"
	"time"

	"github.com/Tiliavir/clocked/internal/model"
)

// Pairer builds tasks from events, converting both endpoints to Location.
type Pairer struct {
	Location *time.Location // nil means time.Local
}

// Pair sorts events by timestamp and emits a task for every "in" event
// followed by another event of any status. A trailing "in" is an open session
// and produces nothing. When rng is non-nil, events outside it are dropped
// first, judged by their UTC date.
func (p Pairer) Pair(events []model.Event, rng *DateRange) []model.Task {
	if rng != nil {
		events = FilterEvents(events, *rng)
	} else {
		events = append([]model.Event(nil), events...)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	loc := p.Location
	if loc == nil {
		loc = time.Local
	}

	var tasks []model.Task
	for i := 0; i+1 < len(events); i++ {
		start, end := events[i], events[i+1]
		if start.Status != model.StatusIn {
			continue
		}
		tasks = append(tasks, model.Task{
			Start:       start.Timestamp.In(loc),
			End:         end.Timestamp.In(loc),
			Description: start.Description,
			Tags:        start.Tags,
		})
	}
	return tasks
}

// OpenSession returns the latest event when it is an "in" with nothing after it.
func OpenSession(events []model.Event) (model.Event, bool) {
	var last model.Event
	found := false
	for _, e := range events {
		if !found || !e.Timestamp.Before(last.Timestamp) {
			last = e
			found = true
		}
	}
	if !found || last.Status != model.StatusIn {
		return model.Event{}, false
	}
	return last, true
}
