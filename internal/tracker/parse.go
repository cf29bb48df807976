// Package tracker turns the raw clock-in/clock-out feed into paired work
// sessions.
package tracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
)

// ParseEvents converts raw records into events. Records without a status are
// dropped. The first unparseable timestamp aborts the parse.
func ParseEvents(raw []model.RawEvent) ([]model.Event, error) {
	events := make([]model.Event, 0, len(raw))
	for _, r := range raw {
		if r.Status == nil {
			continue
		}
		ts, err := timecalc.ParseTimestamp(r.Key())
		if err != nil {
			return nil, err
		}
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		events = append(events, model.Event{
			Status:      *r.Status,
			Timestamp:   ts,
			Description: r.Description,
			Tags:        tags,
		})
	}
	return events, nil
}

// DecodeEvents reads a JSON array of records and parses it.
func DecodeEvents(r io.Reader) ([]model.Event, error) {
	var raw []model.RawEvent
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return ParseEvents(raw)
}
