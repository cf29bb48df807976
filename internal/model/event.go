package model

import (
	"time"

	"github.com/Tiliavir/clocked/internal/timecalc"
)

// Event statuses.
const (
	StatusIn  = "in"
	StatusOut = "out"
)

// RawEvent is a record as returned by the time service. Every field is
// optional: a nil Status marks the record as noise, Description defaults to ""
// and Tags to an empty list.
type RawEvent struct {
	Status      *string  `json:"status"`
	ID          string   `json:"_id"`
	LegacyID    string   `json:"id,omitempty"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Key returns the timestamp string identifying the record.
func (r RawEvent) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.LegacyID
}

// Event is a single clock-in or clock-out stamp.
type Event struct {
	Status      string
	Timestamp   time.Time // UTC
	Description string
	Tags        []string
}

// ID is the record key used when posting or deleting the event.
func (e Event) ID() string {
	return timecalc.FormatTimestamp(e.Timestamp)
}

// Date returns the UTC calendar date of the stamp.
func (e Event) Date() timecalc.Date {
	return timecalc.DateOf(e.Timestamp.UTC())
}

// Raw converts e back into the wire representation.
func (e Event) Raw() RawEvent {
	status := e.Status
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return RawEvent{
		Status:      &status,
		ID:          e.ID(),
		Description: e.Description,
		Tags:        tags,
	}
}
