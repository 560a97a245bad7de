package domain

import "time"

// EventRecord is a decoded event row.
// PresenterIDs is nil when the row has no presenters field at all.
type EventRecord struct {
	ID           string
	EventDate    time.Time
	PresenterIDs []string
	Fields       map[string]any
}

// NewEventRecord returns a new EventRecord with the given fields.
func NewEventRecord(id string, eventDate time.Time, presenterIDs []string, fields map[string]any) *EventRecord {
	return &EventRecord{
		ID:           id,
		EventDate:    eventDate,
		PresenterIDs: presenterIDs,
		Fields:       fields,
	}
}

// Presenter is a person associated with one or more events (name, bio, ...).
// swagger:model Presenter
type Presenter struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// NewPresenter returns a new Presenter keyed by the store's record id.
func NewPresenter(id string, fields map[string]any) *Presenter {
	return &Presenter{ID: id, Fields: fields}
}

// JoinedEvent is an event whose presenter ids have been resolved.
// Presenters keeps the source order; an id that did not resolve leaves a nil
// entry at its position. Presenters is nil when the source had no presenters.
// swagger:model JoinedEvent
type JoinedEvent struct {
	ID         string         `json:"id"`
	EventDate  time.Time      `json:"event_date"`
	Presenters []*Presenter   `json:"presenters,omitempty"`
	Fields     map[string]any `json:"fields"`
}
