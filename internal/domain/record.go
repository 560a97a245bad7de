package domain

import "context"

// Field names the schedule reads from event records. All other fields are
// passed through untouched for display.
const (
	FieldEventDate  = "event_date"
	FieldPresenters = "presenters"
)

// Record is a row of the hosted records store: an opaque identifier assigned
// by the store plus the row's fields.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// RecordSource lists the raw event and presenter tables (Airtable, Postgres, or a test double).
// A nil or empty result is treated as unavailable by the loader.
type RecordSource interface {
	ListEvents(ctx context.Context) ([]Record, error)
	ListPresenters(ctx context.Context) ([]Record, error)
}
