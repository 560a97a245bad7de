package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TedMN/mplsjrdevs/internal/domain"

	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

type recordSource struct {
	DB *sql.DB
}

// NewRecordSource returns a domain.RecordSource that reads the events and
// presenters tables.
func NewRecordSource(db *sql.DB) domain.RecordSource {
	return &recordSource{DB: db}
}

// ListEvents returns one record per events row. A NULL event_date or
// presenter_ids leaves the field out so the loader treats it as absent.
func (r *recordSource) ListEvents(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, event_date, presenter_ids, fields FROM events ORDER BY event_date, id`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			id           string
			eventDate    sql.NullTime
			presenterIDs pq.StringArray
			raw          []byte
		)
		if err := rows.Scan(&id, &eventDate, &presenterIDs, &raw); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", id, err)
		}
		if eventDate.Valid {
			fields[domain.FieldEventDate] = eventDate.Time.Format(dateLayout)
		}
		if presenterIDs != nil {
			fields[domain.FieldPresenters] = []string(presenterIDs)
		}
		records = append(records, domain.Record{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return records, nil
}

func (r *recordSource) ListPresenters(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, fields FROM presenters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query presenters: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan presenter: %w", err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("presenter %s: %w", id, err)
		}
		records = append(records, domain.Record{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presenters: %w", err)
	}
	return records, nil
}

func decodeFields(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
