package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// eventDateLayout is the plain date the spreadsheet stores in event_date.
const eventDateLayout = "2006-01-02"

var errInvalidEventDate = errors.New("missing or invalid event_date")

type scheduleLoader struct {
	source         domain.RecordSource
	location       *time.Location
	contextTimeout time.Duration
	logger         *slog.Logger
}

// NewScheduleLoader returns a loader that reads events then presenters from source.
// Plain dates are interpreted in location. A zero timeout means the fetches are
// bounded only by the caller's context.
func NewScheduleLoader(source domain.RecordSource, location *time.Location, timeout time.Duration, logger *slog.Logger) domain.ScheduleLoader {
	if location == nil {
		location = time.UTC
	}
	return &scheduleLoader{
		source:         source,
		location:       location,
		contextTimeout: timeout,
		logger:         logger,
	}
}

func (l *scheduleLoader) Load(ctx context.Context) (events []domain.JoinedEvent, err error) {
	if l.contextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.contextTimeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			events = nil
			err = domain.NewLoadError(domain.LoadErrorUnexpected, fmt.Errorf("panic during load: %v", r))
		}
	}()

	// 1. Events
	l.logger.DebugContext(ctx, "listing event records")
	eventRecords, err := l.source.ListEvents(ctx)
	if err != nil {
		return nil, domain.NewLoadError(domain.LoadErrorEventsUnavailable, fmt.Errorf("list events: %w", err))
	}
	if len(eventRecords) == 0 {
		return nil, domain.NewLoadError(domain.LoadErrorEventsUnavailable, nil)
	}

	// 2. Presenters, only once events are in hand
	l.logger.DebugContext(ctx, "listing presenter records")
	presenterRecords, err := l.source.ListPresenters(ctx)
	if err != nil {
		return nil, domain.NewLoadError(domain.LoadErrorPresentersUnavailable, fmt.Errorf("list presenters: %w", err))
	}
	if len(presenterRecords) == 0 {
		return nil, domain.NewLoadError(domain.LoadErrorPresentersUnavailable, nil)
	}

	// 3. Join
	byID := indexPresenters(presenterRecords)
	events = make([]domain.JoinedEvent, 0, len(eventRecords))
	for _, rec := range eventRecords {
		ev, err := decodeEventRecord(rec, l.location)
		if errors.Is(err, errInvalidEventDate) {
			l.logger.WarnContext(ctx, "skipping event record", "id", rec.ID, "err", err)
			continue
		}
		if err != nil {
			return nil, domain.NewLoadError(domain.LoadErrorUnexpected, fmt.Errorf("decode event %s: %w", rec.ID, err))
		}
		events = append(events, joinPresenters(ev, byID))
	}

	l.logger.InfoContext(ctx, "schedule fetched",
		"event_records", len(eventRecords),
		"presenter_records", len(presenterRecords),
		"events", len(events),
	)
	return events, nil
}

// indexPresenters maps record id to presenter. Records without an id are dropped.
func indexPresenters(records []domain.Record) map[string]*domain.Presenter {
	byID := make(map[string]*domain.Presenter, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		byID[rec.ID] = domain.NewPresenter(rec.ID, rec.Fields)
	}
	return byID
}

// joinPresenters resolves ev's presenter ids positionally; unknown ids stay nil.
func joinPresenters(ev *domain.EventRecord, byID map[string]*domain.Presenter) domain.JoinedEvent {
	joined := domain.JoinedEvent{
		ID:        ev.ID,
		EventDate: ev.EventDate,
		Fields:    ev.Fields,
	}
	if ev.PresenterIDs == nil {
		return joined
	}
	joined.Presenters = make([]*domain.Presenter, len(ev.PresenterIDs))
	for i, id := range ev.PresenterIDs {
		joined.Presenters[i] = byID[id]
	}
	return joined
}

// decodeEventRecord pulls event_date and presenters out of rec's fields. The
// remaining fields are kept for display.
func decodeEventRecord(rec domain.Record, loc *time.Location) (*domain.EventRecord, error) {
	display := make(map[string]any, len(rec.Fields))
	for k, v := range rec.Fields {
		if k == domain.FieldEventDate || k == domain.FieldPresenters {
			continue
		}
		display[k] = v
	}

	eventDate, err := parseEventDate(rec.Fields[domain.FieldEventDate], loc)
	if err != nil {
		return nil, err
	}
	presenterIDs, err := parsePresenterIDs(rec.Fields[domain.FieldPresenters])
	if err != nil {
		return nil, err
	}
	return domain.NewEventRecord(rec.ID, eventDate, presenterIDs, display), nil
}

func parseEventDate(v any, loc *time.Location) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		if t, err := time.ParseInLocation(eventDateLayout, d, loc); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidEventDate, d)
	default:
		return time.Time{}, errInvalidEventDate
	}
}

// parsePresenterIDs returns nil for a missing field. Non-string entries become
// empty ids, which never resolve.
func parsePresenterIDs(v any) ([]string, error) {
	switch ids := v.(type) {
	case nil:
		return nil, nil
	case []string:
		out := make([]string, len(ids))
		copy(out, ids)
		return out, nil
	case []any:
		out := make([]string, len(ids))
		for i, id := range ids {
			if s, ok := id.(string); ok {
				out[i] = s
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("presenters field has unsupported type %T", v)
	}
}
