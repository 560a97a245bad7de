package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// day returns midnight UTC of the given date.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func joined(id string, date time.Time) domain.JoinedEvent {
	return domain.JoinedEvent{ID: id, EventDate: date, Fields: map[string]any{"title": id}}
}

func ids(events []domain.JoinedEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

// fakeRecordSource returns fixed records or configurable errors and records call order.
type fakeRecordSource struct {
	events        []domain.Record
	presenters    []domain.Record
	eventsErr     error
	presentersErr error
	panicOn       string
	calls         []string
}

func (f *fakeRecordSource) ListEvents(ctx context.Context) ([]domain.Record, error) {
	f.calls = append(f.calls, "events")
	if f.panicOn == "events" {
		panic("boom")
	}
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events, nil
}

func (f *fakeRecordSource) ListPresenters(ctx context.Context) ([]domain.Record, error) {
	f.calls = append(f.calls, "presenters")
	if f.panicOn == "presenters" {
		panic("boom")
	}
	if f.presentersErr != nil {
		return nil, f.presentersErr
	}
	return f.presenters, nil
}

// fakeLoader returns fixed events or an error. If block is set, Load waits on
// it (or on ctx) before returning.
type fakeLoader struct {
	events []domain.JoinedEvent
	err    error
	block  chan struct{}
	calls  int
}

func (f *fakeLoader) Load(ctx context.Context) ([]domain.JoinedEvent, error) {
	f.calls++
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, domain.NewLoadError(domain.LoadErrorEventsUnavailable, ctx.Err())
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}
