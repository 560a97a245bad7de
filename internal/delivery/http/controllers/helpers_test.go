package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/delivery/http/helpers"
	"github.com/TedMN/mplsjrdevs/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeScheduleService implements domain.ScheduleService with canned results.
type fakeScheduleService struct {
	state     domain.ScheduleState
	view      domain.ClassifiedView
	viewErr   error
	lastToday time.Time
	toggles   int
}

func (f *fakeScheduleService) Mount(ctx context.Context) {}

func (f *fakeScheduleService) Unmount() {}

func (f *fakeScheduleService) State() domain.ScheduleState { return f.state }

func (f *fakeScheduleService) ToggleOverflow() domain.ScheduleState {
	f.toggles++
	f.state.Expanded = !f.state.Expanded
	return f.state
}

func (f *fakeScheduleService) View(today time.Time) (domain.ScheduleState, domain.ClassifiedView, error) {
	f.lastToday = today
	if f.viewErr != nil {
		return f.state, domain.ClassifiedView{}, f.viewErr
	}
	return f.state, f.view, nil
}

func event(id string, y int, m time.Month, d int) domain.JoinedEvent {
	return domain.JoinedEvent{ID: id, EventDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Fields: map[string]any{}}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Data)
	require.NotNil(t, envelope.Error)
	return envelope.Error
}
