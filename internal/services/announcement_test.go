package services

import (
	"context"
	"errors"
	"testing"

	"github.com/TedMN/mplsjrdevs/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records sent messages.
type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

// fakeRenderer captures the template data.
type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.lastName = name
	f.lastData = data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "Next up", "<p>html</p>", "text", nil
}

func loadedSchedule(t *testing.T, events []domain.JoinedEvent) domain.ScheduleService {
	t.Helper()
	svc := NewScheduleService(&fakeLoader{events: events}, NewClassifier(3), testLogger())
	svc.Mount(context.Background())
	require.Equal(t, domain.StatusLoaded, svc.State().Status)
	return svc
}

func nextEventFixture() domain.JoinedEvent {
	return domain.JoinedEvent{
		ID:        "rec-next",
		EventDate: day(2024, 6, 4),
		Fields: map[string]any{
			"title":         "Intro to Go",
			"location":      "Hennepin Library",
			"register_link": "https://meetup.example/go",
		},
		Presenters: []*domain.Presenter{
			{ID: "p1", Fields: map[string]any{"name": "Ada"}},
			nil,
			{ID: "p2", Fields: map[string]any{"name": "Grace"}},
		},
	}
}

func TestAnnouncementService_AnnounceNext(t *testing.T) {
	ctx := context.Background()
	today := day(2024, 6, 1)

	tests := []struct {
		name       string
		schedule   func(t *testing.T) domain.ScheduleService
		mailer     *fakeMailer
		renderer   *fakeRenderer
		recipients []string
		wantErr    error
		wantAnyErr bool
		assert     func(t *testing.T, ev *domain.JoinedEvent, m *fakeMailer, r *fakeRenderer)
	}{
		{
			name: "success",
			schedule: func(t *testing.T) domain.ScheduleService {
				return loadedSchedule(t, []domain.JoinedEvent{joined("old", day(2024, 1, 1)), nextEventFixture()})
			},
			mailer:     &fakeMailer{},
			renderer:   &fakeRenderer{},
			recipients: []string{"a@example.com", "b@example.com"},
			assert: func(t *testing.T, ev *domain.JoinedEvent, m *fakeMailer, r *fakeRenderer) {
				require.NotNil(t, ev)
				assert.Equal(t, "rec-next", ev.ID)
				assert.Equal(t, []string{"a@example.com|Next up", "b@example.com|Next up"}, m.sent)
				assert.Equal(t, "next_event", r.lastName)
				data, ok := r.lastData.(*domain.NextEventEmailData)
				require.True(t, ok)
				assert.Equal(t, "Intro to Go", data.Title)
				assert.Equal(t, "Tuesday, June 4, 2024", data.Date)
				assert.Equal(t, "Hennepin Library", data.Location)
				assert.Equal(t, "https://meetup.example/go", data.RegisterURL)
				assert.Equal(t, []string{"Ada", "Grace"}, data.Presenters)
			},
		},
		{
			name: "no recipients",
			schedule: func(t *testing.T) domain.ScheduleService {
				return loadedSchedule(t, []domain.JoinedEvent{nextEventFixture()})
			},
			mailer:   &fakeMailer{},
			renderer: &fakeRenderer{},
			wantErr:  domain.ErrNoRecipients,
		},
		{
			name: "schedule not loaded",
			schedule: func(t *testing.T) domain.ScheduleService {
				return NewScheduleService(&fakeLoader{}, NewClassifier(3), testLogger())
			},
			mailer:     &fakeMailer{},
			renderer:   &fakeRenderer{},
			recipients: []string{"a@example.com"},
			wantErr:    domain.ErrScheduleNotLoaded,
		},
		{
			name: "nothing upcoming",
			schedule: func(t *testing.T) domain.ScheduleService {
				return loadedSchedule(t, []domain.JoinedEvent{joined("old", day(2024, 1, 1))})
			},
			mailer:     &fakeMailer{},
			renderer:   &fakeRenderer{},
			recipients: []string{"a@example.com"},
			wantErr:    domain.ErrNoUpcomingEvent,
		},
		{
			name: "render error",
			schedule: func(t *testing.T) domain.ScheduleService {
				return loadedSchedule(t, []domain.JoinedEvent{nextEventFixture()})
			},
			mailer:     &fakeMailer{},
			renderer:   &fakeRenderer{err: errors.New("bad template")},
			recipients: []string{"a@example.com"},
			wantAnyErr: true,
		},
		{
			name: "send error",
			schedule: func(t *testing.T) domain.ScheduleService {
				return loadedSchedule(t, []domain.JoinedEvent{nextEventFixture()})
			},
			mailer:     &fakeMailer{err: errors.New("ses throttled")},
			renderer:   &fakeRenderer{},
			recipients: []string{"a@example.com"},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAnnouncementService(tt.schedule(t), tt.mailer, tt.renderer, tt.recipients, testLogger())
			ev, err := svc.AnnounceNext(ctx, today)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, tt.mailer.sent)
				return
			}
			if tt.wantAnyErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.assert(t, ev, tt.mailer, tt.renderer)
		})
	}
}

func TestFieldString(t *testing.T) {
	fields := map[string]any{"title": "  ", "name": "Go night", "count": 3}
	assert.Equal(t, "Go night", fieldString(fields, "title", "name"))
	assert.Equal(t, "", fieldString(fields, "count"))
	assert.Equal(t, "", fieldString(nil, "title"))
}
