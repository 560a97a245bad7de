package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

const nextEventTemplate = "next_event"

// announcementDateLayout is how the event date reads in the email.
const announcementDateLayout = "Monday, January 2, 2006"

type announcementService struct {
	schedule   domain.ScheduleService
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	recipients []string
	logger     *slog.Logger
}

// NewAnnouncementService returns an AnnouncementService that emails the next
// event of schedule to every recipient.
func NewAnnouncementService(schedule domain.ScheduleService, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipients []string, logger *slog.Logger) domain.AnnouncementService {
	return &announcementService{
		schedule:   schedule,
		mailer:     mailer,
		renderer:   renderer,
		recipients: recipients,
		logger:     logger,
	}
}

func (s *announcementService) AnnounceNext(ctx context.Context, today time.Time) (*domain.JoinedEvent, error) {
	if len(s.recipients) == 0 {
		return nil, domain.ErrNoRecipients
	}
	_, view, err := s.schedule.View(today)
	if err != nil {
		return nil, err
	}
	if view.NextEvent == nil {
		return nil, domain.ErrNoUpcomingEvent
	}

	data := nextEventEmailData(*view.NextEvent, today.Location())
	subject, htmlBody, textBody, err := s.renderer.Render(nextEventTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", nextEventTemplate, err)
	}
	for _, to := range s.recipients {
		if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
			return nil, fmt.Errorf("failed to send announcement to %s: %w", to, err)
		}
	}
	s.logger.InfoContext(ctx, "next event announced", "event_id", view.NextEvent.ID, "recipients", len(s.recipients))
	return view.NextEvent, nil
}

func nextEventEmailData(ev domain.JoinedEvent, loc *time.Location) *domain.NextEventEmailData {
	data := &domain.NextEventEmailData{
		Title:       fieldString(ev.Fields, "title", "name"),
		Date:        ev.EventDate.In(loc).Format(announcementDateLayout),
		Location:    fieldString(ev.Fields, "location", "venue"),
		Description: fieldString(ev.Fields, "description"),
		RegisterURL: fieldString(ev.Fields, "register_link", "registration_url", "url"),
	}
	for _, p := range ev.Presenters {
		if p == nil {
			continue
		}
		if name := fieldString(p.Fields, "name", "full_name"); name != "" {
			data.Presenters = append(data.Presenters, name)
		}
	}
	return data
}

// fieldString returns the first non-blank string among keys.
func fieldString(fields map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := fields[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}
