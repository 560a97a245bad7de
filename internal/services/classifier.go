package services

import (
	"slices"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// Classifier splits a joined schedule into upcoming and past buckets.
type Classifier struct {
	// VisiblePast is the length of the RecentPast prefix.
	VisiblePast int
}

// NewClassifier returns a Classifier showing visiblePast past events before
// the overflow. A negative value falls back to domain.DefaultVisiblePast.
func NewClassifier(visiblePast int) Classifier {
	if visiblePast < 0 {
		visiblePast = domain.DefaultVisiblePast
	}
	return Classifier{VisiblePast: visiblePast}
}

// Classify partitions events around today. An event is past when its day is
// strictly before today's day, both taken in today's location, so events
// dated today are upcoming. Sorting is stable: equal dates keep input order.
// The input slice is not modified.
func (c Classifier) Classify(events []domain.JoinedEvent, today time.Time) domain.ClassifiedView {
	upcoming := make([]domain.JoinedEvent, 0, len(events))
	past := make([]domain.JoinedEvent, 0, len(events))
	for _, ev := range events {
		if IsPast(ev.EventDate, today) {
			past = append(past, ev)
		} else {
			upcoming = append(upcoming, ev)
		}
	}

	sortByEventDate(upcoming, domain.UpcomingOrder)
	sortByEventDate(past, domain.PastOrder)

	view := domain.ClassifiedView{Upcoming: upcoming}
	if len(upcoming) > 0 {
		next := upcoming[0]
		view.NextEvent = &next
	}
	n := min(c.VisiblePast, len(past))
	view.RecentPast = slices.Clone(past[:n])
	view.OverflowPast = slices.Clone(past[n:])
	if view.RecentPast == nil {
		view.RecentPast = []domain.JoinedEvent{}
	}
	if view.OverflowPast == nil {
		view.OverflowPast = []domain.JoinedEvent{}
	}
	return view
}

// IsPast reports whether eventDate falls on a day before today's day.
func IsPast(eventDate, today time.Time) bool {
	loc := today.Location()
	return startOfDay(eventDate, loc).Before(startOfDay(today, loc))
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func sortByEventDate(events []domain.JoinedEvent, order domain.SortOrder) {
	slices.SortStableFunc(events, func(a, b domain.JoinedEvent) int {
		if order == domain.Descending {
			return b.EventDate.Compare(a.EventDate)
		}
		return a.EventDate.Compare(b.EventDate)
	})
}
