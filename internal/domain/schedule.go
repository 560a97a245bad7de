package domain

import (
	"context"
	"time"
)

// DefaultVisiblePast is how many past events are shown before "show more".
const DefaultVisiblePast = 3

// SortOrder is the direction a classified bucket is ordered by event_date.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Bucket orderings used by the classifier.
const (
	UpcomingOrder = Ascending
	PastOrder     = Descending
)

// ClassifiedView is the schedule split around "today".
// NextEvent is nil when nothing is upcoming. RecentPast followed by
// OverflowPast is the full past bucket, most recent first.
type ClassifiedView struct {
	NextEvent    *JoinedEvent
	Upcoming     []JoinedEvent
	RecentPast   []JoinedEvent
	OverflowPast []JoinedEvent
}

// ScheduleStatus is the tag of ScheduleState.
type ScheduleStatus string

const (
	StatusIdle    ScheduleStatus = "idle"
	StatusLoading ScheduleStatus = "loading"
	StatusLoaded  ScheduleStatus = "loaded"
	StatusFailed  ScheduleStatus = "failed"
)

// ScheduleState is an immutable snapshot of the schedule store.
// Events is set only when Status is StatusLoaded, FailureKind only when
// Status is StatusFailed.
type ScheduleState struct {
	Status      ScheduleStatus
	Generation  uint64
	Events      []JoinedEvent
	FailureKind LoadErrorKind
	Expanded    bool
}

// ScheduleMessage is an input to the schedule reducer.
type ScheduleMessage interface {
	scheduleMessage()
}

// LoadStarted begins the load identified by Generation.
type LoadStarted struct{ Generation uint64 }

// LoadSucceeded completes the load identified by Generation.
type LoadSucceeded struct {
	Generation uint64
	Events     []JoinedEvent
}

// LoadFailed ends the load identified by Generation with an error kind.
type LoadFailed struct {
	Generation uint64
	Kind       LoadErrorKind
}

// OverflowToggled flips the "show more" disclosure.
type OverflowToggled struct{}

// Unmounted returns the store to idle and invalidates any in-flight load.
type Unmounted struct{}

func (LoadStarted) scheduleMessage()     {}
func (LoadSucceeded) scheduleMessage()   {}
func (LoadFailed) scheduleMessage()      {}
func (OverflowToggled) scheduleMessage() {}
func (Unmounted) scheduleMessage()       {}

// ScheduleLoader fetches and joins the schedule once.
type ScheduleLoader interface {
	Load(ctx context.Context) ([]JoinedEvent, error)
}

// ScheduleService owns the schedule state for one mount.
type ScheduleService interface {
	// Mount runs a single load and blocks until it completes or the mount is torn down.
	Mount(ctx context.Context)
	Unmount()
	State() ScheduleState
	ToggleOverflow() ScheduleState
	// View classifies the loaded events for today. It returns ErrScheduleNotLoaded
	// unless the state is loaded.
	View(today time.Time) (ScheduleState, ClassifiedView, error)
}

// AnnouncementService emails the next upcoming event to the mailing list.
type AnnouncementService interface {
	AnnounceNext(ctx context.Context, today time.Time) (*JoinedEvent, error)
}
