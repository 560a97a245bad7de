package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// Reduce applies msg to s and returns the next state. Completions whose
// generation does not match the current load, or that arrive when no load is
// in progress, are ignored.
func Reduce(s domain.ScheduleState, msg domain.ScheduleMessage) domain.ScheduleState {
	switch m := msg.(type) {
	case domain.LoadStarted:
		return domain.ScheduleState{
			Status:     domain.StatusLoading,
			Generation: m.Generation,
			Expanded:   s.Expanded,
		}
	case domain.LoadSucceeded:
		if s.Status != domain.StatusLoading || m.Generation != s.Generation {
			return s
		}
		return domain.ScheduleState{
			Status:     domain.StatusLoaded,
			Generation: s.Generation,
			Events:     m.Events,
			Expanded:   s.Expanded,
		}
	case domain.LoadFailed:
		if s.Status != domain.StatusLoading || m.Generation != s.Generation {
			return s
		}
		return domain.ScheduleState{
			Status:      domain.StatusFailed,
			Generation:  s.Generation,
			FailureKind: m.Kind,
			Expanded:    s.Expanded,
		}
	case domain.OverflowToggled:
		s.Expanded = !s.Expanded
		return s
	case domain.Unmounted:
		return domain.ScheduleState{
			Status:     domain.StatusIdle,
			Generation: s.Generation + 1,
		}
	default:
		return s
	}
}

type scheduleService struct {
	loader     domain.ScheduleLoader
	classifier Classifier
	logger     *slog.Logger

	mu     sync.Mutex
	state  domain.ScheduleState
	cancel context.CancelFunc
}

// NewScheduleService returns an idle schedule store backed by loader.
func NewScheduleService(loader domain.ScheduleLoader, classifier Classifier, logger *slog.Logger) domain.ScheduleService {
	return &scheduleService{
		loader:     loader,
		classifier: classifier,
		logger:     logger,
		state:      domain.ScheduleState{Status: domain.StatusIdle},
	}
}

func (s *scheduleService) dispatch(msg domain.ScheduleMessage) domain.ScheduleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, msg)
	return s.state
}

func (s *scheduleService) Mount(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	gen := s.state.Generation + 1
	s.state = Reduce(s.state, domain.LoadStarted{Generation: gen})
	s.mu.Unlock()

	start := time.Now()
	events, err := s.loader.Load(ctx)

	var next domain.ScheduleState
	if err != nil {
		kind := domain.LoadErrorKindOf(err)
		next = s.dispatch(domain.LoadFailed{Generation: gen, Kind: kind})
		if next.Generation == gen {
			s.logger.ErrorContext(ctx, "schedule load failed", "kind", kind, "generation", gen, "err", err)
		}
	} else {
		next = s.dispatch(domain.LoadSucceeded{Generation: gen, Events: events})
		if next.Generation == gen {
			s.logger.InfoContext(ctx, "schedule loaded", "events", len(events), "generation", gen, "duration_ms", time.Since(start).Milliseconds())
		}
	}
	if next.Generation != gen {
		s.logger.DebugContext(ctx, "discarding stale schedule load", "generation", gen, "current", next.Generation)
	}
}

func (s *scheduleService) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = Reduce(s.state, domain.Unmounted{})
}

func (s *scheduleService) State() domain.ScheduleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *scheduleService) ToggleOverflow() domain.ScheduleState {
	return s.dispatch(domain.OverflowToggled{})
}

func (s *scheduleService) View(today time.Time) (domain.ScheduleState, domain.ClassifiedView, error) {
	state := s.State()
	if state.Status != domain.StatusLoaded {
		return state, domain.ClassifiedView{}, domain.ErrScheduleNotLoaded
	}
	return state, s.classifier.Classify(state.Events, today), nil
}
