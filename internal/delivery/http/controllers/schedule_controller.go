package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/delivery/http/helpers"
	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// ScheduleUnavailableMessage is the only failure text shown to visitors.
const ScheduleUnavailableMessage = "We can't access the event schedule right now. Try again later."

// ScheduleResponse is the body of GET /schedule.
// While the schedule is idle or loading only Status is set.
type ScheduleResponse struct {
	Status        domain.ScheduleStatus `json:"status"`
	NextEvent     *domain.JoinedEvent   `json:"next_event"`
	RecentPast    []domain.JoinedEvent  `json:"recent_past"`
	OverflowCount int                   `json:"overflow_count"`
	OverflowPast  []domain.JoinedEvent  `json:"overflow_past,omitempty"`
	Expanded      bool                  `json:"expanded"`
}

// ScheduleSuccessResponse is the success response envelope for GET /schedule (200).
type ScheduleSuccessResponse struct {
	Data  ScheduleResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DisclosureResponse is the body of POST /schedule/disclosure.
type DisclosureResponse struct {
	Expanded bool `json:"expanded"`
}

// DisclosureSuccessResponse is the success response envelope for POST /schedule/disclosure (200).
type DisclosureSuccessResponse struct {
	Data  DisclosureResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string                `json:"status"`
	Schedule domain.ScheduleStatus `json:"schedule"`
}

type ScheduleController struct {
	Logger   *slog.Logger
	Service  domain.ScheduleService
	Location *time.Location
	Now      func() time.Time
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService, loc *time.Location) *ScheduleController {
	return &ScheduleController{
		Logger:   logger,
		Service:  svc,
		Location: loc,
		Now:      time.Now,
	}
}

// GetSchedule godoc
// @Summary Get the event schedule
// @Description Returns the next upcoming event, the three most recent past events, and the remaining past events when the disclosure is expanded. Events dated today count as upcoming.
// @Tags schedule
// @Produce json
// @Param today query string false "Override today (YYYY-MM-DD) in the configured timezone"
// @Param expanded query bool false "Override the stored disclosure toggle"
// @Success 200 {object} controllers.ScheduleSuccessResponse "data contains the classified schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /schedule [get]
func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	today, ok := resolveToday(w, r, c.Location, c.Now)
	if !ok {
		return
	}
	expanded, override, err := helpers.ParseBoolParam(r, "expanded")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	state, view, err := c.Service.View(today)
	if err != nil {
		if !errors.Is(err, domain.ErrScheduleNotLoaded) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeServiceUnavailable, ScheduleUnavailableMessage)
			return
		}
		if state.Status == domain.StatusFailed {
			c.Logger.WarnContext(r.Context(), "schedule unavailable", "path", r.URL.Path, "kind", state.FailureKind)
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeServiceUnavailable, ScheduleUnavailableMessage)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, ScheduleResponse{Status: state.Status, Expanded: state.Expanded})
		return
	}

	if !override {
		expanded = state.Expanded
	}
	resp := ScheduleResponse{
		Status:        state.Status,
		NextEvent:     view.NextEvent,
		RecentPast:    view.RecentPast,
		OverflowCount: len(view.OverflowPast),
		Expanded:      expanded,
	}
	if expanded {
		resp.OverflowPast = view.OverflowPast
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// ToggleDisclosure godoc
// @Summary Toggle the past-events disclosure
// @Description Flips whether GET /schedule includes the past events beyond the three most recent.
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.DisclosureSuccessResponse "data.expanded is the new toggle value"
// @Router /schedule/disclosure [post]
func (c *ScheduleController) ToggleDisclosure(w http.ResponseWriter, r *http.Request) {
	state := c.Service.ToggleOverflow()
	helpers.WriteJSONSuccess(w, http.StatusOK, DisclosureResponse{Expanded: state.Expanded})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status and the schedule state"
// @Router /health [get]
func (c *ScheduleController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Schedule: c.Service.State().Status})
}

// resolveToday returns ?today= when present, otherwise the current date in loc.
// It writes a 400 and returns false on a malformed value.
func resolveToday(w http.ResponseWriter, r *http.Request, loc *time.Location, now func() time.Time) (time.Time, bool) {
	today, ok, err := helpers.ParseDateParam(r, "today", loc)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return time.Time{}, false
	}
	if ok {
		return today, true
	}
	return now().In(loc), true
}
