package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/delivery/http/helpers"
	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// AnnouncementResponse is the body of a successful POST /announcements/next.
type AnnouncementResponse struct {
	Event *domain.JoinedEvent `json:"event"`
}

// AnnouncementSuccessResponse is the success response envelope for POST /announcements/next (200).
type AnnouncementSuccessResponse struct {
	Data  AnnouncementResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AnnouncementController struct {
	Logger   *slog.Logger
	Service  domain.AnnouncementService
	Location *time.Location
	Now      func() time.Time
}

func NewAnnouncementController(logger *slog.Logger, svc domain.AnnouncementService, loc *time.Location) *AnnouncementController {
	return &AnnouncementController{
		Logger:   logger,
		Service:  svc,
		Location: loc,
		Now:      time.Now,
	}
}

// AnnounceNext godoc
// @Summary Email the next upcoming event
// @Description Sends the next upcoming event to the configured announcement recipients.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param today query string false "Override today (YYYY-MM-DD) in the configured timezone"
// @Success 200 {object} controllers.AnnouncementSuccessResponse "data.event is the announced event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /announcements/next [post]
func (c *AnnouncementController) AnnounceNext(w http.ResponseWriter, r *http.Request) {
	today, ok := resolveToday(w, r, c.Location, c.Now)
	if !ok {
		return
	}
	ev, err := c.Service.AnnounceNext(r.Context(), today)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoUpcomingEvent):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no upcoming event")
		case errors.Is(err, domain.ErrScheduleNotLoaded):
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeServiceUnavailable, ScheduleUnavailableMessage)
		case errors.Is(err, domain.ErrNoRecipients):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "no announcement recipients configured")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Event: ev})
}
