package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/api/dto"
	"github.com/aliskhannn/appointment-reminder/internal/api/respond"
	"github.com/aliskhannn/appointment-reminder/internal/config"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/repository/dispatch"
	retrysvc "github.com/aliskhannn/appointment-reminder/internal/service/retry"
	"github.com/aliskhannn/appointment-reminder/internal/service/scheduler"
)

// Reason codes returned with 4xx responses.
const (
	ReasonNoRecipients        = "no_recipients"
	ReasonScheduleInPast      = "schedule_in_past"
	ReasonAppointmentNotFound = "appointment_not_found"
	ReasonInvalidOffset       = "invalid_offset"
	ReasonInvalidLocalTime    = "invalid_local_time"
	ReasonReminderNotFound    = "reminder_not_found"
	ReasonIllegalTransition   = "illegal_transition"
	ReasonEmptyFilter         = "empty_filter"
)

// schedulerService creates reminders for an appointment.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type schedulerService interface {
	Schedule(ctx context.Context, in scheduler.ScheduleInput) ([]model.Dispatch, error)
	ScheduleAt(ctx context.Context, in scheduler.ScheduleAtInput) ([]model.Dispatch, error)
}

// reminderService reads and cancels existing reminders.
type reminderService interface {
	GetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
	ListForAppointment(ctx context.Context, appointmentID uuid.UUID, status *model.Status) ([]model.Dispatch, error)
	CancelForAppointment(ctx context.Context, strategy retry.Strategy, appointmentID uuid.UUID) (int, error)
	Cancel(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Dispatch, error)
}

// retryService re-arms failed reminders.
type retryService interface {
	RetryFailed(ctx context.Context, strategy retry.Strategy, filter model.RetryFilter, notify bool) (model.RetryReport, error)
}

// analyticsService reports aggregate reminder figures.
type analyticsService interface {
	Analytics(ctx context.Context) (model.AnalyticsReport, error)
}

// Handler serves the reminder HTTP API.
//
// It covers scheduling, listing and cancelling the reminders of an
// appointment, single reminder status and cancellation, the retry
// controller and analytics.
type Handler struct {
	scheduler schedulerService
	reminders reminderService
	retry     retryService
	analytics analyticsService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
//
// Parameters:
//   - s: scheduler used to create reminders
//   - r: reminder lookups and cancellation
//   - rt: retry controller
//   - a: analytics aggregator
//   - v: validator instance for request validation
//   - cfg: configuration instance
func NewHandler(
	s schedulerService,
	r reminderService,
	rt retryService,
	a analyticsService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{scheduler: s, reminders: r, retry: rt, analytics: a, validator: v, cfg: cfg}
}

// Schedule handles POST /api/appointments/:id/reminders.
//
// The body carries either offset_minutes or an explicit scheduled_for wall
// clock time. One reminder is created per client of the appointment.
func (h *Handler) Schedule(c *ginext.Context) {
	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if (req.OffsetMinutes == nil) == (req.ScheduledFor == "") {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("exactly one of offset_minutes and scheduled_for is required"))
		return
	}

	var (
		dispatches []model.Dispatch
		err        error
	)
	if req.OffsetMinutes != nil {
		dispatches, err = h.scheduler.Schedule(c.Request.Context(), scheduler.ScheduleInput{
			AppointmentID: appointmentID,
			UserID:        req.UserID,
			OffsetMinutes: *req.OffsetMinutes,
		})
	} else {
		dispatches, err = h.scheduler.ScheduleAt(c.Request.Context(), scheduler.ScheduleAtInput{
			AppointmentID: appointmentID,
			UserID:        req.UserID,
			LocalTime:     req.ScheduledFor,
			Timezone:      req.Timezone,
		})
	}
	if err != nil {
		if code, reason := scheduleFailure(err); reason != "" {
			zlog.Logger.Warn().Err(err).Str("appointment_id", appointmentID.String()).Msg("reminders rejected")
			respond.FailWithReason(c.Writer, code, reason, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("appointment_id", appointmentID.String()).Msg("failed to schedule reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	resp := dto.ScheduleResponse{IDs: make([]uuid.UUID, 0, len(dispatches))}
	for _, d := range dispatches {
		resp.IDs = append(resp.IDs, d.ID)
	}
	if len(dispatches) > 0 {
		resp.ScheduledFor = dispatches[0].ScheduledFor.Format(time.RFC3339)
	}

	respond.Created(c.Writer, resp)
}

// List handles GET /api/appointments/:id/reminders with an optional status filter.
func (h *Handler) List(c *ginext.Context) {
	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var status *model.Status
	if raw := c.Query("status"); raw != "" {
		st, err := model.ParseStatus(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}
		status = &st
	}

	dispatches, err := h.reminders.ListForAppointment(c.Request.Context(), appointmentID, status)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("appointment_id", appointmentID.String()).Msg("failed to list reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if dispatches == nil {
		dispatches = []model.Dispatch{}
	}

	respond.OK(c.Writer, dispatches)
}

// CancelForAppointment handles DELETE /api/appointments/:id/reminders.
//
// Collaborators call it when an appointment is deleted.
func (h *Handler) CancelForAppointment(c *ginext.Context) {
	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	n, err := h.reminders.CancelForAppointment(c.Request.Context(), h.cfg.Retry, appointmentID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("appointment_id", appointmentID.String()).Msg("failed to cancel reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.CancelResponse{Cancelled: n})
}

// GetStatus handles GET /api/reminders/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	status, err := h.reminders.GetStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, dispatch.ErrDispatchNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("reminder not found")
			respond.FailWithReason(c.Writer, http.StatusNotFound, ReasonReminderNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get reminder status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.StatusResponse{ID: id, Status: status.String()})
}

// Cancel handles DELETE /api/reminders/:id.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	d, err := h.reminders.Cancel(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrDispatchNotFound):
			respond.FailWithReason(c.Writer, http.StatusNotFound, ReasonReminderNotFound, fmt.Errorf("reminder not found"))
		case errors.Is(err, model.ErrIllegalTransition):
			respond.FailWithReason(c.Writer, http.StatusConflict, ReasonIllegalTransition, fmt.Errorf("reminder can no longer be cancelled"))
		default:
			zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to cancel reminder")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, d)
}

// Retry handles POST /api/reminders/retry.
//
// The body selects failed reminders by all, ids or queue name. The report
// lists every processed reminder.
func (h *Handler) Retry(c *ginext.Context) {
	var req dto.RetryRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	filter := model.RetryFilter{All: req.All, IDs: req.IDs, Queue: req.Queue}
	report, err := h.retry.RetryFailed(c.Request.Context(), h.cfg.Retry, filter, req.Notify)
	if err != nil {
		if errors.Is(err, retrysvc.ErrEmptyFilter) {
			respond.FailWithReason(c.Writer, http.StatusBadRequest, ReasonEmptyFilter, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to retry reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, report)
}

// Analytics handles GET /api/reminders/analytics.
func (h *Handler) Analytics(c *ginext.Context) {
	report, err := h.analytics.Analytics(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to build analytics")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, report)
}

// parseID reads a uuid path parameter, writing a 400 response when it is invalid.
func parseID(c *ginext.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str(name, raw).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

// scheduleFailure maps validation errors to a status code and reason. An
// empty reason means the error is not a validation error.
func scheduleFailure(err error) (int, string) {
	switch {
	case errors.Is(err, scheduler.ErrAppointmentNotFound):
		return http.StatusNotFound, ReasonAppointmentNotFound
	case errors.Is(err, scheduler.ErrNoRecipients):
		return http.StatusUnprocessableEntity, ReasonNoRecipients
	case errors.Is(err, scheduler.ErrScheduleInPast):
		return http.StatusUnprocessableEntity, ReasonScheduleInPast
	case errors.Is(err, scheduler.ErrInvalidOffset):
		return http.StatusUnprocessableEntity, ReasonInvalidOffset
	case errors.Is(err, scheduler.ErrInvalidLocalTime):
		return http.StatusUnprocessableEntity, ReasonInvalidLocalTime
	default:
		return http.StatusInternalServerError, ""
	}
}
