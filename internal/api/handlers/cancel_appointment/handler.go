package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	appointmentService "github.com/rentora/RIA-SchedulingService/internal/service/appointments"
	"github.com/rentora/RIA-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный идентификатор встречи"
	msgAppointmentNotFound  = "встреча не найдена"
	msgAccessDenied         = "нет доступа к этой встрече"
	msgCannotCancel         = "встречу нельзя отменить в текущем статусе"
	msgReasonTooLong        = "причина отмены слишком длинная"
	msgCancelled            = "встреча отменена"
	msgUnauthorized         = "не удалось определить менеджера"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetManagerID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/cancel - manager id missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /appointments/cancel - Invalid appointment id: %q", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), appointmentID, &models.CancelAppointmentRequest{
		ManagerID:          managerID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/cancel - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentService.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/cancel - Access denied: appointment_id=%d, manager_id=%d", appointmentID, managerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/cancel - Cannot cancel: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointmentService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/cancel - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		default:
			h.logger.Error("PATCH /appointments/cancel - Failed to cancel: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/cancel - Appointment cancelled: appointment_id=%d, manager_id=%d", appointmentID, managerID)
	handlers.RespondJSON(w, http.StatusOK, CancelAppointmentResponse{
		Success: true,
		Message: msgCancelled,
	})
}
