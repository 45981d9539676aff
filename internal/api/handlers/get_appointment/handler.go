package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	appointmentService "github.com/rentora/RIA-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор встречи"
	msgAppointmentNotFound  = "встреча не найдена"
	msgAccessDenied         = "нет доступа к этой встрече"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetManagerID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id} - manager id missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment id: %q", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), appointmentID, managerID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentService.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment_id=%d, manager_id=%d", appointmentID, managerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
