package set_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	availabilityService "github.com/rentora/RIA-SchedulingService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKind        = "неизвестный тип встречи, ожидается video_call или tour"
	msgInvalidWeekday     = "неизвестный день недели в weeklyBlocks"
	msgInvalidTimeFormat  = "некорректный формат времени блока, ожидается HH:MM"
	msgInvalidBlock       = "начало блока должно быть раньше его конца"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBlackout    = "начало периода недоступности не может быть позже конца"
	msgUnauthorized       = "не удалось определить менеджера"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/managers/availability/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetManagerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /managers/availability - manager id missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	kind := mux.Vars(r)["kind"]

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /managers/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetAvailability(r.Context(), req.ToServiceRequest(managerID, kind))
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidKind):
			h.logger.Warn("PUT /managers/availability - Invalid kind=%q, manager_id=%d", kind, managerID)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, availabilityService.ErrInvalidWeekday):
			h.logger.Warn("PUT /managers/availability - Invalid weekday: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, availabilityService.ErrInvalidTimeFormat):
			h.logger.Warn("PUT /managers/availability - Invalid time format: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		case errors.Is(err, availabilityService.ErrInvalidBlock):
			h.logger.Warn("PUT /managers/availability - Invalid block: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		case errors.Is(err, availabilityService.ErrInvalidDateFormat):
			h.logger.Warn("PUT /managers/availability - Invalid date format: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)

		case errors.Is(err, availabilityService.ErrInvalidBlackout):
			h.logger.Warn("PUT /managers/availability - Invalid blackout: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidBlackout)

		default:
			h.logger.Error("PUT /managers/availability - Failed to set availability: manager_id=%d, error=%v", managerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /managers/availability - Availability saved: manager_id=%d, kind=%s", managerID, kind)
	handlers.RespondJSON(w, http.StatusOK, result)
}
