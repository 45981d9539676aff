package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	availabilityService "github.com/rentora/RIA-SchedulingService/internal/service/availability"
)

const (
	msgInvalidKind    = "неизвестный тип встречи, ожидается video_call или tour"
	msgWindowNotFound = "окно доступности не настроено"
	msgUnauthorized   = "не удалось определить менеджера"
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

// Handle GET /api/v1/managers/availability/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetManagerID(r.Context())
	if !ok {
		h.logger.Warn("GET /managers/availability - manager id missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	kind := mux.Vars(r)["kind"]

	result, err := h.service.GetAvailability(r.Context(), managerID, kind)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidKind):
			h.logger.Warn("GET /managers/availability - Invalid kind=%q, manager_id=%d", kind, managerID)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, availabilityService.ErrWindowNotFound):
			h.logger.Warn("GET /managers/availability - Window not found: manager_id=%d, kind=%s", managerID, kind)
			handlers.RespondNotFound(w, msgWindowNotFound)

		default:
			h.logger.Error("GET /managers/availability - Failed to get availability: manager_id=%d, error=%v", managerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
