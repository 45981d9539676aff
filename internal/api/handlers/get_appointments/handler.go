package get_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются from и to в формате YYYY-MM-DD"
	msgUnauthorized  = "не удалось определить менеджера"
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

// Handle GET /api/v1/appointments?from=YYYY-MM-DD&to=YYYY-MM-DD&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetManagerID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - manager id missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid from=%q: %v", query.Get("from"), err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid to=%q: %v", query.Get("to"), err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	if to.Before(from) {
		h.logger.Warn("GET /appointments - Period end before start: manager_id=%d", managerID)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Верхняя граница периода включительная: весь день to
	to = to.AddDate(0, 0, 1)

	includeCancelled, _ := strconv.ParseBool(query.Get("includeCancelled"))

	result, err := h.service.GetByManagerAndPeriod(r.Context(), managerID, from, to, includeCancelled)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to get appointments: manager_id=%d, error=%v", managerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments: manager_id=%d", len(result.Appointments), managerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
