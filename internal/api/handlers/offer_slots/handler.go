package offer_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	offerSlots "github.com/rentora/RIA-SchedulingService/internal/usecase/offer_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInquiryID   = "некорректный идентификатор заявки"
	msgInvalidKind        = "неизвестный тип встречи, ожидается video_call или tour"
	msgInvalidInput       = "некорректные параметры запроса предложений"
	msgNoAvailability     = "нет свободных слотов в окне просмотра, расширьте окна доступности"
	msgUnauthorized       = "не удалось определить менеджера"
)

type Handler struct {
	useCase OfferSlotsUseCase
	logger  Logger
}

func NewHandler(useCase OfferSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/inquiries/{inquiryId}/slot-offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetManagerID(r.Context())
	if !ok {
		h.logger.Warn("POST /inquiries/slot-offers - manager id missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	inquiryID, err := strconv.ParseInt(mux.Vars(r)["inquiryId"], 10, 64)
	if err != nil || inquiryID <= 0 {
		h.logger.Warn("POST /inquiries/slot-offers - Invalid inquiry id: %q", mux.Vars(r)["inquiryId"])
		handlers.RespondBadRequest(w, msgInvalidInquiryID)
		return
	}

	var req OfferSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inquiries/slot-offers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(inquiryID, managerID))
	if err != nil {
		switch {
		case errors.Is(err, offerSlots.ErrInvalidKind):
			h.logger.Warn("POST /inquiries/slot-offers - Invalid kind=%q, inquiry_id=%d", req.Kind, inquiryID)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, offerSlots.ErrInvalidInput):
			h.logger.Warn("POST /inquiries/slot-offers - Invalid input: inquiry_id=%d, error=%v", inquiryID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, offerSlots.ErrNoAvailability):
			h.logger.Warn("POST /inquiries/slot-offers - No availability: inquiry_id=%d, manager_id=%d", inquiryID, managerID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoAvailability)

		default:
			h.logger.Error("POST /inquiries/slot-offers - Failed to offer slots: inquiry_id=%d, error=%v", inquiryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inquiries/slot-offers - Offered %d slots: inquiry_id=%d, manager_id=%d",
		len(result.Slots), inquiryID, managerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
