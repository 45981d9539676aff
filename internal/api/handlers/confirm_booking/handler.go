package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	redeemBooking "github.com/rentora/RIA-SchedulingService/internal/usecase/redeem_booking"
)

const (
	msgLinkNotFound = "ссылка недействительна"
	msgLinkUsed     = "ссылка уже была использована"
	msgLinkExpired  = "срок действия ссылки истёк"
	msgSlotTaken    = "этот слот уже занят, выберите другой из предложенных"
	msgConfirmed    = "встреча подтверждена"

	codeNotFound = "not_found"
	codeUsed     = "used"
	codeExpired  = "expired"
)

type Handler struct {
	useCase RedeemBookingUseCase
	logger  Logger
}

func NewHandler(useCase RedeemBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /public/booking/{secret}/confirm
// Секрет в логи не пишется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	secret := mux.Vars(r)["secret"]

	result, err := h.useCase.Execute(r.Context(), secret)
	if err != nil {
		switch {
		case errors.Is(err, redeemBooking.ErrTokenNotFound), errors.Is(err, redeemBooking.ErrNotBookingToken):
			h.logger.Warn("POST /public/booking/confirm - Token not found")
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkNotFound, codeNotFound)

		case errors.Is(err, redeemBooking.ErrTokenUsed):
			h.logger.Warn("POST /public/booking/confirm - Token already used")
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkUsed, codeUsed)

		case errors.Is(err, redeemBooking.ErrTokenExpired):
			h.logger.Warn("POST /public/booking/confirm - Token expired")
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkExpired, codeExpired)

		case errors.Is(err, redeemBooking.ErrSchedulingConflict):
			h.logger.Warn("POST /public/booking/confirm - Scheduling conflict")
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /public/booking/confirm - Failed to confirm booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/booking/confirm - Appointment confirmed: appointment_id=%d", result.AppointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgConfirmed))
}
