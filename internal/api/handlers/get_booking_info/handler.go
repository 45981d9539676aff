package get_booking_info

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/internal/service/tokens"
)

const (
	msgLinkNotFound = "ссылка недействительна"
	msgLinkUsed     = "ссылка уже была использована"
	msgLinkExpired  = "срок действия ссылки истёк"

	codeNotFound = "not_found"
	codeUsed     = "used"
	codeExpired  = "expired"
)

type Handler struct {
	tokenService TokenService
	logger       Logger
}

func NewHandler(tokenService TokenService, logger Logger) *Handler {
	return &Handler{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Handle GET /public/booking/{secret}
// Секрет в логи не пишется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	secret := mux.Vars(r)["secret"]

	tok, err := h.tokenService.Validate(r.Context(), secret)
	if err != nil {
		switch {
		case errors.Is(err, tokens.ErrTokenNotFound):
			h.logger.Warn("GET /public/booking - Token not found")
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkNotFound, codeNotFound)

		case errors.Is(err, tokens.ErrTokenUsed):
			h.logger.Warn("GET /public/booking - Token already used")
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkUsed, codeUsed)

		case errors.Is(err, tokens.ErrTokenExpired):
			h.logger.Warn("GET /public/booking - Token expired")
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkExpired, codeExpired)

		default:
			h.logger.Error("GET /public/booking - Failed to validate token: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// По ссылке на бронь показываем только booking-токены
	if tok.Kind != domain.TokenKindBooking || tok.Booking == nil {
		h.logger.Warn("GET /public/booking - Token id=%d has kind=%s, booking required", tok.ID, tok.Kind)
		handlers.RespondErrorWithCode(w, http.StatusBadRequest, msgLinkNotFound, codeNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromToken(tok))
}
