package offer_slots

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	offerSlots "github.com/rentora/RIA-SchedulingService/internal/usecase/offer_slots"
)

// OfferSlotsRequest HTTP request model
// Нулевые значения параметров окна просмотра заменяются дефолтами сервиса
type OfferSlotsRequest struct {
	Kind                string  `json:"kind"`
	PropertyAddress     *string `json:"propertyAddress,omitempty"`
	DaysAhead           int     `json:"daysAhead,omitempty"`
	MinSlotsToOffer     int     `json:"minSlotsToOffer,omitempty"`
	SlotDurationMinutes int     `json:"slotDurationMinutes,omitempty"`
	LinkTTLDays         int     `json:"linkTtlDays,omitempty"`
}

// OfferedSlotResponse один предложенный слот
type OfferedSlotResponse struct {
	StartAt      string `json:"startAt"` // RFC 3339
	EndAt        string `json:"endAt"`   // RFC 3339
	RedeemSecret string `json:"redeemSecret"`
}

// OfferSlotsResponse HTTP response model
type OfferSlotsResponse struct {
	Slots         []OfferedSlotResponse `json:"slots"`
	LinkExpiresAt string                `json:"linkExpiresAt"` // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OfferSlotsRequest) ToUseCaseRequest(inquiryID, managerID int64) *offerSlots.Request {
	return &offerSlots.Request{
		InquiryID:           inquiryID,
		ManagerID:           managerID,
		Kind:                domain.AppointmentKind(r.Kind),
		PropertyAddress:     r.PropertyAddress,
		DaysAhead:           r.DaysAhead,
		MinSlotsToOffer:     r.MinSlotsToOffer,
		SlotDurationMinutes: r.SlotDurationMinutes,
		LinkTTLDays:         r.LinkTTLDays,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *offerSlots.Response) *OfferSlotsResponse {
	slots := make([]OfferedSlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = OfferedSlotResponse{
			StartAt:      s.StartAt.Format(time.RFC3339),
			EndAt:        s.EndAt.Format(time.RFC3339),
			RedeemSecret: s.RedeemSecret,
		}
	}

	return &OfferSlotsResponse{
		Slots:         slots,
		LinkExpiresAt: resp.LinkExpiresAt.Format(time.RFC3339),
	}
}
