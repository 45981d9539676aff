package offer_slots

import (
	"fmt"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// applyDefaults подставляет deployment-дефолты в незаполненные поля запроса
func applyDefaults(req *Request, defaults Defaults) {
	if req.DaysAhead == 0 {
		req.DaysAhead = defaults.DaysAhead
	}
	if req.MinSlotsToOffer == 0 {
		req.MinSlotsToOffer = defaults.MinSlotsToOffer
	}
	if req.SlotDurationMinutes == 0 {
		req.SlotDurationMinutes = defaults.SlotDurationMinutes
	}
	if req.LinkTTLDays == 0 {
		req.LinkTTLDays = defaults.LinkTTLDays
	}
}

// validateRequest валидирует входные данные и подставляет встроенные дефолты
func validateRequest(req *Request) error {
	if req.InquiryID <= 0 {
		return fmt.Errorf("%w: inquiryID must be positive", ErrInvalidInput)
	}
	if req.ManagerID <= 0 {
		return fmt.Errorf("%w: managerID must be positive", ErrInvalidInput)
	}
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	if req.DaysAhead == 0 {
		req.DaysAhead = domain.DefaultDaysAhead
	}
	if req.MinSlotsToOffer == 0 {
		req.MinSlotsToOffer = domain.DefaultMinSlotsToOffer
	}
	if req.SlotDurationMinutes == 0 {
		req.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if req.LinkTTLDays == 0 {
		req.LinkTTLDays = domain.DefaultLinkTTLDays
	}

	if req.DaysAhead < domain.MinDaysAhead || req.DaysAhead > domain.MaxDaysAhead {
		return fmt.Errorf("%w: daysAhead must be between %d and %d", ErrInvalidInput, domain.MinDaysAhead, domain.MaxDaysAhead)
	}
	if req.MinSlotsToOffer <= 0 {
		return fmt.Errorf("%w: minSlotsToOffer must be positive", ErrInvalidInput)
	}
	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d", ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if req.LinkTTLDays < domain.MinLinkTTLDays || req.LinkTTLDays > domain.MaxLinkTTLDays {
		return fmt.Errorf("%w: linkTTLDays must be between %d and %d", ErrInvalidInput, domain.MinLinkTTLDays, domain.MaxLinkTTLDays)
	}

	return nil
}
