package domain

// Default scheduling parameters
const (
	DefaultSlotDurationMinutes = 30
	DefaultDaysAhead           = 14
	DefaultMinSlotsToOffer     = 5
	DefaultLinkTTLDays         = 7

	// OfferOverCollectFactor controls how many bookable candidates the
	// orchestrator gathers beyond the minimum before truncating the offer
	OfferOverCollectFactor = 2
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinDaysAhead           = 1
	MaxDaysAhead           = 90
	MinLinkTTLDays         = 1
	MaxLinkTTLDays         = 30
	MaxCancelReasonLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PlaceholderMeetingLink записывается в бронирование, когда внешний провайдер
// видеовстреч недоступен в момент подтверждения. Ссылка досылается позже.
const PlaceholderMeetingLink = "pending"
