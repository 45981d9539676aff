package offer_slots

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// Request модель запроса на подготовку предложений слотов для заявки
type Request struct {
	InquiryID       int64
	ManagerID       int64
	Kind            domain.AppointmentKind
	PropertyAddress *string

	// Параметры окна просмотра; нулевые значения заменяются дефолтами
	DaysAhead           int
	MinSlotsToOffer     int
	SlotDurationMinutes int
	LinkTTLDays         int
}

// Defaults параметры окна просмотра из deployment-конфига
// Применяются к полям запроса, которые клиент не заполнил
type Defaults struct {
	DaysAhead           int
	MinSlotsToOffer     int
	SlotDurationMinutes int
	LinkTTLDays         int
}

// OfferedSlot один предложенный слот с секретом бронирующей ссылки
type OfferedSlot struct {
	StartAt      time.Time
	EndAt        time.Time
	RedeemSecret string
}

// Response модель ответа с набором предложений
type Response struct {
	Slots         []OfferedSlot
	LinkExpiresAt time.Time
}
