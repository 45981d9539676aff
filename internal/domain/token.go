package domain

import "time"

// TokenKind represents what a secure token grants access to
type TokenKind string

const (
	// TokenKindBooking grants a one-time right to claim a specific candidate slot
	TokenKindBooking TokenKind = "booking"

	// TokenKindQuestionnaire grants access to the pre-screening questionnaire
	// for an inquiry; it carries no slot binding
	TokenKindQuestionnaire TokenKind = "questionnaire"
)

// SlotBinding pins a booking token to one candidate slot. Present on booking
// tokens only; the compiler-enforced alternative to an open metadata map.
type SlotBinding struct {
	ManagerID       int64
	Kind            AppointmentKind
	StartAt         time.Time
	DurationMinutes int
	PropertyAddress *string
}

// EndAt returns the exclusive end of the bound slot interval
func (b *SlotBinding) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Token is a single-use opaque credential handed to an anonymous prospect.
// The secret itself is the only credential; possession is authorization.
//
// State machine: unused -> used (terminal, exactly once) or
// unused -> expired (terminal, by wall clock or by the bound slot's start).
type Token struct {
	ID        int64
	Secret    string
	Kind      TokenKind
	InquiryID int64

	// Booking is non-nil if and only if Kind == TokenKindBooking
	Booking *SlotBinding

	ExpiresAt time.Time
	IsUsed    bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the token is past its expiry at the given time.
// A booking token is additionally expired once its bound slot has started.
func (t *Token) IsExpired(now time.Time) bool {
	if now.After(t.ExpiresAt) {
		return true
	}
	if t.Kind == TokenKindBooking && t.Booking != nil && !now.Before(t.Booking.StartAt) {
		return true
	}
	return false
}
