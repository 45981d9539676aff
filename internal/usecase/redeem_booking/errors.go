package redeem_booking

import "errors"

var (
	// ErrTokenNotFound возвращается, когда секрет не соответствует ни одному токену
	ErrTokenNotFound = errors.New("redeem_booking: token not found")

	// ErrTokenUsed возвращается, когда токен уже был использован
	ErrTokenUsed = errors.New("redeem_booking: token already used")

	// ErrTokenExpired возвращается, когда токен истёк или начало слота уже прошло
	ErrTokenExpired = errors.New("redeem_booking: token expired")

	// ErrNotBookingToken возвращается при попытке подтвердить бронь
	// токеном другого типа
	ErrNotBookingToken = errors.New("redeem_booking: token is not a booking token")

	// ErrSchedulingConflict возвращается, когда слот успели занять
	// между предложением и подтверждением
	ErrSchedulingConflict = errors.New("redeem_booking: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("redeem_booking: internal error")
)
