package slotgen

import "errors"

var (
	// ErrInvalidDuration возвращается при недопустимой длительности слота
	ErrInvalidDuration = errors.New("slotgen: invalid slot duration")

	// ErrInternal возвращается при внутренних ошибках генератора
	ErrInternal = errors.New("slotgen: internal error")
)
