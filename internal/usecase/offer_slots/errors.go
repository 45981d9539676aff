package offer_slots

import "errors"

var (
	// ErrNoAvailability возвращается, когда во всём окне просмотра
	// не нашлось ни одного свободного слота
	ErrNoAvailability = errors.New("offer_slots: no availability in lookahead window")

	// ErrInvalidKind возвращается при неизвестном типе встречи
	ErrInvalidKind = errors.New("offer_slots: invalid appointment kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("offer_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("offer_slots: internal error")
)
