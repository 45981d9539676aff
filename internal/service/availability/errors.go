package availability

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно доступности не найдено
	ErrWindowNotFound = errors.New("availability: availability window not found")

	// ErrInvalidKind возвращается при неизвестном типе встречи
	ErrInvalidKind = errors.New("availability: invalid appointment kind")

	// ErrInvalidWeekday возвращается при неизвестном ключе дня недели
	ErrInvalidWeekday = errors.New("availability: invalid weekday key")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени блока
	ErrInvalidTimeFormat = errors.New("availability: invalid time format, expected HH:MM")

	// ErrInvalidBlock возвращается, когда начало блока не раньше его конца
	ErrInvalidBlock = errors.New("availability: block start must be before end")

	// ErrInvalidBlackout возвращается, когда начало периода недоступности позже конца
	ErrInvalidBlackout = errors.New("availability: blackout start must not be after end")

	// ErrInvalidDateFormat возвращается при некорректном формате даты периода
	ErrInvalidDateFormat = errors.New("availability: invalid date format, expected YYYY-MM-DD")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
