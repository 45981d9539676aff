package meetlink

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("meetlink client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("meetlink client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что провайдер видеовстреч недоступен и бронирование должно
	// продолжиться с placeholder-ссылкой
	ErrServiceDegraded = errors.New("meetlink provider unavailable: graceful degradation applied")
)
