package tokens

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен не найден по секрету
	ErrTokenNotFound = errors.New("tokens: token not found")

	// ErrTokenUsed возвращается, когда токен уже был использован
	ErrTokenUsed = errors.New("tokens: token already used")

	// ErrTokenExpired возвращается, когда токен истёк по времени
	// или привязанный слот уже начался
	ErrTokenExpired = errors.New("tokens: token expired")

	// ErrInvalidTTL возвращается при недопустимом сроке жизни токена
	ErrInvalidTTL = errors.New("tokens: invalid token TTL")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tokens: internal error")
)
