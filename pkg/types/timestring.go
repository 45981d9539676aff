package types

import (
	"errors"
	"fmt"
	"time"
)

// timeStringLayout формат времени внутри дня
const timeStringLayout = "15:04"

// endOfDay верхняя граница суток; допустима как конец интервала,
// но не как момент внутри дня в обычном смысле
const endOfDay = "24:00"

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrMinutesOutOfRange возвращается, когда результат выходит за пределы суток
	ErrMinutesOutOfRange = errors.New("types: minutes out of day range")
)

// TimeString время внутри дня в формате "HH:MM" (например, "09:30")
// Используется для хранения времени без привязки к дате и часовому поясу
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
// Помимо времён внутри дня допускается "24:00" как граница конца суток
func NewTimeStringFromString(s string) (TimeString, error) {
	if s == endOfDay {
		return TimeString(s), nil
	}
	if _, err := time.Parse(timeStringLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
// Значение 1440 дает границу "24:00"
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutOfRange, minutes)
	}
	if minutes == minutesPerDay {
		return TimeString(endOfDay), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток ("24:00" дает 1440)
func (t TimeString) Minutes() (int, error) {
	if string(t) == endOfDay {
		return minutesPerDay, nil
	}
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на указанное количество минут
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// OnDate совмещает время внутри дня с календарной датой
// Часовой пояс берётся из переданной даты; "24:00" дает полночь
// следующего дня (time.Date нормализует час 24)
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0,
		date.Location(),
	), nil
}
