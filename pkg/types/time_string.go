package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (например, "09:00").
// Хранится и передаётся как строка без привязки к часовому поясу,
// чтобы исключить сдвиг времени при сериализации.
type TimeString string

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// MinutesFromMidnight возвращает количество минут с начала суток
func (t TimeString) MinutesFromMidnight() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на m минут вперёд.
// Переход через полночь не поддерживается - возвращается ошибка.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeFormat, string(t), m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Sub возвращает разницу в минутах между t и other (t - other)
func (t TimeString) Sub(other TimeString) (int, error) {
	a, err := t.MinutesFromMidnight()
	if err != nil {
		return 0, err
	}
	b, err := other.MinutesFromMidnight()
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}
