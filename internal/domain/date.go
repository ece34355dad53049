package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLocalDate разбирает строку YYYY-MM-DD в дату по компонентам.
// Намеренно не используется time.Parse с layout'ом, привязанным к UTC:
// дата собирается из явных компонентов в локальной зоне, чтобы календарный
// день не сдвигался при сериализации (полночь UTC минус смещение - это
// предыдущий день).
func ParseLocalDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return time.Time{}, fmt.Errorf("invalid date %q: bad year", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid date %q: bad month", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q: bad day", s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DateOnly обнуляет время, оставляя только календарную дату в локальной зоне
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay возвращает true, если обе даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
