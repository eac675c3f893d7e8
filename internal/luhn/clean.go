package luhn

import (
	"regexp"
	"strings"
)

// Cleaner извлекает цифры из сырого ввода.
type Cleaner func(raw string) (string, error)

var nonDigit = regexp.MustCompile(`[^0-9]`)

// Input приводит произвольное значение к строке номера.
func Input(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeError("clean", ErrNotString)
	}
	return s, nil
}

// Clean оставляет только символы '0'..'9', сохраняя их порядок.
func Clean(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if digits == "" {
		return "", valueError("clean", ErrNoDigits)
	}
	return digits, nil
}

// CleanRegexp делает то же, что Clean, через регулярное выражение.
func CleanRegexp(raw string) (string, error) {
	digits := nonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return "", valueError("clean", ErrNoDigits)
	}
	return digits, nil
}
