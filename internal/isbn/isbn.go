// Package isbn проверяет контрольные цифры кодов ISBN-10 и ISBN-13.
package isbn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrLength возвращается, если запрошена длина кода, отличная от 10 и 13.
	ErrLength = errors.New("length must be 10 or 13")
	// ErrDigits возвращается, если набор цифр для расчёта контрольной цифры некорректен.
	ErrDigits = errors.New("invalid digits for check digit")
	// ErrFormat возвращается, если строка ввода не имеет вид "код,длина".
	ErrFormat = errors.New("invalid input format")
)

// Validate проверяет код ISBN заданной длины.
// Код неверного размера или с недопустимыми символами невалиден без ошибки.
func Validate(code string, length int) (bool, error) {
	if length != 10 && length != 13 {
		return false, ErrLength
	}
	if len(code) != length || !hasValidCharacters(code, length) {
		return false, nil
	}

	payload := code[:length-1]
	digits := make([]int, len(payload))
	for i := range payload {
		digits[i] = int(payload[i] - '0')
	}

	var (
		expected byte
		err      error
	)
	if length == 10 {
		expected, err = CheckDigit10(digits)
	} else {
		expected, err = CheckDigit13(digits)
	}
	if err != nil {
		return false, err
	}

	return code[length-1] == expected, nil
}

// CheckDigit10 вычисляет контрольный символ ISBN-10 по первым девяти цифрам.
// Веса 10..2; остаток 11 даёт '0', остаток 10 даёт 'X'.
func CheckDigit10(digits []int) (byte, error) {
	if err := checkDigits(digits, 9); err != nil {
		return 0, err
	}

	total := 0
	for i, d := range digits {
		total += d * (10 - i)
	}

	switch r := 11 - total%11; r {
	case 11:
		return '0', nil
	case 10:
		return 'X', nil
	default:
		return byte('0' + r), nil
	}
}

// CheckDigit13 вычисляет контрольную цифру ISBN-13 по первым двенадцати цифрам.
func CheckDigit13(digits []int) (byte, error) {
	if err := checkDigits(digits, 12); err != nil {
		return 0, err
	}

	total := 0
	for i, d := range digits {
		if i%2 == 0 {
			total += d
		} else {
			total += d * 3
		}
	}

	r := 10 - total%10
	if r == 10 {
		return '0', nil
	}
	return byte('0' + r), nil
}

// ParseInput разбирает строку вида "9780306406157,13". Пробелы игнорируются.
func ParseInput(s string) (string, int, error) {
	s = strings.ReplaceAll(s, " ", "")
	code, lengthStr, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(lengthStr, ",") {
		return "", 0, ErrFormat
	}

	length, err := strconv.Atoi(lengthStr)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return code, length, nil
}

func checkDigits(digits []int, n int) error {
	if len(digits) != n {
		return fmt.Errorf("%w: want %d digits, got %d", ErrDigits, n, len(digits))
	}
	for _, d := range digits {
		if d < 0 || d > 9 {
			return fmt.Errorf("%w: %d is not a digit", ErrDigits, d)
		}
	}
	return nil
}

func hasValidCharacters(code string, length int) bool {
	body := code
	if length == 10 {
		last := code[len(code)-1]
		if !(last >= '0' && last <= '9') && last != 'X' {
			return false
		}
		body = code[:len(code)-1]
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return true
}
