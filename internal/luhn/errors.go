package luhn

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку этапа конвейера.
type Kind int

const (
	// KindType — вход этапа имеет неожиданную форму.
	KindType Kind = iota + 1
	// KindValue — форма верна, но значение недопустимо.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type error"
	case KindValue:
		return "value error"
	default:
		return "unknown error"
	}
}

var (
	// ErrNotString возвращается, если на вход передана не строка.
	ErrNotString = errors.New("card number must be a string")
	// ErrNoDigits возвращается, если во входной строке нет ни одной цифры.
	ErrNoDigits = errors.New("no digits found in card number")
	// ErrNonDigit возвращается, если строка для удвоения содержит не только цифры.
	ErrNonDigit = errors.New("card digits must contain digits only")
	// ErrEmpty возвращается при пустой последовательности значений.
	ErrEmpty = errors.New("digits list cannot be empty")
	// ErrNegative возвращается при отрицательном значении.
	ErrNegative = errors.New("digit values must be non-negative")
	// ErrOutOfRange возвращается при значении больше 18.
	ErrOutOfRange = errors.New("digit values must not exceed 18")
)

// Error описывает ошибку конкретного этапа конвейера.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func typeError(op string, err error) error {
	return &Error{Op: op, Kind: KindType, Err: err}
}

func valueError(op string, err error) error {
	return &Error{Op: op, Kind: KindValue, Err: err}
}

// KindOf возвращает вид ошибки конвейера или 0, если err не из этого пакета.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
