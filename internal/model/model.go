// Package model содержит доменные сущности сервиса проверки номеров.
package model

import "time"

// CheckKind описывает алгоритм, которым выполнялась проверка.
type CheckKind string

const (
	CheckKindLuhn   CheckKind = "luhn"
	CheckKindISBN10 CheckKind = "isbn10"
	CheckKindISBN13 CheckKind = "isbn13"
)

// Check описывает одну выполненную проверку номера.
type Check struct {
	ID        int64
	Kind      CheckKind
	Masked    string
	Total     int
	Valid     bool
	CheckedAt time.Time
}

// visibleTail — сколько последних символов номера остаются открытыми.
const visibleTail = 4

// MaskNumber заменяет все символы, кроме последних четырёх, на '*'.
func MaskNumber(number string) string {
	r := []rune(number)
	if len(r) <= visibleTail {
		return number
	}
	for i := 0; i < len(r)-visibleTail; i++ {
		r[i] = '*'
	}
	return string(r)
}
