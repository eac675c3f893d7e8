// Package luhn реализует проверку контрольной суммы по алгоритму Луна
// в виде конвейера: очистка, удвоение, суммирование, проверка.
package luhn

import "fmt"

// minDigits — минимальное число цифр, по которым имеет смысл считать сумму.
const minDigits = 2

// Result содержит промежуточные и итоговые данные одной проверки.
type Result struct {
	Digits      string
	Transformed []int
	Total       int
	Valid       bool
}

// Validator собирает конвейер из выбранных стратегий.
type Validator struct {
	clean     Cleaner
	transform Transformer
	sum       Summer
}

// Option настраивает Validator.
type Option func(*Validator)

// WithCleaner задаёт стратегию очистки.
func WithCleaner(c Cleaner) Option {
	return func(v *Validator) { v.clean = c }
}

// WithTransformer задаёт стратегию удвоения.
func WithTransformer(t Transformer) Option {
	return func(v *Validator) { v.transform = t }
}

// WithSummer задаёт стратегию суммирования.
func WithSummer(s Summer) Option {
	return func(v *Validator) { v.sum = s }
}

// New создаёт Validator. Не заданные стратегии заменяются каноническими.
func New(opts ...Option) *Validator {
	v := &Validator{
		clean:     Clean,
		transform: Double,
		sum:       Sum,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// Validate проверяет номер каноническим конвейером.
func Validate(raw string) (bool, error) {
	return defaultValidator.Validate(raw)
}

// Validate возвращает true, если сумма номера делится на 10.
// Номер короче двух цифр считается невалидным без ошибки.
func (v *Validator) Validate(raw string) (bool, error) {
	res, err := v.Check(raw)
	if err != nil {
		return false, err
	}
	return res.Valid, nil
}

// Check прогоняет номер через конвейер и возвращает все промежуточные данные.
func (v *Validator) Check(raw string) (Result, error) {
	digits, err := v.clean(raw)
	if err != nil {
		return Result{}, err
	}

	res := Result{Digits: digits}
	if len(digits) < minDigits {
		return res, nil
	}

	transformed, err := v.transform(digits)
	if err != nil {
		return Result{}, err
	}
	res.Transformed = transformed

	total, err := v.sum(transformed)
	if err != nil {
		return Result{}, err
	}
	res.Total = total
	res.Valid = total%10 == 0

	return res, nil
}

// Имена стратегий, принимаемые в конфигурации и флагах CLI.
const (
	StrategyCanonical  = "canonical"
	StrategyRegexp     = "regexp"
	StrategyPositional = "positional"
	StrategyDigits     = "digits"
)

// CleanerByName возвращает стратегию очистки по имени.
func CleanerByName(name string) (Cleaner, error) {
	switch name {
	case "", StrategyCanonical:
		return Clean, nil
	case StrategyRegexp:
		return CleanRegexp, nil
	}
	return nil, fmt.Errorf("unknown clean strategy %q", name)
}

// TransformerByName возвращает стратегию удвоения по имени.
func TransformerByName(name string) (Transformer, error) {
	switch name {
	case "", StrategyCanonical:
		return Double, nil
	case StrategyPositional:
		return DoublePositional, nil
	}
	return nil, fmt.Errorf("unknown double strategy %q", name)
}

// SummerByName возвращает стратегию суммирования по имени.
func SummerByName(name string) (Summer, error) {
	switch name {
	case "", StrategyCanonical:
		return Sum, nil
	case StrategyDigits:
		return SumDigits, nil
	}
	return nil, fmt.Errorf("unknown sum strategy %q", name)
}

// NewByNames собирает Validator из имён стратегий.
func NewByNames(clean, double, sum string) (*Validator, error) {
	c, err := CleanerByName(clean)
	if err != nil {
		return nil, err
	}
	t, err := TransformerByName(double)
	if err != nil {
		return nil, err
	}
	s, err := SummerByName(sum)
	if err != nil {
		return nil, err
	}
	return New(WithCleaner(c), WithTransformer(t), WithSummer(s)), nil
}
