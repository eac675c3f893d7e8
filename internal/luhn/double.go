package luhn

// Transformer удваивает каждую вторую цифру справа.
type Transformer func(digits string) ([]int, error)

func checkDigits(digits string) error {
	if digits == "" {
		return valueError("double", ErrNonDigit)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return valueError("double", ErrNonDigit)
		}
	}
	return nil
}

// Double проходит строку справа налево и удваивает цифры на чётных позициях
// (2, 4, 6... от правого края). Порядок результата совпадает с порядком входа.
func Double(digits string) ([]int, error) {
	if err := checkDigits(digits); err != nil {
		return nil, err
	}

	result := make([]int, len(digits))
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if double {
			digit *= 2
		}
		result[i] = digit
		double = !double
	}

	return result, nil
}

// DoublePositional вычисляет позицию от правого края для каждой цифры.
func DoublePositional(digits string) ([]int, error) {
	if err := checkDigits(digits); err != nil {
		return nil, err
	}

	n := len(digits)
	result := make([]int, 0, n)

	for i := 0; i < n; i++ {
		digit := int(digits[i] - '0')
		if (n-i)%2 == 0 {
			digit *= 2
		}
		result = append(result, digit)
	}

	return result, nil
}
