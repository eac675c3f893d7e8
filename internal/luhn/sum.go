package luhn

// Summer нормализует значения больше 9 и возвращает их сумму.
type Summer func(values []int) (int, error)

// maxValue — наибольшее значение после удвоения цифры.
const maxValue = 18

func checkValue(v int) error {
	if v < 0 {
		return valueError("sum", ErrNegative)
	}
	if v > maxValue {
		return valueError("sum", ErrOutOfRange)
	}
	return nil
}

// Sum заменяет каждое значение больше 9 на value-9 и суммирует.
func Sum(values []int) (int, error) {
	if len(values) == 0 {
		return 0, valueError("sum", ErrEmpty)
	}

	total := 0
	for _, v := range values {
		if err := checkValue(v); err != nil {
			return 0, err
		}
		if v > 9 {
			v -= 9
		}
		total += v
	}
	return total, nil
}

// SumDigits складывает десятки и единицы каждого значения.
func SumDigits(values []int) (int, error) {
	if len(values) == 0 {
		return 0, valueError("sum", ErrEmpty)
	}

	total := 0
	for _, v := range values {
		if err := checkValue(v); err != nil {
			return 0, err
		}
		total += v/10 + v%10
	}
	return total, nil
}
