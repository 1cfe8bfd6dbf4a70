package quantity

import (
	"math"
)

// Abs returns |q|. The sign is taken from the reference value.
func (q Quantity) Abs() Quantity {
	if q.reference < 0 {
		return q.Neg()
	}
	return q
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return q.withReference(-q.reference)
}

// Pos returns q unchanged (unary plus).
func (q Quantity) Pos() Quantity {
	return q
}

// Round rounds the value half away from zero to digits decimal places.
// Negative digits round to the left of the decimal point.
func (q Quantity) Round(digits int) Quantity {
	if digits == 0 {
		return q.withValue(math.Round(q.value))
	}
	p := math.Pow10(digits)
	return q.withValue(math.Round(q.value*p) / p)
}

func (q Quantity) Truncate() Quantity {
	return q.withValue(math.Trunc(q.value))
}

func (q Quantity) Floor() Quantity {
	return q.withValue(math.Floor(q.value))
}

func (q Quantity) Ceil() Quantity {
	return q.withValue(math.Ceil(q.value))
}

// DivMod returns the floored quotient and the remainder of q's value divided
// by other's value, both in q's unit. A Quantity divisor must measure the
// same category, but its value is used as is, in its own unit: 1 m divmod
// 50 cm is (0 m, 1 m). Mod works on reference values instead and gives 0 m
// for the same pair; convert the divisor into q's unit first for that result.
func (q Quantity) DivMod(other Operand) (quotient, remainder Quantity, err error) {
	if err := checkReceiver("divmod", q); err != nil {
		return Quantity{}, Quantity{}, err
	}
	var divisor float64
	switch o := other.(type) {
	case Number:
		divisor = float64(o)
	case Quantity:
		if err := checkOperand("divmod", o); err != nil {
			return Quantity{}, Quantity{}, err
		}
		if !sameCategory(q.unit, o.unit) {
			return Quantity{}, Quantity{}, categoryMismatch("divmod", q, o)
		}
		divisor = o.value
	default:
		return Quantity{}, Quantity{}, unsupportedOperand("divmod", other)
	}
	return q.withValue(math.Floor(q.value / divisor)), q.withValue(floorMod(q.value, divisor)), nil
}

// Int returns the value truncated to an integer.
func (q Quantity) Int() int64 {
	return int64(q.value)
}

func (q Quantity) Float() float64 {
	return q.value
}

func (q Quantity) IsZero() bool {
	return q.value == 0
}

func (q Quantity) IsPositive() bool {
	return q.reference > 0
}

func (q Quantity) IsNegative() bool {
	return q.reference < 0
}
