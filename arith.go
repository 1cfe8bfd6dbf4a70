package quantity

import (
	"fmt"
	"math"
	"strconv"
)

// Add returns q + other. A Number is added to q's value directly; a Quantity
// must measure the same category and is added through the reference scale.
// The result is always expressed in q's unit.
func (q Quantity) Add(other Operand) (Quantity, error) {
	return q.combine("add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns q - other, with the same operand rules as Add.
func (q Quantity) Sub(other Operand) (Quantity, error) {
	return q.combine("sub", other, func(a, b float64) float64 { return a - b })
}

// Mod returns the floored modulo of q by other; the result takes the sign of
// the divisor.
func (q Quantity) Mod(other Operand) (Quantity, error) {
	return q.combine("mod", other, floorMod)
}

func (q Quantity) combine(op string, other Operand, f func(a, b float64) float64) (Quantity, error) {
	if err := checkReceiver(op, q); err != nil {
		return Quantity{}, err
	}
	switch o := other.(type) {
	case Number:
		return q.withValue(f(q.value, float64(o))), nil
	case Quantity:
		if err := checkOperand(op, o); err != nil {
			return Quantity{}, err
		}
		if !sameCategory(q.unit, o.unit) {
			return Quantity{}, categoryMismatch(op, q, o)
		}
		return q.withReference(f(q.reference, o.reference)), nil
	default:
		return Quantity{}, unsupportedOperand(op, other)
	}
}

// Mul returns q * other. A Number scales q's value. Two quantities multiply
// into a derived unit: "<unit> squared" when both share a unit, or
// "<unit1> * <unit2>" when they measure different categories. Quantities in
// different units of the same category cannot be multiplied; convert one
// operand first.
func (q Quantity) Mul(other Operand) (Quantity, error) {
	if err := checkReceiver("mul", q); err != nil {
		return Quantity{}, err
	}
	switch o := other.(type) {
	case Number:
		return q.withValue(q.value * float64(o)), nil
	case Quantity:
		if err := checkOperand("mul", o); err != nil {
			return Quantity{}, err
		}
		label, err := productLabel(q, o)
		if err != nil {
			return Quantity{}, err
		}
		if q.reg == nil {
			return Quantity{}, newError(CodeInvalidUnit, map[string]string{"unit": label}, "no registry to resolve unit %q", label)
		}
		unit := q.reg.Composite(label, q.unit, o.unit)
		return FromReference(q.reg, unit, q.reference*o.reference), nil
	default:
		return Quantity{}, unsupportedOperand("mul", other)
	}
}

func productLabel(a, b Quantity) (string, error) {
	switch {
	case sameUnit(a.unit, b.unit):
		return SquaredLabel(a.unit.Name()), nil
	case sameCategory(a.unit, b.unit):
		return "", newError(CodeUnitMismatch, map[string]string{
			"left":  a.String(),
			"right": b.String(),
		}, "mul: units %s and %s differ", a.unit.Name(), b.unit.Name())
	default:
		return ProductLabel(a.unit.Name(), b.unit.Name()), nil
	}
}

// SquaredLabel is the derived-unit label for a unit multiplied by itself.
func SquaredLabel(name string) string {
	return name + " squared"
}

// ProductLabel is the derived-unit label for two different units multiplied
// together.
func ProductLabel(left, right string) string {
	return left + " * " + right
}

// ProductMeasures names the category of left * right. The operand categories
// are sorted, so a*b and b*a measure the same category and q.Pow(3) is
// addable to q*q*q.
func ProductMeasures(left, right Unit) string {
	if left.Name() == right.Name() {
		return SquaredLabel(left.Measures())
	}
	return SortedProductLabel(left.Measures(), right.Measures())
}

// SortedProductLabel is ProductLabel with its operands in lexical order.
func SortedProductLabel(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return ProductLabel(a, b)
}

// Pow returns q raised to a positive integer power by repeated
// multiplication: q.Pow(1) is q and q.Pow(n) is q.Mul(q.Pow(n-1)).
func (q Quantity) Pow(n int) (Quantity, error) {
	if err := checkReceiver("pow", q); err != nil {
		return Quantity{}, err
	}
	if n <= 0 {
		return Quantity{}, newError(CodeInvalidExponent, map[string]string{
			"quantity": q.String(),
			"power":    strconv.Itoa(n),
		}, "pow: power must be a positive integer, got %d", n)
	}
	if n == 1 {
		return q, nil
	}
	rest, err := q.Pow(n - 1)
	if err != nil {
		return Quantity{}, err
	}
	return q.Mul(rest)
}

// PowFloat is Pow for a float power, which must hold a positive integer.
func (q Quantity) PowFloat(x float64) (Quantity, error) {
	if x != math.Trunc(x) || math.IsInf(x, 0) || x > math.MaxInt32 {
		return Quantity{}, newError(CodeInvalidExponent, map[string]string{
			"quantity": q.String(),
			"power":    formatFloat(x),
		}, "pow: power must be a positive integer, got %s", formatFloat(x))
	}
	return q.Pow(int(x))
}

func checkOperand(op string, o Quantity) error {
	if o.unit == nil {
		return newError(CodeInvalidUnit, nil, "%s: operand has no unit", op)
	}
	return nil
}

func checkReceiver(op string, q Quantity) error {
	if q.unit == nil {
		return newError(CodeInvalidUnit, nil, "%s: quantity has no unit", op)
	}
	return nil
}

func unsupportedOperand(op string, other Operand) *Error {
	return newError(CodeUnsupportedOperation, map[string]string{
		"operand": fmt.Sprintf("%T", other),
	}, "%s: unsupported operand %T", op, other)
}

func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
