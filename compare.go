package quantity

// Compare orders q against other. A Number is compared with q's value,
// ignoring units. A Quantity of the same category is compared through the
// reference scale, so 1 km > 999 m. ok is false when other measures a
// different category, or either side has no unit, and the pair cannot be
// ordered.
func (q Quantity) Compare(other Operand) (cmp int, ok bool) {
	if q.unit == nil {
		return 0, false
	}
	switch o := other.(type) {
	case Number:
		return compareFloat(q.value, float64(o)), true
	case Quantity:
		if o.unit == nil || !sameCategory(q.unit, o.unit) {
			return 0, false
		}
		return compareFloat(q.reference, o.reference), true
	default:
		return 0, false
	}
}

// CompareErr is Compare reporting unorderable operands as an error.
func (q Quantity) CompareErr(other Operand) (int, error) {
	cmp, ok := q.Compare(other)
	if ok {
		return cmp, nil
	}
	if err := checkReceiver("compare", q); err != nil {
		return 0, err
	}
	if o, isQuantity := other.(Quantity); isQuantity && o.unit != nil {
		return 0, categoryMismatch("compare", q, o)
	}
	return 0, unsupportedOperand("compare", other)
}

// Equal reports whether q and other are ordering-equal. 100 cm equals 1 m.
func (q Quantity) Equal(other Operand) bool {
	cmp, ok := q.Compare(other)
	return ok && cmp == 0
}

// Eql is the strict equality: q and other must be in the identical unit as
// well as ordering-equal. 100 cm is not Eql to 1 m.
func (q Quantity) Eql(other Quantity) bool {
	if q.unit == nil || other.unit == nil {
		return q.unit == nil && other.unit == nil && q.value == other.value
	}
	return sameUnit(q.unit, other.unit) && q.Equal(other)
}

func (q Quantity) Less(other Operand) bool {
	cmp, ok := q.Compare(other)
	return ok && cmp < 0
}

func (q Quantity) LessOrEqual(other Operand) bool {
	cmp, ok := q.Compare(other)
	return ok && cmp <= 0
}

func (q Quantity) Greater(other Operand) bool {
	cmp, ok := q.Compare(other)
	return ok && cmp > 0
}

func (q Quantity) GreaterOrEqual(other Operand) bool {
	cmp, ok := q.Compare(other)
	return ok && cmp >= 0
}

// Between reports whether min <= q <= max.
func (q Quantity) Between(min, max Operand) bool {
	return q.GreaterOrEqual(min) && q.LessOrEqual(max)
}

// Clamp returns q limited to [min, max]. Bounds are converted into q's unit.
func (q Quantity) Clamp(min, max Operand) (Quantity, error) {
	if _, err := q.CompareErr(min); err != nil {
		return Quantity{}, err
	}
	if _, err := q.CompareErr(max); err != nil {
		return Quantity{}, err
	}
	switch {
	case q.Less(min):
		return q.rebase(min), nil
	case q.Greater(max):
		return q.rebase(max), nil
	default:
		return q, nil
	}
}

// rebase expresses bound in q's unit. bound must already be comparable.
func (q Quantity) rebase(bound Operand) Quantity {
	switch b := bound.(type) {
	case Number:
		return q.withValue(float64(b))
	case Quantity:
		return q.withReference(b.reference)
	}
	return q
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
