// Package quantity models physical quantities: immutable pairs of a numeric
// value and a unit of measurement.
//
// Every Quantity carries its value twice: in its own unit's scale (Value) and
// in the reference unit of its measurement category (Reference). Arithmetic
// between quantities of different units of the same category combines
// reference values, so 12 m + 5 cm is computed as 12 + 0.05 in meters and
// re-expressed in the left operand's unit.
//
// Units come from a Registry passed in explicitly at construction; this
// package never defines unit data. See package catalog for the standard
// registry.
package quantity

// Quantity is an immutable value paired with a unit. The zero Quantity has no
// unit and is not usable; build quantities with New, FromReference or Build.
// Operations that return an error report a zero Quantity as CodeInvalidUnit
// and comparisons treat it as unordered. Conveniences without an error
// result, such as Abs and Round, panic on it.
type Quantity struct {
	value     float64
	reference float64
	unit      Unit
	reg       Registry
}

// Spec is the structured construction request. When both Value and
// Reference are set, Reference wins and Value is recomputed from it.
type Spec struct {
	Unit      string
	Value     *float64
	Reference *float64
}

// New returns value expressed in the unit registered under id.
func New(reg Registry, value float64, id string) (Quantity, error) {
	unit, err := resolve(reg, id)
	if err != nil {
		return Quantity{}, err
	}
	return fromValue(reg, unit, value), nil
}

// MustNew is like New but panics if the unit cannot be resolved.
func MustNew(reg Registry, value float64, id string) Quantity {
	q, err := New(reg, value, id)
	if err != nil {
		panic(err)
	}
	return q
}

// FromReference returns the quantity whose reference value is reference,
// expressed in unit. Every arithmetic result is built this way so precision
// is carried through the reference scale.
func FromReference(reg Registry, unit Unit, reference float64) Quantity {
	return Quantity{
		value:     reference / unit.ScaleFactor(),
		reference: reference,
		unit:      unit,
		reg:       reg,
	}
}

// Build constructs a quantity from a structured request.
func Build(reg Registry, spec Spec) (Quantity, error) {
	unit, err := resolve(reg, spec.Unit)
	if err != nil {
		return Quantity{}, err
	}
	switch {
	case spec.Reference != nil:
		return FromReference(reg, unit, *spec.Reference), nil
	case spec.Value != nil:
		return fromValue(reg, unit, *spec.Value), nil
	default:
		return fromValue(reg, unit, 0), nil
	}
}

func fromValue(reg Registry, unit Unit, value float64) Quantity {
	return Quantity{
		value:     value,
		reference: value * unit.ScaleFactor(),
		unit:      unit,
		reg:       reg,
	}
}

func resolve(reg Registry, id string) (Unit, error) {
	if reg == nil {
		return nil, newError(CodeInvalidUnit, map[string]string{"unit": id}, "no registry to resolve unit %q", id)
	}
	unit, err := reg.Resolve(id)
	if err != nil {
		e := newError(CodeInvalidUnit, map[string]string{"unit": id}, "invalid unit %q", id)
		e.Cause = err
		return nil, e
	}
	return unit, nil
}

// Value is the magnitude in the quantity's own unit.
func (q Quantity) Value() float64 { return q.value }

// Reference is the magnitude in the reference unit of the quantity's category.
func (q Quantity) Reference() float64 { return q.reference }

func (q Quantity) Unit() Unit { return q.unit }

func (q Quantity) Registry() Registry { return q.reg }

func (q Quantity) String() string {
	if q.unit == nil {
		return "<invalid quantity>"
	}
	return q.unit.Render(q.value)
}

// withValue returns a quantity in q's unit holding value. Operations against
// bare numbers use it because both operands already share q's scale.
func (q Quantity) withValue(value float64) Quantity {
	return fromValue(q.reg, q.unit, value)
}

// withReference returns a quantity in q's unit holding reference.
func (q Quantity) withReference(reference float64) Quantity {
	return FromReference(q.reg, q.unit, reference)
}

// Builder is the fluent construction form: Of(reg, 12).In("km").
type Builder struct {
	reg   Registry
	value float64
}

func Of(reg Registry, value float64) Builder {
	return Builder{reg: reg, value: value}
}

func (b Builder) In(id string) (Quantity, error) {
	return New(b.reg, b.value, id)
}
