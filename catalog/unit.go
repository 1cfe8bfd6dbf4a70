package catalog

import (
	"fmt"
	"strconv"

	"quantity"
)

// Unit is a unit descriptor owned by a Registry. Composite units synthesized
// by Registry.Composite are Units too, but are never registered.
type Unit struct {
	name      string
	measures  string
	factor    float64
	aliases   []string
	reference quantity.Unit // nil: this unit is its category's reference
}

func (u *Unit) Name() string { return u.name }

func (u *Unit) Measures() string { return u.measures }

func (u *Unit) ScaleFactor() float64 { return u.factor }

// Aliases returns the alternative identifiers the unit resolves from.
func (u *Unit) Aliases() []string {
	return append([]string(nil), u.aliases...)
}

func (u *Unit) ReferenceUnit() quantity.Unit {
	if u.reference == nil {
		return u
	}
	return u.reference
}

// IsReference reports whether u is the reference unit of its category.
func (u *Unit) IsReference() bool {
	return u.reference == nil
}

func (u *Unit) CanConvertTo(target quantity.Unit) bool {
	return target != nil && target.Measures() == u.measures
}

func (u *Unit) Convert(target quantity.Unit) (quantity.Unit, error) {
	if !u.CanConvertTo(target) {
		return nil, fmt.Errorf("%w: %s (%s) to %s", ErrIncompatible, u.name, u.measures, describe(target))
	}
	return target, nil
}

// Render formats value followed by the unit name, e.g. "12.5 km".
func (u *Unit) Render(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64) + " " + u.name
}

func (u *Unit) String() string {
	return u.name
}

// Definition returns the row u was registered from.
func (u *Unit) Definition() Definition {
	return Definition{
		Name:     u.name,
		Measures: u.measures,
		Factor:   u.factor,
		Aliases:  u.Aliases(),
	}
}

func describe(u quantity.Unit) string {
	if u == nil {
		return "<nil>"
	}
	return u.Name() + " (" + u.Measures() + ")"
}
