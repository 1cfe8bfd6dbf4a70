// Package catalog is the unit registry consumed by package quantity: a table
// of unit definitions grouped by measurement category, the standard catalog
// built from it, and SQLite persistence of catalogs.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"quantity"
)

var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrDuplicateUnit     = errors.New("duplicate unit")
	ErrInvalidFactor     = errors.New("invalid scale factor")
	ErrInvalidDefinition = errors.New("invalid unit definition")
	ErrNoReferenceUnit   = errors.New("no reference unit")
	ErrIncompatible      = errors.New("incompatible units")
)

// Definition is one row of a catalog: 1 Name = Factor reference units of
// Measures. Every category needs one definition with Factor 1.
type Definition struct {
	Name     string
	Measures string
	Factor   float64
	Aliases  []string
}

// Registry resolves unit identifiers. It is populated once by New and is
// read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	ids        map[string]*Unit // name and aliases
	units      []*Unit          // definition order
	categories []string
}

// New validates defs and builds a registry from them.
func New(defs []Definition) (*Registry, error) {
	r := &Registry{
		ids: make(map[string]*Unit, len(defs)),
	}
	references := make(map[string]*Unit)
	for _, def := range defs {
		if err := validate(def); err != nil {
			return nil, err
		}
		u := &Unit{
			name:     def.Name,
			measures: def.Measures,
			factor:   def.Factor,
			aliases:  append([]string(nil), def.Aliases...),
		}
		for _, id := range append([]string{def.Name}, def.Aliases...) {
			if prev, ok := r.ids[id]; ok {
				return nil, fmt.Errorf("%w: %q defined by %s and %s", ErrDuplicateUnit, id, prev.name, def.Name)
			}
			r.ids[id] = u
		}
		if _, ok := references[def.Measures]; !ok {
			r.categories = append(r.categories, def.Measures)
			references[def.Measures] = nil
		}
		if def.Factor == 1 && references[def.Measures] == nil {
			references[def.Measures] = u
		}
		r.units = append(r.units, u)
	}
	for _, c := range r.categories {
		if references[c] == nil {
			return nil, fmt.Errorf("%w: category %q has no unit with factor 1", ErrNoReferenceUnit, c)
		}
	}
	for _, u := range r.units {
		if ref := references[u.measures]; ref != u {
			u.reference = ref
		}
	}
	return r, nil
}

// MustNew is like New but panics on an invalid catalog.
func MustNew(defs []Definition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
}

func validate(def Definition) error {
	if def.Name == "" || def.Measures == "" {
		return fmt.Errorf("%w: %+v", ErrInvalidDefinition, def)
	}
	if def.Factor <= 0 || math.IsInf(def.Factor, 0) || math.IsNaN(def.Factor) {
		return fmt.Errorf("%w: %s has factor %v", ErrInvalidFactor, def.Name, def.Factor)
	}
	for _, a := range def.Aliases {
		if a == "" {
			return fmt.Errorf("%w: %s has an empty alias", ErrInvalidDefinition, def.Name)
		}
	}
	return nil
}

func (r *Registry) Resolve(id string) (quantity.Unit, error) {
	u, err := r.Unit(id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Unit is Resolve returning the concrete descriptor.
func (r *Registry) Unit(id string) (*Unit, error) {
	u, ok := r.ids[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, id)
	}
	return u, nil
}

func (r *Registry) IsKnownUnit(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// Composite returns the unit registered under label, or synthesizes one whose
// scale factor is the product of the operands' factors. The category of a
// synthesized unit is quantity.ProductMeasures of the operands, which does not
// depend on operand order. Synthesized units are not registered.
func (r *Registry) Composite(label string, left, right quantity.Unit) quantity.Unit {
	if u, ok := r.ids[label]; ok {
		return u
	}
	return synthesize(label, left, right)
}

func synthesize(label string, left, right quantity.Unit) *Unit {
	u := &Unit{
		name:     label,
		measures: quantity.ProductMeasures(left, right),
		factor:   left.ScaleFactor() * right.ScaleFactor(),
	}
	if u.factor != 1 {
		lref, rref := left.ReferenceUnit(), right.ReferenceUnit()
		refLabel := quantity.SortedProductLabel(lref.Name(), rref.Name())
		if left.Name() == right.Name() {
			refLabel = quantity.SquaredLabel(lref.Name())
		}
		u.reference = &Unit{name: refLabel, measures: u.measures, factor: 1}
	}
	return u
}

// Units returns the registered units in definition order.
func (r *Registry) Units() []*Unit {
	return append([]*Unit(nil), r.units...)
}

// Categories returns the measurement categories in definition order.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}

// UnitsOf returns the units measuring category.
func (r *Registry) UnitsOf(category string) []*Unit {
	var out []*Unit
	for _, u := range r.units {
		if u.measures == category {
			out = append(out, u)
		}
	}
	return out
}

// Definitions returns the catalog r was built from.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.units))
	for _, u := range r.units {
		defs = append(defs, u.Definition())
	}
	return defs
}

// New returns value in the unit registered under id.
func (r *Registry) New(value float64, id string) (quantity.Quantity, error) {
	return quantity.New(r, value, id)
}

// Of starts a fluent construction: r.Of(12).In("km").
func (r *Registry) Of(value float64) quantity.Builder {
	return quantity.Of(r, value)
}
