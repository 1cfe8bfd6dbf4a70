package quantity

// Unit describes a unit of measurement. Units are owned by a Registry; the
// Quantity engine only reads them.
type Unit interface {
	// Name is the display identifier: a symbol for simple units, a
	// composite label such as "m squared" for derived ones.
	Name() string
	// Measures is the measurement category. Quantities are arithmetic
	// compatible iff their units measure the same thing.
	Measures() string
	// ScaleFactor converts a value in this unit to the category's
	// reference unit: reference = value * ScaleFactor.
	ScaleFactor() float64
	ReferenceUnit() Unit
	CanConvertTo(target Unit) bool
	Convert(target Unit) (Unit, error)
	Render(value float64) string
}

// Registry resolves unit identifiers to descriptors.
type Registry interface {
	Resolve(id string) (Unit, error)
	IsKnownUnit(id string) bool
	// Composite resolves the unit registered under label, or synthesizes
	// one from the two factors when none is.
	Composite(label string, left, right Unit) Unit
}

// sameUnit reports whether a and b are the same unit by identity (name).
func sameUnit(a, b Unit) bool {
	return a.Name() == b.Name()
}

func sameCategory(a, b Unit) bool {
	return a.Measures() == b.Measures()
}
