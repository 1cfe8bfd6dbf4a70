package quantity

import (
	"fmt"
	"strconv"
)

type fakeUnit struct {
	name     string
	measures string
	scale    float64
	reg      *fakeRegistry
}

func (u *fakeUnit) Name() string         { return u.name }
func (u *fakeUnit) Measures() string     { return u.measures }
func (u *fakeUnit) ScaleFactor() float64 { return u.scale }

func (u *fakeUnit) ReferenceUnit() Unit {
	for _, c := range u.reg.units {
		if c.measures == u.measures && c.scale == 1 {
			return c
		}
	}
	return u
}

func (u *fakeUnit) CanConvertTo(target Unit) bool {
	return target.Measures() == u.measures
}

func (u *fakeUnit) Convert(target Unit) (Unit, error) {
	if !u.CanConvertTo(target) {
		return nil, fmt.Errorf("fake: %s to %s", u.name, target.Name())
	}
	return target, nil
}

func (u *fakeUnit) Render(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64) + " " + u.name
}

type fakeRegistry struct {
	units map[string]*fakeUnit
}

// newFakeRegistry holds meters, centimeters, kilometers, seconds, minutes and
// grams.
func newFakeRegistry() *fakeRegistry {
	r := &fakeRegistry{units: make(map[string]*fakeUnit)}
	r.add("m", "length", 1)
	r.add("cm", "length", 0.01)
	r.add("km", "length", 1000)
	r.add("s", "time", 1)
	r.add("min", "time", 60)
	r.add("g", "mass", 1)
	return r
}

func (r *fakeRegistry) add(name, measures string, scale float64) {
	r.units[name] = &fakeUnit{name: name, measures: measures, scale: scale, reg: r}
}

func (r *fakeRegistry) Resolve(id string) (Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, fmt.Errorf("fake: unknown unit %q", id)
	}
	return u, nil
}

func (r *fakeRegistry) IsKnownUnit(id string) bool {
	_, ok := r.units[id]
	return ok
}

func (r *fakeRegistry) Composite(label string, left, right Unit) Unit {
	if u, ok := r.units[label]; ok {
		return u
	}
	return &fakeUnit{name: label, measures: ProductMeasures(left, right), scale: left.ScaleFactor() * right.ScaleFactor(), reg: r}
}
