// Package quantitymsgpack is the MessagePack wire form of quantities and
// unit catalogs.
package quantitymsgpack

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"quantity"
	"quantity/catalog"
)

// Quantity is a quantity on the wire. Reference is authoritative when
// present: decoding rebuilds the value from it. A record without a reference
// is decoded from Value.
type Quantity struct {
	Unit      string   `msgpack:"unit,omitempty"`
	Value     float64  `msgpack:"value,omitempty"`
	Reference *float64 `msgpack:"reference,omitempty"`
}

type UnitDefinition struct {
	Name     string   `msgpack:"name,omitempty"`
	Measures string   `msgpack:"measures,omitempty"`
	Factor   float64  `msgpack:"factor,omitempty"`
	Aliases  []string `msgpack:"aliases,omitempty"`
}

type Catalog struct {
	UUID       string           `msgpack:"uuid,omitempty"`
	Name       string           `msgpack:"name,omitempty"`
	Units      []UnitDefinition `msgpack:"units,omitempty"`
	DatetimeMs int64            `msgpack:"date,omitempty"`
}

func NewQuantity(q quantity.Quantity) Quantity {
	ref := q.Reference()
	return Quantity{
		Unit:      q.Unit().Name(),
		Value:     q.Value(),
		Reference: &ref,
	}
}

// ToQuantity resolves w's unit in reg. Derived units synthesized by
// multiplication only decode when reg registers their label.
func ToQuantity(reg quantity.Registry, w Quantity) (quantity.Quantity, error) {
	value := w.Value
	return quantity.Build(reg, quantity.Spec{Unit: w.Unit, Value: &value, Reference: w.Reference})
}

func Marshal(q quantity.Quantity) ([]byte, error) {
	return msgpack.Marshal(NewQuantity(q))
}

func Unmarshal(reg quantity.Registry, data []byte) (quantity.Quantity, error) {
	var w Quantity
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return quantity.Quantity{}, fmt.Errorf("decode quantity: %w", err)
	}
	return ToQuantity(reg, w)
}

func NewCatalog(id uuid.UUID, name string, defs []catalog.Definition, datetimeMs int64) Catalog {
	units := make([]UnitDefinition, 0, len(defs))
	for _, d := range defs {
		units = append(units, UnitDefinition{
			Name:     d.Name,
			Measures: d.Measures,
			Factor:   d.Factor,
			Aliases:  d.Aliases,
		})
	}
	c := Catalog{
		Name:       name,
		Units:      units,
		DatetimeMs: datetimeMs,
	}
	if id != uuid.Nil {
		c.UUID = id.String()
	}
	return c
}

func (c Catalog) Definitions() []catalog.Definition {
	defs := make([]catalog.Definition, 0, len(c.Units))
	for _, u := range c.Units {
		defs = append(defs, catalog.Definition{
			Name:     u.Name,
			Measures: u.Measures,
			Factor:   u.Factor,
			Aliases:  u.Aliases,
		})
	}
	return defs
}

// ID parses the catalog's UUID; a catalog without one has uuid.Nil.
func (c Catalog) ID() (uuid.UUID, error) {
	if c.UUID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(c.UUID)
}

// Registry builds a registry from the catalog's units.
func (c Catalog) Registry() (*catalog.Registry, error) {
	return catalog.New(c.Definitions())
}

func MarshalCatalog(c Catalog) ([]byte, error) {
	return msgpack.Marshal(c)
}

func UnmarshalCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return c, nil
}
