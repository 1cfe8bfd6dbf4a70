package catalog

import (
	"quantity"
)

// Builders over the default registry, one per commonly used unit of the
// standard catalog: catalog.Meters(12) is 12 m.

func must(value float64, id string) quantity.Quantity {
	return quantity.MustNew(std, value, id)
}

func Meters(v float64) quantity.Quantity      { return must(v, "m") }
func Kilometers(v float64) quantity.Quantity  { return must(v, "km") }
func Centimeters(v float64) quantity.Quantity { return must(v, "cm") }
func Millimeters(v float64) quantity.Quantity { return must(v, "mm") }
func Inches(v float64) quantity.Quantity      { return must(v, "in") }
func Feet(v float64) quantity.Quantity        { return must(v, "ft") }
func Yards(v float64) quantity.Quantity       { return must(v, "yd") }
func Miles(v float64) quantity.Quantity       { return must(v, "mi") }

func NauticalMiles(v float64) quantity.Quantity { return must(v, "nmi") }

func SquareMeters(v float64) quantity.Quantity { return must(v, "m squared") }
func Hectares(v float64) quantity.Quantity     { return must(v, "ha") }
func Acres(v float64) quantity.Quantity        { return must(v, "ac") }

func Grams(v float64) quantity.Quantity      { return must(v, "g") }
func Milligrams(v float64) quantity.Quantity { return must(v, "mg") }
func Kilograms(v float64) quantity.Quantity  { return must(v, "kg") }
func Tonnes(v float64) quantity.Quantity     { return must(v, "t") }
func Pounds(v float64) quantity.Quantity     { return must(v, "lb") }
func Ounces(v float64) quantity.Quantity     { return must(v, "oz") }

func Seconds(v float64) quantity.Quantity      { return must(v, "s") }
func Milliseconds(v float64) quantity.Quantity { return must(v, "ms") }
func Minutes(v float64) quantity.Quantity      { return must(v, "min") }
func Hours(v float64) quantity.Quantity        { return must(v, "h") }
func Days(v float64) quantity.Quantity         { return must(v, "d") }
func Weeks(v float64) quantity.Quantity        { return must(v, "wk") }

func Liters(v float64) quantity.Quantity      { return must(v, "l") }
func Milliliters(v float64) quantity.Quantity { return must(v, "ml") }
func Gallons(v float64) quantity.Quantity     { return must(v, "gal") }

func Bytes(v float64) quantity.Quantity     { return must(v, "B") }
func Kilobytes(v float64) quantity.Quantity { return must(v, "kB") }
func Megabytes(v float64) quantity.Quantity { return must(v, "MB") }
func Gigabytes(v float64) quantity.Quantity { return must(v, "GB") }
func Kibibytes(v float64) quantity.Quantity { return must(v, "KiB") }
func Mebibytes(v float64) quantity.Quantity { return must(v, "MiB") }
func Gibibytes(v float64) quantity.Quantity { return must(v, "GiB") }
