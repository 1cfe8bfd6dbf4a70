package catalog

import (
	"quantity"
)

// Measurement categories of the standard catalog. Area is named by the same
// rule Quantity.Mul uses, so a length multiplied by itself converts to
// hectares and acres.
const (
	Length = "length"
	Area   = "length squared"
	Mass   = "mass"
	Time   = "time"
	Volume = "volume"
	Data   = "data"
)

// SI prefixes.
const (
	Tera  = 1e12
	Giga  = 1e9
	Mega  = 1e6
	Kilo  = 1e3
	Hecto = 1e2
	Deka  = 1e1
	Deci  = 1e-1
	Centi = 1e-2
	Milli = 1e-3
	Micro = 1e-6
	Nano  = 1e-9
)

// Binary prefixes.
const (
	Ki = 1024
	Mi = Ki * Ki
	Gi = Mi * Ki
	Ti = Gi * Ki
)

// Standard is the catalog behind Default. References are the meter, square
// meter, gram, second, liter and byte.
var Standard = []Definition{
	{Name: "m", Measures: Length, Factor: 1, Aliases: []string{"meter", "meters", "metre", "metres"}},
	{Name: "km", Measures: Length, Factor: Kilo, Aliases: []string{"kilometer", "kilometers", "kilometre", "kilometres"}},
	{Name: "dm", Measures: Length, Factor: Deci, Aliases: []string{"decimeter", "decimeters"}},
	{Name: "cm", Measures: Length, Factor: Centi, Aliases: []string{"centimeter", "centimeters", "centimetre", "centimetres"}},
	{Name: "mm", Measures: Length, Factor: Milli, Aliases: []string{"millimeter", "millimeters", "millimetre", "millimetres"}},
	{Name: "um", Measures: Length, Factor: Micro, Aliases: []string{"µm", "micrometer", "micrometers", "micron", "microns"}},
	{Name: "nm", Measures: Length, Factor: Nano, Aliases: []string{"nanometer", "nanometers"}},
	{Name: "in", Measures: Length, Factor: 0.0254, Aliases: []string{"inch", "inches"}},
	{Name: "ft", Measures: Length, Factor: 0.3048, Aliases: []string{"foot", "feet"}},
	{Name: "yd", Measures: Length, Factor: 0.9144, Aliases: []string{"yard", "yards"}},
	{Name: "mi", Measures: Length, Factor: 1609.344, Aliases: []string{"mile", "miles"}},
	{Name: "nmi", Measures: Length, Factor: 1852, Aliases: []string{"nautical_mile", "nautical_miles", "nauticalmiles"}},

	{Name: "m squared", Measures: Area, Factor: 1, Aliases: []string{"m2", "square_meter", "square_meters"}},
	{Name: "km squared", Measures: Area, Factor: Kilo * Kilo, Aliases: []string{"km2", "square_kilometer", "square_kilometers"}},
	{Name: "cm squared", Measures: Area, Factor: Centi * Centi, Aliases: []string{"cm2", "square_centimeter", "square_centimeters"}},
	{Name: "ha", Measures: Area, Factor: 1e4, Aliases: []string{"hectare", "hectares"}},
	{Name: "ac", Measures: Area, Factor: 4046.8564224, Aliases: []string{"acre", "acres"}},
	{Name: "ft squared", Measures: Area, Factor: 0.3048 * 0.3048, Aliases: []string{"ft2", "square_foot", "square_feet"}},

	{Name: "g", Measures: Mass, Factor: 1, Aliases: []string{"gram", "grams", "gramme", "grammes"}},
	{Name: "mg", Measures: Mass, Factor: Milli, Aliases: []string{"milligram", "milligrams"}},
	{Name: "kg", Measures: Mass, Factor: Kilo, Aliases: []string{"kilogram", "kilograms", "kilo", "kilos"}},
	{Name: "t", Measures: Mass, Factor: Mega, Aliases: []string{"tonne", "tonnes", "metric_ton", "metric_tons"}},
	{Name: "lb", Measures: Mass, Factor: 453.59237, Aliases: []string{"pound", "pounds", "lbs"}},
	{Name: "oz", Measures: Mass, Factor: 28.349523125, Aliases: []string{"ounce", "ounces"}},

	{Name: "s", Measures: Time, Factor: 1, Aliases: []string{"sec", "second", "seconds"}},
	{Name: "ms", Measures: Time, Factor: Milli, Aliases: []string{"millisecond", "milliseconds"}},
	{Name: "us", Measures: Time, Factor: Micro, Aliases: []string{"µs", "microsecond", "microseconds"}},
	{Name: "ns", Measures: Time, Factor: Nano, Aliases: []string{"nanosecond", "nanoseconds"}},
	{Name: "min", Measures: Time, Factor: 60, Aliases: []string{"minute", "minutes"}},
	{Name: "h", Measures: Time, Factor: 3600, Aliases: []string{"hr", "hour", "hours"}},
	{Name: "d", Measures: Time, Factor: 86400, Aliases: []string{"day", "days"}},
	{Name: "wk", Measures: Time, Factor: 7 * 86400, Aliases: []string{"week", "weeks"}},

	{Name: "l", Measures: Volume, Factor: 1, Aliases: []string{"L", "liter", "liters", "litre", "litres"}},
	{Name: "ml", Measures: Volume, Factor: Milli, Aliases: []string{"mL", "milliliter", "milliliters", "millilitre", "millilitres"}},
	{Name: "cl", Measures: Volume, Factor: Centi, Aliases: []string{"centiliter", "centiliters"}},
	{Name: "dl", Measures: Volume, Factor: Deci, Aliases: []string{"deciliter", "deciliters"}},
	{Name: "m3", Measures: Volume, Factor: Kilo, Aliases: []string{"cubic_meter", "cubic_meters"}},
	{Name: "gal", Measures: Volume, Factor: 3.785411784, Aliases: []string{"gallon", "gallons"}},

	{Name: "B", Measures: Data, Factor: 1, Aliases: []string{"byte", "bytes"}},
	{Name: "bit", Measures: Data, Factor: 0.125, Aliases: []string{"bits"}},
	{Name: "kB", Measures: Data, Factor: Kilo, Aliases: []string{"kilobyte", "kilobytes"}},
	{Name: "MB", Measures: Data, Factor: Mega, Aliases: []string{"megabyte", "megabytes"}},
	{Name: "GB", Measures: Data, Factor: Giga, Aliases: []string{"gigabyte", "gigabytes"}},
	{Name: "TB", Measures: Data, Factor: Tera, Aliases: []string{"terabyte", "terabytes"}},
	{Name: "KiB", Measures: Data, Factor: Ki, Aliases: []string{"kibibyte", "kibibytes"}},
	{Name: "MiB", Measures: Data, Factor: Mi, Aliases: []string{"mebibyte", "mebibytes"}},
	{Name: "GiB", Measures: Data, Factor: Gi, Aliases: []string{"gibibyte", "gibibytes"}},
	{Name: "TiB", Measures: Data, Factor: Ti, Aliases: []string{"tebibyte", "tebibytes"}},
}

// std is built during package initialization, before any caller can read it.
var std = MustNew(Standard)

// Default returns the registry built from Standard.
func Default() *Registry {
	return std
}

// Of starts a fluent construction against the default registry:
// catalog.Of(12).In("km").
func Of(value float64) quantity.Builder {
	return quantity.Of(std, value)
}

// NewQuantity returns value in the default registry's unit id.
func NewQuantity(value float64, id string) (quantity.Quantity, error) {
	return quantity.New(std, value, id)
}
