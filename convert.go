package quantity

import (
	"strings"
)

// Convert re-expresses q in target, keeping the reference value.
func (q Quantity) Convert(target Unit) (Quantity, error) {
	if err := checkReceiver("convert", q); err != nil {
		return Quantity{}, err
	}
	if target == nil || !q.unit.CanConvertTo(target) {
		return Quantity{}, incompatible(q, target)
	}
	unit, err := q.unit.Convert(target)
	if err != nil {
		e := incompatible(q, target)
		e.Cause = err
		return Quantity{}, e
	}
	return FromReference(q.reg, unit, q.reference), nil
}

// ConvertTo resolves id in q's registry and converts q into that unit.
func (q Quantity) ConvertTo(id string) (Quantity, error) {
	if err := checkReceiver("convert", q); err != nil {
		return Quantity{}, err
	}
	if q.reg == nil || !q.reg.IsKnownUnit(id) {
		return Quantity{}, unknownTarget(q, id)
	}
	target, err := q.reg.Resolve(id)
	if err != nil {
		e := unknownTarget(q, id)
		e.Cause = err
		return Quantity{}, e
	}
	return q.Convert(target)
}

// In is ConvertTo.
func (q Quantity) In(id string) (Quantity, error) {
	return q.ConvertTo(id)
}

// Dispatch interprets a named request against q. Requests of the form
// "to_<unit>", "in_<unit>", "to <unit>" or "in <unit>" convert q to <unit>;
// anything else is an unsupported operation.
func (q Quantity) Dispatch(request string) (Quantity, error) {
	id, ok := conversionTarget(request)
	if !ok {
		return Quantity{}, newError(CodeUnsupportedOperation, map[string]string{
			"request": request,
			"type":    "quantity.Quantity",
		}, "undefined operation %q for quantity.Quantity", request)
	}
	return q.ConvertTo(id)
}

func conversionTarget(request string) (string, bool) {
	for _, prefix := range []string{"to_", "in_", "to ", "in "} {
		if id, found := strings.CutPrefix(request, prefix); found {
			id = strings.TrimSpace(id)
			return id, id != ""
		}
	}
	return "", false
}

func incompatible(q Quantity, target Unit) *Error {
	name, measures := "<nil>", "<nil>"
	if target != nil {
		name, measures = target.Name(), target.Measures()
	}
	return newError(CodeIncompatibleConversion, map[string]string{
		"quantity": q.String(),
		"from":     q.unit.Measures(),
		"to":       measures,
	}, "cannot convert %s to %s", q.unit.Name(), name)
}

func unknownTarget(q Quantity, id string) *Error {
	return newError(CodeUnknownTargetUnit, map[string]string{
		"quantity": q.String(),
		"unit":     id,
	}, "unknown target unit %q", id)
}
