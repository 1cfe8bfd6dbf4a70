package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	reg := newFakeRegistry()
	q := MustNew(reg, 12, "m")

	cm, err := q.ConvertTo("cm")
	require.NoError(t, err)
	assert.Equal(t, "cm", cm.Unit().Name())
	assert.InDelta(t, 1200, cm.Value(), 1e-9)
	assert.Equal(t, q.Reference(), cm.Reference())

	km, err := q.In("km")
	require.NoError(t, err)
	assert.InDelta(t, 0.012, km.Value(), 1e-12)
}

func TestConvertRoundTrip(t *testing.T) {
	reg := newFakeRegistry()
	for _, tc := range []struct {
		value    float64
		from, to string
	}{
		{12, "m", "cm"},
		{0.3, "km", "cm"},
		{17.25, "cm", "km"},
		{90, "s", "min"},
		{1.1, "min", "s"},
	} {
		q := MustNew(reg, tc.value, tc.from)
		there, err := q.ConvertTo(tc.to)
		require.NoError(t, err)
		back, err := there.Convert(q.Unit())
		require.NoError(t, err)
		assert.Equal(t, tc.from, back.Unit().Name())
		assert.InDelta(t, tc.value, back.Value(), 1e-9, "%v %s via %s", tc.value, tc.from, tc.to)
		assert.Equal(t, q.Reference(), back.Reference())
	}
}

func TestConvertErrors(t *testing.T) {
	reg := newFakeRegistry()
	q := MustNew(reg, 12, "m")

	_, err := q.ConvertTo("furlong")
	assert.ErrorIs(t, err, ErrUnknownTargetUnit)

	_, err = q.ConvertTo("s")
	assert.ErrorIs(t, err, ErrIncompatibleConversion)
	assert.NotErrorIs(t, err, ErrUnknownTargetUnit)

	s, err := reg.Resolve("s")
	require.NoError(t, err)
	_, err = q.Convert(s)
	assert.ErrorIs(t, err, ErrIncompatibleConversion)

	_, err = q.Convert(nil)
	assert.ErrorIs(t, err, ErrIncompatibleConversion)
}

func TestDispatch(t *testing.T) {
	reg := newFakeRegistry()
	q := MustNew(reg, 1.5, "km")

	for _, request := range []string{"to_m", "in_m", "to m", "in  m"} {
		got, err := q.Dispatch(request)
		require.NoError(t, err, request)
		assert.Equal(t, "m", got.Unit().Name())
		assert.Equal(t, 1500.0, got.Value())
	}

	_, err := q.Dispatch("to_furlong")
	assert.ErrorIs(t, err, ErrUnknownTargetUnit)

	_, err = q.Dispatch("in_s")
	assert.ErrorIs(t, err, ErrIncompatibleConversion)

	for _, request := range []string{"sqrt", "to_", "into_m", ""} {
		_, err = q.Dispatch(request)
		require.ErrorIs(t, err, ErrUnsupportedOperation, request)
		assert.Contains(t, err.Error(), "quantity.Quantity")
	}
}
