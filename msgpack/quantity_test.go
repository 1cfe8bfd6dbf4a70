package quantitymsgpack

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"quantity"
	"quantity/catalog"
)

func TestQuantityRoundTrip(t *testing.T) {
	sum, err := catalog.Meters(12).Add(catalog.Centimeters(5))
	require.NoError(t, err)

	data, err := Marshal(sum)
	require.NoError(t, err)

	got, err := Unmarshal(catalog.Default(), data)
	require.NoError(t, err)
	assert.True(t, got.Eql(sum))
	assert.Equal(t, sum.Reference(), got.Reference())
}

func TestReferenceWins(t *testing.T) {
	data, err := Marshal(catalog.Kilometers(2))
	require.NoError(t, err)

	var w Quantity
	require.NoError(t, msgpack.Unmarshal(data, &w))
	require.NotNil(t, w.Reference)
	assert.Equal(t, "km", w.Unit)
	assert.Equal(t, 2.0, w.Value)
	assert.Equal(t, 2000.0, *w.Reference)

	w.Value = 99
	q, err := ToQuantity(catalog.Default(), w)
	require.NoError(t, err)
	assert.Equal(t, 2.0, q.Value())
}

func TestValueOnlyRecord(t *testing.T) {
	data, err := msgpack.Marshal(map[string]any{"unit": "km", "value": 12.0})
	require.NoError(t, err)

	q, err := Unmarshal(catalog.Default(), data)
	require.NoError(t, err)
	assert.Equal(t, 12.0, q.Value())
	assert.Equal(t, 12000.0, q.Reference())
	assert.Equal(t, "km", q.Unit().Name())
}

func TestZeroReferenceIsKept(t *testing.T) {
	data, err := Marshal(catalog.Meters(0))
	require.NoError(t, err)

	var w Quantity
	require.NoError(t, msgpack.Unmarshal(data, &w))
	require.NotNil(t, w.Reference)
	assert.Zero(t, *w.Reference)

	q, err := Unmarshal(catalog.Default(), data)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal(catalog.Default(), []byte{0xc1})
	assert.Error(t, err)

	data, err := Marshal(catalog.Meters(1))
	require.NoError(t, err)
	small := catalog.MustNew([]catalog.Definition{{Name: "s", Measures: catalog.Time, Factor: 1}})
	_, err = Unmarshal(small, data)
	assert.ErrorIs(t, err, quantity.ErrInvalidUnit)
}

func TestCatalogRoundTrip(t *testing.T) {
	id := uuid.New()
	c := NewCatalog(id, "standard", catalog.Standard, 1700000000000)

	data, err := MarshalCatalog(c)
	require.NoError(t, err)
	got, err := UnmarshalCatalog(data)
	require.NoError(t, err)

	assert.Equal(t, "standard", got.Name)
	assert.Equal(t, int64(1700000000000), got.DatetimeMs)
	gotID, err := got.ID()
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, catalog.Standard, got.Definitions())

	reg, err := got.Registry()
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Categories(), reg.Categories())

	anon := NewCatalog(uuid.Nil, "", nil, 0)
	anonID, err := anon.ID()
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, anonID)
}

func TestBufferFeedSplit(t *testing.T) {
	reg := catalog.Default()
	want := []quantity.Quantity{
		catalog.Meters(12),
		catalog.Hours(1.5),
		catalog.Gibibytes(2),
		catalog.Pounds(-3),
	}
	var stream bytes.Buffer
	require.NoError(t, Encode(&stream, want...))
	raw := stream.Bytes()

	buf := NewBuffer(reg)
	var got []quantity.Quantity
	for i := 0; i < len(raw); i += 5 {
		end := min(i+5, len(raw))
		qs, err := buf.Feed(raw[i:end])
		require.NoError(t, err)
		got = append(got, qs...)
	}
	assert.Zero(t, buf.Pending())
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Eql(want[i]), "record %d: got %s want %s", i, got[i], want[i])
	}
}

func TestBufferFeedWhole(t *testing.T) {
	var stream bytes.Buffer
	require.NoError(t, Encode(&stream, catalog.Seconds(1), catalog.Seconds(2)))

	buf := NewBuffer(catalog.Default())
	qs, err := buf.Feed(stream.Bytes())
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	qs, err = buf.Feed(nil)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestBufferRecoversAfterCorruptRecord(t *testing.T) {
	buf := NewBuffer(catalog.Default())
	_, err := buf.Feed([]byte{0xc1})
	require.Error(t, err)
	assert.Zero(t, buf.Pending())

	var stream bytes.Buffer
	require.NoError(t, Encode(&stream, catalog.Meters(3)))
	qs, err := buf.Feed(stream.Bytes())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.True(t, qs[0].Eql(catalog.Meters(3)))
	assert.Zero(t, buf.Pending())
}
