package quantitymsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"quantity"
)

// Buffer decodes a stream of concatenated Quantity records that may arrive
// split at arbitrary byte boundaries. It is not safe for concurrent use.
type Buffer struct {
	reg quantity.Registry
	buf bytes.Buffer
}

func NewBuffer(reg quantity.Registry) *Buffer {
	return &Buffer{reg: reg}
}

// Feed appends data and returns every quantity completed by it. Bytes of a
// trailing partial record are kept for the next call. On a decode error the
// pending bytes are dropped, so later feeds start from a clean stream.
func (b *Buffer) Feed(data []byte) ([]quantity.Quantity, error) {
	b.buf.Write(data)

	var results []quantity.Quantity
	for b.buf.Len() > 0 {
		r := bytes.NewReader(b.buf.Bytes())
		dec := msgpack.NewDecoder(r)
		var w Quantity
		if err := dec.Decode(&w); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet
				break
			}
			// a corrupt record cannot be skipped reliably
			b.buf.Reset()
			return results, err
		}
		b.buf.Next(b.buf.Len() - r.Len())

		q, err := ToQuantity(b.reg, w)
		if err != nil {
			return results, err
		}
		results = append(results, q)
	}
	return results, nil
}

// Pending is the number of buffered bytes not yet decoded.
func (b *Buffer) Pending() int {
	return b.buf.Len()
}

// Encode writes qs to w as concatenated records.
func Encode(w io.Writer, qs ...quantity.Quantity) error {
	enc := msgpack.NewEncoder(w)
	for _, q := range qs {
		if err := enc.Encode(NewQuantity(q)); err != nil {
			return err
		}
	}
	return nil
}
