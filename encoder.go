package ieee754

import (
	"io"
	"sync"

	"github.com/stewi1014/ieee754/encio"
)

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithPrefix sets text written before the digits of every value.
func WithPrefix(prefix string) EncoderOption {
	return func(e *Encoder) {
		e.prefix = prefix
	}
}

// NewEncoder returns an Encoder writing one line per value to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		w: w,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encoder writes the binary digits of float64 values to an io.Writer, one value per line.
// It is safe for concurrent use; lines from different callers never interleave.
type Encoder struct {
	w      io.Writer
	prefix string
	mutex  sync.Mutex
	buff   []byte
}

// Encode writes the prefix, the 64 binary digits of v and a newline in a single write.
func (e *Encoder) Encode(v float64) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.buff = append(e.buff[:0], e.prefix...)
	e.buff = AppendBinary(e.buff, v)
	e.buff = append(e.buff, '\n')

	return encio.Write(e.buff, e.w)
}

// EncodeAll encodes each value in order, stopping at the first error.
func (e *Encoder) EncodeAll(vs ...float64) error {
	for _, v := range vs {
		if err := e.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
