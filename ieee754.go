// Package ieee754 renders float64 values as the 64 binary digits of their IEEE 754 double-precision bit pattern.
//
// The rendering is bit-exact: the value is reinterpreted with math.Float64bits, never converted,
// so NaN payloads, infinities, subnormals and negative zero all come out exactly as they are stored.
// Bit numbering is logical (bit 63 is the sign bit, bit 0 the least significant mantissa bit)
// and does not depend on the byte order of the host.
//
// ieee754/encio provides io and error types used when writing encodings to a stream.
package ieee754

import (
	"math"
)

// Digits is the number of binary digits in every encoding.
const Digits = 64

// Binary holds the binary digits of a float64, most significant bit first.
// Binary[0] is the sign bit, Binary[1:12] the exponent and Binary[12:] the mantissa.
type Binary [Digits]byte

// Encode returns the IEEE 754 bit pattern of v as '0' and '1' characters.
func Encode(v float64) (b Binary) {
	bits := math.Float64bits(v)
	for i := Digits - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			b[Digits-1-i] = '1'
		} else {
			b[Digits-1-i] = '0'
		}
	}
	return
}

// AppendBinary appends the 64 binary digits of v to dst and returns the extended slice.
func AppendBinary(dst []byte, v float64) []byte {
	b := Encode(v)
	return append(dst, b[:]...)
}

// String implements fmt.Stringer
func (b Binary) String() string {
	return string(b[:])
}

// Bytes returns a copy of the digits.
func (b Binary) Bytes() []byte {
	buff := make([]byte, Digits)
	copy(buff, b[:])
	return buff
}
