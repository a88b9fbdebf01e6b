// Package encio provides io methods relevant to writing encodings, as well as error types.
package encio

import (
	"fmt"
	"io"
)

// Write writes to w from buff, handling errors of io.Writer with as little overhead as possible.
// In an ideal write, only a single int equality check is performed. It returns any error from Write().
func Write(buff []byte, w io.Writer) error {
	n, err := w.Write(buff)
	if n == len(buff) {
		return err
	}

	end := n
	for end < len(buff) && err == nil && n > 0 {
		fmt.Fprintf(Warnings, "ieee754: %T is a bad io.Writer implementation. It wrote short (given %v bytes but reported only %v written) yet returned no error. Will call it again...\n", w, len(buff)-(end-n), n)
		n, err = w.Write(buff[end:])
		end += n
	}

	if end == len(buff) {
		return err
	}

	switch {
	case end > len(buff):
		return NewIOError(
			ErrBadWriter,
			fmt.Sprintf("%T reported %v bytes written, but was only given %v bytes", w, end, len(buff)),
		)
	case err == nil:
		return NewIOError(
			io.ErrShortWrite,
			fmt.Sprintf("want %v bytes but only wrote %v bytes", len(buff), end),
		)
	default:
		return NewIOError(
			err,
			fmt.Sprintf("want %v bytes but wrote %v bytes", len(buff), end),
		)
	}
}
