package encio_test

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"math/rand"
	"strings"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/ieee754/encio"
)

func randomBytes(rng *rand.Rand, maxLen int) []byte {
	buff := make([]byte, 8+rng.Intn(maxLen))
	rng.Read(buff)
	return buff
}

// trickleWriter writes at most n bytes per call and never reports an error.
type trickleWriter struct {
	w io.Writer
	n int
}

func (t *trickleWriter) Write(p []byte) (int, error) {
	if len(p) > t.n {
		p = p[:t.n]
	}
	return t.w.Write(p)
}

// stuckWriter makes no progress and reports no error.
type stuckWriter struct{}

func (stuckWriter) Write(p []byte) (int, error) {
	return 0, nil
}

// liarWriter claims to have written more than it was given.
type liarWriter struct{}

func (liarWriter) Write(p []byte) (int, error) {
	return len(p) + 1, nil
}

type errWriter struct {
	n   int
	err error
}

func (e errWriter) Write(p []byte) (int, error) {
	return e.n, e.err
}

func TestWrite(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	buff := new(bytes.Buffer)

	for i := 0; i < 20; i++ {
		send := randomBytes(rng, 500)
		buff.Reset()

		if err := encio.Write(send, buff); err != nil {
			t.Fatal(err)
		}

		td.Cmp(t, buff.Bytes(), send)
	}
}

func TestWriteTrickle(t *testing.T) {
	warned := new(bytes.Buffer)
	warnings := encio.Warnings
	encio.Warnings = warned
	defer func() { encio.Warnings = warnings }()

	buff := new(bytes.Buffer)
	send := []byte("0100000000001001000111101011100001010001111010111000010100011111")

	td.CmpNoError(t, encio.Write(send, &trickleWriter{w: buff, n: 7}))
	td.Cmp(t, buff.Bytes(), send)
	td.CmpTrue(t, strings.Contains(warned.String(), "is a bad io.Writer implementation"), "warnings: %q", warned)
}

// lateErrWriter writes short without an error once, then finishes the buffer and reports err.
type lateErrWriter struct {
	calls int
	err   error
}

func (l *lateErrWriter) Write(p []byte) (int, error) {
	l.calls++
	if l.calls == 1 {
		return len(p) / 2, nil
	}
	return len(p), l.err
}

func TestWriteRetryCompleteWithError(t *testing.T) {
	warnings := encio.Warnings
	encio.Warnings = ioutil.Discard
	defer func() { encio.Warnings = warnings }()

	writerErr := errors.New("flushed late")
	w := &lateErrWriter{err: writerErr}

	err := encio.Write(make([]byte, 64), w)
	td.Cmp(t, w.calls, 2)
	td.Cmp(t, err, writerErr)
}

func TestWriteErrors(t *testing.T) {
	warnings := encio.Warnings
	encio.Warnings = ioutil.Discard
	defer func() { encio.Warnings = warnings }()

	writerErr := errors.New("closed")

	testCases := []struct {
		desc string
		w    io.Writer
		want error
	}{
		{
			desc: "no progress",
			w:    stuckWriter{},
			want: io.ErrShortWrite,
		},
		{
			desc: "over report",
			w:    liarWriter{},
			want: encio.ErrBadWriter,
		},
		{
			desc: "writer error",
			w:    errWriter{n: 3, err: writerErr},
			want: writerErr,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := encio.Write(make([]byte, 64), tC.w)

			var ioErr encio.IOError
			td.CmpTrue(t, errors.As(err, &ioErr), "got %v", err)
			td.CmpTrue(t, errors.Is(err, tC.want), "got %v", err)
		})
	}
}

func TestWriteCompleteWithError(t *testing.T) {
	writerErr := errors.New("flushed late")

	err := encio.Write(make([]byte, 8), errWriter{n: 8, err: writerErr})
	td.Cmp(t, err, writerErr)
}
