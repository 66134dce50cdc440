package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes every chunk to all of its writers. A failing writer does not
// stop the others; all failures are returned combined.
type TeeWriter struct {
	writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

func (tw *TeeWriter) Write(p []byte) (n int, err error) {
	for _, w := range tw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
