// Package connsink adapts a periph.io connection (a UART, or a terminal
// behind SPI) into an io.Writer usable as a Logger console.
//
//	w := connsink.NewWriter(port, connsink.WithCRLF(), connsink.WithChunkSize(32))
//	l := logger.New()
//	l.SetOutput(w)
package connsink

import (
	"bytes"
	"sync"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
)

// Writer sends every Write as one or more Tx calls on the wrapped connection.
type Writer struct {
	mu        sync.Mutex
	c         conn.Conn
	crlf      bool
	chunkSize int
}

// Option configures a Writer.
type Option func(*Writer)

// WithCRLF translates "\n" into "\r\n" for serial terminals.
func WithCRLF() Option {
	return func(w *Writer) { w.crlf = true }
}

// WithChunkSize splits writes into transfers of at most n bytes.
// n <= 0 sends each write in a single transfer.
func WithChunkSize(n int) Option {
	return func(w *Writer) { w.chunkSize = n }
}

// NewWriter returns a Writer over c.
func NewWriter(c conn.Conn, opts ...Option) *Writer {
	w := &Writer{c: c}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer. It reports len(p) on success even when CRLF
// translation made the transfer longer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	data := p
	if w.crlf {
		data = toCRLF(p)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for len(data) > 0 {
		n := len(data)
		if w.chunkSize > 0 && n > w.chunkSize {
			n = w.chunkSize
		}
		if err := w.tx(data[:n]); err != nil {
			return 0, errors.Wrapf(err, "connsink: tx on %s", w.c)
		}
		data = data[n:]
	}
	return len(p), nil
}

// tx discards whatever a full-duplex peer clocks back.
func (w *Writer) tx(chunk []byte) error {
	var r []byte
	if w.c.Duplex() == conn.Full {
		r = make([]byte, len(chunk))
	}
	return w.c.Tx(chunk, r)
}

func (w *Writer) String() string {
	return "connsink(" + w.c.String() + ")"
}

// toCRLF rewrites bare "\n" as "\r\n"; existing "\r\n" pairs are kept.
func toCRLF(p []byte) []byte {
	if bytes.IndexByte(p, '\n') < 0 {
		return p
	}
	out := make([]byte, 0, len(p)+bytes.Count(p, []byte{'\n'}))
	for i, b := range p {
		if b == '\n' && (i == 0 || p[i-1] != '\r') {
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	return out
}
