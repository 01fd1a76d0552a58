package logger

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

const (
	// MaxRecordLen caps a rendered record (timestamp, label and message) in
	// bytes. Longer records are cut silently.
	MaxRecordLen = 512
	// MaxMessageLen caps the message produced by the formatted entry points.
	MaxMessageLen = 256
)

// Callback receives every dispatched record: its level, the timestamp in
// milliseconds since the Unix epoch (0 when timestamps are disabled) and the
// rendered text without a trailing newline. It runs synchronously on the
// logging goroutine; a panic in the callback propagates to the caller.
type Callback func(level Level, timestampMs uint64, message string)

// Logger renders leveled messages and dispatches them to the console and an
// optional callback. Configuration is read on every call, so a change takes
// effect on the next message. A Logger is safe for concurrent use.
//
// The zero value is usable but starts with console output and timestamps
// off; use New for the documented defaults.
type Logger struct {
	mu        sync.RWMutex
	print     bool
	timestamp bool
	callback  Callback
	out       io.Writer
	color     ColorMode
	now       func() time.Time

	// writeMu keeps each console line in a single, uninterleaved write.
	writeMu sync.Mutex
}

// New returns a Logger that prints to stdout with timestamps and no callback.
func New() *Logger {
	return &Logger{
		print:     true,
		timestamp: true,
		now:       time.Now,
	}
}

// NewWithConfig returns a Logger configured by cfg.
func NewWithConfig(cfg Config) *Logger {
	l := New()
	l.Apply(cfg)
	return l
}

// Apply replaces the print, timestamp and color settings with cfg.
// The callback and console writer are left untouched.
func (l *Logger) Apply(cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print = !cfg.DisablePrint
	l.timestamp = !cfg.DisableTimestamp
	l.color = cfg.Color
}

// SetPrint enables or disables console output.
func (l *Logger) SetPrint(enabled bool) {
	l.mu.Lock()
	l.print = enabled
	l.mu.Unlock()
}

// SetTimestamp enables or disables the millisecond timestamp prefix.
func (l *Logger) SetTimestamp(enabled bool) {
	l.mu.Lock()
	l.timestamp = enabled
	l.mu.Unlock()
}

// SetCallback replaces the forwarding callback. A nil callback disables
// forwarding.
func (l *Logger) SetCallback(cb Callback) {
	l.mu.Lock()
	l.callback = cb
	l.mu.Unlock()
}

// SetOutput replaces the console writer. A nil writer restores stdout.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// SetColor selects label coloring for console output.
func (l *Logger) SetColor(mode ColorMode) {
	l.mu.Lock()
	l.color = mode
	l.mu.Unlock()
}

// Log dispatches msg at the given level.
func (l *Logger) Log(level Level, msg string) {
	l.dispatch(level, msg)
}

// Logf formats a message with fmt.Sprintf, caps it at MaxMessageLen and
// dispatches it at the given level.
func (l *Logger) Logf(level Level, format string, v ...any) {
	l.dispatch(level, formatMessage(format, v...))
}

func (l *Logger) Debug(msg string)   { l.dispatch(DebugLevel, msg) }
func (l *Logger) Info(msg string)    { l.dispatch(InfoLevel, msg) }
func (l *Logger) Error(msg string)   { l.dispatch(ErrorLevel, msg) }
func (l *Logger) Verbose(msg string) { l.dispatch(VerboseLevel, msg) }
func (l *Logger) Warning(msg string) { l.dispatch(WarningLevel, msg) }

// Fatal logs msg with the [WTF] label. It does not exit the process.
func (l *Logger) Fatal(msg string) { l.dispatch(FatalLevel, msg) }

func (l *Logger) Debugf(format string, v ...any) {
	l.dispatch(DebugLevel, formatMessage(format, v...))
}

func (l *Logger) Infof(format string, v ...any) {
	l.dispatch(InfoLevel, formatMessage(format, v...))
}

func (l *Logger) Errorf(format string, v ...any) {
	l.dispatch(ErrorLevel, formatMessage(format, v...))
}

func (l *Logger) Verbosef(format string, v ...any) {
	l.dispatch(VerboseLevel, formatMessage(format, v...))
}

func (l *Logger) Warningf(format string, v ...any) {
	l.dispatch(WarningLevel, formatMessage(format, v...))
}

// Fatalf is the formatted variant of Fatal. It does not exit the process.
func (l *Logger) Fatalf(format string, v ...any) {
	l.dispatch(FatalLevel, formatMessage(format, v...))
}

func formatMessage(format string, v ...any) string {
	return truncate(fmt.Sprintf(format, v...), MaxMessageLen)
}

// dispatch renders one record and hands it to the callback, then the console.
// Locks are released before the callback runs so it may log through l.
func (l *Logger) dispatch(level Level, msg string) {
	l.mu.RLock()
	printing, stamped, cb := l.print, l.timestamp, l.callback
	out, mode, now := l.out, l.color, l.now
	l.mu.RUnlock()
	if now == nil {
		now = time.Now
	}

	var ts uint64
	if stamped {
		ts = uint64(now().UnixMilli())
	}
	text, labelAt := render(level, stamped, ts, msg)

	if cb != nil {
		cb(level, ts, text)
	}
	if !printing {
		return
	}
	if out == nil {
		out = outStdout
	}
	l.writeLine(out, level, text, labelAt, useColor(mode, out))
}

// render builds "<ts> <label>: <msg>" capped at MaxRecordLen and returns the
// byte offset of the label within it.
func render(level Level, stamped bool, ts uint64, msg string) (string, int) {
	msg = truncate(msg, MaxRecordLen)
	buf := make([]byte, 0, 32+len(msg))
	if stamped {
		buf = strconv.AppendUint(buf, ts, 10)
		buf = append(buf, ' ')
	}
	labelAt := len(buf)
	buf = append(buf, level.Label()...)
	buf = append(buf, ": "...)
	buf = append(buf, msg...)
	return truncate(string(buf), MaxRecordLen), labelAt
}

func (l *Logger) writeLine(out io.Writer, level Level, text string, labelAt int, colored bool) {
	buf := make([]byte, 0, len(text)+16)
	switch {
	case colored:
		labelEnd := labelAt + len(level.Label())
		buf = append(buf, text[:labelAt]...)
		buf = append(buf, colorLabel(level)...)
		buf = append(buf, text[labelEnd:]...)
	case shouldUseSyslogPrefix():
		buf = appendSyslogPrefixed(buf, syslogPrefixForLevel(level), text)
	default:
		buf = append(buf, text...)
	}
	buf = append(buf, '\n')

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = out.Write(buf)
}
