// Package forward provides logger.Callback implementations that ship records
// to other logging backends or writers.
package forward

import (
	"io"
	"strconv"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/hashicorp/go-hclog"

	"github.com/mordilloSan/go-idflog/logger"
)

// Hclog forwards records to an hclog.Logger. The message is passed without
// its timestamp and label; both travel as the "ts" and "level" arguments.
// VerboseLevel maps to hclog.Trace and FatalLevel to hclog.Error with wtf=true.
func Hclog(l hclog.Logger) logger.Callback {
	return func(level logger.Level, ts uint64, msg string) {
		args := []interface{}{"level", level.String(), "ts", ts}
		hl := hclog.Info
		switch level {
		case logger.VerboseLevel:
			hl = hclog.Trace
		case logger.DebugLevel:
			hl = hclog.Debug
		case logger.WarningLevel:
			hl = hclog.Warn
		case logger.ErrorLevel:
			hl = hclog.Error
		case logger.FatalLevel:
			hl = hclog.Error
			args = append(args, "wtf", true)
		}
		l.Log(hl, Body(level, ts, msg), args...)
	}
}

// Charm forwards records to a charmbracelet logger. FatalLevel is logged at
// ErrorLevel with wtf=true so the receiving logger never exits.
func Charm(l *charmlog.Logger) logger.Callback {
	return func(level logger.Level, ts uint64, msg string) {
		keyvals := []interface{}{"ts", ts}
		cl := charmlog.InfoLevel
		switch level {
		case logger.DebugLevel, logger.VerboseLevel:
			cl = charmlog.DebugLevel
		case logger.WarningLevel:
			cl = charmlog.WarnLevel
		case logger.ErrorLevel:
			cl = charmlog.ErrorLevel
		case logger.FatalLevel:
			cl = charmlog.ErrorLevel
			keyvals = append(keyvals, "wtf", true)
		}
		l.Log(cl, Body(level, ts, msg), keyvals...)
	}
}

// Writer appends every rendered record plus a newline to w. Writes are
// serialized; write errors are dropped like console errors are.
func Writer(w io.Writer) logger.Callback {
	var mu sync.Mutex
	return func(_ logger.Level, _ uint64, msg string) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = io.WriteString(w, msg+"\n")
	}
}

// Multi calls each callback in order. Nil entries are skipped.
func Multi(callbacks ...logger.Callback) logger.Callback {
	cbs := make([]logger.Callback, 0, len(callbacks))
	for _, cb := range callbacks {
		if cb != nil {
			cbs = append(cbs, cb)
		}
	}
	return func(level logger.Level, ts uint64, msg string) {
		for _, cb := range cbs {
			cb(level, ts, msg)
		}
	}
}

// Body strips the "<ts> [LABEL]: " prefix from a rendered record.
// Records without the expected prefix are returned unchanged.
func Body(level logger.Level, ts uint64, msg string) string {
	prefix := level.Label() + ": "
	if ts != 0 {
		prefix = strconv.FormatUint(ts, 10) + " " + prefix
	}
	return strings.TrimPrefix(msg, prefix)
}
