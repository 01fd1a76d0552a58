package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level tags a log record. The numeric values are stable and are what
// callbacks receive.
type Level int

const (
	// DebugLevel tags debug messages.
	DebugLevel Level = iota
	// InfoLevel tags informational messages.
	InfoLevel
	// ErrorLevel tags error messages.
	ErrorLevel
	// VerboseLevel tags verbose messages.
	VerboseLevel
	// WarningLevel tags warnings.
	WarningLevel
	// FatalLevel tags "what a terrible failure" messages. Logging at this
	// level never exits the process.
	FatalLevel
)

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		ErrorLevel,
		VerboseLevel,
		WarningLevel,
		FatalLevel,
	}
}

// String returns the bare level name, e.g. "DEBUG" or "WTF".
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case ErrorLevel:
		return "ERROR"
	case VerboseLevel:
		return "VERBOSE"
	case WarningLevel:
		return "WARNING"
	case FatalLevel:
		return "WTF"
	default:
		return "UNKNOWN"
	}
}

// Label returns the bracketed tag used in rendered records, e.g. "[INFO]".
func (l Level) Label() string {
	return "[" + l.String() + "]"
}

// ParseLevel parses a level name. Matching is case-insensitive; FATAL is
// accepted for WTF and WARN for WARNING.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "VERBOSE":
		return VerboseLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "WTF", "FATAL":
		return FatalLevel, nil
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "%q", s)
}

func syslogPrefixForLevel(level Level) string {
	switch level {
	case DebugLevel, VerboseLevel:
		return "<7>"
	case InfoLevel:
		return "<6>"
	case WarningLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	case FatalLevel:
		return "<2>"
	default:
		return ""
	}
}
