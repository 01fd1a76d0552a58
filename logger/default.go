package logger

import (
	"fmt"
	"sync/atomic"
)

// std is the process-wide Logger behind the package-level functions.
var std atomic.Pointer[Logger]

func init() {
	std.Store(New())
}

// Default returns the process-wide Logger used by the package-level functions.
func Default() *Logger {
	return std.Load()
}

// SetDefault replaces the process-wide Logger. A nil l installs a fresh New().
func SetDefault(l *Logger) {
	if l == nil {
		l = New()
	}
	std.Store(l)
}

// Init configures the default Logger from config, overlaid with the
// LOGGER_PRINT, LOGGER_TIMESTAMP and LOGGER_COLOR environment variables.
// An invalid variable is reported on stderr and config is applied as given.
func Init(config Config) {
	cfg, err := ConfigFromEnv(config)
	if err != nil {
		fmt.Fprintf(outStderr, "ignoring logger environment: %v\n", err)
		cfg = config
	}
	Default().Apply(cfg)
}

// SetPrint enables or disables console output of the default Logger.
func SetPrint(enabled bool) { Default().SetPrint(enabled) }

// SetTimestamp enables or disables timestamps on the default Logger.
func SetTimestamp(enabled bool) { Default().SetTimestamp(enabled) }

// SetCallback replaces the callback of the default Logger; nil clears it.
func SetCallback(cb Callback) { Default().SetCallback(cb) }

// Log dispatches msg at level through the default Logger.
func Log(level Level, msg string) { Default().Log(level, msg) }

// Logf formats and dispatches a message through the default Logger.
func Logf(level Level, format string, v ...any) {
	Default().Logf(level, format, v...)
}

// --- Plain messages ---

func Debug(msg string)   { Default().Debug(msg) }
func Info(msg string)    { Default().Info(msg) }
func Error(msg string)   { Default().Error(msg) }
func Verbose(msg string) { Default().Verbose(msg) }
func Warning(msg string) { Default().Warning(msg) }

// Fatal logs msg with the [WTF] label through the default Logger.
// It does not exit the process.
func Fatal(msg string) { Default().Fatal(msg) }

// --- Formatted messages (fmt.Sprintf style) ---

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) {
	Default().Debugf(format, v...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) {
	Default().Infof(format, v...)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) {
	Default().Errorf(format, v...)
}

// Verbosef logs a verbose message formatted with fmt.Sprintf.
func Verbosef(format string, v ...any) {
	Default().Verbosef(format, v...)
}

// Warningf logs a warning formatted with fmt.Sprintf.
func Warningf(format string, v ...any) {
	Default().Warningf(format, v...)
}

// Fatalf logs a [WTF] message formatted with fmt.Sprintf.
// It does not exit the process.
func Fatalf(format string, v ...any) {
	Default().Fatalf(format, v...)
}
