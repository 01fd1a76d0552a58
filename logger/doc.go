// Package logger provides a small leveled logger that renders each message
// once and hands it to two sinks: the console and an optional callback.
//
// # Record Format
//
// Every record is rendered as
//
//	<timestamp> [LEVEL]: message
//
// where the timestamp is milliseconds since the Unix epoch and is omitted
// when timestamps are disabled. Labels are [DEBUG], [INFO], [ERROR],
// [VERBOSE], [WARNING] and [WTF]. Records longer than MaxRecordLen bytes are
// cut silently; formatted messages are capped at MaxMessageLen first.
//
// # Features
//
//   - Independent Logger instances plus a process-wide default
//   - Package-level functions bound to the default Logger
//   - Callback forwarding for log shipping (see package forward)
//   - Console output to any io.Writer (see package connsink for serial links)
//   - Optional ANSI label colors via Config.Color
//   - Journald priority prefixes for plain output when JOURNAL_STREAM is set
//   - Config from code, TOML/JSON5 files or LOGGER_* environment variables
//
// # Usage
//
// Use the default Logger:
//
//	logger.Info("boot complete")
//	logger.Infof("free heap: %d", heap)
//	logger.SetTimestamp(false)
//
// Or create your own:
//
//	l := logger.New()
//	l.SetCallback(func(level logger.Level, ts uint64, msg string) {
//	    upload(msg)
//	})
//	l.Warningf("battery at %d%%", pct)
//
// There is no level filtering: every call is dispatched.
package logger
