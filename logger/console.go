package logger

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// labelColors holds the console color of each level label.
var labelColors = map[Level]*color.Color{
	DebugLevel:   forcedColor(color.FgCyan),
	InfoLevel:    forcedColor(color.FgGreen),
	ErrorLevel:   forcedColor(color.FgRed),
	VerboseLevel: forcedColor(color.FgBlue),
	WarningLevel: forcedColor(color.FgYellow),
	FatalLevel:   forcedColor(color.FgHiMagenta, color.Bold),
}

// forcedColor ignores color.NoColor; whether to color at all is decided
// per Logger by its ColorMode.
func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func colorLabel(level Level) string {
	c, ok := labelColors[level]
	if !ok {
		return level.Label()
	}
	return c.Sprint(level.Label())
}

// useColor resolves a ColorMode against the console writer.
func useColor(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return false
	}
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// appendSyslogPrefixed appends line to buf with prefix at the start of every
// line it contains, so journald keeps the priority of multi-line messages.
func appendSyslogPrefixed(buf []byte, prefix string, line string) []byte {
	buf = append(buf, prefix...)
	for i := 0; i < len(line); i++ {
		buf = append(buf, line[i])
		if line[i] == '\n' && i != len(line)-1 {
			buf = append(buf, prefix...)
		}
	}
	return buf
}

// truncate shortens s to at most limit bytes without splitting a UTF-8 sequence.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
