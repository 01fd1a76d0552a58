package logger_test

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-idflog/logger"
)

// This example shows a private Logger without timestamps.
func ExampleNew() {
	os.Unsetenv("JOURNAL_STREAM") // plain lines, no journald priorities
	l := logger.New()
	l.SetOutput(os.Stdout)
	l.SetTimestamp(false)

	l.Info("boot complete")
	l.Warningf("battery at %d%%", 15)
	l.Fatal("watchdog fired")
	// Output:
	// [INFO]: boot complete
	// [WARNING]: battery at 15%
	// [WTF]: watchdog fired
}

// This example forwards records to a callback while the console is off.
func ExampleLogger_SetCallback() {
	l := logger.New()
	l.SetTimestamp(false)
	l.SetPrint(false)
	l.SetCallback(func(level logger.Level, ts uint64, msg string) {
		fmt.Printf("shipped level=%d ts=%d %q\n", level, ts, msg)
	})

	l.Errorf("sd card: %s", "not mounted")
	// Output:
	// shipped level=2 ts=0 "[ERROR]: sd card: not mounted"
}

// This example shows the package-level functions and colored labels.
func ExampleInit() {
	logger.Init(logger.Config{Color: logger.ColorAuto})
	logger.Infof("hello %s", "world")
	logger.Verbose("details")
	logger.SetTimestamp(false)
	logger.Debug("no timestamp")
}
