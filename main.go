package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/mordilloSan/go-idflog/logger"
	"github.com/mordilloSan/go-idflog/logger/forward"
)

// Example walking through every call style of the logger.
// Usage: ./go-idflog [config.toml|config.json5]
func main() {
	var cfg logger.Config
	if len(os.Args) > 1 {
		loaded, err := logger.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		} else {
			cfg = loaded
		}
	}
	logger.Init(cfg)
	l := logger.Default()

	l.Info("=== logger example ===")

	// Every level, plain and formatted
	l.Debug("This is a debug message")
	l.Debugf("Debug with value: %d", 42)
	l.Info("This is an info message")
	l.Infof("Info with string: %s", "Hello World")
	l.Warning("This is a warning message")
	l.Warningf("Warning with error code: %d", -1)
	l.Error("This is an error message")
	l.Errorf("Error occurred: %s", "File not found")
	l.Verbose("This is a verbose message")
	l.Verbosef("Verbose details: %f", 3.14159)
	l.Fatal("This is a WTF message")
	l.Fatalf("WTF! Critical error: %d", 999)

	l.Info("--- Testing configuration options ---")

	l.SetTimestamp(false)
	l.Info("This message has no timestamp")
	l.SetTimestamp(true)
	l.Info("This message has timestamp again")

	// Ship records to stderr and an hclog logger as a stand-in for a remote collector
	remote := hclog.New(&hclog.LoggerOptions{Name: "remote", Level: hclog.Trace, Output: os.Stderr})
	l.Info("Setting custom callback...")
	l.SetCallback(forward.Multi(
		forward.Writer(prefixed{"CALLBACK: "}),
		forward.Hclog(remote),
	))
	l.Info("This message will also go to the callback")

	l.Info("Disabling console output...")
	l.SetPrint(false)
	l.Info("This message only goes to callback")
	l.SetPrint(true)
	l.Info("Console output re-enabled")

	l.SetCallback(nil)
	l.Info("Callback removed - back to console only")

	l.Log(logger.DebugLevel, "Using generic log function")
	l.Logf(logger.InfoLevel, "Generic log with format: %s", "formatted text")

	// Package-level functions share the default Logger's configuration
	logger.Info("=== Package functions example ===")
	logger.Debugf("Debug message: %d", 123)
	logger.Warning("Warning message")

	// A private instance is configured independently
	mine := logger.New()
	mine.SetTimestamp(false)
	mine.Info("Custom logger instance without timestamps")

	l.Info("=== Example completed ===")
	l.Debugf("Heartbeat - tick: %d", time.Now().UnixMilli())
}

// prefixed writes to stderr with a fixed prefix, like a hand-rolled sink.
type prefixed struct{ prefix string }

func (p prefixed) Write(b []byte) (int, error) {
	if _, err := fmt.Fprint(os.Stderr, p.prefix); err != nil {
		return 0, err
	}
	return os.Stderr.Write(b)
}
