package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "probe":
		os.Exit(runProbe(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: surfboot <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run     open a window and bootstrap the configured renderer on it")
	fmt.Fprintln(w, "  probe   report the active windowing protocol and its native handles")
	fmt.Fprintln(w, "  config  print the effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Renderers: %s\n", strings.Join(renderer.TypeNames(), ", "))
}

// newLogger builds the process logger and installs it into the packages
// that log. verbose switches to the development encoder at debug level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	platform.SetLogger(logger)
	renderer.SetLogger(logger)
	closer.Bind(func() { _ = logger.Sync() })
	return logger, nil
}
