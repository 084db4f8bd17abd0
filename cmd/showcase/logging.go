package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

func logLevel(flags *rootFlags) string {
	if flags.verbose {
		return "debug"
	}
	return flags.logLevel
}

// commandLogger logs to w when -v is set and discards otherwise.
func commandLogger(flags *rootFlags, w io.Writer, component string) (*logger.Logger, error) {
	if !flags.verbose {
		return logger.Nop(), nil
	}
	log, err := logger.New(logger.Options{
		Level:         logLevel(flags),
		HumanReadable: true,
		Writer:        w,
		Component:     component,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// fileLogger appends JSON entries to --log-file. The terminal belongs to the
// program while it runs, so without a file every entry is dropped.
func fileLogger(flags *rootFlags) (*logger.Logger, io.Closer, error) {
	if flags.logFile == "" {
		return logger.Nop(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log, err := logger.New(logger.Options{
		Level:     logLevel(flags),
		Writer:    f,
		Component: "tui",
	})
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, f, nil
}
