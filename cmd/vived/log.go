// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/viceversachain/vived/blockchain"
)

// logWriter implements an io.Writer that outputs to both standard output
// and a rotating log file.
type logWriter struct {
	logRotator *rotator.Rotator
}

func (w *logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	w.logRotator.Write(p)
	return len(p), nil
}

var (
	backendLog = slog.NewBackend(os.Stdout)
	log        = backendLog.Logger("VIVD")
	logRotator *rotator.Rotator
)

// initLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory. It must be called before
// the package-level log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r

	backendLog = slog.NewBackend(&logWriter{logRotator: r})
	log = backendLog.Logger("VIVD")
	blockchain.UseLogger(backendLog.Logger("CHAN"))
	return nil
}

// setLogLevel sets the logging level of the vived (VIVD) logger to
// levelStr; an unrecognized level string leaves it unchanged. Other
// subsystem loggers, such as the one handed to the blockchain package, keep
// their own level.
func setLogLevel(levelStr string) {
	level, ok := slog.LevelFromString(levelStr)
	if !ok {
		return
	}
	log.SetLevel(level)
}
