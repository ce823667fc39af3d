// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "vived.log"
	defaultLogLevel    = "info"
)

var defaultHomeDir = filepath.Join(os.Getenv("HOME"), ".vived")

// config defines the configuration options for vived.
//
// See loadConfig for details on the configuration load process.
type config struct {
	HomeDir    string `short:"b" long:"homedir" description:"Directory to store logs"`
	Network    string `long:"network" description:"Network to run on" default:"mainnet"`
	Debug      string `short:"d" long:"debuglevel" description:"Logging level for all subsystems" default:"info"`
	NoFileLog  bool   `long:"nofilelog" description:"Disable logging to a file"`
}

// loadConfig parses command line flags. It does not read a config file;
// vived has no persisted configuration beyond the chosen network, mirroring
// the scope boundary that none of the chain state here survives a restart.
func loadConfig() (*config, []string, error) {
	cfg := config{
		HomeDir: defaultHomeDir,
		Network: "mainnet",
		Debug:   defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	cfg.HomeDir = cleanAndExpandPath(cfg.HomeDir)
	if err := os.MkdirAll(cfg.HomeDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create home directory: %w", err)
	}

	return &cfg, remainingArgs, nil
}

func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		path = filepath.Join(defaultHomeDir, path[1:])
	}
	return filepath.Clean(os.ExpandEnv(path))
}
