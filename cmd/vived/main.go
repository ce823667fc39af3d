// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command vived boots the in-memory chain index for one of vived's
// networks and reports its genesis block and tip. It exists to exercise
// the blockchain package's public surface end to end; it carries none of
// a full node's networking, persistence, or RPC surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/viceversachain/vived/blockchain"
)

func vivedMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	if !cfg.NoFileLog {
		logFile := filepath.Join(cfg.HomeDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return err
		}
	}
	setLogLevel(cfg.Debug)

	params, err := netParamsForName(cfg.Network)
	if err != nil {
		return err
	}

	chain := blockchain.New(params.Params)

	genesis := chain.Genesis()
	tip := chain.Tip()
	log.Infof("network: %s", params.Name)
	log.Infof("genesis hash: %s, height: %d", genesis.Hash(), genesis.Height())
	log.Infof("active tip hash: %s, height: %d", tip.Hash(), tip.Height())
	log.Infof("next required bits: %#08x", chain.GetNextWorkRequired(nil))

	return nil
}

func main() {
	if err := vivedMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
