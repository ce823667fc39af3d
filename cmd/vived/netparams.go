// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import "github.com/viceversachain/vived/chaincfg"

// netParams groups a network's chain parameters together. vived has no RPC
// server of its own, but the grouping is kept so a future one has an
// obvious place to hang a default port.
type netParams struct {
	*chaincfg.Params
}

var mainNetParams = netParams{chaincfg.MainNetParams()}
var testNetParams = netParams{chaincfg.TestNetParams()}
var regNetParams = netParams{chaincfg.RegNetParams()}

// netParamsForName returns the parameter set named by n, or an error
// listing the valid choices if n does not match any of them.
func netParamsForName(n string) (netParams, error) {
	switch n {
	case "mainnet":
		return mainNetParams, nil
	case "testnet":
		return testNetParams, nil
	case "regnet":
		return regNetParams, nil
	default:
		return netParams{}, errUnknownNetwork(n)
	}
}

type errUnknownNetwork string

func (e errUnknownNetwork) Error() string {
	return "unknown network " + string(e) + ": must be mainnet, testnet, or regnet"
}
