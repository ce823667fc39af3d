// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters consumed by the chain
// index and difficulty engine: genesis descriptor, address/HD key magics,
// the proof-of-work limit, and the DarkGravityWave window and spacing.
//
// Three networks are defined: the main network, a public test network, and
// a regression-test network intended for unit and integration tests. Each
// is constructed by its own function below and returns a fresh *Params;
// callers that need a long-lived "active network" typically assign the
// result to a package-level variable once at startup.
//
//	var activeNetParams = chaincfg.MainNetParams()
//
// Constructing a network's Params also asserts that its genesis header
// hashes to the literal value recorded for that network; a mismatch panics
// immediately, since a wrong genesis indicates corrupted build inputs
// rather than a condition callers can recover from.
package chaincfg
