// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorKind identifies a recoverable validation failure reported by the
// chain index. It supports errors.Is comparisons against the exported
// sentinel values below.
type ErrorKind string

// These constants enumerate the error kinds of the chain index. InsertHeader
// returns ErrOrphanHeader and ErrTerminalHeight. No function in this package
// returns ErrInvalidCompactTarget or ErrGenesisMismatch: compact-target
// decoding reports its failures through flags, and InsertGenesis panics on
// a genesis mismatch. Invariant violations -- evidence of corrupted
// in-memory state rather than bad input -- panic as well; see RuleError's
// doc comment.
const (
	// ErrInvalidCompactTarget indicates a compact difficulty encoding
	// that has its sign bit set, overflows 256 bits, or decodes to zero.
	ErrInvalidCompactTarget = ErrorKind("ErrInvalidCompactTarget")

	// ErrGenesisMismatch indicates a computed genesis hash or merkle
	// root differs from the network's asserted constant.
	ErrGenesisMismatch = ErrorKind("ErrGenesisMismatch")

	// ErrOrphanHeader indicates a header was submitted whose parent has
	// not yet been inserted into the index.
	ErrOrphanHeader = ErrorKind("ErrOrphanHeader")

	// ErrTerminalHeight indicates a header was submitted whose parent is
	// already at height 0, the terminal height past which this chain
	// has no valid children.
	ErrTerminalHeight = ErrorKind("ErrTerminalHeight")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// RuleError identifies an error that results from a header, or a request
// concerning one, that violates the rules of the chain index. It carries an
// ErrorKind as its Err field so callers can programmatically distinguish
// error conditions with errors.Is / errors.As while still getting a
// descriptive message from Error.
//
// RuleError is reserved for conditions an adversarial or malformed header
// can legitimately trigger. Violations of the index's own invariants --
// a nil parent encountered mid-walk, a tip height outside
// [0, GenesisHeight] -- indicate corrupted state, not bad input, and panic
// instead of returning a RuleError.
type RuleError struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e RuleError) Unwrap() error {
	return e.Err
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(kind ErrorKind, desc string) RuleError {
	return RuleError{Err: kind, Description: desc}
}

// ruleErrorf is a convenience wrapper around ruleError that formats the
// description via fmt.Sprintf.
func ruleErrorf(kind ErrorKind, format string, args ...interface{}) RuleError {
	return ruleError(kind, fmt.Sprintf(format, args...))
}
