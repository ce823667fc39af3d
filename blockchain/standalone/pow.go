// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone provides the pieces of chain validation that can be
// performed without reference to the rest of the chain index: decoding and
// encoding compact difficulty targets, computing the work a target implies,
// and checking that a header's hash satisfies its target.  Everything here
// is a pure function of its arguments, matching spec section 5's
// requirement that these operations never suspend and never perform I/O.
package standalone

import (
	"github.com/viceversachain/vived/chaincfg/chainhash"
	"github.com/viceversachain/vived/math/uint256"
)

// compactSignBit and compactExponentShift isolate the sign bit and exponent
// byte of the compact "nBits" difficulty encoding:
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
const (
	compactMantissaMask  = 0x007fffff
	compactSignBit       = 0x00800000
	compactExponentShift = 24
)

// DiffBitsToUint256 decodes the compact "nBits" representation of a
// difficulty target into an unsigned 256-bit integer.  It reports via the
// negative and overflow return values, rather than an error, whether the
// encoding had its sign bit set or implied a magnitude that does not fit in
// 256 bits -- both are recoverable validation conditions, not program
// errors, per the error handling design.
func DiffBitsToUint256(bits uint32) (target uint256.Uint256, negative bool, overflow bool) {
	mantissa := bits & compactMantissaMask
	negative = bits&compactSignBit != 0
	exponent := bits >> compactExponentShift

	var buf [32]byte
	switch {
	case exponent <= 3:
		shifted := mantissa >> (8 * (3 - exponent))
		buf[29] = byte(shifted >> 16)
		buf[30] = byte(shifted >> 8)
		buf[31] = byte(shifted)

	case exponent <= 32:
		pos := int(32 - exponent)
		buf[pos] = byte(mantissa >> 16)
		buf[pos+1] = byte(mantissa >> 8)
		buf[pos+2] = byte(mantissa)

	default:
		overflow = true
	}

	target.SetBytes(buf)
	return target, negative, overflow
}

// Uint256ToDiffBits encodes an unsigned 256-bit integer into the compact
// "nBits" representation used for difficulty targets.
func Uint256ToDiffBits(target uint256.Uint256) uint32 {
	b := target.Bytes()

	i := 0
	for i < 32 && b[i] == 0 {
		i++
	}
	size := uint32(32 - i)
	if size == 0 {
		return 0
	}

	var mantissa uint32
	if size <= 3 {
		for j := 0; j < int(size); j++ {
			mantissa = mantissa<<8 | uint32(b[32-int(size)+j])
		}
		mantissa <<= 8 * (3 - size)
	} else {
		mantissa = uint32(b[i])<<16 | uint32(b[i+1])<<8 | uint32(b[i+2])
	}

	exponent := size
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	return exponent<<compactExponentShift | mantissa
}

// CalcWork calculates a work value from difficulty bits.  Work is defined
// as the number of hashes that would need to be performed, on average, to
// find a block whose hash satisfies the given target:
//
//	work = floor(2^256 / (target + 1))
//
// computed as (~target / (target+1)) + 1 to avoid ever representing the
// value 2^256 itself.  A target that decodes as negative, zero, or
// overflowing produces zero work -- it should never occur for a valid
// block, but an adversarial header could try.
func CalcWork(bits uint32) uint256.Uint256 {
	target, negative, overflow := DiffBitsToUint256(bits)
	if negative || overflow || target.IsZero() {
		return uint256.Uint256{}
	}

	denominator := target.Clone().AddUint64(1)
	work := target.Clone().Not().Div(denominator)
	work.AddUint64(1)
	return *work
}

// HashToUint256 converts a hash into an unsigned 256-bit integer by
// treating its bytes as a big-endian number, reversing the hash's internal
// (little-endian display) byte order in the process.
func HashToUint256(hash *chainhash.Hash) uint256.Uint256 {
	var reversed [32]byte
	for i, b := range hash[:] {
		reversed[31-i] = b
	}
	var n uint256.Uint256
	n.SetBytes(reversed)
	return n
}

// CheckProofOfWork ensures that the hash satisfies the proof of work
// requirement implied by the given difficulty bits.  The target encoded by
// bits must decode to a positive, non-overflowing value no greater than
// powLimit, and the hash -- interpreted as a big-endian unsigned integer --
// must not exceed it.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, powLimit uint256.Uint256) bool {
	target, negative, overflow := DiffBitsToUint256(bits)
	if negative || overflow || target.IsZero() {
		return false
	}
	if target.Cmp(&powLimit) > 0 {
		return false
	}

	hashNum := HashToUint256(hash)
	return hashNum.Cmp(&target) <= 0
}
