// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/viceversachain/vived/blockchain/standalone"
	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/math/uint256"
)

// GetNextWorkRequired calculates the required difficulty for the block
// after pindexLast using DarkGravityWave v3: the average of the compact
// targets of the last AveragingWindow headers, scaled by the ratio of
// observed to expected timespan over that same window, clamped to one
// third and three times the expected span.
//
// pindexLast is the current tip; candidate is unused by the average
// itself but is retained in the signature for parity with alternative
// retargeting rules a collaborator might swap in.
func GetNextWorkRequired(pindexLast *blockNode, candidate *blockNode, params *chaincfg.Params) uint32 {
	if pindexLast == nil || pindexLast.height >= chaincfg.GenesisHeight-params.AveragingWindow+1 {
		return params.PowLimitBits
	}

	if params.PowNoRetargeting {
		return pindexLast.bits
	}

	n := params.AveragingWindow

	// Each sample is split into its quotient and remainder by n and the two
	// are summed separately, so no partial sum passes 2^256 even when every
	// target is near it; the result is still exactly floor(sum/n).
	var avg, remainders uint256.Uint256
	addSample := func(bits uint32) {
		target, _, _ := standalone.DiffBitsToUint256(bits)
		quotient := target.Clone().DivUint64(uint64(n))
		avg.Add(quotient)
		quotient.MulUint64(uint64(n))
		remainders.Add(target.Sub(quotient))
	}
	addSample(pindexLast.bits)
	pindex := pindexLast
	for i := int64(1); i < n; i++ {
		pindex = pindex.parent
		if pindex == nil {
			break
		}
		addSample(pindex.bits)
	}
	avg.Add(remainders.DivUint64(uint64(n)))

	first := pindexLast
	for i := int64(1); i < n; i++ {
		if first.parent == nil {
			return params.PowLimitBits
		}
		first = first.parent
	}

	actualTimespan := pindexLast.timestamp.Unix() - first.timestamp.Unix()
	targetTimespan := n * int64(params.PowTargetSpacing.Seconds())

	minTimespan := targetTimespan / 3
	maxTimespan := targetTimespan * 3
	if actualTimespan < minTimespan {
		actualTimespan = minTimespan
	} else if actualTimespan > maxTimespan {
		actualTimespan = maxTimespan
	}

	newTarget := scaleTarget(&avg, actualTimespan, targetTimespan)

	if newTarget.Cmp(&params.PowLimit) > 0 {
		newTarget = params.PowLimit.Clone()
	}

	return standalone.Uint256ToDiffBits(*newTarget)
}

// scaleTarget computes avg * numerator / denominator on the 256-bit
// target type. numerator and denominator are always small, positive,
// known quantities here (a clamped timespan and the averaging window's
// expected span), so the cheaper small-divisor path (DivUint64) is used
// rather than the general 256-bit division reserved for CalcWork.
func scaleTarget(avg *uint256.Uint256, numerator, denominator int64) *uint256.Uint256 {
	scaled := avg.Clone()
	if overflow := scaled.MulUint64(uint64(numerator)); !overflow {
		return scaled.DivUint64(uint64(denominator))
	}

	// avg*numerator does not fit in 256 bits, so divide first; the result
	// then falls short of the exact quotient by less than numerator.
	scaled = avg.Clone().DivUint64(uint64(denominator))
	if overflow := scaled.MulUint64(uint64(numerator)); overflow {
		// The result itself exceeds 256 bits; saturate with the maximum
		// representable value so the caller's powLimit clamp applies.
		var max uint256.Uint256
		max.Not()
		return &max
	}
	return scaled
}

// PermittedDifficultyTransition reports whether newBits is a legal
// successor to oldBits at the given height, per the legacy 2016-block
// retarget-boundary rule. It is retained for wire compatibility with
// validators that have not adopted DarkGravityWave and is not itself
// part of this chain's consensus: DGW governs the real target.
func PermittedDifficultyTransition(params *chaincfg.Params, height int64, oldBits, newBits uint32) bool {
	if params.AllowMinDifficulty {
		return true
	}

	if height%params.RetargetInterval != 0 {
		return oldBits == newBits
	}

	oldTarget, negative, overflow := standalone.DiffBitsToUint256(oldBits)
	if negative || overflow {
		return false
	}
	newTarget, negative, overflow := standalone.DiffBitsToUint256(newBits)
	if negative || overflow {
		return false
	}

	lowerBound := oldTarget.Clone().DivUint64(uint64(params.RetargetAdjustmentFactor))

	upperBound := oldTarget.Clone()
	upperBound.MulUint64(uint64(params.RetargetAdjustmentFactor))
	if upperBound.Cmp(&params.PowLimit) > 0 {
		upperBound = params.PowLimit.Clone()
	}

	return newTarget.Cmp(lowerBound) >= 0 && newTarget.Cmp(upperBound) <= 0
}
