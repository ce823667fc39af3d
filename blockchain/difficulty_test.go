// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/viceversachain/vived/blockchain/standalone"
	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/wire"
)

// dgwTestParams returns the regression test network's parameters, whose
// powLimit is the loosest representable target, with retargeting enabled
// (unlike regnet) and the minimum-difficulty allowance turned off.
func dgwTestParams() *chaincfg.Params {
	params := chaincfg.RegNetParams()
	params.PowNoRetargeting = false
	params.AllowMinDifficulty = false
	return params
}

// insertHeaders inserts n headers on top of tip directly into index, each
// carrying the given compact target and spaced apart by the given
// interval. It operates on a bare BlockIndex rather than a Chain, since
// the difficulty engine only walks parent pointers and never consults
// the active chain view.
func insertHeaders(t *testing.T, index *BlockIndex, tip *blockNode, n int, bits uint32, spacing time.Duration) *blockNode {
	t.Helper()
	for i := 0; i < n; i++ {
		header := &wire.BlockHeader{
			Version:    1,
			PrevBlock:  tip.hash,
			MerkleRoot: tip.merkleRoot,
			Timestamp:  tip.timestamp.Add(spacing),
			Bits:       bits,
			Nonce:      uint32(i + 1),
		}
		node, err := index.InsertHeader(header)
		if err != nil {
			t.Fatalf("InsertHeader failed: %v", err)
		}
		tip = node
	}
	return tip
}

func TestDGWFewerThanWindowReturnsPowLimit(t *testing.T) {
	params := dgwTestParams()
	index := NewBlockIndex()
	genesis := index.InsertGenesis(params)

	tip := insertHeaders(t, index, genesis, int(params.AveragingWindow)-1, params.PowLimitBits, params.PowTargetSpacing)

	got := GetNextWorkRequired(tip, nil, params)
	if got != params.PowLimitBits {
		t.Fatalf("with fewer than the averaging window mined, got %#08x, want powLimit %#08x",
			got, params.PowLimitBits)
	}
}

func TestDGWExactWindowRetargets(t *testing.T) {
	params := dgwTestParams()
	index := NewBlockIndex()
	genesis := index.InsertGenesis(params)

	tip := insertHeaders(t, index, genesis, int(params.AveragingWindow), params.PowLimitBits, params.PowTargetSpacing)

	got := GetNextWorkRequired(tip, nil, params)
	gotTarget, _, _ := standalone.DiffBitsToUint256(got)
	startTarget, _, _ := standalone.DiffBitsToUint256(params.PowLimitBits)

	// The span between the tip and the earliest header in the window
	// covers AveragingWindow-1 intervals while the expected span covers
	// AveragingWindow, so a uniformly spaced window retargets to a
	// target slightly below (harder than) the average rather than
	// exactly reproducing it. It should land close to the average, not
	// clamped to the one-third/three-times bounds.
	lowerBound := startTarget.Clone()
	lowerBound.DivUint64(10)
	lowerBound.MulUint64(9)

	if gotTarget.Cmp(lowerBound) < 0 {
		t.Fatalf("retarget moved further than expected from a uniformly spaced window: got %#08x", got)
	}
	if gotTarget.Cmp(&startTarget) > 0 {
		t.Fatalf("retarget should not exceed the average target for an on-time window, got %#08x", got)
	}
}

func TestDGWClampUp(t *testing.T) {
	params := dgwTestParams()
	// Start from a target well below regnet's powLimit (the loosest
	// representable value) so there is room above it to observe an
	// eased (larger-valued, easier) target.
	const startBits = 0x1d00ffff

	index := NewBlockIndex()
	genesis := index.InsertGenesis(params)

	// Blocks arrive 6x slower than expected: the actual timespan is far
	// above target_span*3, so it clamps to target_span*3, tripling the
	// target's magnitude -- i.e. the puzzle gets three times easier,
	// not harder. DGW's clamp bounds the SWING in target value, and a
	// too-slow chain should ease (raise the numeric target), not
	// tighten, matching CalcWork's inverse relationship between target
	// magnitude and difficulty.
	slowSpacing := params.PowTargetSpacing * 6
	tip := insertHeaders(t, index, genesis, int(params.AveragingWindow), startBits, slowSpacing)

	got := GetNextWorkRequired(tip, nil, params)
	gotTarget, _, _ := standalone.DiffBitsToUint256(got)
	startTarget, _, _ := standalone.DiffBitsToUint256(startBits)

	if gotTarget.Cmp(&startTarget) <= 0 {
		t.Fatalf("expected a too-slow chain to ease (raise) the target")
	}
	if gotTarget.Cmp(&params.PowLimit) > 0 {
		t.Fatalf("eased target must never exceed powLimit")
	}
}

func TestDGWClampDown(t *testing.T) {
	params := dgwTestParams()

	index := NewBlockIndex()
	genesis := index.InsertGenesis(params)

	// Blocks arrive 6x faster than expected: the actual timespan
	// clamps to target_span/3, tightening the target to roughly a
	// third of its starting value.
	fastSpacing := params.PowTargetSpacing / 6
	tip := insertHeaders(t, index, genesis, int(params.AveragingWindow), params.PowLimitBits, fastSpacing)

	got := GetNextWorkRequired(tip, nil, params)
	gotTarget, _, _ := standalone.DiffBitsToUint256(got)
	startTarget, _, _ := standalone.DiffBitsToUint256(params.PowLimitBits)

	if gotTarget.Cmp(&startTarget) >= 0 {
		t.Fatalf("expected a too-fast chain to tighten (lower) the target")
	}
}

func TestDGWNoRetargeting(t *testing.T) {
	params := chaincfg.RegNetParams()
	index := NewBlockIndex()
	genesis := index.InsertGenesis(params)

	tip := insertHeaders(t, index, genesis, int(params.AveragingWindow)+5, 0x1d00dead, params.PowTargetSpacing)

	got := GetNextWorkRequired(tip, nil, params)
	if got != tip.bits {
		t.Fatalf("pow_no_retargeting networks must always return the parent's bits, got %#08x, want %#08x",
			got, tip.bits)
	}
}

func TestPermittedDifficultyTransition(t *testing.T) {
	params := dgwTestParams()

	// Off-boundary heights require an exact match.
	if !PermittedDifficultyTransition(params, 101, 0x1d00ffff, 0x1d00ffff) {
		t.Fatalf("expected an unchanged target off a retarget boundary to be permitted")
	}
	if PermittedDifficultyTransition(params, 101, 0x1d00ffff, 0x1c00ffff) {
		t.Fatalf("expected a changed target off a retarget boundary to be rejected")
	}

	// On a boundary, anything within the adjustment factor is allowed.
	boundary := params.RetargetInterval * 5
	if !PermittedDifficultyTransition(params, boundary, 0x1d00ffff, 0x1d00ffff) {
		t.Fatalf("expected an unchanged target on a retarget boundary to be permitted")
	}

	allowAll := dgwTestParams()
	allowAll.AllowMinDifficulty = true
	if !PermittedDifficultyTransition(allowAll, boundary, 0x1d00ffff, 0x207fffff) {
		t.Fatalf("expected AllowMinDifficulty to permit any transition")
	}
}
