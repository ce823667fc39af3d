// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/viceversachain/vived/chaincfg"
)

func TestActiveChainInvariants(t *testing.T) {
	c := testChain()
	buildChain(c, 40)

	wantLen := chaincfg.GenesisHeight - c.view.Height() + 1
	if int64(len(c.view.nodes)) != wantLen {
		t.Fatalf("active chain length = %d, want %d", len(c.view.nodes), wantLen)
	}

	for i, node := range c.view.nodes {
		wantHeight := chaincfg.GenesisHeight - int64(i)
		if node.height != wantHeight {
			t.Fatalf("chain[%d].height = %d, want %d", i, node.height, wantHeight)
		}
		if i > 0 && node.parent != c.view.nodes[i-1] {
			t.Fatalf("chain[%d].parent is not chain[%d]", i, i-1)
		}
	}
}

func TestChainViewContainsAndNext(t *testing.T) {
	c := testChain()
	nodes := buildChain(c, 10)

	for _, node := range nodes {
		if !c.view.Contains(node) {
			t.Fatalf("active chain does not contain node at height %d", node.height)
		}
	}

	mid := nodes[5]
	next := c.view.Next(mid)
	if next == nil || next.height != mid.height-1 {
		t.Fatalf("Next(mid) did not return the node one height lower")
	}

	tip := c.Tip()
	if got := c.view.Next(tip); got != nil {
		t.Fatalf("Next(tip) should be nil, got height %d", got.height)
	}
}

func TestReorgShortCircuit(t *testing.T) {
	c := testChain()
	trunk := buildChain(c, 10)

	// Fork off of trunk[4] with a competing branch of 3 blocks.
	forkBase := trunk[4]
	c.SetTip(forkBase)
	forkNodes := buildChain(c, 3)

	// Re-adopt the original trunk's tip; everything at or above
	// forkBase's height (toward genesis) should be shared (same pointers) with the fork
	// that was just built on top of it.
	c.SetTip(trunk[len(trunk)-1])

	for h := forkBase.height; h <= chaincfg.GenesisHeight; h++ {
		wantNode := forkBase.getAncestor(h)
		gotNode := c.view.NodeByHeight(h)
		if gotNode != wantNode {
			t.Fatalf("height %d: active chain entry does not match shared ancestor", h)
		}
	}

	if c.view.Height() != trunk[len(trunk)-1].height {
		t.Fatalf("tip height = %d, want %d", c.view.Height(), trunk[len(trunk)-1].height)
	}
	_ = forkNodes
}

func TestFindForkAlignsNewerCandidate(t *testing.T) {
	c := testChain()
	trunk := buildChain(c, 20)

	// The fork gets one more block than the trunk has above forkBase, so
	// its tip is newer (one height lower) than the active tip.
	forkBase := trunk[9]
	c.SetTip(forkBase)
	forkNodes := buildChain(c, 11)
	c.SetTip(trunk[len(trunk)-1])

	fork := c.FindFork(forkNodes[len(forkNodes)-1])
	if fork == nil {
		t.Fatalf("FindFork returned nil")
	}
	if fork != forkBase {
		t.Fatalf("FindFork returned height %d, want fork base height %d", fork.height, forkBase.height)
	}
}

func TestFindEarliestAtLeast(t *testing.T) {
	c := testChain()
	nodes := buildChain(c, 30)

	target := nodes[10]
	found := c.view.FindEarliestAtLeast(target.timestamp, 0)
	if found == nil {
		t.Fatalf("FindEarliestAtLeast returned nil")
	}
	if found.timeMax.Before(target.timestamp) {
		t.Fatalf("found node's timeMax %v is before requested time %v", found.timeMax, target.timestamp)
	}
	if found.height < target.height {
		t.Fatalf("found node height %d is less than target height %d", found.height, target.height)
	}

	// No block can satisfy a time far beyond the tip.
	future := c.Tip().timestamp.Add(24 * 60 * 60 * 1e9)
	if got := c.view.FindEarliestAtLeast(future, 0); got != nil {
		t.Fatalf("expected nil for a time beyond every block, got height %d", got.height)
	}
}

func TestLastCommonAncestor(t *testing.T) {
	c := testChain()
	trunk := buildChain(c, 20)

	forkBase := trunk[9]
	c.SetTip(forkBase)
	forkNodes := buildChain(c, 10)

	common := LastCommonAncestor(trunk[len(trunk)-1], forkNodes[len(forkNodes)-1])
	if common != forkBase {
		t.Fatalf("LastCommonAncestor returned height %d, want %d", common.height, forkBase.height)
	}
}
