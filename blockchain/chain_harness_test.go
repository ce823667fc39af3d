// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/wire"
)

// buildChain inserts n headers on top of the given chain's genesis and
// returns the resulting tip nodes in insertion order (index 0 is the
// first header inserted, with height genesis.height-1). It uses the
// regression test network's trivial powLimit as each header's bits, so
// tests exercise real decode/encode/work arithmetic without needing to
// actually search for a satisfying nonce.
func buildChain(c *Chain, n int) []*blockNode {
	nodes := make([]*blockNode, 0, n)
	tip := c.Tip()
	spacing := c.params.PowTargetSpacing
	if spacing <= 0 {
		spacing = time.Second
	}

	for i := 0; i < n; i++ {
		header := &wire.BlockHeader{
			Version:    1,
			PrevBlock:  tip.hash,
			MerkleRoot: tip.merkleRoot,
			Timestamp:  tip.timestamp.Add(spacing),
			Bits:       tip.bits,
			Nonce:      uint32(i + 1),
		}
		node, err := c.InsertHeader(header)
		if err != nil {
			panic(err)
		}
		c.SetTip(node)
		nodes = append(nodes, node)
		tip = node
	}
	return nodes
}

// testChain returns a fresh Chain on the regression test network, which
// never retargets and mines trivially, making it well-suited to index
// structure tests that are not exercising the difficulty engine.
func testChain() *Chain {
	return New(chaincfg.RegNetParams())
}
