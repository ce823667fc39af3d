// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the chain index and difficulty engine for
// a proof-of-work blockchain whose heights run in reverse: genesis
// occupies the highest height, and each new block's height is one less
// than its parent's. Block-body validation, transaction/script
// verification, the UTXO set, mempool policy, peer protocol framing, and
// wallet functionality are all outside this package's scope -- it only
// tracks which headers exist, how they relate to one another, and what
// the next difficulty target should be.
package blockchain

import (
	"github.com/viceversachain/vived/blockchain/standalone"
	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/chaincfg/chainhash"
	"github.com/viceversachain/vived/wire"
)

// Chain ties together the block index and the currently-active chain
// view for one network. It is the type external collaborators interact
// with: header ingest calls InsertHeader and, once it has decided on a
// new best tip, SetTip; peer sync and fork-choice collaborators call the
// read-only methods.
type Chain struct {
	params *chaincfg.Params
	index  *BlockIndex
	view   *ChainView
}

// New creates a Chain for the given network, seeding the index with its
// genesis block and initializing the active chain view to contain only
// genesis.
func New(params *chaincfg.Params) *Chain {
	index := NewBlockIndex()
	genesis := index.InsertGenesis(params)

	return &Chain{
		params: params,
		index:  index,
		view:   NewChainView(genesis),
	}
}

// Params returns the network parameters this chain was constructed with.
func (c *Chain) Params() *chaincfg.Params {
	return c.params
}

// Genesis returns the genesis node of the chain.
func (c *Chain) Genesis() *blockNode {
	return c.view.Genesis()
}

// Tip returns the current tip of the active chain.
func (c *Chain) Tip() *blockNode {
	return c.view.Tip()
}

// BestHeight returns the height of the active chain's tip.
func (c *Chain) BestHeight() int64 {
	return c.view.Height()
}

// HaveBlock reports whether a header with the given hash has already been
// inserted into the index, regardless of whether it is on the active
// chain.
func (c *Chain) HaveBlock(hash *chainhash.Hash) bool {
	return c.index.HaveBlock(hash)
}

// NodeByHash returns the node with the given hash, or nil if it has not
// been inserted.
func (c *Chain) NodeByHash(hash *chainhash.Hash) *blockNode {
	return c.index.LookupNode(hash)
}

// InsertHeader attaches a new header to the index. It does not affect the
// active chain view; callers decide, typically by comparing WorkSum
// against the current tip, whether and when to call SetTip.
func (c *Chain) InsertHeader(header *wire.BlockHeader) (*blockNode, error) {
	return c.index.InsertHeader(header)
}

// SetTip makes node the tip of the active chain, rebuilding the dense
// height-indexed view rooted at it. node must already be present in the
// index.
func (c *Chain) SetTip(node *blockNode) {
	c.view.SetTip(node)
}

// GetNextWorkRequired returns the compact difficulty target the next
// block after the current tip must satisfy, per the DarkGravityWave v3
// algorithm.
func (c *Chain) GetNextWorkRequired(candidate *blockNode) uint32 {
	return GetNextWorkRequired(c.view.Tip(), candidate, c.params)
}

// CheckProofOfWork reports whether hash satisfies the target encoded by
// bits, given this chain's powLimit.
func (c *Chain) CheckProofOfWork(hash *chainhash.Hash, bits uint32) bool {
	return standalone.CheckProofOfWork(hash, bits, c.params.PowLimit)
}

// GetLocator returns a block locator for node, or for the current tip if
// node is nil.
func (c *Chain) GetLocator(node *blockNode) BlockLocator {
	if node == nil {
		node = c.view.Tip()
	}
	return GetLocator(node)
}

// FindFork returns the highest-work ancestor of node that is also on the
// active chain.
func (c *Chain) FindFork(node *blockNode) *blockNode {
	return c.view.FindFork(node)
}

// LastCommonAncestor aligns a and b to the same height via GetAncestor and
// then walks parents in lockstep until the two pointers meet. The walk is
// guaranteed to terminate at genesis, since every branch converges there.
func LastCommonAncestor(a, b *blockNode) *blockNode {
	if a == nil || b == nil {
		return nil
	}

	// Align to the same height; isOlder(x, y) == x.height > y.height, so
	// the node that is NOT older needs to walk up (toward genesis) to
	// meet the other's height.
	if isOlder(a, b) {
		b = b.GetAncestor(a.height)
	} else if isOlder(b, a) {
		a = a.GetAncestor(b.height)
	}

	for a != nil && b != nil && a != b {
		a = a.parent
		b = b.parent
	}
	return a
}
