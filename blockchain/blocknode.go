// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/viceversachain/vived/blockchain/standalone"
	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/chaincfg/chainhash"
	"github.com/viceversachain/vived/math/uint256"
	"github.com/viceversachain/vived/wire"
)

// blockStatus is a bit field representing the validation state of a block.
// Its bits are opaque to the index; collaborators set and read them to
// track their own validation pipeline.
type blockStatus byte

const (
	// statusNone indicates a block has no validation state stored yet.
	statusNone blockStatus = 0

	// statusValid indicates the block has passed the collaborator's
	// validation checks.
	statusValid blockStatus = 1 << 0

	// statusInvalid indicates the block failed validation.
	statusInvalid blockStatus = 1 << 1
)

// blockNode represents a block within the chain index. Each node carries
// its own derived fields -- height, cumulative work, time-max -- so that
// none of them need to be recomputed by walking the tree.
//
// Heights in this index count down from genesis: a non-genesis node's
// height is always one less than its parent's. "Ancestor" therefore means
// higher height, the opposite of the classical convention -- see isOlder.
type blockNode struct {
	// parent is the parent block for this node. It is nil only for the
	// genesis node.
	parent *blockNode

	// skip points to a deterministically chosen ancestor -- see
	// getSkipHeight -- enabling getAncestor to run in O(log n) instead
	// of O(n). It is nil only for the genesis node.
	skip *blockNode

	// hash is the double-SHA-256 hash of the serialized header; it is
	// this node's identity.
	hash chainhash.Hash

	// height is this node's position in the reversed-height chain:
	// chaincfg.GenesisHeight for genesis, and parent.height-1 for every
	// other node.
	height int64

	// workSum is the cumulative proof-of-work weight of the chain from
	// genesis down to and including this node.
	workSum uint256.Uint256

	// timeMax is the maximum header time on the path from genesis to
	// this node, inclusive. It is monotone non-decreasing along any
	// root-to-leaf walk and is what findEarliestAtLeast searches on.
	timeMax time.Time

	// status records the collaborator-owned validation state of this
	// node. The index itself never reads or branches on it.
	status blockStatus

	// Header fields copied onto the node so callers never need to hold
	// onto the original wire.BlockHeader.
	version     int32
	bits        uint32
	timestamp   time.Time
	nonce       uint32
	merkleRoot  chainhash.Hash
}

// initBlockNode initializes a block node from the given header, bypassing
// the hash lookups that would otherwise be required to populate the fields.
// The caller is responsible for linking parent/skip afterward via setParent.
func initBlockNode(header *wire.BlockHeader) *blockNode {
	node := &blockNode{
		hash:       header.BlockHash(),
		version:    header.Version,
		bits:       header.Bits,
		timestamp:  header.Timestamp,
		nonce:      header.Nonce,
		merkleRoot: header.MerkleRoot,
	}
	return node
}

// newGenesisNode creates the root of the chain index from the network's
// genesis header. It is the only node ever constructed with height equal
// to chaincfg.GenesisHeight and the only node with a nil parent and nil
// skip.
func newGenesisNode(header *wire.BlockHeader) *blockNode {
	node := initBlockNode(header)
	node.height = chaincfg.GenesisHeight
	node.timeMax = node.timestamp
	node.workSum = standalone.CalcWork(node.bits)
	return node
}

// newBlockNode creates a new block node associated with the given header
// and connects it to the passed parent. The height is derived from the
// parent (parent.height - 1), chain work accumulates from the parent, and
// the time-max is the larger of the parent's and this header's own time.
//
// build_skip is invoked exactly once here, immediately after parent is
// set, matching the ordering the skip-list engine requires.
func newBlockNode(header *wire.BlockHeader, parent *blockNode) *blockNode {
	node := initBlockNode(header)
	node.setParent(parent)
	return node
}

// setParent connects node to parent, deriving height, chain work, and
// time-max, then builds the skip pointer. It must be called at most once
// per node, immediately after construction.
func (node *blockNode) setParent(parent *blockNode) {
	node.parent = parent
	if parent == nil {
		return
	}

	node.height = parent.height - 1
	node.timeMax = parent.timeMax
	if node.timestamp.After(node.timeMax) {
		node.timeMax = node.timestamp
	}

	blockWork := standalone.CalcWork(node.bits)
	sum := parent.workSum.Clone()
	sum.Add(&blockWork)
	node.workSum = *sum

	node.buildSkip()
}

// getSkipHeight returns the height of the ancestor that a node at the
// given height should use as its skip target. It implements the skip
// distance formula: let distance = GenesisHeight - height (distance
// walked so far from genesis); InvertLowestOne clears the lowest set bit
// of distance. Genesis and its immediate child always skip to genesis;
// every other node's skip distance is chosen so repeated application
// reaches genesis in O(log distance) hops.
func getSkipHeight(height int64) int64 {
	if height >= chaincfg.GenesisHeight-1 {
		return chaincfg.GenesisHeight
	}

	distance := chaincfg.GenesisHeight - height
	var skipDistance int64
	if distance&1 == 0 {
		skipDistance = invertLowestOne(distance)
	} else {
		skipDistance = invertLowestOne(invertLowestOne(distance-1)) + 1
	}
	return chaincfg.GenesisHeight - skipDistance
}

// invertLowestOne clears the lowest set bit of n, e.g. invertLowestOne(12)
// (0b1100) == 8 (0b1000).
func invertLowestOne(n int64) int64 {
	return n & (n - 1)
}

// buildSkip computes this node's skip pointer from its parent. It must be
// called exactly once, immediately after parent is assigned.
func (node *blockNode) buildSkip() {
	if node.parent == nil {
		return
	}
	node.skip = node.parent.getAncestor(getSkipHeight(node.height))
}

// isOlder reports whether a is an ancestor-side node relative to b under
// the reversed-height convention used throughout this package: ancestors
// have strictly higher heights than their descendants. Centralizing the
// comparison here, per the design note on reversed heights, means every
// other algorithm in this package can be read without re-deriving which
// direction is "toward genesis".
func isOlder(a, b *blockNode) bool {
	return a.height > b.height
}

// getAncestor returns the ancestor block node at the provided height by
// following the chain backward -- which, under the reversed-height
// convention, means walking *upward* in height toward genesis -- from
// this node. The returned block will be nil when a height is requested
// that is less than the height of the passed node, since blocks are only
// aware of their ancestors, not their descendants, or when the requested
// height exceeds chaincfg.GenesisHeight.
//
// This is the heart of the skip-list: at each step it decides whether
// following skip makes more progress than following parent without
// overshooting target, per the clause documented inline below.
func (node *blockNode) getAncestor(height int64) *blockNode {
	if height < node.height || height > chaincfg.GenesisHeight {
		return nil
	}

	n := node
	for n.height != height {
		heightWalk := n.height
		heightSkip := getSkipHeight(heightWalk)
		heightSkipPrev := getSkipHeight(heightWalk + 1)

		if n.skip != nil && (heightSkip == height ||
			(heightSkip < height &&
				!(heightSkipPrev > heightSkip+2 && heightSkipPrev <= height))) {
			n = n.skip
		} else {
			if n.parent == nil {
				// BrokenTree: the walk needs to continue toward
				// genesis but the tree ends here. This indicates
				// corrupted index state, not bad input.
				panic("blockchain: getAncestor encountered a nil parent before reaching the target height")
			}
			n = n.parent
		}
	}
	return n
}

// Hash returns the hash of the block this node represents.
func (node *blockNode) Hash() chainhash.Hash {
	return node.hash
}

// Height returns the height of the block this node represents.
func (node *blockNode) Height() int64 {
	return node.height
}

// WorkSum returns the cumulative proof-of-work from genesis through this
// node, inclusive.
func (node *blockNode) WorkSum() uint256.Uint256 {
	return node.workSum
}

// Bits returns the compact difficulty target carried by this node's
// header.
func (node *blockNode) Bits() uint32 {
	return node.bits
}

// Timestamp returns this node's own header time, distinct from TimeMax.
func (node *blockNode) Timestamp() time.Time {
	return node.timestamp
}

// TimeMax returns the maximum header time on the path from genesis to this
// node, inclusive.
func (node *blockNode) TimeMax() time.Time {
	return node.timeMax
}

// Parent returns this node's parent, or nil for genesis.
func (node *blockNode) Parent() *blockNode {
	return node.parent
}

// GetAncestor is the exported form of getAncestor; see its doc comment.
func (node *blockNode) GetAncestor(height int64) *blockNode {
	return node.getAncestor(height)
}
