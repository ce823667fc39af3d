// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sort"
	"sync"
	"time"

	"github.com/viceversachain/vived/chaincfg"
)

// ChainView provides a flat view of the currently-active chain: a dense
// array addressed by height-offset, giving O(1) "block at height h"
// lookups without walking parent pointers.
//
// Position 0 always holds genesis; position k holds the block at height
// chaincfg.GenesisHeight - k. The view is updated in place every time the
// tip changes -- see SetTip for the reorg short-circuit that keeps this
// cheap for chains that share a long common suffix.
type ChainView struct {
	mtx   sync.RWMutex
	nodes []*blockNode
}

// NewChainView returns a new chain view for the given tip node. It is
// equivalent to constructing an empty view and calling SetTip.
func NewChainView(tip *blockNode) *ChainView {
	v := &ChainView{}
	if tip != nil {
		v.setTip(tip)
	}
	return v
}

// index returns the array index a node of the given height would occupy.
func index(height int64) int64 {
	return chaincfg.GenesisHeight - height
}

// SetTip sets the view to the chain rooted at the given node. It walks
// from node toward genesis, writing each node into its slot, and stops
// early the moment it reaches a slot that already holds the same pointer
// -- the reorg short-circuit, since everything below that point is
// already correct and shared with the old chain.
//
// height outside [0, chaincfg.GenesisHeight] is an InvalidChainDepth: a
// programmer error, not adversarial input, so it panics.
func (v *ChainView) SetTip(node *blockNode) {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	v.setTip(node)
}

func (v *ChainView) setTip(node *blockNode) {
	if node == nil {
		v.nodes = nil
		return
	}
	if node.height < 0 || node.height > chaincfg.GenesisHeight {
		panic("blockchain: SetTip received a node with an out-of-range height")
	}

	needed := index(node.height) + 1
	if int64(len(v.nodes)) < needed {
		newNodes := make([]*blockNode, needed)
		copy(newNodes, v.nodes)
		v.nodes = newNodes
	} else if int64(len(v.nodes)) > needed {
		v.nodes = v.nodes[:needed]
	}

	for n := node; n != nil; n = n.parent {
		i := index(n.height)
		if v.nodes[i] == n {
			break
		}
		v.nodes[i] = n
	}
}

// Tip returns the block at the tip of the chain, or nil if the view is
// empty.
func (v *ChainView) Tip() *blockNode {
	v.mtx.RLock()
	defer v.mtx.RUnlock()
	return v.tip()
}

func (v *ChainView) tip() *blockNode {
	if len(v.nodes) == 0 {
		return nil
	}
	return v.nodes[len(v.nodes)-1]
}

// Genesis returns the genesis block of the chain, or nil if the view is
// empty.
func (v *ChainView) Genesis() *blockNode {
	v.mtx.RLock()
	defer v.mtx.RUnlock()
	if len(v.nodes) == 0 {
		return nil
	}
	return v.nodes[0]
}

// Height returns the height of the tip of the chain, or -1 if the view is
// empty.
func (v *ChainView) Height() int64 {
	tip := v.Tip()
	if tip == nil {
		return -1
	}
	return tip.height
}

// NodeByHeight returns the block node at the given height in the active
// chain, or nil if no such block exists.
func (v *ChainView) NodeByHeight(height int64) *blockNode {
	v.mtx.RLock()
	defer v.mtx.RUnlock()
	return v.nodeByHeight(height)
}

func (v *ChainView) nodeByHeight(height int64) *blockNode {
	if height < 0 || height > chaincfg.GenesisHeight {
		return nil
	}
	i := index(height)
	if i < 0 || i >= int64(len(v.nodes)) {
		return nil
	}
	return v.nodes[i]
}

// Contains returns whether the chain view contains the given block node.
func (v *ChainView) Contains(node *blockNode) bool {
	if node == nil {
		return false
	}
	return v.NodeByHeight(node.height) == node
}

// Next returns the successor to the given node, i.e. the node on the
// active chain whose height is one less, or nil if the given node is the
// tip or is not contained in the view.
func (v *ChainView) Next(node *blockNode) *blockNode {
	if node == nil || !v.Contains(node) {
		return nil
	}
	return v.NodeByHeight(node.height - 1)
}

// FindFork returns the final block node common to both the active chain
// and the provided node. Because every branch converges at genesis, the
// result is never nil for a non-nil input on a non-empty view.
//
// When the candidate is newer than the tip (a smaller height, under the
// reversed convention used throughout), it is first walked up to the
// tip's height via GetAncestor to align the two before lockstep
// comparison.
func (v *ChainView) FindFork(node *blockNode) *blockNode {
	if node == nil {
		return nil
	}

	v.mtx.RLock()
	defer v.mtx.RUnlock()

	tip := v.tip()
	if tip == nil {
		return nil
	}
	tipHeight := tip.height

	if node.height < tipHeight {
		// node is newer than the tip; align heights before the
		// lockstep walk below.
		node = node.GetAncestor(tipHeight)
	}

	for node != nil && v.nodeByHeight(node.height) != node {
		node = node.parent
	}
	return node
}

// FindEarliestAtLeast returns the earliest block (smallest array index,
// i.e. largest height) on the active chain whose TimeMax is at least the
// given time and whose height is at least minHeight. It returns nil if no
// such block exists.
//
// The chain is stored in increasing-array-index / decreasing-height
// order, and TimeMax is monotone non-decreasing along that order, so a
// binary search locates the first index whose TimeMax is at least the
// given time. Heights only decrease after that index, so if that block is
// below minHeight, no later block qualifies either.
func (v *ChainView) FindEarliestAtLeast(t time.Time, minHeight int64) *blockNode {
	v.mtx.RLock()
	defer v.mtx.RUnlock()

	n := len(v.nodes)
	i := sort.Search(n, func(i int) bool {
		return !v.nodes[i].timeMax.Before(t)
	})
	if i == n || v.nodes[i].height < minHeight {
		return nil
	}
	return v.nodes[i]
}
