// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sync"

	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/chaincfg/chainhash"
	"github.com/viceversachain/vived/wire"
)

// BlockIndex provides facilities for keeping track of an in-memory
// arena of block nodes and their associated data. It is the only owning
// structure in the package: every other reference to a node (parent, skip,
// an active-chain slot, a locator entry) is non-owning and valid for as
// long as the index itself lives.
//
// Per the concurrency model, index mutation (AddNode) is serialized by
// collaborators through a single writer lane; the index's own lock only
// protects the hash map against concurrent readers, since nodes are never
// mutated in place once published.
type BlockIndex struct {
	mtx   sync.RWMutex
	index map[chainhash.Hash]*blockNode
}

// NewBlockIndex returns a new empty instance of a block index.
func NewBlockIndex() *BlockIndex {
	return &BlockIndex{
		index: make(map[chainhash.Hash]*blockNode),
	}
}

// HaveBlock returns whether a block with the given hash has already been
// inserted into the index.
func (bi *BlockIndex) HaveBlock(hash *chainhash.Hash) bool {
	bi.mtx.RLock()
	_, hasBlock := bi.index[*hash]
	bi.mtx.RUnlock()
	return hasBlock
}

// lookupNode returns the block node identified by the provided hash, or
// nil if it is not present in the index. It is an unexported helper that
// assumes the caller already holds (or does not need) the lock.
func (bi *BlockIndex) lookupNode(hash *chainhash.Hash) *blockNode {
	return bi.index[*hash]
}

// LookupNode returns the block node identified by the provided hash. It
// returns nil if the hash does not refer to a block present in the index.
func (bi *BlockIndex) LookupNode(hash *chainhash.Hash) *blockNode {
	bi.mtx.RLock()
	node := bi.lookupNode(hash)
	bi.mtx.RUnlock()
	return node
}

// addNode adds the provided node to the index, which is presumed to be
// associated with a new block being added to the chain. It is an
// unexported helper that assumes the caller already holds the lock.
func (bi *BlockIndex) addNode(node *blockNode) {
	bi.index[node.hash] = node
}

// InsertHeader adds a new block header to the index, linking it to its
// already-inserted parent. It is idempotent on hash: inserting a header
// whose hash is already present is a no-op that returns the existing
// node. The parent must already be present in the index; an orphan
// header is a RuleError, not a panic, since whether and how to buffer it
// belongs to the external ingest collaborator.
func (bi *BlockIndex) InsertHeader(header *wire.BlockHeader) (*blockNode, error) {
	hash := header.BlockHash()

	bi.mtx.Lock()
	defer bi.mtx.Unlock()

	if existing := bi.lookupNode(&hash); existing != nil {
		return existing, nil
	}

	parent := bi.lookupNode(&header.PrevBlock)
	if parent == nil {
		return nil, ruleErrorf(ErrOrphanHeader,
			"header %s references unknown parent %s", hash, header.PrevBlock)
	}

	if parent.height <= 0 {
		return nil, ruleErrorf(ErrTerminalHeight,
			"header %s extends a chain already at its terminal height", hash)
	}

	node := newBlockNode(header, parent)
	bi.addNode(node)
	return node, nil
}

// InsertGenesis seeds an empty index with the network's genesis header. It
// panics -- a GenesisMismatch is fatal by design -- if the computed hash
// does not match params.GenesisHash. Calling it on an index that already
// contains the network's genesis node returns that existing node.
func (bi *BlockIndex) InsertGenesis(params *chaincfg.Params) *blockNode {
	bi.mtx.Lock()
	defer bi.mtx.Unlock()

	if existing := bi.lookupNode(&params.GenesisHash); existing != nil {
		return existing
	}

	node := newGenesisNode(params.GenesisBlock)
	if !node.hash.IsEqual(&params.GenesisHash) {
		panic(fmt.Sprintf("blockchain: genesis mismatch: computed %s, asserted %s",
			node.hash, params.GenesisHash))
	}

	bi.addNode(node)
	return node
}
