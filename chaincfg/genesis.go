// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/viceversachain/vived/chaincfg/chainhash"
	"github.com/viceversachain/vived/wire"
)

// genesisDescriptor carries the literal values used to construct a
// network's genesis header. The merkle root is supplied directly rather
// than derived from a constructed coinbase transaction, since transaction
// construction is outside this core's scope; it is asserted the same way
// the hash is.
type genesisDescriptor struct {
	version    int32
	time       int64
	bits       uint32
	nonce      uint32
	hash       string
	merkleRoot string
}

// mustBuildGenesis constructs the genesis header from a descriptor and
// panics if the computed hash does not match the descriptor's asserted
// hash.
func mustBuildGenesis(d genesisDescriptor) (*wire.BlockHeader, chainhash.Hash) {
	merkleRoot, err := chainhash.NewHashFromStr(d.merkleRoot)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid genesis merkle root literal: %v", err))
	}

	header := &wire.BlockHeader{
		Version:    d.version,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(d.time, 0),
		Bits:       d.bits,
		Nonce:      d.nonce,
	}

	wantHash, err := chainhash.NewHashFromStr(d.hash)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid genesis hash literal: %v", err))
	}

	gotHash := header.BlockHash()
	if !gotHash.IsEqual(wantHash) {
		panic(fmt.Sprintf("chaincfg: genesis mismatch: computed hash %s, asserted %s",
			&gotHash, wantHash))
	}

	return header, gotHash
}
