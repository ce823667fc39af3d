// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/viceversachain/vived/blockchain/standalone"
)

// TestNetParams returns the network parameters for the public test network.
func TestNetParams() *Params {
	// testNetPowLimit is 0x0377ae << 216 (nbits 0x1e0377ae), eased further
	// than mainnet's already easy limit so that test blocks are cheap to
	// mine.
	testNetPowLimit, _, _ := standalone.DiffBitsToUint256(0x1e0377ae)

	genesisBlock, genesisHash := mustBuildGenesis(genesisDescriptor{
		version:     1,
		time:        1767462992,
		bits:        0x1e0377ae,
		nonce:       0,
		hash:        "e9b8ce6a0330d91a199c090463ca9fe55ab9f4016539da36b0521d796b68ed03",
		merkleRoot:  "1f0f98b3c9d7b292e2cfd0cac5fcf46d267df410faa6f8e04d06573a5706c012",
	})

	return &Params{
		Name:        "testnet",
		Net:         0x56495654,
		DefaultPort: "21111",
		Bech32HRP:   "tvive",

		PubKeyHashAddrID: 111,
		ScriptHashAddrID: 196,
		PrivateKeyID:     239,

		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xCF},

		GenesisBlock:          genesisBlock,
		GenesisHash:           genesisHash,
		GenesisMerkleRoot:     genesisBlock.MerkleRoot,
		GenesisReward:         25_000_000,
		CoinbaseTimestampText: "ViceversaChain is the Blockchain that counts backwards from 100M to 0",

		PowLimit:         testNetPowLimit,
		PowLimitBits:     0x1e0377ae,
		PowTargetSpacing: 120 * time.Second,
		AveragingWindow:  24,

		PowNoRetargeting:        false,
		AllowMinDifficulty:      true,
		RetargetInterval:        2016,
		RetargetAdjustmentFactor: 4,
	}
}
