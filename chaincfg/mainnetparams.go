// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/viceversachain/vived/blockchain/standalone"
)

// MainNetParams returns the network parameters for the main Vived network.
func MainNetParams() *Params {
	// mainPowLimit decodes nbits 0x1d00ffff, the easiest target permitted
	// on the main network -- as on the other networks defined here,
	// mainnet's genesis nbits is itself the powLimit.
	mainPowLimit, _, _ := standalone.DiffBitsToUint256(0x1d00ffff)

	genesisBlock, genesisHash := mustBuildGenesis(genesisDescriptor{
		version:     1,
		time:        1767462992,
		bits:        0x1d00ffff,
		nonce:       2306512841,
		hash:        "00000000ed7c33729f39094d3fa4e362cec181b7f05e3c53adeb097fc784f6bf",
		merkleRoot:  "1f0f98b3c9d7b292e2cfd0cac5fcf46d267df410faa6f8e04d06573a5706c012",
	})

	return &Params{
		Name:        "mainnet",
		Net:         0x56495645,
		DefaultPort: "11111",
		Bech32HRP:   "vive",

		PubKeyHashAddrID: 70,
		ScriptHashAddrID: 13,
		PrivateKeyID:     128,

		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xAD, 0xE4},
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xB2, 0x1E},

		GenesisBlock:          genesisBlock,
		GenesisHash:           genesisHash,
		GenesisMerkleRoot:     genesisBlock.MerkleRoot,
		GenesisReward:         25_000_000,
		CoinbaseTimestampText: "ViceversaChain is the Blockchain that counts backwards from 100M to 0",

		PowLimit:         mainPowLimit,
		PowLimitBits:     0x1d00ffff,
		PowTargetSpacing: 120 * time.Second,
		AveragingWindow:  24,

		PowNoRetargeting:        false,
		AllowMinDifficulty:      false,
		RetargetInterval:        2016,
		RetargetAdjustmentFactor: 4,
	}
}
