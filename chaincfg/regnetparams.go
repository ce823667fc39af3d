// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/viceversachain/vived/blockchain/standalone"
)

// RegNetParams returns the network parameters for the regression test
// network. This should not be confused with the public test network; it
// exists for unit tests and local integration tests, mines trivially
// (powLimit = 0x7fffff << 232, encoded by nbits 0x207fffff), and never adjusts
// difficulty.
func RegNetParams() *Params {
	regNetPowLimit, _, _ := standalone.DiffBitsToUint256(0x207fffff)

	genesisBlock, genesisHash := mustBuildGenesis(genesisDescriptor{
		version:     1,
		time:        1767462992,
		bits:        0x207fffff,
		nonce:       0,
		hash:        "cfcea8e99e9aa261f91d77ec75d97f88ec47b727787f0fc0d15e039ba125d989",
		merkleRoot:  "1f0f98b3c9d7b292e2cfd0cac5fcf46d267df410faa6f8e04d06573a5706c012",
	})

	return &Params{
		Name:        "regnet",
		Net:         0x56495652,
		DefaultPort: "31111",
		Bech32HRP:   "rvive",

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

		PowLimit:         regNetPowLimit,
		PowLimitBits:     0x207fffff,
		PowTargetSpacing: 1 * time.Second,
		AveragingWindow:  24,

		PowNoRetargeting:        true,
		AllowMinDifficulty:      true,
		RetargetInterval:        2016,
		RetargetAdjustmentFactor: 4,
	}
}
