// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/viceversachain/vived/chaincfg/chainhash"
	"github.com/viceversachain/vived/math/uint256"
	"github.com/viceversachain/vived/wire"
)

// GenesisHeight is the height assigned to the genesis block on every
// network sharing this chain's reversed-height convention. Heights count
// down from here to zero as the chain grows.
const GenesisHeight = 100_000_000

// Params defines a network by its identity, its genesis descriptor, and the
// consensus constants that govern difficulty retargeting. A (typically
// global) var holds the *Params returned by one of the network constructors
// for use as the application's active network.
type Params struct {
	// Name is the human-readable identifier for the network, e.g. "mainnet".
	Name string

	// Net is the magic number identifying the network on the wire.
	Net uint32

	// DefaultPort is the default peer-to-peer port for the network.
	DefaultPort string

	// Bech32HRP is the human-readable part used for bech32-encoded
	// addresses on this network.
	Bech32HRP string

	// Address encoding magics.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32 hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// GenesisBlock is the header that seeds the index for this network.
	GenesisBlock *wire.BlockHeader

	// GenesisHash is the asserted hash of GenesisBlock. Any deviation
	// between this value and the hash actually computed from
	// GenesisBlock is a GenesisMismatch and is fatal at startup.
	GenesisHash chainhash.Hash

	// GenesisMerkleRoot is the asserted merkle root carried by the
	// genesis header, since this core does not construct the coinbase
	// transaction that would otherwise produce it.
	GenesisMerkleRoot chainhash.Hash

	// GenesisReward is the coinbase reward of the genesis block, in the
	// smallest network unit. Held as an integer to avoid the precision
	// drift a floating-point constant would invite.
	GenesisReward int64

	// CoinbaseTimestampText is the human-readable string embedded in the
	// genesis coinbase scriptSig, carried here for documentation and
	// tooling even though the core never parses a coinbase transaction.
	CoinbaseTimestampText string

	// PowLimit is the highest (easiest) proof-of-work target permitted
	// on this network.
	PowLimit uint256.Uint256

	// PowLimitBits is the compact-encoded form of PowLimit.
	PowLimitBits uint32

	// PowTargetSpacing is the expected time between blocks.
	PowTargetSpacing time.Duration

	// AveragingWindow is the number of headers DarkGravityWave averages
	// over when computing the next target (N in the retarget formula).
	AveragingWindow int64

	// PowNoRetargeting disables difficulty adjustment entirely; the
	// next target is always the parent's target. Used on regression
	// test networks.
	PowNoRetargeting bool

	// AllowMinDifficulty permits the legacy permitted-transition check
	// to accept any retarget. Only ever true on test networks.
	AllowMinDifficulty bool

	// RetargetInterval and RetargetAdjustmentFactor parameterize the
	// legacy PermittedDifficultyTransition boundary check retained for
	// wire compatibility with validators that have not adopted DGW.
	RetargetInterval         int64
	RetargetAdjustmentFactor int64
}
