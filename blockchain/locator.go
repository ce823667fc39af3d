// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/viceversachain/vived/chaincfg"
	"github.com/viceversachain/vived/chaincfg/chainhash"
)

// BlockLocator is used to help locate a specific block. The algorithm for
// building the block locator is to add the hashes in reverse order until
// the genesis block is reached. In order to keep the list of locator
// hashes to a reasonable number of entries, the step between each entry is
// doubled each loop iteration to exponentially decrease the number of
// hashes as a function of the distance from the block being located.
//
// "Reverse order" here means walking toward genesis, which under this
// package's convention is walking toward higher heights, the opposite of
// the classical direction.
type BlockLocator []chainhash.Hash

// locatorCap is the capacity reserved for a new locator slice, matching
// the typical size a doubling-step walk to genesis produces.
const locatorCap = 32

// GetLocator returns a block locator for the passed block node. See the
// BlockLocator type comment for details on the algorithm used to create a
// locator.
func GetLocator(node *blockNode) BlockLocator {
	if node == nil {
		return nil
	}

	locator := make(BlockLocator, 0, locatorCap)

	step := int64(1)
	n := node
	for n != nil {
		locator = append(locator, n.hash)

		if n.height >= chaincfg.GenesisHeight {
			break
		}

		// Walk back by step toward genesis (higher height), doubling
		// the step after the first 10 entries, and clamp the target
		// height so it never overshoots genesis.
		nextHeight := n.height + step
		if nextHeight > chaincfg.GenesisHeight {
			nextHeight = chaincfg.GenesisHeight
		}
		n = n.GetAncestor(nextHeight)

		if len(locator) > 10 {
			step *= 2
		}
	}

	return locator
}
