// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the wire-level block header used by the chain
// index.  The layout and serialization are bit-identical to Bitcoin's; only
// the semantic interpretation of height (decreasing along the chain, see
// the blockchain package) differs from the classical convention.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/viceversachain/vived/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes in a serialized block
// header: 4 byte version + 32 byte previous block hash + 32 byte merkle
// root hash + 4 byte timestamp + 4 byte difficulty bits + 4 byte nonce.
const MaxBlockHeaderPayload = 4 + (chainhash.HashSize * 2) + 4 + 4 + 4

// BlockHeader defines information about a block and is used in the
// chain-index to identify it.  It does not carry the block's transactions;
// body validation is outside the scope of this module.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// PrevBlock is the hash of the previous block header in the chain.
	PrevBlock chainhash.Hash

	// MerkleRoot is the merkle tree reference to the hash of all
	// transactions for the block.
	MerkleRoot chainhash.Hash

	// Timestamp is the time at which the block was created.  Recorded with
	// one second precision.
	Timestamp time.Time

	// Bits is the difficulty target for the block encoded in its compact
	// representation.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	// Serialize errors are impossible here: bytes.Buffer.Write never fails.
	_ = h.Serialize(buf)
	return chainhash.HashH(buf.Bytes())
}

// Serialize encodes a block header into the provided writer using the
// canonical little-endian wire format.
func (h *BlockHeader) Serialize(w io.Writer) error {
	sec := uint32(h.Timestamp.Unix())
	return writeElements(w, h.Version, &h.PrevBlock, &h.MerkleRoot, sec, h.Bits, h.Nonce)
}

// Deserialize decodes a block header from the provided reader using the
// canonical little-endian wire format.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	var sec uint32
	err := readElements(r, &h.Version, &h.PrevBlock, &h.MerkleRoot, &sec, &h.Bits, &h.Nonce)
	if err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(sec), 0)
	return nil
}

func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return binary.Write(w, binary.LittleEndian, e)
	case uint32:
		return binary.Write(w, binary.LittleEndian, e)
	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	default:
		return fmt.Errorf("wire: writeElement: unsupported type %T", element)
	}
}

func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		return binary.Read(r, binary.LittleEndian, e)
	case *uint32:
		return binary.Read(r, binary.LittleEndian, e)
	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	default:
		return fmt.Errorf("wire: readElement: unsupported type %T", element)
	}
}
