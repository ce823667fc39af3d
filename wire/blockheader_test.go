// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Vived developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
	"time"
)

func TestBlockHeaderSerializeRoundTrip(t *testing.T) {
	h := &BlockHeader{
		Version:   1,
		Timestamp: time.Unix(1767462992, 0),
		Bits:      0x1d00ffff,
		Nonce:     2306512841,
	}
	for i := range h.PrevBlock {
		h.PrevBlock[i] = byte(i)
	}
	for i := range h.MerkleRoot {
		h.MerkleRoot[i] = byte(32 - i)
	}

	var buf bytes.Buffer
	if err := h.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: unexpected error: %v", err)
	}
	if buf.Len() != MaxBlockHeaderPayload {
		t.Fatalf("serialized length: got %d, want %d", buf.Len(), MaxBlockHeaderPayload)
	}

	var got BlockHeader
	if err := got.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}
	if got.Version != h.Version || got.PrevBlock != h.PrevBlock ||
		got.MerkleRoot != h.MerkleRoot || got.Bits != h.Bits || got.Nonce != h.Nonce ||
		!got.Timestamp.Equal(h.Timestamp) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestBlockHashDeterministic(t *testing.T) {
	h := &BlockHeader{Version: 1, Bits: 0x1d00ffff}
	h1 := h.BlockHash()
	h2 := h.BlockHash()
	if h1 != h2 {
		t.Fatalf("BlockHash is not deterministic")
	}

	h.Nonce = 1
	h3 := h.BlockHash()
	if h1 == h3 {
		t.Fatalf("BlockHash did not change when the header changed")
	}
}
