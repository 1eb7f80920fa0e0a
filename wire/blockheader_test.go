// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// genesisHeader is the main network genesis block header.
var genesisHeader = BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: coinbaseTx.TxHash(),
	Timestamp:  time.Unix(1532485805, 0),
	Bits:       0x1d00ffff,
	Nonce:      2694997395,
}

// genesisHeaderEncoded is the expected serialization of genesisHeader.
var genesisHeaderEncoded = hexToBytes(
	"010000000000000000000000000000000000000000000000000000000000" +
		"000000000000dda1db979b65d9d6f7909f7452986eb3764e592fa6d7563b" +
		"c74be24b92905a15ade0575bffff001d9365a2a0")

// TestBlockHeader tests the BlockHeader API.
func TestBlockHeader(t *testing.T) {
	hash := chainhash.Hash{0x01}
	merkleHash := chainhash.Hash{0x02}
	bits := uint32(0x1d00ffff)
	nonce := uint32(0xdeadbeef)

	bh := NewBlockHeader(1, &hash, &merkleHash, bits, nonce)

	// Ensure we get the same data back out.
	if !bh.PrevBlock.IsEqual(&hash) {
		t.Errorf("NewBlockHeader: wrong prev hash - got %v, want %v",
			spew.Sprint(bh.PrevBlock), spew.Sprint(hash))
	}
	if !bh.MerkleRoot.IsEqual(&merkleHash) {
		t.Errorf("NewBlockHeader: wrong merkle root - got %v, want %v",
			spew.Sprint(bh.MerkleRoot), spew.Sprint(merkleHash))
	}
	require.Equal(t, bits, bh.Bits)
	require.Equal(t, nonce, bh.Nonce)
	require.Equal(t, 0, bh.Timestamp.Nanosecond())
}

// TestBlockHeaderSerialize tests block header serialization and hashing
// against the genesis header.
func TestBlockHeaderSerialize(t *testing.T) {
	var buf bytes.Buffer
	err := genesisHeader.Serialize(&buf)
	require.NoError(t, err)

	if !bytes.Equal(buf.Bytes(), genesisHeaderEncoded) {
		t.Fatalf("Serialize: wrong encoding - got %v, want %v",
			spew.Sdump(buf.Bytes()), spew.Sdump(genesisHeaderEncoded))
	}
	require.Len(t, genesisHeaderEncoded, MaxBlockHeaderPayload)

	wantHash, err := chainhash.NewHashFromStr(
		"000000000ff4e70d6a0760e248787944e278e082d02f9cf174b0c5ef421f5049")
	require.NoError(t, err)
	require.Equal(t, *wantHash, genesisHeader.BlockHash())

	var decoded BlockHeader
	err = decoded.Deserialize(bytes.NewReader(genesisHeaderEncoded))
	require.NoError(t, err)
	require.Equal(t, genesisHeader.BlockHash(), decoded.BlockHash())
	require.True(t, genesisHeader.Timestamp.Equal(decoded.Timestamp))
}
