// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// genesisBlockBytes is the serialized genesis block shared by every network.
var genesisBlockBytes, _ = hex.DecodeString(
	"010000000000000000000000000000000000000000000000000000000000" +
		"000000000000dda1db979b65d9d6f7909f7452986eb3764e592fa6d7563b" +
		"c74be24b92905a15ade0575bffff001d9365a2a001010000000100000000" +
		"00000000000000000000000000000000000000000000000000000000ffff" +
		"ffff5a04ffff001d01044c515468652054696d652032382f30372f323031" +
		"382020486973204d616a65737479204b696e67204d6168612056616a6972" +
		"616c6f6e676b6f726e20426f64696e647261646562617961766172616e67" +
		"6b756effffffff0100f2052a01000000434104678afdb0fe5548271967f1" +
		"a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f3" +
		"5504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000")

// TestGenesisBlock tests the genesis block of every network for validity by
// checking the encoded bytes and hashes.
func TestGenesisBlock(t *testing.T) {
	for _, name := range SupportedNetworks() {
		params, err := Build(name)
		require.NoError(t, err, name)

		// Encode the genesis block to raw bytes.
		var buf bytes.Buffer
		err = params.GenesisBlock.Serialize(&buf)
		if err != nil {
			t.Fatalf("TestGenesisBlock: %v", err)
		}

		// Ensure the encoded block matches the expected bytes.
		if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
			t.Fatalf("TestGenesisBlock: %s genesis block does not "+
				"appear valid - got %v, want %v", name,
				spew.Sdump(buf.Bytes()),
				spew.Sdump(genesisBlockBytes))
		}

		// Check hash of the block against expected hash.
		hash := params.GenesisBlock.BlockHash()
		if !params.GenesisHash.IsEqual(&hash) {
			t.Fatalf("TestGenesisBlock: %s genesis block hash does "+
				"not appear valid - got %v, want %v", name,
				spew.Sdump(hash), spew.Sdump(params.GenesisHash))
		}
		require.Equal(t, "000000000ff4e70d6a0760e248787944e278e082d02f9c"+
			"f174b0c5ef421f5049", hash.String(), name)
		require.Equal(t, "155a90924be24bc73b56d7a62f594e76b36e9852749f90"+
			"f7d6d9659b97dba1dd",
			params.GenesisBlock.Header.MerkleRoot.String(), name)
	}
}

// TestGenesisDeterministic ensures rebuilding the genesis block from its
// literals yields identical but independent blocks.
func TestGenesisDeterministic(t *testing.T) {
	a := newGenesisBlock()
	b := newGenesisBlock()
	require.NotSame(t, a, b)
	require.Equal(t, a.BlockHash(), b.BlockHash())
	require.Equal(t, a.Header.MerkleRoot, b.Header.MerkleRoot)

	rawA, err := a.Bytes()
	require.NoError(t, err)
	rawB, err := b.Bytes()
	require.NoError(t, err)
	require.Equal(t, rawA, rawB)

	// Mutating one copy must not leak into the other.
	a.Transactions[0].TxOut[0].Value = 0
	require.Equal(t, int64(genesisReward), b.Transactions[0].TxOut[0].Value)
}

// TestGenesisCoinbase checks the shape of the genesis coinbase transaction.
func TestGenesisCoinbase(t *testing.T) {
	block := newGenesisBlock()
	require.Len(t, block.Transactions, 1)

	tx := block.Transactions[0]
	require.True(t, tx.IsCoinBase())
	require.Equal(t, int32(1), tx.Version)
	require.Zero(t, tx.LockTime)
	require.Equal(t, wire.MaxTxInSequenceNum, tx.TxIn[0].Sequence)
	require.True(t, tx.TxIn[0].PreviousOutPoint.IsNull())
	require.Equal(t, 90, len(tx.TxIn[0].SignatureScript))
	require.Equal(t, []byte{0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04, 0x4c, 0x51},
		tx.TxIn[0].SignatureScript[:9])
	require.Equal(t, []byte(genesisMessage), tx.TxIn[0].SignatureScript[9:])
	require.Equal(t, btcutil.Amount(tx.TxOut[0].Value).ToBTC(), 50.0)
	require.Equal(t, 217, tx.SerializeSize())
	require.Equal(t, 298, block.SerializeSize())

	// A single transaction is its own merkle root.
	require.Equal(t, tx.TxHash(), block.Header.MerkleRoot)
	require.True(t, block.Header.PrevBlock.IsEqual(&chainhash.Hash{}))
}

// TestBuildGenesisBlockInputs ensures every input lands where it belongs.
func TestBuildGenesisBlockInputs(t *testing.T) {
	claim := []byte{0x51}
	block := BuildGenesisBlock([]byte("hello"), claim, 1234, 42,
		0x207fffff, 4, 7)

	require.Equal(t, int32(4), block.Header.Version)
	require.Equal(t, int64(1234), block.Header.Timestamp.Unix())
	require.Equal(t, uint32(42), block.Header.Nonce)
	require.Equal(t, uint32(0x207fffff), block.Header.Bits)
	require.Equal(t, claim, block.Transactions[0].TxOut[0].PkScript)
	require.Equal(t, int64(7), block.Transactions[0].TxOut[0].Value)
	require.Equal(t, append([]byte{0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04,
		0x05}, "hello"...), block.Transactions[0].TxIn[0].SignatureScript)
	require.NoError(t, blockchain.CheckMerkleRoot(block))

	// Messages too large for a regular push still build.
	long := bytes.Repeat([]byte{'x'}, 1000)
	block = BuildGenesisBlock(long, claim, 0, 0, 0x207fffff, 1, 0)
	require.Equal(t, long, block.Transactions[0].TxIn[0].SignatureScript[10:])
}

// TestVerifyGenesisMismatch ensures a network whose hard-coded genesis values
// disagree with the constructed block fails to build, naming the value and
// network that failed.
func TestVerifyGenesisMismatch(t *testing.T) {
	badHash := genesisHash
	badHash[31] ^= 0xff
	badMerkle := genesisMerkleRoot
	badMerkle[0] ^= 0x01

	tests := []struct {
		name       string
		net        network
		wantField  GenesisField
		wantExpect chainhash.Hash
	}{
		{
			name:       "hash",
			net:        network{"main", newMainNetParams, &badHash, &genesisMerkleRoot},
			wantField:  GenesisFieldHash,
			wantExpect: badHash,
		},
		{
			name:       "merkle root",
			net:        network{"regtest", newRegressionNetParams, &genesisHash, &badMerkle},
			wantField:  GenesisFieldMerkleRoot,
			wantExpect: badMerkle,
		},
	}

	for _, test := range tests {
		params, err := buildNetwork(&test.net)
		require.Nil(t, params, test.name)

		var mismatch *GenesisMismatchError
		require.True(t, errors.As(err, &mismatch), test.name)
		require.Equal(t, test.net.name, mismatch.Network, test.name)
		require.Equal(t, test.wantField, mismatch.Field, test.name)
		require.Equal(t, test.wantExpect, mismatch.Expected, test.name)
		require.Contains(t, err.Error(), test.net.name, test.name)
		require.Contains(t, err.Error(), string(test.wantField), test.name)
	}

	// A header committing to the wrong root is caught even when the
	// transactions hash correctly.
	block := newGenesisBlock()
	block.Header.MerkleRoot = badMerkle
	err := verifyGenesis("main", block, ptr(block.BlockHash()), &genesisMerkleRoot)
	var mismatch *GenesisMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, GenesisFieldMerkleRoot, mismatch.Field)
}

// ptr returns a pointer to a copy of h.
func ptr(h chainhash.Hash) *chainhash.Hash {
	return &h
}
