// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/txscript"
	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// coinbaseBitsTag is the difficulty literal every genesis coinbase
	// signature script starts with.  It is not tied to the block's bits.
	coinbaseBitsTag = 486604799

	// coinbaseTag is the small integer pushed after coinbaseBitsTag.
	coinbaseTag = 4
)

// Genesis inputs shared by all networks.
const (
	genesisMessage = "The Time 28/07/2018  His Majesty King Maha " +
		"Vajiralongkorn Bodindradebayavarangkun"
	genesisClaimPubKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e039" +
		"09a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7" +
		"ba0b8d578a4c702b6bf11d5f"
	genesisTime    = 1532485805
	genesisNonce   = 2694997395
	genesisBits    = 0x1d00ffff
	genesisVersion = 1
	genesisReward  = 50 * btcutil.SatoshiPerBitcoin
)

// genesisHash is the hash of the first block in the block chain of every
// network.
var genesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x49, 0x50, 0x1f, 0x42, 0xef, 0xc5, 0xb0, 0x74,
	0xf1, 0x9c, 0x2f, 0xd0, 0x82, 0xe0, 0x78, 0xe2,
	0x44, 0x79, 0x78, 0x48, 0xe2, 0x60, 0x07, 0x6a,
	0x0d, 0xe7, 0xf4, 0x0f, 0x00, 0x00, 0x00, 0x00,
})

// genesisMerkleRoot is the hash of the first transaction in the genesis block
// of every network.
var genesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xdd, 0xa1, 0xdb, 0x97, 0x9b, 0x65, 0xd9, 0xd6,
	0xf7, 0x90, 0x9f, 0x74, 0x52, 0x98, 0x6e, 0xb3,
	0x76, 0x4e, 0x59, 0x2f, 0xa6, 0xd7, 0x56, 0x3b,
	0xc7, 0x4b, 0xe2, 0x4b, 0x92, 0x90, 0x5a, 0x15,
})

// BuildGenesisBlock assembles a single transaction block from the passed
// coinbase message, reward claim script and header fields.
//
// The coinbase input spends the null outpoint and its signature script pushes
// the fixed difficulty literal, a tag byte and the message.  The header's
// previous block hash is zero and its merkle root commits to the coinbase.  No
// proof of work is searched for, so nonce and bits must already solve the
// block for it to be valid.
func BuildGenesisBlock(message, claimScript []byte, timestamp, nonce, bits uint32,
	version int32, reward btcutil.Amount) *wire.MsgBlock {

	// The builder starts empty and the message push carries no limits, so
	// building the script can't fail.
	sigScript, _ := txscript.NewScriptBuilder().
		AddInt64(coinbaseBitsTag).
		AddDataDirect([]byte{coinbaseTag}).
		AddFullData(message).
		Script()

	coinbase := wire.NewMsgTx(wire.TxVersion)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript))
	coinbase.AddTxOut(wire.NewTxOut(int64(reward), claimScript))

	merkleRoot := blockchain.CalcMerkleRoot([]*wire.MsgTx{coinbase})
	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version:    version,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(int64(timestamp), 0),
		Bits:       bits,
		Nonce:      nonce,
	})
	block.AddTransaction(coinbase)
	return block
}

// genesisClaimScript returns the pay-to-pubkey script the genesis reward is
// paid to.
func genesisClaimScript() []byte {
	pubKey, err := hex.DecodeString(genesisClaimPubKey)
	if err != nil {
		panic("invalid genesis claim key in source file: " + err.Error())
	}
	script, err := txscript.PayToPubKeyScript(pubKey)
	if err != nil {
		panic("unable to build genesis claim script: " + err.Error())
	}
	return script
}

// newGenesisBlock builds the genesis block from the literals shared by all
// networks.  Every call returns a fresh block.
func newGenesisBlock() *wire.MsgBlock {
	return BuildGenesisBlock([]byte(genesisMessage), genesisClaimScript(),
		genesisTime, genesisNonce, genesisBits, genesisVersion,
		genesisReward)
}

// verifyGenesis checks the computed hash and merkle root of a network's
// genesis block against their expected values.  The hash is checked first.
func verifyGenesis(network string, block *wire.MsgBlock, wantHash,
	wantMerkleRoot *chainhash.Hash) error {

	hash := block.BlockHash()
	if !hash.IsEqual(wantHash) {
		return &GenesisMismatchError{
			Network:  network,
			Field:    GenesisFieldHash,
			Computed: hash,
			Expected: *wantHash,
		}
	}

	merkleRoot := blockchain.CalcMerkleRoot(block.Transactions)
	if !merkleRoot.IsEqual(wantMerkleRoot) ||
		!block.Header.MerkleRoot.IsEqual(wantMerkleRoot) {

		return &GenesisMismatchError{
			Network:  network,
			Field:    GenesisFieldMerkleRoot,
			Computed: merkleRoot,
			Expected: *wantMerkleRoot,
		}
	}

	return nil
}
