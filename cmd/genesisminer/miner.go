// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// hashUpdateSecs is the number of seconds between hash rate reports.
const hashUpdateSecs = 15

// solveBlock searches for a nonce that makes the block hash satisfy the
// target encoded in the header bits.  The search starts at the header nonce
// and bumps the timestamp by one second every time the nonce range wraps.
//
// It returns true with the header updated in place once a solution is found,
// or false when quit is closed first.
func solveBlock(header *wire.BlockHeader, ticker *time.Ticker,
	quit <-chan struct{}) bool {

	targetDifficulty := blockchain.CompactToBig(header.Bits)
	if targetDifficulty.Sign() <= 0 {
		return false
	}

	start := time.Now()
	hashesCompleted := uint64(0)
	for {
		select {
		case <-quit:
			return false

		case <-ticker.C:
			elapsed := time.Since(start).Seconds()
			gminLog.Infof("Tried %d hashes (%.0f hash/s), nonce %d, "+
				"time %d", hashesCompleted, float64(hashesCompleted)/elapsed,
				header.Nonce, header.Timestamp.Unix())

		default:
			// Non-blocking select to fall through
		}

		// Each hash is actually a double sha256 (two hashes), so count
		// both.
		hash := header.BlockHash()
		hashesCompleted += 2

		// The block is solved when the new block hash is less than the
		// target difficulty.
		if blockchain.HashToBig(&hash).Cmp(targetDifficulty) <= 0 {
			gminLog.Infof("Solved block %v after %d hashes", hash,
				hashesCompleted)
			return true
		}

		if header.Nonce == math.MaxUint32 {
			header.Nonce = 0
			header.Timestamp = header.Timestamp.Add(time.Second)
			continue
		}
		header.Nonce++
	}
}

// writeHashLiteral writes hash as a Go chainhash.Hash variable declaration.
func writeHashLiteral(w io.Writer, name, comment string, hash *chainhash.Hash) error {
	_, err := fmt.Fprintf(w, "// %s\nvar %s = chainhash.Hash([chainhash.HashSize]byte{ "+
		"// Make go vet happy.\n", comment, name)
	if err != nil {
		return err
	}
	for i := 0; i < chainhash.HashSize; i += 8 {
		line := "\t"
		for j, b := range hash[i : i+8] {
			if j > 0 {
				line += " "
			}
			line += fmt.Sprintf("0x%02x,", b)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "})")
	return err
}

// writeGenesis writes the header fields of block and its hash and merkle root
// as Go literals.
func writeGenesis(w io.Writer, block *wire.MsgBlock) error {
	header := &block.Header
	hash := block.BlockHash()

	_, err := fmt.Fprintf(w, "hash:        %v\nmerkle root: %v\ntime:        %d\n"+
		"nonce:       %d\nbits:        %08x\nversion:     %d\nsize:        %d\n\n",
		hash, header.MerkleRoot, header.Timestamp.Unix(), header.Nonce,
		header.Bits, header.Version, block.SerializeSize())
	if err != nil {
		return err
	}

	err = writeHashLiteral(w, "genesisHash", "genesisHash is the hash of "+
		"the first block in the block chain.", &hash)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeHashLiteral(w, "genesisMerkleRoot", "genesisMerkleRoot is "+
		"the hash of the first transaction in the genesis block.",
		&header.MerkleRoot)
}
