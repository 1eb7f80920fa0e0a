// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/chaincfg"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// newTicker returns a ticker that won't fire during a test.
func newTicker(t *testing.T) *time.Ticker {
	ticker := time.NewTicker(time.Hour)
	t.Cleanup(ticker.Stop)
	return ticker
}

// TestBuildDefaultBlock ensures the default inputs rebuild the genesis block
// of the registered networks, which already satisfies its target.
func TestBuildDefaultBlock(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)

	block, err := buildBlock(cfg)
	require.NoError(t, err)

	params, err := chaincfg.Build("main")
	require.NoError(t, err)

	got, err := block.Bytes()
	require.NoError(t, err)
	want, err := params.GenesisBlock.Bytes()
	require.NoError(t, err)
	require.True(t, bytes.Equal(got, want), "block mismatch:\n%s\n%s",
		spew.Sdump(got), spew.Sdump(want))

	nonce := block.Header.Nonce
	require.True(t, solveBlock(&block.Header, newTicker(t), nil))
	require.Equal(t, nonce, block.Header.Nonce)
}

// TestSolveBlock ensures the search finds a nonce for an easy target.
func TestSolveBlock(t *testing.T) {
	cfg, err := loadConfig([]string{"--mine", "-b", "207fffff", "-n", "0",
		"-m", "regression"})
	require.NoError(t, err)

	block, err := buildBlock(cfg)
	require.NoError(t, err)

	require.True(t, solveBlock(&block.Header, newTicker(t), nil))

	limit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255),
		big.NewInt(1))
	require.NoError(t, blockchain.CheckProofOfWork(&block.Header, limit))
}

// TestSolveBlockQuit ensures the search stops once quit is closed.
func TestSolveBlockQuit(t *testing.T) {
	cfg, err := loadConfig([]string{"-b", "03000001", "-n", "0"})
	require.NoError(t, err)

	block, err := buildBlock(cfg)
	require.NoError(t, err)

	quit := make(chan struct{})
	close(quit)
	require.False(t, solveBlock(&block.Header, newTicker(t), quit))
	require.Equal(t, uint32(0), block.Header.Nonce)
}

// TestSolveBlockNonceWrap ensures the timestamp moves on when the nonce range
// is exhausted.
func TestSolveBlockNonceWrap(t *testing.T) {
	cfg, err := loadConfig([]string{"-b", "03000001", "-n", "4294967295"})
	require.NoError(t, err)

	block, err := buildBlock(cfg)
	require.NoError(t, err)
	timestamp := block.Header.Timestamp

	// Let the search run long enough to wrap the nonce, then stop it.
	quit := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(quit)
	}()
	require.False(t, solveBlock(&block.Header, newTicker(t), quit))
	require.Equal(t, timestamp.Add(time.Second), block.Header.Timestamp)
}

// TestWriteGenesis checks the printed literals.
func TestWriteGenesis(t *testing.T) {
	params, err := chaincfg.Build("main")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeGenesis(&buf, params.GenesisBlock))

	out := buf.String()
	require.Contains(t, out, "hash:        "+params.GenesisHash.String()+"\n")
	require.Contains(t, out, "nonce:       2694997395\n")
	require.Contains(t, out, "bits:        1d00ffff\n")
	require.Contains(t, out, "var genesisHash = chainhash.Hash(")
	require.Contains(t, out, "\t0x49, 0x50, 0x1f, 0x42, 0xef, 0xc5, 0xb0, 0x74,\n")
	require.Contains(t, out, "\t0xdd, 0xa1, 0xdb, 0x97, 0x9b, 0x65, 0xd9, 0xd6,\n")
}
