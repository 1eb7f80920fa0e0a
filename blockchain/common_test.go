// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// genesisBlockHex is the serialized genesis block shared by all networks.
const genesisBlockHex = "010000000000000000000000000000000000000000000000000000000000" +
	"000000000000dda1db979b65d9d6f7909f7452986eb3764e592fa6d7563b" +
	"c74be24b92905a15ade0575bffff001d9365a2a001010000000100000000" +
	"00000000000000000000000000000000000000000000000000000000ffff" +
	"ffff5a04ffff001d01044c515468652054696d652032382f30372f323031" +
	"382020486973204d616a65737479204b696e67204d6168612056616a6972" +
	"616c6f6e676b6f726e20426f64696e647261646562617961766172616e67" +
	"6b756effffffff0100f2052a01000000434104678afdb0fe5548271967f1" +
	"a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f3" +
	"5504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

// genesisBlock decodes genesisBlockHex and fails the test on error.
func genesisBlock(t *testing.T) *wire.MsgBlock {
	t.Helper()

	raw, err := hex.DecodeString(genesisBlockHex)
	if err != nil {
		t.Fatalf("bad genesis hex: %v", err)
	}
	var block wire.MsgBlock
	if err := block.Deserialize(bytes.NewReader(raw)); err != nil {
		t.Fatalf("unable to decode genesis block: %v", err)
	}
	return &block
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
