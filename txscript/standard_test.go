// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// genesisPubKey is the uncompressed public key paid to by the genesis coinbase.
var genesisPubKey = hexToBytes("04678afdb0fe5548271967f1a67130b7105cd6a8" +
	"28e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c" +
	"384df7ba0b8d578a4c702b6bf11d5f")

// TestPayToPubKeyScript ensures pay-to-pubkey scripts are built and recognized.
func TestPayToPubKeyScript(t *testing.T) {
	t.Parallel()

	script, err := PayToPubKeyScript(genesisPubKey)
	require.NoError(t, err)
	require.Len(t, script, 67)
	require.Equal(t, byte(OP_DATA_65), script[0])
	require.Equal(t, byte(OP_CHECKSIG), script[66])
	require.Equal(t, genesisPubKey, ExtractPubKey(script))
	require.Equal(t, PubKeyTy, GetScriptClass(script))

	compressed := append([]byte{0x02}, genesisPubKey[1:33]...)
	script, err = PayToPubKeyScript(compressed)
	require.NoError(t, err)
	require.Equal(t, compressed, ExtractPubKey(script))
}

// TestPayToPubKeyHashScript ensures pay-to-pubkey-hash scripts are built for
// 20-byte hashes only.
func TestPayToPubKeyHashScript(t *testing.T) {
	t.Parallel()

	hash := hexToBytes("2f14c45d8b84e55a8095ca65f2fc607cc82a69a1")
	script, err := PayToPubKeyHashScript(hash)
	require.NoError(t, err)
	require.Equal(t,
		hexToBytes("76a9142f14c45d8b84e55a8095ca65f2fc607cc82a69a188ac"),
		script)
	require.Equal(t, PubKeyHashTy, GetScriptClass(script))
	require.Nil(t, ExtractPubKey(script))

	_, err = PayToPubKeyHashScript(hash[:19])
	require.True(t, errors.Is(err, ErrInvalidPubKeyHash))
}

// TestScriptClassStringer tests the stringized output for the script class
// type.
func TestScriptClassStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ScriptClass
		want string
	}{
		{NonStandardTy, "nonstandard"},
		{PubKeyTy, "pubkey"},
		{PubKeyHashTy, "pubkeyhash"},
		{0xff, "Invalid"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.in.String())
	}
	require.Equal(t, NonStandardTy, GetScriptClass([]byte{OP_RETURN}))
}

// TestDisasmString ensures scripts are disassembled into their one line form.
func TestDisasmString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		script  []byte
		want    string
		wantErr bool
	}{
		{
			name:   "coinbase prefix",
			script: hexToBytes("04ffff001d0104"),
			want:   "ffff001d 04",
		},
		{
			name:   "pay to pubkey hash",
			script: hexToBytes("76a9142f14c45d8b84e55a8095ca65f2fc607cc82a69a188ac"),
			want: "OP_DUP OP_HASH160 2f14c45d8b84e55a8095ca65f2fc607cc82a69a1 " +
				"OP_EQUALVERIFY OP_CHECKSIG",
		},
		{
			name:   "small ints",
			script: []byte{OP_0, OP_1, OP_16, OP_1NEGATE},
			want:   "0 OP_1 OP_16 OP_1NEGATE",
		},
		{
			name:   "pushdata1",
			script: []byte{OP_PUSHDATA1, 2, 0xab, 0xcd},
			want:   "abcd",
		},
		{
			name:    "short push",
			script:  []byte{OP_DUP, OP_DATA_4, 0x01},
			want:    "OP_DUP [error]",
			wantErr: true,
		},
		{
			name:    "short pushdata2 length",
			script:  []byte{OP_PUSHDATA2, 0x01},
			want:    "[error]",
			wantErr: true,
		},
	}

	for _, test := range tests {
		got, err := DisasmString(test.script)
		require.Equal(t, test.want, got, test.name)
		if test.wantErr {
			require.ErrorIs(t, err, ErrStackShortScript, test.name)
		} else {
			require.NoError(t, err, test.name)
		}
	}
}
