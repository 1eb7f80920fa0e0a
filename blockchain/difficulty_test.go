// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// mainPowLimit is 2^224 - 1, the proof-of-work limit of the main and
	// test networks.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// mainPosLimit is 2^248 - 1, the proof-of-stake limit of the main and
	// test networks.
	mainPosLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 248), bigOne)

	// regressionLimit is 2^255 - 1, the limit of the regression test
	// network.
	regressionLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// TestBigToCompact ensures BigToCompact converts big integers to the expected
// compact representation.
func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  *big.Int
		out uint32
	}{
		{big.NewInt(0), 0},
		{big.NewInt(-1), 25231360},
		{mainPowLimit, 0x1d00ffff},
		{mainPosLimit, 0x2000ffff},
		{regressionLimit, 0x207fffff},
	}

	for x, test := range tests {
		r := BigToCompact(test.in)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got %d want %d\n",
				x, r, test.out)
			return
		}
	}
}

// TestCompactToBig ensures CompactToBig converts numbers using the compact
// representation to the expected big integers.
func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out int64
	}{
		{10000000, 0},
		{0x01003456, 0},
		{0x02123456, 0x1234},
		{0x03123456, 0x123456},
		{0x04923456, -0x12345600},
	}

	for x, test := range tests {
		n := CompactToBig(test.in)
		want := big.NewInt(test.out)
		if n.Cmp(want) != 0 {
			t.Errorf("TestCompactToBig test #%d failed: got %d want %d\n",
				x, n.Int64(), want.Int64())
			return
		}
	}

	// The genesis target is the main network limit with its lowest 208
	// bits truncated.
	want := new(big.Int).Lsh(big.NewInt(0xffff), 208)
	require.Equal(t, 0, CompactToBig(0x1d00ffff).Cmp(want))
	require.Equal(t, uint32(0x1d00ffff), BigToCompact(want))
}

// TestCalcWork ensures CalcWork calculates the expected work value from values
// in compact representation.
func TestCalcWork(t *testing.T) {
	tests := []struct {
		in  uint32
		out int64
	}{
		{10000000, 0},
		{0x1d00ffff, 0x100010001},
		{0x04923456, 0},
	}

	for x, test := range tests {
		r := CalcWork(test.in)
		if r.Int64() != test.out {
			t.Errorf("TestCalcWork test #%d failed: got %v want %d\n",
				x, r.Int64(), test.out)
			return
		}
	}
}

// TestHashToBig ensures hashes are interpreted as big-endian numbers.
func TestHashToBig(t *testing.T) {
	hash := newHashFromStr("000000000ff4e70d6a0760e248787944" +
		"e278e082d02f9cf174b0c5ef421f5049")
	n := HashToBig(hash)
	want, _ := new(big.Int).SetString("000000000ff4e70d6a0760e248787944"+
		"e278e082d02f9cf174b0c5ef421f5049", 16)
	require.Equal(t, 0, n.Cmp(want))

	// The source hash must be left untouched.
	require.Equal(t, byte(0x49), hash[0])
}

// TestCheckProofOfWork exercises the target range and hash checks against the
// genesis header.
func TestCheckProofOfWork(t *testing.T) {
	header := genesisBlock(t).Header
	require.NoError(t, CheckProofOfWork(&header, mainPowLimit))

	tests := []struct {
		name     string
		bits     uint32
		powLimit *big.Int
		code     ErrorCode
	}{
		{"zero target", 0x01003456, mainPowLimit, ErrUnexpectedDifficulty},
		{"negative target", 0x04923456, mainPowLimit, ErrUnexpectedDifficulty},
		{"above limit", 0x1d00ffff, new(big.Int).Lsh(bigOne, 200), ErrUnexpectedDifficulty},
		{"hash above target", 0x1c00ffff, mainPowLimit, ErrHighHash},
	}

	for _, test := range tests {
		h := header
		h.Bits = test.bits
		err := CheckProofOfWork(&h, test.powLimit)
		var rerr RuleError
		require.ErrorAs(t, err, &rerr, test.name)
		require.Equal(t, test.code, rerr.ErrorCode, test.name)
	}
}

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	require.Equal(t, "ErrHighHash", ErrHighHash.String())
	require.Equal(t, "Unknown ErrorCode (99)", ErrorCode(99).String())
}
