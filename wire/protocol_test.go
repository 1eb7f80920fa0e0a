// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBitcoinNetStringer tests the stringized output for network types.
func TestBitcoinNetStringer(t *testing.T) {
	tests := []struct {
		in   BitcoinNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{RegTest, "RegTest"},
		{LegacyMainNet, "LegacyMainNet"},
		{0xffffffff, "Unknown BitcoinNet (4294967295)"},
	}

	for i, test := range tests {
		require.Equal(t, test.want, test.in.String(), "test #%d", i)
	}
}

// TestMessageStart ensures the network magics produce the message start bytes
// in wire order.
func TestMessageStart(t *testing.T) {
	tests := []struct {
		net  BitcoinNet
		want [4]byte
	}{
		{MainNet, [4]byte{0xe4, 0xb6, 0xa5, 0xb8}},
		{TestNet, [4]byte{0xf4, 0xb2, 0xb3, 0xd6}},
		{RegTest, [4]byte{0xf6, 0xb8, 0xb5, 0xd7}},
		{LegacyMainNet, [4]byte{0xf8, 0xba, 0xa3, 0x6f}},
		{LegacyTestNet, [4]byte{0x0b, 0x11, 0x09, 0x07}},
		{LegacyRegTest, [4]byte{0xfc, 0xbd, 0xb1, 0xdc}},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.net.MessageStart(), test.net.String())
	}
}
