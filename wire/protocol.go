// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// BitcoinNet represents which bcx network a message belongs to.  The value is
// the little endian interpretation of the four message start bytes.
type BitcoinNet uint32

// Constants used to indicate the message network.  Each network carries two
// message starts: the current one and the legacy one inherited from the chain
// the network forked from, which is still recognized for pre-fork traffic.
const (
	// MainNet represents the main bcx network (e4 b6 a5 b8).
	MainNet BitcoinNet = 0xb8a5b6e4

	// TestNet represents the test network (f4 b2 b3 d6).
	TestNet BitcoinNet = 0xd6b3b2f4

	// RegTest represents the regression test network (f6 b8 b5 d7).
	RegTest BitcoinNet = 0xd7b5b8f6

	// LegacyMainNet is the pre-fork message start of the main network
	// (f8 ba a3 6f).
	LegacyMainNet BitcoinNet = 0x6fa3baf8

	// LegacyTestNet is the pre-fork message start of the test network
	// (0b 11 09 07).
	LegacyTestNet BitcoinNet = 0x0709110b

	// LegacyRegTest is the pre-fork message start of the regression test
	// network (fc bd b1 dc).
	LegacyRegTest BitcoinNet = 0xdcb1bdfc
)

// bnStrings is a map of networks back to their constant names for pretty
// printing.
var bnStrings = map[BitcoinNet]string{
	MainNet:       "MainNet",
	TestNet:       "TestNet",
	RegTest:       "RegTest",
	LegacyMainNet: "LegacyMainNet",
	LegacyTestNet: "LegacyTestNet",
	LegacyRegTest: "LegacyRegTest",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}

// MessageStart returns the four message start bytes in the order they
// appear on the wire.
func (n BitcoinNet) MessageStart() [4]byte {
	var start [4]byte
	littleEndian.PutUint32(start[:], uint32(n))
	return start
}
