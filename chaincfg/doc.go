// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main bcx network, which is intended for the transfer
// of monetary value, there exists a public test network and a regression test
// network.  The three share a genesis block but are otherwise incompatible
// with each other (each using its own message start and consensus rules) and
// software should handle errors where input intended for one network is used
// on an application instance running on a different network.
//
// Parameters are not package variables.  A process builds the parameters of
// the network it runs on once, verifies them, and passes the result to every
// component that needs it:
//
//	registry := chaincfg.NewRegistry()
//	params, err := registry.Select("main")
//	if err != nil {
//		var mismatch *chaincfg.GenesisMismatchError
//		if errors.As(err, &mismatch) {
//			// The binary disagrees with every other node
//			// about the genesis block.  Never continue.
//		}
//		return err
//	}
//
// Build verifies the genesis block of the network against hard-coded hash and
// merkle root values and runs a set of consistency checks before returning.
//
// The genesis block itself is produced by BuildGenesisBlock, which is also
// usable on its own to derive new genesis blocks.
package chaincfg
