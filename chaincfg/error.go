// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrUnknownNetwork describes an error where the network name passed
	// to Build or Registry.Select is not one of the supported networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoNetworkSelected is returned by Registry accessors before a
	// network has been selected.
	ErrNoNetworkSelected = errors.New("no network selected")

	// ErrNetworkAlreadySelected is returned when a registry that already
	// selected a network is asked to select a different one.
	ErrNetworkAlreadySelected = errors.New("a different network is " +
		"already selected")

	// ErrUnknownDeployment describes an error where a deployment id or
	// name does not identify a defined deployment.
	ErrUnknownDeployment = errors.New("unknown deployment")

	// ErrInvalidParams is wrapped by every failed consistency check run on
	// freshly built parameters.
	ErrInvalidParams = errors.New("invalid chain parameters")
)

// GenesisField identifies the genesis value that failed verification.
type GenesisField string

// The genesis values compared against their hard-coded expectations.
const (
	GenesisFieldHash       GenesisField = "hash"
	GenesisFieldMerkleRoot GenesisField = "merkle root"
)

// GenesisMismatchError describes a genesis block whose computed hash or merkle
// root differs from the value hard-coded for the network.  A node must never
// continue with such a block.
type GenesisMismatchError struct {
	Network  string
	Field    GenesisField
	Computed chainhash.Hash
	Expected chainhash.Hash
}

// Error satisfies the error interface and prints human-readable errors.
func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis block %s mismatch: computed %v, "+
		"expected %v", e.Network, e.Field, e.Computed, e.Expected)
}
