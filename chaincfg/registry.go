// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// network ties a network name to its constructor and the genesis values its
// build must reproduce.
type network struct {
	name           string
	newParams      func() *Params
	wantHash       *chainhash.Hash
	wantMerkleRoot *chainhash.Hash
}

// networks lists the supported networks in display order.
var networks = []network{
	{"main", newMainNetParams, &genesisHash, &genesisMerkleRoot},
	{"test", newTestNetParams, &genesisHash, &genesisMerkleRoot},
	{"regtest", newRegressionNetParams, &genesisHash, &genesisMerkleRoot},
}

// SupportedNetworks returns the names accepted by Build.
func SupportedNetworks() []string {
	names := make([]string, 0, len(networks))
	for _, n := range networks {
		names = append(names, n.name)
	}
	return names
}

// lookupNetwork returns the network registered under name.
func lookupNetwork(name string) (*network, error) {
	for i := range networks {
		if networks[i].name == name {
			return &networks[i], nil
		}
	}
	return nil, fmt.Errorf("%w %q (supported: %v)", ErrUnknownNetwork,
		name, SupportedNetworks())
}

// Build constructs the parameters of the named network and verifies them.
//
// An unknown name returns an error wrapping ErrUnknownNetwork and builds
// nothing.  A genesis block whose hash or merkle root differs from the
// hard-coded value returns a *GenesisMismatchError; callers must treat that as
// fatal.  Parameters that fail a consistency check return an error wrapping
// ErrInvalidParams.
func Build(name string) (*Params, error) {
	n, err := lookupNetwork(name)
	if err != nil {
		return nil, err
	}
	return buildNetwork(n)
}

// buildNetwork runs the constructor of n and verifies the result.
func buildNetwork(n *network) (*Params, error) {
	params := n.newParams()

	err := verifyGenesis(n.name, params.GenesisBlock, n.wantHash,
		n.wantMerkleRoot)
	if err != nil {
		return nil, err
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	log.Debugf("Built %s parameters with genesis %v", params.Name,
		params.GenesisHash)
	return params, nil
}

// Registry hands out the parameters of the one network a process runs on.  It
// starts unselected; Select moves it to selected for good.
//
// A Registry is not safe for concurrent use.  Select is meant to run once at
// startup, before the parameters are shared.
type Registry struct {
	params *Params
}

// NewRegistry returns a registry with no network selected.
func NewRegistry() *Registry {
	return &Registry{}
}

// Select builds and caches the parameters of the named network.  Selecting
// the already selected network again returns the cached parameters.  Selecting
// any other network returns ErrNetworkAlreadySelected.  Errors from Build are
// returned unchanged and leave the registry unselected.
func (r *Registry) Select(name string) (*Params, error) {
	if r.params != nil {
		if r.params.Name == name {
			return r.params, nil
		}
		return nil, fmt.Errorf("%w: %s is selected, cannot select %q",
			ErrNetworkAlreadySelected, r.params.Name, name)
	}

	params, err := Build(name)
	if err != nil {
		return nil, err
	}

	log.Infof("Selected %s network", params.Name)
	r.params = params
	return params, nil
}

// Params returns the selected parameters or ErrNoNetworkSelected.
func (r *Registry) Params() (*Params, error) {
	if r.params == nil {
		return nil, ErrNoNetworkSelected
	}
	return r.params, nil
}

// OverrideDeploymentWindow rewrites one deployment window of the selected
// parameters.  See Params.OverrideDeploymentWindow.
func (r *Registry) OverrideDeploymentWindow(id DeploymentID, start,
	expire uint64) error {

	params, err := r.Params()
	if err != nil {
		return err
	}
	return params.OverrideDeploymentWindow(id, start, expire)
}
