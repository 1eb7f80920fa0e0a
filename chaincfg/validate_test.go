// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/txscript"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
)

// TestValidateParams ensures each consistency check rejects parameters that
// break it.
func TestValidateParams(t *testing.T) {
	lowLimit := newLimit(200)
	badKey := make([]byte, 65)
	badKey[0] = 0x04

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"no checkpoints", func(p *Params) {
			p.Checkpoints = nil
		}},
		{"first checkpoint not at genesis height", func(p *Params) {
			p.Checkpoints[0].Height = 1
		}},
		{"first checkpoint not genesis hash", func(p *Params) {
			p.Checkpoints[0].Hash = p.BIP0034Hash
		}},
		{"checkpoints out of order", func(p *Params) {
			p.Checkpoints = append(p.Checkpoints,
				Checkpoint{10, p.GenesisHash},
				Checkpoint{10, p.GenesisHash})
		}},
		{"checkpoint without hash", func(p *Params) {
			p.Checkpoints = append(p.Checkpoints, Checkpoint{10, nil})
		}},
		{"threshold above window", func(p *Params) {
			p.RuleChangeActivationThreshold = p.MinerConfirmationWindow + 1
		}},
		{"empty window", func(p *Params) {
			p.MinerConfirmationWindow = 0
			p.RuleChangeActivationThreshold = 0
		}},
		{"shared deployment bit", func(p *Params) {
			p.Deployments[DeploymentPoS].BitNumber =
				p.Deployments[DeploymentCSV].BitNumber
		}},
		{"reserved deployment bit", func(p *Params) {
			p.Deployments[DeploymentPoS].BitNumber = 29
		}},
		{"deployment starts after expiry", func(p *Params) {
			p.Deployments[DeploymentCSV].StartTime =
				p.Deployments[DeploymentCSV].ExpireTime + 1
		}},
		{"pow bits mismatch", func(p *Params) {
			p.PowLimitBits = 0x1d00fffe
		}},
		{"pos bits mismatch", func(p *Params) {
			p.PosLimitBits = p.PowLimitBits
		}},
		{"missing pos limit", func(p *Params) {
			p.PosLimit = nil
		}},
		{"genesis above pow limit", func(p *Params) {
			p.PowLimit = lowLimit
			p.PowLimitBits = blockchain.BigToCompact(lowLimit)
		}},
		{"genesis pays a script", func(p *Params) {
			p.GenesisBlock.Transactions[0].TxOut[0].PkScript =
				[]byte{txscript.OP_TRUE}
		}},
		{"genesis pays a pubkey hash", func(p *Params) {
			script, err := p.PremineScript()
			require.NoError(t, err)
			p.GenesisBlock.Transactions[0].TxOut[0].PkScript = script
		}},
		{"genesis claim key off curve", func(p *Params) {
			script, err := txscript.PayToPubKeyScript(badKey)
			require.NoError(t, err)
			p.GenesisBlock.Transactions[0].TxOut[0].PkScript = script
		}},
		{"genesis with two outputs", func(p *Params) {
			tx := p.GenesisBlock.Transactions[0]
			tx.TxOut = append(tx.TxOut, tx.TxOut[0])
		}},
		{"premine checksum", func(p *Params) {
			p.PremineAddress = "15HwdwJ8JSEG8Bxyahnv5wqpG2LJ9SjNAh"
		}},
		{"premine payload size", func(p *Params) {
			p.PremineAddress = base58.CheckEncode(make([]byte, 10), 0)
		}},
	}

	for _, test := range tests {
		p := mustBuild(t, "main")
		require.NoError(t, validateParams(p), test.name)

		test.mutate(p)
		err := validateParams(p)
		require.ErrorIs(t, err, ErrInvalidParams, test.name)
	}
}

// TestValidateBuiltNetworks ensures every registered network passes its own
// checks.
func TestValidateBuiltNetworks(t *testing.T) {
	for _, name := range SupportedNetworks() {
		p := mustBuild(t, name)
		require.NoError(t, validateCheckpoints(p), name)
		require.NoError(t, validateDeployments(p), name)
		require.NoError(t, validateLimits(p), name)
		require.NoError(t, validateGenesisClaim(p), name)
	}
}
