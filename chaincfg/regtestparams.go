// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// newRegressionNetParams returns the network parameters for the regression
// test network.  Difficulty is fixed, there is no peer discovery, and every
// deployment is either active from the start or never active.
func newRegressionNetParams() *Params {
	genesis := newGenesisBlock()
	genesisHash := genesis.BlockHash()

	return &Params{
		Name:             "regtest",
		Net:              wire.RegTest,
		LegacyNet:        wire.LegacyRegTest,
		DefaultPort:      "18994",
		PruneAfterHeight: 1000,
		DNSSeeds:         []DNSSeed{},
		FixedSeeds:       []FixedSeed{},

		// Chain parameters
		GenesisBlock:             genesis,
		GenesisHash:              &genesisHash,
		PowLimit:                 newLimit(regressionLimitBits),
		PowLimitBits:             0x207fffff,
		PosLimit:                 newLimit(regressionLimitBits),
		PosLimitBits:             0x207fffff,
		BIP0034Height:            100000000, // Not active - Permit ver 1 blocks
		BIP0034Hash:              nil,
		BIP0065Height:            1351, // Used by regression tests
		BIP0066Height:            1251, // Used by regression tests
		SubsidyReductionInterval: 150,
		TargetTimespan:           time.Hour * 24 * 14, // 14 days
		TargetTimePerBlock:       time.Second * 150,   // 2.5 minutes
		TargetTimePerStakeBlock:  time.Second * 1410,  // 9 * TargetTimePerBlock + 1 minute
		LegacyTargetTimePerBlock: time.Minute * 10,
		ReduceMinDifficulty:      true,
		MinDiffReductionTime:     time.Minute * 5, // TargetTimePerBlock * 2
		PoWNoRetargeting:         true,

		// Consensus rule change deployments.
		//
		// The miner confirmation window is defined as:
		//   target proof of work timespan / target proof of work spacing
		RuleChangeActivationThreshold: 108, // 75%  of MinerConfirmationWindow
		MinerConfirmationWindow:       144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  0, // Always available for vote
				ExpireTime: DeploymentNeverActive,
			},
			DeploymentCSV: {
				BitNumber:  0,
				StartTime:  0, // Always available for vote
				ExpireTime: DeploymentNeverActive,
			},
			DeploymentSegwit: {
				BitNumber:  1,
				StartTime:  0, // Always available for vote
				ExpireTime: DeploymentNeverActive,
			},
			DeploymentBitcoinX: {
				BitNumber:  27,
				StartTime:  0, // Always available for vote
				ExpireTime: DeploymentNeverActive,
			},
			DeploymentPoS: {
				BitNumber:  26,
				StartTime:  DeploymentNeverActive,
				ExpireTime: DeploymentNeverActive,
			},
		},

		MinimumChainWork: new(big.Int),
		AssumeValid:      &chainhash.Hash{},

		HardForkHeight: 10,
		PoSHeight:      2000,
		FidShiftHeight: 10,
		PremineAddress: "15HwdwJ8JSEG8Bxyahnv5wqpG2LJ9SjNAg",
		PremineValue:   2000000 * btcutil.SatoshiPerBitcoin,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("000000000ff4e70d6a0760e248787944e278e082d02f9cf174b0c5ef421f5049")},
		},

		ChainTxData: ChainTxData{},

		// Mempool parameters
		RequireStandard: false,

		DefaultConsistencyChecks: true,
		MineBlocksOnDemand:       true,

		// Address encoding magics
		PubKeyHashAddrID: 0x6f, // starts with m or n
		ScriptHashAddrID: 0xc4, // starts with 2
		PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	}
}
