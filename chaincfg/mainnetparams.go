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
)

// newMainNetParams returns the network parameters for the main bcx network.
func newMainNetParams() *Params {
	genesis := newGenesisBlock()
	genesisHash := genesis.BlockHash()

	return &Params{
		Name:             "main",
		Net:              wire.MainNet,
		LegacyNet:        wire.LegacyMainNet,
		DefaultPort:      "8995",
		PruneAfterHeight: 100000,
		DNSSeeds:         []DNSSeed{},
		FixedSeeds:       []FixedSeed{},

		// Chain parameters
		GenesisBlock:             genesis,
		GenesisHash:              &genesisHash,
		PowLimit:                 newLimit(mainPowLimitBits),
		PowLimitBits:             0x1d00ffff,
		PosLimit:                 newLimit(mainPosLimitBits),
		PosLimitBits:             0x2000ffff,
		BIP0034Height:            227931,
		BIP0034Hash:              newHashFromStr("000000000000024b89b42a942fe0d9fea3bb44ab7bd1b19115dd6a759c0808b8"),
		BIP0065Height:            388381, // 000000000000000004c2b624ed5d7756c508d90fd0da2c7c679febfa6c4735f0
		BIP0066Height:            363725, // 00000000000000000379eaa19dce8c9b722d46ae6a57c2f1a988119488b50931
		SubsidyReductionInterval: 210000,
		TargetTimespan:           time.Minute,
		TargetTimePerBlock:       time.Second * 15,
		TargetTimePerStakeBlock:  time.Minute,
		LegacyTargetTimePerBlock: time.Minute,
		ReduceMinDifficulty:      true,
		MinDiffReductionTime:     time.Second * 30, // TargetTimePerBlock * 2
		PoWNoRetargeting:         false,

		// Consensus rule change deployments.
		//
		// The miner confirmation window is defined as:
		//   target proof of work timespan / target proof of work spacing
		RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
		MinerConfirmationWindow:       144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  1199145601, // January 1, 2008 UTC
				ExpireTime: 1230767999, // December 31, 2008 UTC
			},
			DeploymentCSV: {
				BitNumber:  0,
				StartTime:  1462060800, // May 1st, 2016
				ExpireTime: 1493596800, // May 1st, 2017
			},
			DeploymentSegwit: {
				BitNumber:  1,
				StartTime:  1479168000, // November 15, 2016 UTC
				ExpireTime: 1510704000, // November 15, 2017 UTC.
			},
			DeploymentBitcoinX: {
				BitNumber:  27,
				StartTime:  DeploymentNeverActive,
				ExpireTime: DeploymentNeverActive,
			},
			DeploymentPoS: {
				BitNumber:  26,
				StartTime:  DeploymentNeverActive,
				ExpireTime: DeploymentNeverActive,
			},
		},

		MinimumChainWork: new(big.Int),
		AssumeValid:      newHashFromStr("00000000026fce835e9f517ccaa0f8ed8295716f0c4dcd06450f4f5b74f57fe7"), // 501451

		HardForkHeight: 50,
		PoSHeight:      528750,
		FidShiftHeight: 528750,
		PremineAddress: "15HwdwJ8JSEG8Bxyahnv5wqpG2LJ9SjNAg",
		PremineValue:   2000000 * btcutil.SatoshiPerBitcoin,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("000000000ff4e70d6a0760e248787944e278e082d02f9cf174b0c5ef421f5049")},
		},

		ChainTxData: ChainTxData{
			Time:    time.Unix(1501801925, 0),
			TxCount: 0,
			TxRate:  0,
		},

		// Mempool parameters
		RequireStandard: true,

		DefaultConsistencyChecks: false,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		PubKeyHashAddrID: 0x00, // starts with 1
		ScriptHashAddrID: 0x05, // starts with 3
		PrivateKeyID:     0x80, // starts with 5 (uncompressed) or K (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	}
}
