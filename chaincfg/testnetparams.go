// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/btcutil"
)

// newTestNetParams returns the network parameters for the public test network.
// It shares the genesis block of the main network.
func newTestNetParams() *Params {
	genesis := newGenesisBlock()
	genesisHash := genesis.BlockHash()

	return &Params{
		Name:             "test",
		Net:              wire.TestNet,
		LegacyNet:        wire.LegacyTestNet,
		DefaultPort:      "18995",
		PruneAfterHeight: 1000,
		DNSSeeds:         []DNSSeed{},
		FixedSeeds:       []FixedSeed{},

		// Chain parameters
		GenesisBlock:             genesis,
		GenesisHash:              &genesisHash,
		PowLimit:                 newLimit(mainPowLimitBits),
		PowLimitBits:             0x1d00ffff,
		PosLimit:                 newLimit(mainPosLimitBits),
		PosLimitBits:             0x2000ffff,
		BIP0034Height:            21111,
		BIP0034Hash:              newHashFromStr("0000000023b3a96d3484e5abb3755c413e7d41500f8e2a5c3f0dd01299cd8ef8"),
		BIP0065Height:            581885, // 00000000007f6655f22f98e72ed80d8b06dc761d5da09df0fa1dc4be4f861eb6
		BIP0066Height:            330776, // 000000002104c8c45e99a8853285a3b592602a3ccde2b832481da85e9e4ba182
		SubsidyReductionInterval: 210000,
		TargetTimespan:           time.Hour * 24 * 14, // 14 days
		TargetTimePerBlock:       time.Second * 150,   // 2.5 minutes
		TargetTimePerStakeBlock:  time.Minute,
		LegacyTargetTimePerBlock: time.Minute * 10,
		ReduceMinDifficulty:      true,
		MinDiffReductionTime:     time.Minute * 5, // TargetTimePerBlock * 2
		PoWNoRetargeting:         false,

		// Consensus rule change deployments.
		//
		// The miner confirmation window is defined as:
		//   target proof of work timespan / target proof of work spacing
		RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  1199145601, // January 1, 2008 UTC
				ExpireTime: 1230767999, // December 31, 2008 UTC
			},
			DeploymentCSV: {
				BitNumber:  0,
				StartTime:  1456790400, // March 1st, 2016
				ExpireTime: 1493596800, // May 1st, 2017
			},
			DeploymentSegwit: {
				BitNumber:  1,
				StartTime:  1462060800, // May 1, 2016 UTC
				ExpireTime: 1493596800, // May 1, 2017 UTC.
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

		MinimumChainWork: hexToBigInt("2830dab7f76dbb7d63"),
		AssumeValid:      newHashFromStr("0000000002e9e7b00e1f6dc5123a04aad68dd0f0968d8c7aa45f6640795c37b1"), // 1135275

		HardForkHeight: 50,
		PoSHeight:      1200120,
		FidShiftHeight: 1200120,
		PremineAddress: "15HwdwJ8JSEG8Bxyahnv5wqpG2LJ9SjNAg",
		PremineValue:   2000000 * btcutil.SatoshiPerBitcoin,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("000000000ff4e70d6a0760e248787944e278e082d02f9cf174b0c5ef421f5049")},
		},

		// Data as of block 00000000000001c200b9790dc637d3bb141fe77d155b966ed775b17e109f7c6c
		// (height 1156179).
		ChainTxData: ChainTxData{
			Time:    time.Unix(1501802953, 0),
			TxCount: 14706531,
			TxRate:  0.15,
		},

		// Mempool parameters
		RequireStandard: false,

		DefaultConsistencyChecks: false,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		PubKeyHashAddrID: 0x6f, // starts with m or n
		ScriptHashAddrID: 0xc4, // starts with 2
		PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	}
}
