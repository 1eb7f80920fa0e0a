// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/chaincfg"
	"github.com/bcxnet/bcxd/txscript"
	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"gopkg.in/yaml.v2"
)

// genesisSummary describes the genesis block of a network.
type genesisSummary struct {
	Hash           string `yaml:"hash"`
	MerkleRoot     string `yaml:"merkle_root"`
	CoinbaseTxID   string `yaml:"coinbase_txid"`
	Time           string `yaml:"time"`
	Bits           string `yaml:"bits"`
	Work           string `yaml:"work"`
	Nonce          uint32 `yaml:"nonce"`
	Version        int32  `yaml:"version"`
	Reward         string `yaml:"reward"`
	ClaimAddress   string `yaml:"claim_address"`
	CoinbaseScript string `yaml:"coinbase_script"`
	Size           int    `yaml:"size"`
}

// checkpointSummary describes a single checkpoint.
type checkpointSummary struct {
	Height int32  `yaml:"height"`
	Hash   string `yaml:"hash"`
}

// deploymentSummary describes a single deployment window.
type deploymentSummary struct {
	Name   string `yaml:"name"`
	Bit    uint8  `yaml:"bit"`
	Start  uint64 `yaml:"start"`
	Expire uint64 `yaml:"expire"`
	State  string `yaml:"state"`
}

// paramsSummary is the printable form of a network's parameters.
type paramsSummary struct {
	Network          string              `yaml:"network"`
	Magic            string              `yaml:"magic"`
	LegacyMagic      string              `yaml:"legacy_magic"`
	DefaultPort      string              `yaml:"default_port"`
	Genesis          genesisSummary      `yaml:"genesis"`
	PowLimitBits     string              `yaml:"pow_limit_bits"`
	PosLimitBits     string              `yaml:"pos_limit_bits"`
	BlockSpacing     string              `yaml:"block_spacing"`
	StakeSpacing     string              `yaml:"stake_spacing"`
	TargetTimespan   string              `yaml:"target_timespan"`
	NoRetargeting    bool                `yaml:"no_retargeting"`
	MinDifficulty    bool                `yaml:"reduce_min_difficulty"`
	HardForkHeight   int32               `yaml:"hard_fork_height"`
	PoSHeight        int32               `yaml:"pos_height"`
	FidShiftHeight   int32               `yaml:"fid_shift_height"`
	BIP0034Height    int32               `yaml:"bip34_height"`
	BIP0065Height    int32               `yaml:"bip65_height"`
	BIP0066Height    int32               `yaml:"bip66_height"`
	PremineAddress   string              `yaml:"premine_address"`
	PremineValue     string              `yaml:"premine_value"`
	PremineScript    string              `yaml:"premine_script"`
	ActivationWindow uint32              `yaml:"activation_window"`
	ActivationQuorum uint32              `yaml:"activation_threshold"`
	MinimumChainWork string              `yaml:"minimum_chain_work"`
	Deployments      []deploymentSummary `yaml:"deployments"`
	Checkpoints      []checkpointSummary `yaml:"checkpoints"`
}

// messageStart returns the magic bytes of net in wire order as hex.
func messageStart(net wire.BitcoinNet) string {
	start := net.MessageStart()
	return hex.EncodeToString(start[:])
}

// deploymentState describes when a deployment window is open.
func deploymentState(d *chaincfg.ConsensusDeployment) string {
	switch {
	case d.Disabled():
		return "never"
	case d.StartTime == 0 && d.ExpireTime == chaincfg.DeploymentNeverActive:
		return "always"
	default:
		return "window"
	}
}

// summarize gathers the printable form of params.
func summarize(params *chaincfg.Params) (*paramsSummary, error) {
	genesis := params.GenesisBlock
	coinbase := genesis.Transactions[0]

	disasm, err := txscript.DisasmString(coinbase.TxIn[0].SignatureScript)
	if err != nil {
		return nil, err
	}
	claimKey := txscript.ExtractPubKey(coinbase.TxOut[0].PkScript)
	if claimKey == nil {
		return nil, fmt.Errorf("%s genesis output is not pay-to-pubkey",
			params.Name)
	}
	premineScript, err := params.PremineScript()
	if err != nil {
		return nil, err
	}

	s := &paramsSummary{
		Network:     params.Name,
		Magic:       messageStart(params.Net),
		LegacyMagic: messageStart(params.LegacyNet),
		DefaultPort: params.DefaultPort,
		Genesis: genesisSummary{
			Hash:           params.GenesisHash.String(),
			MerkleRoot:     genesis.Header.MerkleRoot.String(),
			CoinbaseTxID:   genesis.TxHashes()[0].String(),
			Time:           genesis.Header.Timestamp.UTC().Format(time.RFC3339),
			Bits:           fmt.Sprintf("%08x", genesis.Header.Bits),
			Work:           blockchain.CalcWork(genesis.Header.Bits).Text(16),
			Nonce:          genesis.Header.Nonce,
			Version:        genesis.Header.Version,
			Reward:         btcutil.Amount(coinbase.TxOut[0].Value).String(),
			ClaimAddress:   base58.CheckEncode(btcutil.Hash160(claimKey), params.PubKeyHashAddrID),
			CoinbaseScript: disasm,
			Size:           genesis.SerializeSize(),
		},
		PowLimitBits:     fmt.Sprintf("%08x", params.PowLimitBits),
		PosLimitBits:     fmt.Sprintf("%08x", params.PosLimitBits),
		BlockSpacing:     params.TargetTimePerBlock.String(),
		StakeSpacing:     params.TargetTimePerStakeBlock.String(),
		TargetTimespan:   params.TargetTimespan.String(),
		NoRetargeting:    params.PoWNoRetargeting,
		MinDifficulty:    params.ReduceMinDifficulty,
		HardForkHeight:   params.HardForkHeight,
		PoSHeight:        params.PoSHeight,
		FidShiftHeight:   params.FidShiftHeight,
		BIP0034Height:    params.BIP0034Height,
		BIP0065Height:    params.BIP0065Height,
		BIP0066Height:    params.BIP0066Height,
		PremineAddress:   params.PremineAddress,
		PremineValue:     params.PremineValue.String(),
		PremineScript:    hex.EncodeToString(premineScript),
		ActivationWindow: params.MinerConfirmationWindow,
		ActivationQuorum: params.RuleChangeActivationThreshold,
		MinimumChainWork: params.MinimumChainWork.Text(16),
	}

	for i := range params.Deployments {
		d := &params.Deployments[i]
		s.Deployments = append(s.Deployments, deploymentSummary{
			Name:   chaincfg.DeploymentID(i).String(),
			Bit:    d.BitNumber,
			Start:  d.StartTime,
			Expire: d.ExpireTime,
			State:  deploymentState(d),
		})
	}
	for _, c := range params.Checkpoints {
		s.Checkpoints = append(s.Checkpoints, checkpointSummary{
			Height: c.Height,
			Hash:   c.Hash.String(),
		})
	}

	return s, nil
}

// writeYAML writes s to w as a YAML document.
func writeYAML(w io.Writer, s *paramsSummary) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// writeText writes s to w as aligned label/value lines.
func writeText(w io.Writer, s *paramsSummary) error {
	ew := &errWriter{w: w}
	line := func(label string, value interface{}) {
		ew.printf("%-24s %v\n", label+":", value)
	}

	line("Network", s.Network)
	line("Magic", s.Magic)
	line("Legacy magic", s.LegacyMagic)
	line("Default port", s.DefaultPort)
	line("Genesis hash", s.Genesis.Hash)
	line("Genesis merkle root", s.Genesis.MerkleRoot)
	line("Genesis time", s.Genesis.Time)
	line("Genesis coinbase txid", s.Genesis.CoinbaseTxID)
	line("Genesis bits", s.Genesis.Bits)
	line("Genesis work", s.Genesis.Work)
	line("Genesis nonce", s.Genesis.Nonce)
	line("Genesis version", s.Genesis.Version)
	line("Genesis reward", s.Genesis.Reward)
	line("Genesis claim address", s.Genesis.ClaimAddress)
	line("Genesis coinbase script", s.Genesis.CoinbaseScript)
	line("Genesis size", s.Genesis.Size)
	line("PoW limit bits", s.PowLimitBits)
	line("PoS limit bits", s.PosLimitBits)
	line("Block spacing", s.BlockSpacing)
	line("Stake block spacing", s.StakeSpacing)
	line("Target timespan", s.TargetTimespan)
	line("No retargeting", s.NoRetargeting)
	line("Reduce min difficulty", s.MinDifficulty)
	line("Hard fork height", s.HardForkHeight)
	line("PoS height", s.PoSHeight)
	line("Fid shift height", s.FidShiftHeight)
	line("BIP0034 height", s.BIP0034Height)
	line("BIP0065 height", s.BIP0065Height)
	line("BIP0066 height", s.BIP0066Height)
	line("Premine address", s.PremineAddress)
	line("Premine value", s.PremineValue)
	line("Premine script", s.PremineScript)
	line("Minimum chain work", s.MinimumChainWork)
	line("Activation threshold", fmt.Sprintf("%d/%d", s.ActivationQuorum,
		s.ActivationWindow))

	ew.printf("Deployments:\n")
	for _, d := range s.Deployments {
		ew.printf("  %-10s bit %-2d start %-12d expire %-12d %s\n", d.Name,
			d.Bit, d.Start, d.Expire, d.State)
	}
	ew.printf("Checkpoints:\n")
	for _, c := range s.Checkpoints {
		ew.printf("  %-10d %s\n", c.Height, c.Hash)
	}

	return ew.err
}

// errWriter remembers the first write error so a run of writes can be checked
// once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
