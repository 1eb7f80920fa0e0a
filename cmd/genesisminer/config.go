// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/internal/log"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
)

// Defaults reproduce the bcx genesis block.
const (
	defaultMessage = "The Time 28/07/2018  His Majesty King Maha " +
		"Vajiralongkorn Bodindradebayavarangkun"
	defaultPubKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e" +
		"0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4" +
		"c702b6bf11d5f"
	defaultTime     = 1532485805
	defaultNonce    = 2694997395
	defaultBits     = "1d00ffff"
	defaultVersion  = 1
	defaultReward   = 50.0
	defaultLogLevel = "info"
)

// errUsage marks configuration errors that were already reported together
// with the usage message.
var errUsage = errors.New("usage error")

// config defines the configuration options for genesisminer.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Message    string  `short:"m" long:"message" description:"Coinbase message"`
	PubKey     string  `short:"k" long:"pubkey" description:"Hex encoded public key the reward is paid to"`
	Time       int64   `short:"t" long:"time" description:"Block timestamp in seconds since the epoch"`
	Bits       string  `short:"b" long:"bits" description:"Hex encoded compact difficulty target"`
	Version    int32   `long:"blockversion" description:"Block version"`
	Reward     float64 `short:"r" long:"reward" description:"Coinbase reward in BTC"`
	Nonce      uint32  `short:"n" long:"nonce" description:"Block nonce, or the first nonce tried with --mine"`
	Mine       bool    `long:"mine" description:"Search for a nonce that satisfies the target"`
	DebugLevel string  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	pubKey    []byte
	bits      uint32
	timestamp time.Time
	reward    btcutil.Amount
}

// loadConfig initializes and parses the config using command line options.
// Errors that come with a usage message wrap errUsage.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		Message:    defaultMessage,
		PubKey:     defaultPubKey,
		Time:       defaultTime,
		Bits:       defaultBits,
		Version:    defaultVersion,
		Reward:     defaultReward,
		Nonce:      defaultNonce,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default&^flags.PrintErrors)
	_, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		fmt.Fprintln(os.Stdout, err)
		return nil, err
	}

	usageErr := func(format string, a ...interface{}) error {
		err := fmt.Errorf("loadConfig: "+format, a...)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg.pubKey, err = hex.DecodeString(cfg.PubKey)
	if err != nil {
		return nil, usageErr("invalid public key: %v", err)
	}
	if _, err := btcec.ParsePubKey(cfg.pubKey); err != nil {
		return nil, usageErr("invalid public key: %v", err)
	}

	bits, err := strconv.ParseUint(cfg.Bits, 16, 32)
	if err != nil {
		return nil, usageErr("invalid bits %q: %v", cfg.Bits, err)
	}
	cfg.bits = uint32(bits)
	if blockchain.CompactToBig(cfg.bits).Sign() <= 0 {
		return nil, usageErr("bits %q encode a target that can't be met",
			cfg.Bits)
	}

	if cfg.Time < 0 || cfg.Time > int64(^uint32(0)) {
		return nil, usageErr("time %d does not fit the block header",
			cfg.Time)
	}
	cfg.timestamp = time.Unix(cfg.Time, 0)

	cfg.reward, err = btcutil.NewAmount(cfg.Reward)
	if err != nil || cfg.reward < 0 {
		return nil, usageErr("invalid reward %v", cfg.Reward)
	}

	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, usageErr("%v", err)
	}

	return &cfg, nil
}
