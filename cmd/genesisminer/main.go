// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genesisminer builds a genesis block from its inputs and optionally searches
// for a nonce that satisfies its difficulty target.  It prints the resulting
// hash and merkle root as Go literals.
package main

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/bcxnet/bcxd/chaincfg"
	"github.com/bcxnet/bcxd/internal/log"
	"github.com/bcxnet/bcxd/txscript"
	"github.com/bcxnet/bcxd/wire"
	flags "github.com/jessevdk/go-flags"
)

var gminLog = log.GminLog

// errInterrupted is returned when the nonce search is stopped by a signal.
var errInterrupted = errors.New("nonce search interrupted")

// buildBlock assembles the genesis block described by cfg.
func buildBlock(cfg *config) (*wire.MsgBlock, error) {
	claimScript, err := txscript.PayToPubKeyScript(cfg.pubKey)
	if err != nil {
		return nil, err
	}
	return chaincfg.BuildGenesisBlock([]byte(cfg.Message), claimScript,
		uint32(cfg.timestamp.Unix()), cfg.Nonce, cfg.bits, cfg.Version,
		cfg.reward), nil
}

func genesisMinerMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	block, err := buildBlock(cfg)
	if err != nil {
		gminLog.Errorf("Unable to build block: %v", err)
		return err
	}

	if cfg.Mine {
		quit := make(chan struct{})
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		go func() {
			<-interrupt
			gminLog.Infof("Received interrupt, stopping search")
			close(quit)
		}()

		ticker := time.NewTicker(hashUpdateSecs * time.Second)
		defer ticker.Stop()

		gminLog.Infof("Searching for a nonce for target %08x from nonce %d",
			block.Header.Bits, block.Header.Nonce)
		if !solveBlock(&block.Header, ticker, quit) {
			return errInterrupted
		}
	}

	return writeGenesis(os.Stdout, block)
}

func main() {
	if err := genesisMinerMain(); err != nil {
		os.Exit(1)
	}
}
