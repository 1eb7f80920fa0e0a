// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bcxparams builds and verifies the consensus parameters of a bcx network and
// prints them.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bcxnet/bcxd/chaincfg"
	"github.com/bcxnet/bcxd/internal/log"
	"github.com/bcxnet/bcxd/internal/version"
	flags "github.com/jessevdk/go-flags"
)

var bcxpLog = log.BcxpLog

// selectParams selects the configured network, applies the deployment
// overrides and returns the resulting parameters.
func selectParams(cfg *config) (*chaincfg.Params, error) {
	registry := chaincfg.NewRegistry()
	params, err := registry.Select(cfg.Network)
	if err != nil {
		return nil, err
	}

	for _, o := range cfg.overrides {
		err := registry.OverrideDeploymentWindow(o.id, o.start, o.expire)
		if err != nil {
			return nil, err
		}
		bcxpLog.Infof("Deployment %v window overridden to [%d, %d]", o.id,
			o.start, o.expire)
	}

	return params, nil
}

// writeParams prints params to w in the configured format.
func writeParams(w io.Writer, cfg *config, params *chaincfg.Params) error {
	summary, err := summarize(params)
	if err != nil {
		return err
	}
	if cfg.Format == formatYAML {
		return writeYAML(w, summary)
	}
	return writeText(w, summary)
}

func bcxparamsMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", filepath.Base(os.Args[0]),
			version.String())
		return nil
	}

	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer log.LogRotator.Close()
	}

	bcxpLog.Debugf("Version %s", version.String())

	params, err := selectParams(cfg)
	if err != nil {
		// A genesis mismatch means the binary itself is corrupt.
		var mismatch *chaincfg.GenesisMismatchError
		if errors.As(err, &mismatch) {
			bcxpLog.Criticalf("Refusing to run: %v", mismatch)
			return err
		}
		bcxpLog.Errorf("Unable to load %s parameters: %v", cfg.Network, err)
		return err
	}

	return writeParams(os.Stdout, cfg, params)
}

func main() {
	if err := bcxparamsMain(); err != nil {
		os.Exit(1)
	}
}
