// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bcxnet/bcxd/chaincfg"
	"github.com/bcxnet/bcxd/internal/log"
	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "bcxparams.log"
	defaultFormat      = formatText

	formatText = "text"
	formatYAML = "yaml"
)

var (
	bcxdHomeDir   = btcutil.AppDataDir("bcxd", false)
	defaultLogDir = filepath.Join(bcxdHomeDir, "logs")
)

// errUsage marks configuration errors that were already reported together
// with the usage message.
var errUsage = errors.New("usage error")

// deploymentOverride is a parsed --vbparams value.
type deploymentOverride struct {
	id     chaincfg.DeploymentID
	start  uint64
	expire uint64
}

// config defines the configuration options for bcxparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Network       string   `short:"n" long:"network" description:"Network to show {main, test, regtest}"`
	TestNet       bool     `long:"testnet" description:"Use the test network"`
	RegTest       bool     `long:"regtest" description:"Use the regression test network"`
	VBParams      []string `long:"vbparams" description:"Override a deployment window on the regression test network: <deployment>:<start>:<expire>"`
	Format        string   `short:"f" long:"format" description:"Output format {text, yaml}"`
	DebugLevel    string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir        string   `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool     `long:"nofilelogging" description:"Disable file logging"`
	ShowVersion   bool     `short:"V" long:"version" description:"Display version information and exit"`

	overrides []deploymentOverride
}

// parseVBParams parses a <deployment>:<start>:<expire> override.
func parseVBParams(s string) (deploymentOverride, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return deploymentOverride{}, fmt.Errorf("vbparams %q must be of "+
			"the form <deployment>:<start>:<expire>", s)
	}

	id, err := chaincfg.ParseDeploymentID(fields[0])
	if err != nil {
		return deploymentOverride{}, err
	}
	start, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return deploymentOverride{}, fmt.Errorf("vbparams %q has an "+
			"invalid start time: %v", s, err)
	}
	expire, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return deploymentOverride{}, fmt.Errorf("vbparams %q has an "+
			"invalid expire time: %v", s, err)
	}
	if start > expire {
		return deploymentOverride{}, fmt.Errorf("vbparams %q starts "+
			"after it expires", s)
	}

	return deploymentOverride{id: id, start: start, expire: expire}, nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the passed command line options
//  3. Resolve the network and validate everything that depends on it
//
// Errors that come with a usage message wrap errUsage.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		Format:     defaultFormat,
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
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

	// Multiple networks can't be selected simultaneously.  Count the
	// network flags passed and resolve the network name while we're at it.
	numNets := 0
	network := "main"
	if cfg.Network != "" {
		numNets++
		network = cfg.Network
	}
	if cfg.TestNet {
		numNets++
		network = "test"
	}
	if cfg.RegTest {
		numNets++
		network = "regtest"
	}
	if numNets > 1 {
		return nil, usageErr("the network, testnet and regtest options " +
			"can't be used together -- choose one")
	}

	supported := false
	for _, name := range chaincfg.SupportedNetworks() {
		if name == network {
			supported = true
			break
		}
	}
	if !supported {
		return nil, usageErr("unknown network %q -- supported networks %v",
			network, chaincfg.SupportedNetworks())
	}
	cfg.Network = network

	// Deployment windows may only be overridden on the regression test
	// network.
	if len(cfg.VBParams) > 0 && cfg.Network != "regtest" {
		return nil, usageErr("the vbparams option may only be used with " +
			"the regression test network")
	}
	for _, s := range cfg.VBParams {
		override, err := parseVBParams(s)
		if err != nil {
			return nil, usageErr("%v", err)
		}
		cfg.overrides = append(cfg.overrides, override)
	}

	if cfg.Format != formatText && cfg.Format != formatYAML {
		return nil, usageErr("unknown output format %q -- supported "+
			"formats [%s %s]", cfg.Format, formatText, formatYAML)
	}

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, usageErr("%v", err)
	}

	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.Network)
	return &cfg, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(bcxdHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// Windows-style %VARIABLE% is not expanded, $VARIABLE is.
	return filepath.Clean(os.ExpandEnv(path))
}
