// Copyright (c) 2017 The Decred developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"

	"github.com/bcxnet/bcxd/blockchain"
	"github.com/bcxnet/bcxd/txscript"
	"github.com/btcsuite/btcd/btcec/v2"
)

// validateCheckpoints ensures the checkpoints start at the genesis block and
// are strictly increasing by height.
func validateCheckpoints(p *Params) error {
	if len(p.Checkpoints) == 0 {
		return fmt.Errorf("%w: %s has no checkpoints", ErrInvalidParams,
			p.Name)
	}

	first := p.Checkpoints[0]
	if first.Height != 0 || first.Hash == nil ||
		!first.Hash.IsEqual(p.GenesisHash) {

		return fmt.Errorf("%w: %s first checkpoint is not the genesis "+
			"block", ErrInvalidParams, p.Name)
	}

	for i := 1; i < len(p.Checkpoints); i++ {
		prev, cur := p.Checkpoints[i-1], p.Checkpoints[i]
		if cur.Height <= prev.Height {
			return fmt.Errorf("%w: %s checkpoint at height %d does "+
				"not follow height %d", ErrInvalidParams, p.Name,
				cur.Height, prev.Height)
		}
		if cur.Hash == nil {
			return fmt.Errorf("%w: %s checkpoint at height %d has no "+
				"hash", ErrInvalidParams, p.Name, cur.Height)
		}
	}

	return nil
}

// validateDeployments ensures every deployment signals on its own valid bit
// and has an ordered window, and that the activation threshold fits in the
// confirmation window.
func validateDeployments(p *Params) error {
	if p.MinerConfirmationWindow == 0 ||
		p.RuleChangeActivationThreshold > p.MinerConfirmationWindow {

		return fmt.Errorf("%w: %s activation threshold %d exceeds "+
			"confirmation window %d", ErrInvalidParams, p.Name,
			p.RuleChangeActivationThreshold, p.MinerConfirmationWindow)
	}

	seen := make(map[uint8]DeploymentID, DefinedDeployments)
	for i := range p.Deployments {
		id := DeploymentID(i)
		d := &p.Deployments[i]
		if d.BitNumber > maxDeploymentBit {
			return fmt.Errorf("%w: %s deployment %v uses bit %d",
				ErrInvalidParams, p.Name, id, d.BitNumber)
		}
		if other, ok := seen[d.BitNumber]; ok {
			return fmt.Errorf("%w: %s deployments %v and %v share "+
				"bit %d", ErrInvalidParams, p.Name, other, id,
				d.BitNumber)
		}
		seen[d.BitNumber] = id

		if d.StartTime > d.ExpireTime {
			return fmt.Errorf("%w: %s deployment %v starts after it "+
				"expires", ErrInvalidParams, p.Name, id)
		}
	}

	return nil
}

// validateLimits ensures the compact limits encode the full ones and that the
// genesis block solves its own difficulty within the proof of work limit.
func validateLimits(p *Params) error {
	limits := []struct {
		name  string
		limit *big.Int
		bits  uint32
	}{
		{"proof of work", p.PowLimit, p.PowLimitBits},
		{"proof of stake", p.PosLimit, p.PosLimitBits},
	}
	for _, l := range limits {
		if l.limit == nil || l.limit.Sign() <= 0 {
			return fmt.Errorf("%w: %s %s limit is not positive",
				ErrInvalidParams, p.Name, l.name)
		}
		if got := blockchain.BigToCompact(l.limit); got != l.bits {
			return fmt.Errorf("%w: %s %s limit bits %08x do not match "+
				"limit %064x (%08x)", ErrInvalidParams, p.Name,
				l.name, l.bits, l.limit, got)
		}
	}

	err := blockchain.CheckProofOfWork(&p.GenesisBlock.Header, p.PowLimit)
	if err != nil {
		return fmt.Errorf("%w: %s genesis block: %v", ErrInvalidParams,
			p.Name, err)
	}

	return nil
}

// validateGenesisClaim ensures the genesis reward is paid to a public key that
// parses on the secp256k1 curve.
func validateGenesisClaim(p *Params) error {
	txns := p.GenesisBlock.Transactions
	if len(txns) != 1 || !txns[0].IsCoinBase() || len(txns[0].TxOut) != 1 {
		return fmt.Errorf("%w: %s genesis block must hold a single "+
			"coinbase with a single output", ErrInvalidParams, p.Name)
	}

	pkScript := txns[0].TxOut[0].PkScript
	if class := txscript.GetScriptClass(pkScript); class != txscript.PubKeyTy {
		return fmt.Errorf("%w: %s genesis output is %v, not pay-to-pubkey",
			ErrInvalidParams, p.Name, class)
	}
	pubKey := txscript.ExtractPubKey(pkScript)
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return fmt.Errorf("%w: %s genesis claim key: %v",
			ErrInvalidParams, p.Name, err)
	}

	return nil
}

// validateParams runs every consistency check on freshly built parameters.
// All failures wrap ErrInvalidParams.
func validateParams(p *Params) error {
	checks := []func(*Params) error{
		validateCheckpoints,
		validateDeployments,
		validateLimits,
		validateGenesisClaim,
		func(p *Params) error {
			_, _, err := decodePremineAddress(p.PremineAddress)
			return err
		},
	}
	for _, check := range checks {
		if err := check(p); err != nil {
			return err
		}
	}
	return nil
}
