// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"net"
	"time"

	"github.com/bcxnet/bcxd/txscript"
	"github.com/bcxnet/bcxd/wire"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.  It is never modified.
var bigOne = big.NewInt(1)

// Bit lengths of the proof-of-work and proof-of-stake limits.  The main and
// test networks use mainPowLimitBits and mainPosLimitBits; the regression test
// network uses regressionLimitBits for both.
const (
	mainPowLimitBits    = 224
	mainPosLimitBits    = 248
	regressionLimitBits = 255
)

// newLimit returns a fresh 2^bits - 1.  Every build allocates its own limits
// so that no two parameter sets share a *big.Int.
func newLimit(bits uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(bigOne, bits), bigOne)
}

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

// FixedSeed is a pre-resolved peer address used when DNS seeding is not
// available.
type FixedSeed struct {
	IP   net.IP
	Port uint16
}

// String returns the seed in host:port form.
func (s FixedSeed) String() string {
	return net.JoinHostPort(s.IP.String(), fmt.Sprint(s.Port))
}

// ChainTxData describes the transaction volume of the chain at a snapshot.  It
// is used to estimate verification progress.
type ChainTxData struct {
	// Time is the timestamp of the last known block at the snapshot.
	Time time.Time

	// TxCount is the total number of transactions between genesis and
	// the snapshot.
	TxCount int64

	// TxRate is the estimated number of transactions per second after the
	// snapshot.
	TxRate float64
}

// Params defines a bcx network by its parameters.  These parameters may be
// used by bcx applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params value is built once by Build and is read-only afterwards.  The only
// sanctioned mutation is OverrideDeploymentWindow.
type Params struct {
	// Name defines a human-readable identifier for the network.  It is
	// one of "main", "test" or "regtest".
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// LegacyNet is the message start of the chain this one forked from,
	// still accepted from peers that predate the fork.
	LegacyNet wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight int32

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are peers dialed when no DNS seed answers.
	FixedSeeds []FixedSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimit defines the highest allowed proof of stake value for a
	// block as a uint256.
	PosLimit *big.Int

	// PosLimitBits defines the highest allowed proof of stake value for a
	// block in compact form.
	PosLimitBits uint32

	// These fields define the block heights at which the specified softfork
	// BIP became active.  BIP0034Hash is the hash of the block at
	// BIP0034Height, or nil when that block does not exist.
	BIP0034Height int32
	BIP0034Hash   *chainhash.Hash
	BIP0065Height int32
	BIP0066Height int32

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// proof of work block.
	TargetTimePerBlock time.Duration

	// TargetTimePerStakeBlock is the desired amount of time to generate
	// each proof of stake block.
	TargetTimePerStakeBlock time.Duration

	// LegacyTargetTimePerBlock is the block spacing of the chain this one
	// forked from.  Timing constants carried over from it are scaled by
	// the ratio to TargetTimePerBlock.
	LegacyTargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// MinDiffReductionTime is the amount of time after which the minimum
	// required difficulty should be reduced when a block hasn't been found.
	//
	// NOTE: This only applies if ReduceMinDifficulty is true.
	MinDiffReductionTime time.Duration

	// PoWNoRetargeting disables difficulty retargeting entirely.
	PoWNoRetargeting bool

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the amount of work below which a competing chain
	// is not considered at all.
	MinimumChainWork *big.Int

	// AssumeValid is the hash of a block whose ancestors' signatures are
	// assumed valid.  A zero hash disables the optimization.
	AssumeValid *chainhash.Hash

	// HardForkHeight is the height of the one-time fork from the parent
	// chain.
	HardForkHeight int32

	// PoSHeight is the height proof of stake blocks become valid at.
	PoSHeight int32

	// FidShiftHeight is the height of the fid-shift rule change.
	FidShiftHeight int32

	// PremineAddress receives PremineValue once, right after the fork.
	PremineAddress string
	PremineValue   btcutil.Amount

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData is a snapshot of the chain's transaction volume.
	ChainTxData ChainTxData

	// Mempool parameters
	RequireStandard bool

	// DefaultConsistencyChecks enables expensive internal self-checks by
	// default.
	DefaultConsistencyChecks bool

	// MineBlocksOnDemand allows blocks to be produced on request rather
	// than by the normal mining process.
	MineBlocksOnDemand bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// LatestCheckpointHeight returns the height of the newest checkpoint, or -1
// when the network has none.
func (p *Params) LatestCheckpointHeight() int32 {
	if len(p.Checkpoints) == 0 {
		return -1
	}
	return p.Checkpoints[len(p.Checkpoints)-1].Height
}

// CheckpointHash returns the checkpointed hash at the given height and whether
// one exists.
func (p *Params) CheckpointHash(height int32) (*chainhash.Hash, bool) {
	for i := range p.Checkpoints {
		if p.Checkpoints[i].Height == height {
			return p.Checkpoints[i].Hash, true
		}
	}
	return nil, false
}

// PremineScript returns the pay-to-pubkey-hash script paying the premine
// address.
func (p *Params) PremineScript() ([]byte, error) {
	pkHash, _, err := decodePremineAddress(p.PremineAddress)
	if err != nil {
		return nil, err
	}
	return txscript.PayToPubKeyHashScript(pkHash)
}

// decodePremineAddress decodes a base58check encoded pay-to-pubkey-hash
// address into its hash and version byte.
func decodePremineAddress(addr string) ([]byte, byte, error) {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: premine address %q: %v",
			ErrInvalidParams, addr, err)
	}
	if len(decoded) != 20 {
		return nil, 0, fmt.Errorf("%w: premine address %q has a %d byte "+
			"payload, want 20", ErrInvalidParams, addr, len(decoded))
	}
	return decoded, version, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexToBigInt converts the passed hex string into a big integer pointer and
// will panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only (and
// must only) be called for initialization purposes.
func hexToBigInt(str string) *big.Int {
	r, ok := new(big.Int).SetString(str, 16)
	if !ok {
		panic("invalid hex in source file: " + str)
	}
	return r
}
