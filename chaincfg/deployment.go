// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bcxnet/bcxd/wire"
)

// DeploymentNeverActive is the start and expire time of a deployment that
// can never activate.
const DeploymentNeverActive uint64 = 999999999999

// maxDeploymentBit is the highest block version bit a deployment may signal
// on.  Bits 29 to 31 are reserved for the version bits top mask.
const maxDeploymentBit = 28

// DeploymentID identifies a consensus rule change deployment.  It is the
// index into the Deployments field of the parameters.
type DeploymentID int

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentSegwit defines the rule change deployment ID for the
	// Segregated Witness (segwit) soft-fork package.
	DeploymentSegwit

	// DeploymentBitcoinX defines the rule change deployment ID for the
	// fork's own consensus changes.
	DeploymentBitcoinX

	// DeploymentPoS defines the rule change deployment ID for the proof of
	// stake rules.
	DeploymentPoS

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// deploymentNames maps each deployment to the name used on the command line
// and in output.
var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentSegwit:    "segwit",
	DeploymentBitcoinX:  "bitcoinx",
	DeploymentPoS:       "pos",
}

// String returns the DeploymentID as a human-readable name.
func (d DeploymentID) String() string {
	if d >= 0 && d < DefinedDeployments {
		return deploymentNames[d]
	}
	return fmt.Sprintf("Unknown DeploymentID (%d)", int(d))
}

// ParseDeploymentID returns the deployment with the given name.  Matching is
// case insensitive.
func ParseDeploymentID(name string) (DeploymentID, error) {
	for id, n := range deploymentNames {
		if strings.EqualFold(n, name) {
			return DeploymentID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDeployment, name)
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64
}

// Disabled returns whether the deployment is permanently switched off.
func (d *ConsensusDeployment) Disabled() bool {
	return d.StartTime == DeploymentNeverActive &&
		d.ExpireTime == DeploymentNeverActive
}

// Starter returns a median time starter for the deployment window.  A zero
// start time means the deployment has always been started.
func (d *ConsensusDeployment) Starter() *MedianTimeDeploymentStarter {
	var start time.Time
	if d.StartTime != 0 {
		start = time.Unix(int64(d.StartTime), 0)
	}
	return NewMedianTimeDeploymentStarter(start)
}

// Ender returns a median time ender for the deployment window.  A deployment
// that has started but expires at DeploymentNeverActive never ends.
func (d *ConsensusDeployment) Ender() *MedianTimeDeploymentEnder {
	var end time.Time
	if d.ExpireTime != DeploymentNeverActive || d.Disabled() {
		end = time.Unix(int64(d.ExpireTime), 0)
	}
	return NewMedianTimeDeploymentEnder(end)
}

// OverrideDeploymentWindow rewrites the start and expire times of a single
// deployment.  Nothing else in the parameters changes.
//
// This is meant for test harnesses that need to force a rule change active or
// inactive.  It is not safe to call once other goroutines read the parameters.
func (p *Params) OverrideDeploymentWindow(id DeploymentID, start, expire uint64) error {
	if id < 0 || id >= DefinedDeployments {
		return fmt.Errorf("%w: %d", ErrUnknownDeployment, int(id))
	}
	if start > expire {
		return fmt.Errorf("%w: deployment %v starts at %d after it "+
			"expires at %d", ErrInvalidParams, id, start, expire)
	}

	p.Deployments[id].StartTime = start
	p.Deployments[id].ExpireTime = expire
	log.Debugf("Overrode %s deployment %v window to [%d, %d]", p.Name, id,
		start, expire)
	return nil
}

var (
	// ErrNoBlockClock is returned when an operation fails due to lack of
	// synchronization with the current up to date block clock.
	ErrNoBlockClock = errors.New("no block clock synchronized")
)

// BlockClock is an abstraction over the past median time computation. The past
// median time computation is used in several consensus checks such as CSV, and
// also BIP 9 version bits. This interface allows callers to abstract away the
// computation of the past median time from the perspective of a given block
// header.
type BlockClock interface {
	// PastMedianTime returns the past median time from the PoV of the
	// passed block header. The past median time is the median time of the
	// 11 blocks prior to the passed block header.
	PastMedianTime(*wire.BlockHeader) (time.Time, error)
}

// MedianTimeDeploymentStarter uses the median time past of a target block to
// determine if a deployment has started.
//
// NOTE: Any calls to HasStarted will fail with ErrNoBlockClock if they happen
// before SynchronizeClock is executed.
type MedianTimeDeploymentStarter struct {
	blockClock BlockClock

	startTime time.Time
}

// NewMedianTimeDeploymentStarter returns a new instance of a
// MedianTimeDeploymentStarter for a given start time. Using a time.Time
// instance where IsZero() is true, indicates that a deployment should be
// considered to always have been started.
func NewMedianTimeDeploymentStarter(startTime time.Time) *MedianTimeDeploymentStarter {
	return &MedianTimeDeploymentStarter{
		startTime: startTime,
	}
}

// SynchronizeClock sets the block clock the starter reads median times from.
func (m *MedianTimeDeploymentStarter) SynchronizeClock(clock BlockClock) {
	m.blockClock = clock
}

// HasStarted returns true if the consensus deployment has started.
func (m *MedianTimeDeploymentStarter) HasStarted(blkHeader *wire.BlockHeader) (bool, error) {
	switch {
	// If we haven't yet been synchronized with a block clock, then we
	// can't tell the time, so we'll fail.
	case m.blockClock == nil:
		return false, ErrNoBlockClock

	// If the time is "zero", then the deployment has always started.
	case m.startTime.IsZero():
		return true, nil
	}

	medianTime, err := m.blockClock.PastMedianTime(blkHeader)
	if err != nil {
		return false, err
	}

	// The start time is inclusive.
	return !medianTime.Before(m.startTime), nil
}

// StartTime returns the raw start time of the deployment.
func (m *MedianTimeDeploymentStarter) StartTime() time.Time {
	return m.startTime
}

// MedianTimeDeploymentEnder uses the median time past of a target block to
// determine if a deployment has ended.
//
// NOTE: Any calls to HasEnded will fail with ErrNoBlockClock if they happen
// before SynchronizeClock is executed.
type MedianTimeDeploymentEnder struct {
	blockClock BlockClock

	endTime time.Time
}

// NewMedianTimeDeploymentEnder returns a new instance of the
// MedianTimeDeploymentEnder anchored around the passed endTime.  Using a
// time.Time instance where IsZero() is true, indicates that a deployment
// should be considered to never end.
func NewMedianTimeDeploymentEnder(endTime time.Time) *MedianTimeDeploymentEnder {
	return &MedianTimeDeploymentEnder{
		endTime: endTime,
	}
}

// SynchronizeClock sets the block clock the ender reads median times from.
func (m *MedianTimeDeploymentEnder) SynchronizeClock(clock BlockClock) {
	m.blockClock = clock
}

// HasEnded returns true if the deployment has ended.
func (m *MedianTimeDeploymentEnder) HasEnded(blkHeader *wire.BlockHeader) (bool, error) {
	switch {
	case m.blockClock == nil:
		return false, ErrNoBlockClock

	// If the time is "zero", then the deployment never ends.
	case m.endTime.IsZero():
		return false, nil
	}

	medianTime, err := m.blockClock.PastMedianTime(blkHeader)
	if err != nil {
		return false, err
	}

	// The end time is inclusive.
	return !medianTime.Before(m.endTime), nil
}

// EndTime returns the raw end time of the deployment.
func (m *MedianTimeDeploymentEnder) EndTime() time.Time {
	return m.endTime
}
