// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"os"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

func TestParseAndSetDebugLevels(t *testing.T) {
	defer SetLogLevels("info")

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false},
		{"trace", false},
		{"CFG =debug,BCXP=warn", false},
		{"GMIN=off", false},
		{"loud", true},
		{"CFG =loud", true},
		{"NOPE=debug", true},
		{"CFG =debug,BCXP", true},
	}

	for _, test := range tests {
		err := ParseAndSetDebugLevels(test.in)
		if test.wantErr {
			require.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
	}

	require.NoError(t, ParseAndSetDebugLevels("CFG =trace,BCXP=error"))
	require.Equal(t, btclog.LevelTrace, CfgLog.Level())
	require.Equal(t, btclog.LevelError, BcxpLog.Level())
}

func TestSupportedSubsystems(t *testing.T) {
	require.Equal(t, []string{"BCXP", "CFG ", "GMIN"}, SupportedSubsystems())
}

// readPipe swaps *f for the write end of a pipe and returns a function that
// restores it and returns everything written meanwhile.
func readPipe(t *testing.T, f **os.File) func() string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := *f
	*f = w
	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	return func() string {
		*f = orig
		w.Close()
		out := <-done
		r.Close()
		return out
	}
}

// TestLogWriterKeepsStdoutClean ensures log lines reach standard error only.
func TestLogWriterKeepsStdoutClean(t *testing.T) {
	defer SetLogLevels("info")
	SetLogLevels("info")

	stdout := readPipe(t, &os.Stdout)
	stderr := readPipe(t, &os.Stderr)
	CfgLog.Infof("Selected %s network", "main")
	GminLog.Infof("Solved block")
	gotErr := stderr()
	gotOut := stdout()

	require.Empty(t, gotOut)
	require.Contains(t, gotErr, "[INF] CFG : Selected main network")
	require.Contains(t, gotErr, "[INF] GMIN: Solved block")
}
