// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	defer func(pre, build string) {
		PreRelease, BuildMetadata = pre, build
	}(PreRelease, BuildMetadata)

	tests := []struct {
		pre   string
		build string
		want  string
	}{
		{"", "", "0.16.0"},
		{"beta", "", "0.16.0-beta"},
		{"beta", "abc.1", "0.16.0-beta+abc.1"},
		{"rc 1!", "", "0.16.0-rc1"},
		{"", "#$", "0.16.0"},
	}
	for _, test := range tests {
		PreRelease, BuildMetadata = test.pre, test.build
		require.Equal(t, test.want, String())
	}
}
