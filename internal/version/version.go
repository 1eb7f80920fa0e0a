// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version holds the version of the bcxd tools.
package version

import (
	"fmt"
	"strings"
)

// semanticAlphabet defines the characters allowed in the pre-release and
// build metadata parts of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 16
	Patch uint = 0
)

var (
	// PreRelease is set at link time with
	// '-ldflags "-X github.com/bcxnet/bcxd/internal/version.PreRelease=foo"'.
	PreRelease = "beta"

	// BuildMetadata is set at link time the same way as PreRelease.
	BuildMetadata = ""
)

// String returns the application version as a semantic version string.
// Characters outside the allowed alphabet are dropped from the pre-release and
// build metadata parts, and empty parts are left out.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	if preRelease := normalize(PreRelease); preRelease != "" {
		version += "-" + preRelease
	}
	if build := normalize(BuildMetadata); build != "" {
		version += "+" + build
	}

	return version
}

// normalize returns str stripped of every character outside semanticAlphabet.
func normalize(str string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(semanticAlphabet, r) {
			return r
		}
		return -1
	}, str)
}
