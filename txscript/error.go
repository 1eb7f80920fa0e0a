// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "errors"

var (
	// ErrStackLongScript is returned if a built script is longer than the
	// maximum allowed.
	ErrStackLongScript = errors.New("script is longer than maximum allowed")

	// ErrStackElementTooBig is returned if a data push is larger than the
	// maximum allowed element size.
	ErrStackElementTooBig = errors.New("element in script too large")

	// ErrStackShortScript is returned if the script has a push opcode that
	// is too long for the length of the script.
	ErrStackShortScript = errors.New("execute past end of script")

	// ErrInvalidPubKeyHash is returned when a pay-to-pubkey-hash script is
	// requested for a hash that is not 20 bytes.
	ErrInvalidPubKeyHash = errors.New("pubkey hash must be 20 bytes")
)
