// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the bcx serialization of blocks, block headers and
transactions.

The encoding is the legacy (pre-segwit) Bitcoin one: all integers are little
endian, variable length fields are prefixed with a varint, and hashes are
double SHA-256 over the serialized bytes.  Only what the chain parameter
registry and its collaborators need is provided here; peer messages live with
the networking code.

Network magics are exposed as BitcoinNet values.  Each network has a current
message start and the legacy one it inherited from the chain it forked from.
*/
package wire
