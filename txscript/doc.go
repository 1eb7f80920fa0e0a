// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the script construction the bcx chain parameters
need.

It provides a ScriptBuilder that emits canonical pushes, plus a direct push
variant that reproduces the non-minimal pushes found in historical coinbase
signature scripts, and helpers for the standard pay-to-pubkey and
pay-to-pubkey-hash output forms.  Script execution is handled elsewhere.
*/
package txscript
