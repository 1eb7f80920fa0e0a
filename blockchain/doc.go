// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain provides the block-level primitives the chain parameters are
checked with: merkle tree construction over a block's transactions and the
compact difficulty encoding used in block headers.

Chain state, validation of full blocks and retargeting live elsewhere.

Errors

Rule violations are returned as RuleError values whose ErrorCode identifies the
specific check that failed.
*/
package blockchain
