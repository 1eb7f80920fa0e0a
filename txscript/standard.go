// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// ScriptClass is an enumeration for the list of standard types of script the
// chain parameters produce or inspect.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	PubKeyTy                         // Pay pubkey.
	PubKeyHashTy                     // Pay pubkey hash.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	PubKeyTy:      "pubkey",
	PubKeyHashTy:  "pubkeyhash",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// extractPubKey extracts either compressed or uncompressed public key from the
// passed script if it is a standard pay-to-pubkey script.  It will return nil
// otherwise.
func extractPubKey(script []byte) []byte {
	// A pay-to-compressed-pubkey script is of the form:
	//  OP_DATA_33 <33-byte compressed pubkey> OP_CHECKSIG
	if len(script) == 35 && script[0] == OP_DATA_33 &&
		script[34] == OP_CHECKSIG {

		return script[1:34]
	}

	// A pay-to-uncompressed-pubkey script is of the form:
	//  OP_DATA_65 <65-byte uncompressed pubkey> OP_CHECKSIG
	if len(script) == 67 && script[0] == OP_DATA_65 &&
		script[66] == OP_CHECKSIG {

		return script[1:66]
	}

	return nil
}

// extractPubKeyHash extracts the public key hash from the passed script if it
// is a standard pay-to-pubkey-hash script.  It will return nil otherwise.
func extractPubKeyHash(script []byte) []byte {
	// A pay-to-pubkey-hash script is of the form:
	//  OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
	if len(script) == 25 &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG {

		return script[3:23]
	}

	return nil
}

// ExtractPubKey returns the serialized public key paid to by a standard
// pay-to-pubkey script, or nil when the script is of any other form.
func ExtractPubKey(script []byte) []byte {
	return extractPubKey(script)
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy will be returned when the script does not parse.
func GetScriptClass(script []byte) ScriptClass {
	switch {
	case extractPubKey(script) != nil:
		return PubKeyTy
	case extractPubKeyHash(script) != nil:
		return PubKeyHashTy
	}
	return NonStandardTy
}

// PayToPubKeyScript creates a new script to pay a transaction output to the
// passed serialized public key.  It is expected that the input is a valid
// public key.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, error) {
	return NewScriptBuilder().AddData(serializedPubKey).
		AddOp(OP_CHECKSIG).Script()
}

// PayToPubKeyHashScript creates a new script to pay a transaction output to a
// 20-byte pubkey hash.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != 20 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPubKeyHash,
			len(pubKeyHash))
	}

	return NewScriptBuilder().AddOp(OP_DUP).AddOp(OP_HASH160).
		AddData(pubKeyHash).AddOp(OP_EQUALVERIFY).AddOp(OP_CHECKSIG).
		Script()
}

// opcodeName returns the human-readable name of a non-push opcode.
func opcodeName(op byte) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if op >= OP_1 && op <= OP_16 {
		return fmt.Sprintf("OP_%d", op-(OP_1-1))
	}
	return fmt.Sprintf("OP_UNKNOWN%d", op)
}

// DisasmString formats a disassembled script for one line printing.  Data
// pushes are rendered as hex and all other opcodes by name.  When the script
// fails to parse, the returned string will contain the disassembly up to the
// point the failure occurred along with the string '[error]' appended and
// the error is returned.
func DisasmString(script []byte) (string, error) {
	var parts []string
	fail := func() (string, error) {
		parts = append(parts, "[error]")
		return strings.Join(parts, " "), ErrStackShortScript
	}

	for i := 0; i < len(script); {
		op := script[i]
		i++

		var dataLen int
		switch {
		case op == OP_0:
			parts = append(parts, "0")
			continue

		case op >= OP_DATA_1 && op <= OP_DATA_75:
			dataLen = int(op)

		case op == OP_PUSHDATA1:
			if i+1 > len(script) {
				return fail()
			}
			dataLen = int(script[i])
			i++

		case op == OP_PUSHDATA2:
			if i+2 > len(script) {
				return fail()
			}
			dataLen = int(binary.LittleEndian.Uint16(script[i:]))
			i += 2

		case op == OP_PUSHDATA4:
			if i+4 > len(script) {
				return fail()
			}
			dataLen = int(binary.LittleEndian.Uint32(script[i:]))
			i += 4

		default:
			parts = append(parts, opcodeName(op))
			continue
		}

		if dataLen < 0 || i+dataLen > len(script) {
			return fail()
		}
		parts = append(parts, hex.EncodeToString(script[i:i+dataLen]))
		i += dataLen
	}

	return strings.Join(parts, " "), nil
}
