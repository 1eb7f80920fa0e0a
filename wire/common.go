// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The bcxd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// MaxVarIntPayload is the maximum payload size for a variable length
	// integer.
	MaxVarIntPayload = 9

	// maxMessagePayload is the upper bound on any single variable length
	// byte field read by this package.
	maxMessagePayload = 1024 * 1024 * 32 // 32MB
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// errNonCanonicalVarInt is the common format string used for non-canonically
// encoded variable length integer errors.
var errNonCanonicalVarInt = "non-canonical varint %x - discriminant %x must " +
	"encode a value greater than %x"

// uint32Time represents a unix timestamp encoded with a uint32.  It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	var scratch [8]byte

	switch e := element.(type) {
	case *int32:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(scratch[:4]))
		return nil

	case *uint32:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(scratch[:4])
		return nil

	case *int64:
		if _, err := io.ReadFull(r, scratch[:8]); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(scratch[:8]))
		return nil

	case *uint64:
		if _, err := io.ReadFull(r, scratch[:8]); err != nil {
			return err
		}
		*e = littleEndian.Uint64(scratch[:8])
		return nil

	case *uint32Time:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(littleEndian.Uint32(scratch[:4])), 0))
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err

	case *BitcoinNet:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = BitcoinNet(littleEndian.Uint32(scratch[:4]))
		return nil
	}

	return fmt.Errorf("readElement: unsupported element type %T", element)
}

// readElements reads multiple items from r.  It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := readElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	var scratch [8]byte

	switch e := element.(type) {
	case int32:
		littleEndian.PutUint32(scratch[:4], uint32(e))
		_, err := w.Write(scratch[:4])
		return err

	case uint32:
		littleEndian.PutUint32(scratch[:4], e)
		_, err := w.Write(scratch[:4])
		return err

	case int64:
		littleEndian.PutUint64(scratch[:8], uint64(e))
		_, err := w.Write(scratch[:8])
		return err

	case uint64:
		littleEndian.PutUint64(scratch[:8], e)
		_, err := w.Write(scratch[:8])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case BitcoinNet:
		littleEndian.PutUint32(scratch[:4], uint32(e))
		_, err := w.Write(scratch[:4])
		return err
	}

	return fmt.Errorf("writeElement: unsupported element type %T", element)
}

// writeElements writes multiple items to w.  It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarInt reads a variable length integer from r and returns it as a uint64.
func ReadVarInt(r io.Reader, pver uint32) (uint64, error) {
	var scratch [8]byte
	if _, err := io.ReadFull(r, scratch[:1]); err != nil {
		return 0, err
	}
	discriminant := scratch[0]

	var rv uint64
	switch discriminant {
	case 0xff:
		if _, err := io.ReadFull(r, scratch[:8]); err != nil {
			return 0, err
		}
		rv = littleEndian.Uint64(scratch[:8])

		// The encoding is not canonical if the value could have been
		// encoded using fewer bytes.
		min := uint64(0x100000000)
		if rv < min {
			return 0, messageError("ReadVarInt", fmt.Sprintf(
				errNonCanonicalVarInt, rv, discriminant, min))
		}

	case 0xfe:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint32(scratch[:4]))

		min := uint64(0x10000)
		if rv < min {
			return 0, messageError("ReadVarInt", fmt.Sprintf(
				errNonCanonicalVarInt, rv, discriminant, min))
		}

	case 0xfd:
		if _, err := io.ReadFull(r, scratch[:2]); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint16(scratch[:2]))

		min := uint64(0xfd)
		if rv < min {
			return 0, messageError("ReadVarInt", fmt.Sprintf(
				errNonCanonicalVarInt, rv, discriminant, min))
		}

	default:
		rv = uint64(discriminant)
	}

	return rv, nil
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, pver uint32, val uint64) error {
	var scratch [9]byte

	switch {
	case val < 0xfd:
		scratch[0] = uint8(val)
		_, err := w.Write(scratch[:1])
		return err

	case val <= math.MaxUint16:
		scratch[0] = 0xfd
		littleEndian.PutUint16(scratch[1:3], uint16(val))
		_, err := w.Write(scratch[:3])
		return err

	case val <= math.MaxUint32:
		scratch[0] = 0xfe
		littleEndian.PutUint32(scratch[1:5], uint32(val))
		_, err := w.Write(scratch[:5])
		return err
	}

	scratch[0] = 0xff
	littleEndian.PutUint64(scratch[1:9], val)
	_, err := w.Write(scratch[:9])
	return err
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}

// ReadVarBytes reads a variable length byte array.  A byte array is encoded
// as a varInt containing the length of the array followed by the bytes
// themselves.  An error is returned if the length is greater than the
// passed maxAllowed parameter which helps protect against memory exhaustion
// attacks and forced panics through malformed messages.  The fieldName
// parameter is only used for the error message so it provides more context in
// the error.
func ReadVarBytes(r io.Reader, pver uint32, maxAllowed uint32,
	fieldName string) ([]byte, error) {

	count, err := ReadVarInt(r, pver)
	if err != nil {
		return nil, err
	}

	// Prevent byte array larger than the max message size.  It would
	// be possible to cause memory exhaustion and panics without a sane
	// upper bound on this count.
	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", str)
	}

	b := make([]byte, count)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varInt
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, pver uint32, bytes []byte) error {
	slen := uint64(len(bytes))
	err := WriteVarInt(w, pver, slen)
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)
	return err
}
