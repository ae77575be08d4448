// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/bitmark-inc/hivesigner/fault"
)

// Length - number of bytes in the digest
const Length = sha256.Size

// Digest - type for a finalised digest
// stored and printed in wire byte order
// to convert to bytes just use d[:]
type Digest [Length]byte

// Handle - a running digest
//
// the parser only ever resets and absorbs bytes; finalising is left to
// whoever owns the handle
type Handle interface {
	Reset()
	Write(p []byte) (int, error)
}

// SHA256 - running SHA-256 digest handle
type SHA256 struct {
	h hash.Hash
}

// NewSHA256 - create an empty running digest
func NewSHA256() *SHA256 {
	return &SHA256{
		h: sha256.New(),
	}
}

// Reset - discard all absorbed bytes
func (s *SHA256) Reset() {
	s.h.Reset()
}

// Write - absorb bytes, never fails
func (s *SHA256) Write(p []byte) (int, error) {
	return s.h.Write(p)
}

// Sum - current digest value, the handle may continue to absorb bytes
func (s *SHA256) Sum() Digest {
	var d Digest
	copy(d[:], s.h.Sum(nil))
	return d
}

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha256.Sum256(record)
}

// convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(digest)))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidHex
	}
	_, err := hex.Decode(digest[:], s)
	if nil != err {
		return fault.ErrInvalidHex
	}
	return nil
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidHex
	}
	copy(digest[:], buffer)
	return nil
}
