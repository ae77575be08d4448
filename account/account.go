// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/hivesigner/fault"
)

// miscellaneous constants
const (
	PublicKeyLength = 33 // compressed secp256k1 point
	PrefixLength    = 3

	checksumLength = 4
)

// PublicKey - compressed public key as carried on the wire
type PublicKey [PublicKeyLength]byte

// PublicKeyFromBytes - validate the length of a binary key
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	var key PublicKey
	if PublicKeyLength != len(buffer) {
		return key, fault.ErrInvalidPublicKey
	}
	copy(key[:], buffer)
	return key, nil
}

// PublicKeyFromHex - decode a hex encoded compressed public key
func PublicKeyFromHex(s string) (PublicKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return PublicKey{}, fault.ErrInvalidHex
	}
	return PublicKeyFromBytes(buffer)
}

// Address - prefix followed by base58(key ‖ ripemd160(key)[:4])
func (key PublicKey) Address(prefix string) string {
	return prefix + Encode(key[:])
}

// Encode - base58 check encoding of an arbitrary key buffer
func Encode(key []byte) string {
	buffer := make([]byte, 0, len(key)+checksumLength)
	buffer = append(buffer, key...)
	buffer = append(buffer, checksum(key)...)
	return base58.Encode(buffer)
}

// FromAddress - decode and validate a prefixed address
//
// returns the key and the prefix that was used
func FromAddress(address string) (PublicKey, string, error) {
	if len(address) <= PrefixLength {
		return PublicKey{}, "", fault.ErrInvalidAddressLength
	}
	prefix := address[:PrefixLength]
	for _, c := range prefix {
		if c < 'A' || c > 'Z' {
			return PublicKey{}, "", fault.ErrInvalidAddressPrefix
		}
	}

	decoded, err := base58.Decode(address[PrefixLength:])
	if nil != err {
		return PublicKey{}, "", fault.ErrInvalidAddressChecksum
	}
	if PublicKeyLength+checksumLength != len(decoded) {
		return PublicKey{}, "", fault.ErrInvalidAddressLength
	}

	keyBytes := decoded[:PublicKeyLength]
	if !bytes.Equal(checksum(keyBytes), decoded[PublicKeyLength:]) {
		return PublicKey{}, "", fault.ErrInvalidAddressChecksum
	}

	key, err := PublicKeyFromBytes(keyBytes)
	return key, prefix, err
}

// first four bytes of ripemd160 of the key
func checksum(key []byte) []byte {
	h := ripemd160.New()
	_, _ = h.Write(key)
	return h.Sum(nil)[:checksumLength]
}
