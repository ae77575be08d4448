// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/bitmark-inc/hivesigner/fault"
)

// sizes of the wire form
const (
	PackedLength     = 16
	SymbolLength     = 7
	MaximumPrecision = 18
)

// Asset - amount scaled by 10^Precision
type Asset struct {
	Amount    int64
	Precision uint8
	Symbol    string
}

// Unpack - decode the 16 byte wire form
//
// returns the asset and the number of bytes consumed
func Unpack(buffer []byte) (Asset, int, error) {
	if len(buffer) < PackedLength {
		return Asset{}, 0, fault.ErrTruncatedField
	}

	a := Asset{
		Amount:    int64(binary.LittleEndian.Uint64(buffer[0:8])),
		Precision: buffer[8],
	}
	if a.Precision > MaximumPrecision {
		return Asset{}, 0, fault.ErrInvalidAssetPrecision
	}

	symbol := buffer[9:PackedLength]
	n := 0
	for ; n < SymbolLength && 0 != symbol[n]; n += 1 {
		if symbol[n] < 'A' || symbol[n] > 'Z' {
			return Asset{}, 0, fault.ErrInvalidAssetSymbol
		}
	}
	if 0 == n {
		return Asset{}, 0, fault.ErrInvalidAssetSymbol
	}
	// padding must be all NUL
	for _, c := range symbol[n:] {
		if 0 != c {
			return Asset{}, 0, fault.ErrInvalidAssetSymbol
		}
	}
	a.Symbol = string(symbol[:n])

	return a, PackedLength, nil
}

// Pack - encode to the 16 byte wire form
func (a Asset) Pack() []byte {
	buffer := make([]byte, PackedLength)
	binary.LittleEndian.PutUint64(buffer[0:8], uint64(a.Amount))
	buffer[8] = a.Precision
	copy(buffer[9:], a.Symbol)
	return buffer
}

// String - amount with exactly Precision decimal places then the symbol
func (a Asset) String() string {
	negative := a.Amount < 0
	magnitude := uint64(a.Amount)
	if negative {
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	p := int(a.Precision)
	if p > 0 {
		if len(digits) <= p {
			digits = strings.Repeat("0", p-len(digits)+1) + digits
		}
		split := len(digits) - p
		digits = digits[:split] + "." + digits[split:]
	}
	if negative {
		digits = "-" + digits
	}
	return digits + " " + a.Symbol
}
