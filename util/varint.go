// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint32MaximumBytes - maximum possible number of bytes in Varint32
const Varint32MaximumBytes = 5

// ToVarint32 - convert a 32 bit unsigned integer to Varint32
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:  ext | B20 | B19 | B18 | B17 | B16 | B15 | B14
// byte 4:  ext | B27 | B26 | B25 | B24 | B23 | B22 | B21
// byte 5:   0  |  0  |  0  |  0  | B31 | B30 | B29 | B28
func ToVarint32(value uint32) []byte {
	result := make([]byte, 0, Varint32MaximumBytes)
	for value >= 0x80 {
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint32 - convert an array of up to Varint32MaximumBytes to a uint32
//
// also return the number of bytes used as second value
// returns 0, 0 if varint32 buffer is truncated or the value does not
// fit in 32 bits
func FromVarint32(buffer []byte) (uint32, int) {
	result := uint32(0)
	shift := uint(0)

	for count := 0; count < len(buffer) && count < Varint32MaximumBytes; count += 1 {
		currByte := buffer[count]
		if Varint32MaximumBytes-1 == count && currByte > 0x0f {
			return 0, 0
		}
		result |= uint32(currByte&0x7f) << shift
		if 0 == currByte&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0
}
