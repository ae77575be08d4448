// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

import (
	"github.com/bitmark-inc/hivesigner/fault"
	"github.com/bitmark-inc/hivesigner/util"
)

// octet string, the only tag accepted
const octetStringTag = 0x04

// largest tag and length prefix: tag, 0x84 and four length bytes
const tlvBufferSize = 6

// DER long form length byte count limit
const derMaximumLengthBytes = 4

// decodeTLV - try to decode the tag and length staged so far
//
// returns decoded == false when more bytes are needed
func decodeTLV(buffer []byte, encoding LengthEncoding) (length uint32, decoded bool, err error) {
	if 0 == len(buffer) {
		return 0, false, nil
	}
	if octetStringTag != buffer[0] {
		return 0, false, fault.ErrInvalidFieldTag
	}
	prefix := buffer[1:]
	if 0 == len(prefix) {
		return 0, false, nil
	}

	switch encoding {
	case LengthVarint:
		value, n := util.FromVarint32(prefix)
		if 0 != n {
			return value, true, nil
		}
		if len(prefix) >= util.Varint32MaximumBytes {
			return 0, false, fault.ErrInvalidLengthPrefix
		}
		return 0, false, nil

	case LengthDER:
		first := prefix[0]
		if first < 0x80 {
			return uint32(first), true, nil
		}
		count := int(first & 0x7f)
		if 0 == count || count > derMaximumLengthBytes {
			return 0, false, fault.ErrInvalidLengthPrefix
		}
		if len(prefix) < 1+count {
			return 0, false, nil
		}
		value := uint32(0)
		for _, b := range prefix[1 : 1+count] {
			value = value<<8 | uint32(b)
		}
		return value, true, nil

	default:
		return 0, false, fault.ErrInvalidLengthEncoding
	}
}
