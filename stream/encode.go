// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

import (
	"encoding/binary"

	"github.com/bitmark-inc/hivesigner/digest"
	"github.com/bitmark-inc/hivesigner/operation"
	"github.com/bitmark-inc/hivesigner/util"
)

// Transaction - host side description of a transaction to send for review
type Transaction struct {
	ChainID        []byte
	RefBlockNum    uint16
	RefBlockPrefix uint32
	Expiration     uint32
	Operations     []operation.Packed
}

// values in wire order, each becomes one TLV field
func (tx Transaction) values() [][]byte {
	values := make([][]byte, 0, 6+len(tx.Operations))

	values = append(values, tx.ChainID)

	var b [4]byte
	binary.LittleEndian.PutUint16(b[:2], tx.RefBlockNum)
	values = append(values, append([]byte{}, b[:2]...))
	binary.LittleEndian.PutUint32(b[:], tx.RefBlockPrefix)
	values = append(values, append([]byte{}, b[:]...))
	binary.LittleEndian.PutUint32(b[:], tx.Expiration)
	values = append(values, append([]byte{}, b[:]...))

	values = append(values, util.ToVarint32(uint32(len(tx.Operations))))
	for _, op := range tx.Operations {
		values = append(values, op)
	}
	values = append(values, util.ToVarint32(0))
	return values
}

// Encode - the flat TLV stream
func (tx Transaction) Encode(encoding LengthEncoding) []byte {
	buffer := make([]byte, 0, 256)
	for _, v := range tx.values() {
		buffer = append(buffer, EncodeField(v, encoding)...)
	}
	return buffer
}

// SigningDigest - digest over the values alone, what the stream's
// transaction digest must equal once Finished
func (tx Transaction) SigningDigest() digest.Digest {
	h := digest.NewSHA256()
	for _, v := range tx.values() {
		_, _ = h.Write(v)
	}
	return h.Sum()
}

// EncodeField - wrap a value as one TLV field
func EncodeField(value []byte, encoding LengthEncoding) []byte {
	field := make([]byte, 0, tlvBufferSize+len(value))
	field = append(field, octetStringTag)
	field = append(field, encodeLength(uint32(len(value)), encoding)...)
	return append(field, value...)
}

func encodeLength(length uint32, encoding LengthEncoding) []byte {
	if LengthVarint == encoding {
		return util.ToVarint32(length)
	}
	if length < 0x80 {
		return []byte{byte(length)}
	}
	b := make([]byte, 0, 4)
	for v := length; v > 0; v >>= 8 {
		b = append([]byte{byte(v)}, b...)
	}
	return append([]byte{0x80 | byte(len(b))}, b...)
}
