// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"encoding/binary"

	"github.com/bitmark-inc/hivesigner/account"
	"github.com/bitmark-inc/hivesigner/asset"
	"github.com/bitmark-inc/hivesigner/util"
)

// Packed - an operation record: code byte followed by the payload
//
// the append methods build records for host side tooling and tests
type Packed []byte

// AccountWeight - one account entry of an authority
type AccountWeight struct {
	Account string
	Weight  uint16
}

// KeyWeight - one key entry of an authority
type KeyWeight struct {
	Key    account.PublicKey
	Weight uint16
}

// Authority - threshold with weighted accounts and keys
type Authority struct {
	Threshold uint32
	Accounts  []AccountWeight
	Keys      []KeyWeight
}

// NewPacked - start a record for an operation code
func NewPacked(code Code) Packed {
	return Packed{byte(code)}
}

// Code - operation code of the record
func (record Packed) Code() Code {
	if 0 == len(record) {
		return Code(0xff)
	}
	return Code(record[0])
}

// Payload - record without its code byte
func (record Packed) Payload() []byte {
	if 0 == len(record) {
		return nil
	}
	return record[1:]
}

// Format - decode one argument of the record
func (record Packed) Format(index int, prefix string, field *Field) error {
	return Format(record.Code(), record.Payload(), index, prefix, field, nil)
}

// AppendCount - Varint32 count or length
func (record Packed) AppendCount(n int) Packed {
	return append(record, util.ToVarint32(uint32(n))...)
}

// AppendString - Varint32 length then bytes
func (record Packed) AppendString(s string) Packed {
	record = record.AppendCount(len(s))
	return append(record, s...)
}

// AppendUint16 - two bytes little endian
func (record Packed) AppendUint16(v uint16) Packed {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(record, b[:]...)
}

// AppendInt16 - two bytes little endian, two's complement
func (record Packed) AppendInt16(v int16) Packed {
	return record.AppendUint16(uint16(v))
}

// AppendUint32 - four bytes little endian
func (record Packed) AppendUint32(v uint32) Packed {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(record, b[:]...)
}

// AppendInt64 - eight bytes little endian, two's complement
func (record Packed) AppendInt64(v int64) Packed {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return append(record, b[:]...)
}

// AppendBool - single byte 0x01 or 0x00
func (record Packed) AppendBool(v bool) Packed {
	if v {
		return append(record, 0x01)
	}
	return append(record, 0x00)
}

// AppendAsset - 16 byte asset
func (record Packed) AppendAsset(a asset.Asset) Packed {
	return append(record, a.Pack()...)
}

// AppendPublicKey - 33 byte compressed key
func (record Packed) AppendPublicKey(key account.PublicKey) Packed {
	return append(record, key[:]...)
}

// AppendAuthority - threshold, account auths then key auths
func (record Packed) AppendAuthority(auth Authority) Packed {
	record = record.AppendUint32(auth.Threshold)
	record = record.AppendCount(len(auth.Accounts))
	for _, a := range auth.Accounts {
		record = record.AppendString(a.Account).AppendUint16(a.Weight)
	}
	record = record.AppendCount(len(auth.Keys))
	for _, k := range auth.Keys {
		record = record.AppendPublicKey(k.Key).AppendUint16(k.Weight)
	}
	return record
}

// AppendStringList - count then strings
func (record Packed) AppendStringList(list []string) Packed {
	record = record.AppendCount(len(list))
	for _, s := range list {
		record = record.AppendString(s)
	}
	return record
}

// AppendInt64List - count then 64 bit integers
func (record Packed) AppendInt64List(list []int64) Packed {
	record = record.AppendCount(len(list))
	for _, v := range list {
		record = record.AppendInt64(v)
	}
	return record
}

// AppendBeneficiaries - comment options extension list
//
// nil writes an empty extension list, otherwise a single
// beneficiaries extension holding the entries
func (record Packed) AppendBeneficiaries(list []AccountWeight) Packed {
	if nil == list {
		return record.AppendCount(0)
	}
	record = record.AppendCount(1).AppendCount(beneficiariesExtension)
	record = record.AppendCount(len(list))
	for _, b := range list {
		record = record.AppendString(b.Account).AppendUint16(b.Weight)
	}
	return record
}
