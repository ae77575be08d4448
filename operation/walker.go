// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/hivesigner/account"
	"github.com/bitmark-inc/hivesigner/asset"
	"github.com/bitmark-inc/hivesigner/fault"
	"github.com/bitmark-inc/hivesigner/util"
)

// walker - left to right cursor over one operation payload
//
// every argument method consumes its wire bytes and formats the value
// only when it is the target argument; once the target is formatted,
// or an error is recorded, all further calls do nothing
type walker struct {
	buffer []byte
	offset int
	target int
	index  int
	prefix string
	field  *Field
	done   bool
	err    error
}

func (w *walker) active() bool {
	return !w.done && nil == w.err
}

func (w *walker) selected() bool {
	return w.index == w.target
}

// finish the current argument
func (w *walker) next() {
	if nil == w.err && w.selected() {
		w.done = true
	}
	w.index += 1
}

// keep only the first error
func (w *walker) fail(err error) {
	if nil == w.err && nil != err {
		w.err = err
	}
}

// low level readers, all return zero values after an error

func (w *walker) take(n int) []byte {
	if nil != w.err {
		return nil
	}
	if n < 0 || len(w.buffer)-w.offset < n {
		w.fail(fault.ErrTruncatedField)
		return nil
	}
	b := w.buffer[w.offset : w.offset+n]
	w.offset += n
	return b
}

func (w *walker) readCount() int {
	if nil != w.err {
		return 0
	}
	remainder := w.buffer[w.offset:]
	value, n := util.FromVarint32(remainder)
	if 0 == n {
		if len(remainder) < util.Varint32MaximumBytes {
			w.fail(fault.ErrTruncatedField)
		} else {
			w.fail(fault.ErrInvalidLengthPrefix)
		}
		return 0
	}
	w.offset += n
	return int(value)
}

func (w *walker) readString() []byte {
	length := w.readCount()
	if nil != w.err {
		return nil
	}
	if length > FieldCapacity {
		w.fail(fault.ErrFieldBufferOverflow)
		return nil
	}
	return w.take(length)
}

func (w *walker) readUint8() uint8 {
	b := w.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (w *walker) readUint16() uint16 {
	b := w.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (w *walker) readUint32() uint32 {
	b := w.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (w *walker) readUint64() uint64 {
	b := w.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (w *walker) readAsset() asset.Asset {
	if nil != w.err {
		return asset.Asset{}
	}
	a, n, err := asset.Unpack(w.buffer[w.offset:])
	if nil != err {
		w.fail(err)
		return asset.Asset{}
	}
	w.offset += n
	return a
}

func (w *walker) readPublicKey() account.PublicKey {
	b := w.take(account.PublicKeyLength)
	if nil == b {
		return account.PublicKey{}
	}
	key, err := account.PublicKeyFromBytes(b)
	w.fail(err)
	return key
}

// text builders for the selected argument

func (w *walker) text(s string) {
	if nil == w.err {
		w.fail(w.field.append(s))
	}
}

func (w *walker) textBytes(b []byte) {
	if nil == w.err {
		w.fail(w.field.appendBytes(b))
	}
}

func (w *walker) textUint(v uint64) {
	var b [20]byte
	w.textBytes(strconv.AppendUint(b[:0], v, 10))
}

func (w *walker) textInt(v int64) {
	var b [20]byte
	w.textBytes(strconv.AppendInt(b[:0], v, 10))
}

func (w *walker) textBool(v uint8) {
	if 0x01 == v {
		w.text("true")
	} else {
		w.text("false")
	}
}

// start the selected argument, return false when it is not the target
func (w *walker) begin(label string) bool {
	if nil != w.err || !w.selected() {
		return false
	}
	w.field.start(label)
	return true
}

// argument methods used by the decoders

func (w *walker) String(label string) {
	if !w.active() {
		return
	}
	s := w.readString()
	if w.begin(label) {
		w.textBytes(s)
	}
	w.next()
}

func (w *walker) Uint16(label string) {
	if !w.active() {
		return
	}
	v := w.readUint16()
	if w.begin(label) {
		w.textUint(uint64(v))
	}
	w.next()
}

func (w *walker) Int16(label string) {
	if !w.active() {
		return
	}
	v := int16(w.readUint16())
	if w.begin(label) {
		w.textInt(int64(v))
	}
	w.next()
}

func (w *walker) Uint32(label string) {
	if !w.active() {
		return
	}
	v := w.readUint32()
	if w.begin(label) {
		w.textUint(uint64(v))
	}
	w.next()
}

func (w *walker) Int64(label string) {
	if !w.active() {
		return
	}
	v := int64(w.readUint64())
	if w.begin(label) {
		w.textInt(v)
	}
	w.next()
}

func (w *walker) Asset(label string) {
	if !w.active() {
		return
	}
	a := w.readAsset()
	if w.begin(label) {
		w.text(a.String())
	}
	w.next()
}

func (w *walker) PublicKey(label string) {
	if !w.active() {
		return
	}
	key := w.readPublicKey()
	if w.begin(label) {
		w.text(key.Address(w.prefix))
	}
	w.next()
}

func (w *walker) Bool(label string) {
	if !w.active() {
		return
	}
	v := w.readUint8()
	if w.begin(label) {
		w.textBool(v)
	}
	w.next()
}
