// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/bitmark-inc/hivesigner/fault"
)

// only extension kind accepted by comment options
const beneficiariesExtension = 0

// Authority - weight threshold, account auths and key auths as one argument
//
//	"Weight: 1 - A1 - alice:1 || K1 - STM...:1 || "
func (w *walker) Authority(label string) {
	if !w.active() {
		return
	}
	show := w.begin(label)

	threshold := w.readUint32()
	if show {
		w.text("Weight: ")
		w.textUint(uint64(threshold))
		w.text(" - ")
	}

	accounts := w.readCount()
	for i := 0; i < accounts && nil == w.err; i += 1 {
		name := w.readString()
		weight := w.readUint16()
		if show {
			w.text("A")
			w.textUint(uint64(i + 1))
			w.text(" - ")
			w.textBytes(name)
			w.text(":")
			w.textUint(uint64(weight))
			w.text(" || ")
		}
	}

	keys := w.readCount()
	for i := 0; i < keys && nil == w.err; i += 1 {
		key := w.readPublicKey()
		weight := w.readUint16()
		if show {
			w.text("K")
			w.textUint(uint64(i + 1))
			w.text(" - ")
			w.text(key.Address(w.prefix))
			w.text(":")
			w.textUint(uint64(weight))
			w.text(" || ")
		}
	}

	w.next()
}

// StringList - count prefixed strings as "[ a, b ]", empty is "[ ]"
func (w *walker) StringList(label string) {
	if !w.active() {
		return
	}
	show := w.begin(label)
	if show {
		w.text("[ ")
	}
	n := w.readCount()
	for i := 0; i < n && nil == w.err; i += 1 {
		s := w.readString()
		if show {
			if i > 0 {
				w.text(", ")
			}
			w.textBytes(s)
		}
	}
	if show {
		w.closeList(n)
	}
	w.next()
}

// Int64List - count prefixed 64 bit integers as "[ 1, 2 ]"
func (w *walker) Int64List(label string) {
	if !w.active() {
		return
	}
	show := w.begin(label)
	if show {
		w.text("[ ")
	}
	n := w.readCount()
	for i := 0; i < n && nil == w.err; i += 1 {
		v := int64(w.readUint64())
		if show {
			if i > 0 {
				w.text(", ")
			}
			w.textInt(v)
		}
	}
	if show {
		w.closeList(n)
	}
	w.next()
}

// "[ " was already written so an empty list only needs the bracket
func (w *walker) closeList(n int) {
	if 0 == n {
		w.text("]")
	} else {
		w.text(" ]")
	}
}

// Beneficiaries - comment options extensions
//
// no extensions renders "[]"; exactly one beneficiaries extension
// renders "[ alice - 500, bob - 250 ]"; anything else is rejected
func (w *walker) Beneficiaries(label string) {
	if !w.active() {
		return
	}
	extensions := w.readCount()
	if nil != w.err {
		return
	}
	switch extensions {
	case 0:
		if w.begin(label) {
			w.text("[]")
		}
		w.next()
		return
	case 1:
	default:
		w.fail(fault.ErrMultipleCommentExtensions)
		return
	}

	if kind := w.readCount(); nil == w.err && beneficiariesExtension != kind {
		w.fail(fault.ErrUnsupportedCommentExtension)
		return
	}

	show := w.begin(label)
	if show {
		w.text("[ ")
	}
	n := w.readCount()
	for i := 0; i < n && nil == w.err; i += 1 {
		name := w.readString()
		weight := w.readUint16()
		if show {
			if i > 0 {
				w.text(", ")
			}
			w.textBytes(name)
			w.text(" - ")
			w.textUint(uint64(weight))
		}
	}
	if show {
		w.closeList(n)
	}
	w.next()
}

// WitnessProperties - chain properties proposed by a witness
//
//	"Account Creation Fee: 3.000 HIVE - Max Block Size: 65536 - HBD Interest Rate: 1000"
func (w *walker) WitnessProperties(label string) {
	if !w.active() {
		return
	}
	show := w.begin(label)

	fee := w.readAsset()
	blockSize := w.readUint32()
	interestRate := w.readUint16()

	if show {
		w.text("Account Creation Fee: ")
		w.text(fee.String())
		w.text(" - Max Block Size: ")
		w.textUint(uint64(blockSize))
		w.text(" - HBD Interest Rate: ")
		w.textUint(uint64(interestRate))
	}
	w.next()
}
