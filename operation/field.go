// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/bitmark-inc/hivesigner/fault"
)

// FieldCapacity - maximum bytes of formatted text for one argument
const FieldCapacity = 256

// Field - a single reusable formatted argument
type Field struct {
	label  string
	length int
	buffer [FieldCapacity]byte
}

// Reset - clear the label and zero the whole buffer
func (f *Field) Reset() {
	f.label = ""
	f.length = 0
	for i := range f.buffer {
		f.buffer[i] = 0
	}
}

// Label - display label of the formatted argument
func (f *Field) Label() string {
	return f.label
}

// Value - formatted text
func (f *Field) Value() string {
	return string(f.buffer[:f.length])
}

// Bytes - formatted text without copying, valid until the next Reset
func (f *Field) Bytes() []byte {
	return f.buffer[:f.length]
}

// set the label, discarding any previous value
func (f *Field) start(label string) {
	f.Reset()
	f.label = label
}

// add text after the current value
func (f *Field) append(s string) error {
	if f.length+len(s) > FieldCapacity {
		return fault.ErrFieldBufferOverflow
	}
	f.length += copy(f.buffer[f.length:], s)
	return nil
}

// add raw bytes after the current value
func (f *Field) appendBytes(b []byte) error {
	if f.length+len(b) > FieldCapacity {
		return fault.ErrFieldBufferOverflow
	}
	f.length += copy(f.buffer[f.length:], b)
	return nil
}
