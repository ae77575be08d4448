// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - decoders for the fixed catalog of Hive operations
//
// Each decoder walks a raw operation payload from the start and
// formats exactly one argument into a caller supplied Field.  Nothing
// is cached between calls; asking for the same argument twice walks
// the payload twice and yields identical text.
//
// Payload layout is the Hive binary serialisation:
//
//	string     Varint32 length followed by bytes
//	integers   fixed width little endian
//	asset      16 bytes (see package asset)
//	public key 33 byte compressed point
//	bool       one byte, 0x01 is true
//	list       Varint32 count followed by items
package operation
