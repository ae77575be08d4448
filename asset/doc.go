// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - fixed point monetary amounts
//
// wire form is 16 bytes:
//
//	amount    int64 little endian
//	precision uint8 number of decimal places
//	symbol    7 bytes, NUL padded
//
// text form is the amount with exactly precision decimal places
// followed by a single space and the symbol, e.g. "1.000 HIVE"
package asset
