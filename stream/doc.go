// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stream - incremental decoder for a transaction under review
//
// A transaction arrives as a flat sequence of TLV fields in chunks of
// any size:
//
//	[chain id][ref block num][ref block prefix][expiration]
//	[operation count][operation 0]..[operation N-1][extension count]
//
// Each field is [0x04][length][value].  The length is a Varint32 by
// default or a DER definite length when configured.
//
// Every value byte is absorbed into the transaction digest as it is
// consumed; operation bytes are also absorbed into the action digest
// and copied into a fixed action buffer so the operation can be
// formatted argument by argument before the next one is read.
package stream
