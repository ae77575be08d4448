// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/hivesigner/fault"
)

// command errors - keep in alphabetic order
const (
	ErrConflictingKeyFlags  = fault.InvalidError("give either a public key or an address, not both")
	ErrInvalidChunkSize     = fault.InvalidError("chunk size must be positive")
	ErrJournalUnavailable   = fault.NotFoundError("journal requires a configuration file")
	ErrMissingPublicKey     = fault.InvalidError("public key or address is required")
	ErrMissingTransaction   = fault.InvalidError("no transaction data")
	ErrTruncatedTransaction = fault.StructureError("transaction ended before all fields were received")
)
