// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/fault"
)

// LengthEncoding - how the length after each tag is written
type LengthEncoding int

// supported length encodings
const (
	LengthVarint LengthEncoding = iota // base 128 continuation bit
	LengthDER                          // ASN.1 definite length
)

// names used in configuration files
const (
	varintName = "varint"
	derName    = "der"
)

func (e LengthEncoding) String() string {
	switch e {
	case LengthVarint:
		return varintName
	case LengthDER:
		return derName
	default:
		return "*unknown*"
	}
}

// LengthEncodingFromString - convert a configuration name
func LengthEncodingFromString(s string) (LengthEncoding, error) {
	switch s {
	case varintName, "":
		return LengthVarint, nil
	case derName:
		return LengthDER, nil
	default:
		return LengthVarint, fault.ErrInvalidLengthEncoding
	}
}

type options struct {
	encoding        LengthEncoding
	network         string
	confirmMultiple bool
	log             *logger.L
}

// Option - functional option for New
type Option func(*options)

// WithLengthEncoding - select varint or DER field lengths
func WithLengthEncoding(e LengthEncoding) Option {
	return func(o *options) {
		o.encoding = e
	}
}

// WithNetwork - chain name that selects the public key prefix
func WithNetwork(name string) Option {
	return func(o *options) {
		o.network = name
	}
}

// WithConfirmMultiple - emit ConfirmProcessing before the first of
// several operations
func WithConfirmMultiple(confirm bool) Option {
	return func(o *options) {
		o.confirmMultiple = confirm
	}
}

// WithLogger - log channel for state changes and faults
func WithLogger(log *logger.L) Option {
	return func(o *options) {
		o.log = log
	}
}

func defaultOptions() options {
	return options{
		encoding: LengthVarint,
		network:  chain.Hive,
	}
}
