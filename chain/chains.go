// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"encoding/hex"
)

// names of all chains
const (
	Hive    = "hive"
	Testnet = "testnet"
)

// ChainIDLength - number of bytes in a chain id
const ChainIDLength = 32

type parameters struct {
	addressPrefix string
	chainID       string
}

var networks = map[string]parameters{
	Hive: {
		addressPrefix: "STM",
		chainID:       "beeab0de00000000000000000000000000000000000000000000000000000000",
	},
	Testnet: {
		addressPrefix: "TST",
		chainID:       "18dcf0a285365fc58b71f18b3d3fec954aa0c141c44e4e5cb4cf777b9eab274e",
	},
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := networks[name]
	return ok
}

// AddressPrefix - the three character public key prefix for a chain
//
// unknown chains fall back to the main network prefix
func AddressPrefix(name string) string {
	if p, ok := networks[name]; ok {
		return p.addressPrefix
	}
	return networks[Hive].addressPrefix
}

// ChainID - binary chain id for a chain, nil if the chain is unknown
func ChainID(name string) []byte {
	p, ok := networks[name]
	if !ok {
		return nil
	}
	id, err := hex.DecodeString(p.chainID)
	if nil != err {
		return nil
	}
	return id
}

// FromChainID - find the chain name for a binary chain id
func FromChainID(id []byte) (string, bool) {
	s := hex.EncodeToString(id)
	for name, p := range networks {
		if p.chainID == s {
			return name, true
		}
	}
	return "", false
}
