// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hivesigner/account"
	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/fault"
)

type addressInfo struct {
	Network   string `json:"network"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := resolveAddress(m.config.Network, c.String("publickey"), c.String("address"))
	if nil != err {
		return err
	}
	return printJSON(m.w, info)
}

// exactly one of a hex public key or an address for the network
func resolveAddress(network string, publicKey string, address string) (*addressInfo, error) {
	prefix := chain.AddressPrefix(network)

	var key account.PublicKey
	switch {
	case "" != publicKey && "" != address:
		return nil, ErrConflictingKeyFlags

	case "" != publicKey:
		k, err := account.PublicKeyFromHex(publicKey)
		if nil != err {
			return nil, err
		}
		key = k

	case "" != address:
		k, addressPrefix, err := account.FromAddress(address)
		if nil != err {
			return nil, err
		}
		if prefix != addressPrefix {
			return nil, fault.ErrInvalidAddressPrefix
		}
		key = k

	default:
		return nil, ErrMissingPublicKey
	}

	return &addressInfo{
		Network:   network,
		PublicKey: hex.EncodeToString(key[:]),
		Address:   key.Address(prefix),
	}, nil
}
