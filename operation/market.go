// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

// internal market

// order id is a fixed four bytes, not a varint
func decodeLimitOrderCreate(w *walker) {
	w.String("Owner")
	w.Uint32("Order ID")
	w.Asset("Amount To Sell")
	w.Asset("Min To Receive")
	w.Bool("Fill or Kill")
	w.Uint32("Expiration")
}

func decodeLimitOrderCancel(w *walker) {
	w.String("Owner")
	w.Uint32("Order ID")
}

// price feed: base then quote
func decodeFeedPublish(w *walker) {
	w.String("Publisher")
	w.Asset("Base")
	w.Asset("Quote")
}
