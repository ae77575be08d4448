// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

func decodeWitnessUpdate(w *walker) {
	w.String("Owner")
	w.String("URL")
	w.PublicKey("Signing Key")
	w.WitnessProperties("Witness Props")
}

func decodeAccountWitnessVote(w *walker) {
	w.String("Account")
	w.String("Witness")
	w.Bool("Approve")
}

func decodeAccountWitnessProxy(w *walker) {
	w.String("Account")
	w.String("Proxy")
}
