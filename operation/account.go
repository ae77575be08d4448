// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

// account lifecycle, recovery and authority changes

func decodeAccountCreate(w *walker) {
	w.Asset("Fee")
	w.String("Creator")
	w.String("New Account Name")
	w.Authority("Owner Auth")
	w.Authority("Active Auth")
	w.Authority("Posting Auth")
	w.PublicKey("Memo Key")
	w.String("JSON Metadata")
}

func decodeAccountUpdate(w *walker) {
	w.String("Account")
	w.Authority("Owner Auth")
	w.Authority("Active Auth")
	w.Authority("Posting Auth")
	w.PublicKey("Memo Key")
	w.String("JSON Metadata")
}

func decodeClaimAccount(w *walker) {
	w.String("Creator")
	w.Asset("Fee")
}

func decodeCreateClaimedAccount(w *walker) {
	w.String("Creator")
	w.String("New Account Name")
	w.Authority("Owner Auth")
	w.Authority("Active Auth")
	w.Authority("Posting Auth")
	w.PublicKey("Memo Key")
	w.String("JSON Metadata")
}

func decodeRequestAccountRecovery(w *walker) {
	w.String("Recovery Account")
	w.String("Account To Recover")
	w.Authority("New Owner Auth")
}

func decodeRecoverAccount(w *walker) {
	w.String("Account To Recover")
	w.Authority("New Owner Auth")
	w.Authority("Recent Owner Auth")
}

func decodeChangeRecoveryAccount(w *walker) {
	w.String("Account To Recover")
	w.String("New Recovery Account")
}

func decodeDeclineVotingRights(w *walker) {
	w.String("Account")
	w.Bool("Decline")
}

func decodeResetAccount(w *walker) {
	w.String("Reset Account")
	w.String("Account To Reset")
	w.Authority("New Owner Auth")
}

func decodeSetResetAccount(w *walker) {
	w.String("Account")
	w.String("Current Reset Account")
	w.String("New Reset Account")
}
