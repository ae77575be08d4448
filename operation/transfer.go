// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

func decodeTransfer(w *walker) {
	w.String("From")
	w.String("To")
	w.Asset("Amount")
	w.String("Memo")
}

func decodeTransferToVesting(w *walker) {
	w.String("From")
	w.String("To")
	w.Asset("Amount")
}

func decodeWithdrawVesting(w *walker) {
	w.String("Account")
	w.Asset("Vesting Shares")
}

func decodeSetWithdrawVestingRoute(w *walker) {
	w.String("From Account")
	w.String("To Account")
	w.Uint16("Percent")
	w.Bool("Autovest")
}

func decodeConvert(w *walker) {
	w.String("Owner")
	w.Uint32("Request ID")
	w.Asset("Amount")
}

func decodeTransferToSavings(w *walker) {
	w.String("From")
	w.String("To")
	w.Asset("Amount")
	w.String("Memo")
}

func decodeTransferFromSavings(w *walker) {
	w.String("From")
	w.Uint32("Request ID")
	w.String("To")
	w.Asset("Amount")
	w.String("Memo")
}

func decodeCancelTransferFromSavings(w *walker) {
	w.String("From")
	w.Uint32("Request ID")
}

func decodeClaimRewardBalance(w *walker) {
	w.String("Account")
	w.Asset("Reward HIVE")
	w.Asset("Reward HBD")
	w.Asset("Reward VESTS")
}

func decodeDelegateVestingShares(w *walker) {
	w.String("Delegator")
	w.String("Delegatee")
	w.Asset("Vesting Shares")
}
