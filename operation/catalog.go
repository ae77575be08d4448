// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hivesigner/fault"
)

// a decoder walks every argument of one operation in wire order
type decoder func(w *walker)

// Entry - static description of one reviewable operation
type Entry struct {
	Code          Code
	Name          string
	ArgumentCount int
	decode        decoder
}

// indexed by code, nil decode marks an unsupported code
var catalog [256]Entry

func init() {
	entries := []Entry{
		{Vote, "vote", 4, decodeVote},
		{Comment, "comment", 7, decodeComment},
		{Transfer, "transfer", 4, decodeTransfer},
		{TransferToVesting, "transfer_to_vesting", 3, decodeTransferToVesting},
		{WithdrawVesting, "withdraw_vesting", 2, decodeWithdrawVesting},
		{LimitOrderCreate, "limit_order_create", 6, decodeLimitOrderCreate},
		{LimitOrderCancel, "limit_order_cancel", 2, decodeLimitOrderCancel},
		{FeedPublish, "feed_publish", 3, decodeFeedPublish},
		{Convert, "convert", 3, decodeConvert},
		{AccountCreate, "account_create", 8, decodeAccountCreate},
		{AccountUpdate, "account_update", 6, decodeAccountUpdate},
		{WitnessUpdate, "witness_update", 4, decodeWitnessUpdate},
		{AccountWitnessVote, "account_witness_vote", 3, decodeAccountWitnessVote},
		{AccountWitnessProxy, "account_witness_proxy", 2, decodeAccountWitnessProxy},
		{DeleteComment, "delete_comment", 2, decodeDeleteComment},
		{CustomJSON, "custom_json", 4, decodeCustomJSON},
		{CommentOptions, "comment_options", 7, decodeCommentOptions},
		{SetWithdrawVestingRoute, "set_withdraw_vesting_route", 4, decodeSetWithdrawVestingRoute},
		{ClaimAccount, "claim_account", 2, decodeClaimAccount},
		{CreateClaimedAccount, "create_claimed_account", 7, decodeCreateClaimedAccount},
		{RequestAccountRecovery, "request_account_recovery", 3, decodeRequestAccountRecovery},
		{RecoverAccount, "recover_account", 3, decodeRecoverAccount},
		{ChangeRecoveryAccount, "change_recovery_account", 2, decodeChangeRecoveryAccount},
		{TransferToSavings, "transfer_to_savings", 4, decodeTransferToSavings},
		{TransferFromSavings, "transfer_from_savings", 5, decodeTransferFromSavings},
		{CancelTransferFromSavings, "cancel_transfer_from_savings", 2, decodeCancelTransferFromSavings},
		{DeclineVotingRights, "decline_voting_rights", 2, decodeDeclineVotingRights},
		{ResetAccount, "reset_account", 3, decodeResetAccount},
		{SetResetAccount, "set_reset_account", 3, decodeSetResetAccount},
		{ClaimRewardBalance, "claim_reward_balance", 4, decodeClaimRewardBalance},
		{DelegateVestingShares, "delegate_vesting_shares", 3, decodeDelegateVestingShares},
		{CreateProposal, "create_proposal", 7, decodeCreateProposal},
		{UpdateProposalVotes, "update_proposal_votes", 3, decodeUpdateProposalVotes},
		{RemoveProposal, "remove_proposal", 2, decodeRemoveProposal},
	}
	for _, e := range entries {
		catalog[e.Code] = e
	}
}

// Lookup - find the catalog entry for a code
func Lookup(code Code) (Entry, bool) {
	e := catalog[code]
	if nil == e.decode {
		return Entry{}, false
	}
	return e, true
}

// Codes - all supported codes in ascending order
func Codes() []Code {
	codes := make([]Code, 0, 40)
	for i := range catalog {
		if nil != catalog[i].decode {
			codes = append(codes, Code(i))
		}
	}
	return codes
}

// Format - decode argument index of an operation into field
//
// payload is the operation record without its leading code byte;
// prefix is the public key address prefix for the network; log may
// be nil
func Format(code Code, payload []byte, index int, prefix string, field *Field, log *logger.L) error {
	e, ok := Lookup(code)
	if !ok {
		return fault.ErrUnsupportedOperation
	}
	if index < 0 || index >= e.ArgumentCount {
		return fault.ErrInvalidArgumentIndex
	}

	field.Reset()
	w := walker{
		buffer: payload,
		target: index,
		prefix: prefix,
		field:  field,
	}
	e.decode(&w)

	if nil != w.err {
		field.Reset()
		if nil != log {
			log.Warnf("%s: argument: %d  offset: %d  error: %s", e.Name, index, w.offset, w.err)
		}
		return w.err
	}
	if !w.done {
		return fault.ErrInvalidArgumentIndex
	}
	if nil != log {
		log.Debugf("%s: argument: %d  %s: %q", e.Name, index, field.Label(), field.Value())
	}
	return nil
}
