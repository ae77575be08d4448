// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"strconv"
)

// Code - operation type code, first byte of every operation record
type Code uint8

// the recognised operation codes
// gaps are operations that cannot be reviewed
const (
	Vote                      = Code(0)
	Comment                   = Code(1)
	Transfer                  = Code(2)
	TransferToVesting         = Code(3)
	WithdrawVesting           = Code(4)
	LimitOrderCreate          = Code(5)
	LimitOrderCancel          = Code(6)
	FeedPublish               = Code(7)
	Convert                   = Code(8)
	AccountCreate             = Code(9)
	AccountUpdate             = Code(10)
	WitnessUpdate             = Code(11)
	AccountWitnessVote        = Code(12)
	AccountWitnessProxy       = Code(13)
	DeleteComment             = Code(17)
	CustomJSON                = Code(18)
	CommentOptions            = Code(19)
	SetWithdrawVestingRoute   = Code(20)
	ClaimAccount              = Code(22)
	CreateClaimedAccount      = Code(23)
	RequestAccountRecovery    = Code(24)
	RecoverAccount            = Code(25)
	ChangeRecoveryAccount     = Code(26)
	TransferToSavings         = Code(32)
	TransferFromSavings       = Code(33)
	CancelTransferFromSavings = Code(34)
	DeclineVotingRights       = Code(36)
	ResetAccount              = Code(37)
	SetResetAccount           = Code(38)
	ClaimRewardBalance        = Code(39)
	DelegateVestingShares     = Code(40)
	CreateProposal            = Code(44)
	UpdateProposalVotes       = Code(45)
	RemoveProposal            = Code(46)
)

// String - catalog name, or the decimal code for unsupported operations
func (code Code) String() string {
	if e, ok := Lookup(code); ok {
		return e.Name
	}
	return "operation_" + strconv.Itoa(int(code))
}
