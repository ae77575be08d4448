// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hivesigner/account"
	"github.com/bitmark-inc/hivesigner/asset"
	"github.com/bitmark-inc/hivesigner/fault"
	"github.com/bitmark-inc/hivesigner/operation"
)

const prefix = "STM"

var (
	ownerKey  = makeKey(0x02, 0x11)
	activeKey = makeKey(0x03, 0x22)
	memoKey   = makeKey(0x02, 0x33)

	ownerAddress  = ownerKey.Address(prefix)
	activeAddress = activeKey.Address(prefix)
	memoAddress   = memoKey.Address(prefix)

	oneHive  = asset.Asset{Amount: 1000, Precision: 3, Symbol: "HIVE"}
	someHBD  = asset.Asset{Amount: 2500, Precision: 3, Symbol: "HBD"}
	someVest = asset.Asset{Amount: 123456789, Precision: 6, Symbol: "VESTS"}
)

func makeKey(parity byte, fill byte) account.PublicKey {
	var key account.PublicKey
	key[0] = parity
	for i := 1; i < len(key); i += 1 {
		key[i] = fill + byte(i)
	}
	return key
}

type argument struct {
	label string
	value string
}

var ownerAuthority = operation.Authority{
	Threshold: 1,
	Accounts:  []operation.AccountWeight{{Account: "alice", Weight: 1}},
	Keys:      []operation.KeyWeight{{Key: ownerKey, Weight: 1}},
}

var activeAuthority = operation.Authority{
	Threshold: 2,
	Accounts: []operation.AccountWeight{
		{Account: "bob", Weight: 1},
		{Account: "carol", Weight: 1},
	},
	Keys: []operation.KeyWeight{{Key: activeKey, Weight: 2}},
}

var postingAuthority = operation.Authority{
	Threshold: 1,
}

var ownerAuthorityText = "Weight: 1 - A1 - alice:1 || K1 - " + ownerAddress + ":1 || "
var activeAuthorityText = "Weight: 2 - A1 - bob:1 || A2 - carol:1 || K1 - " + activeAddress + ":2 || "
var postingAuthorityText = "Weight: 1 - "

var operationTests = []struct {
	name     string
	record   operation.Packed
	expected []argument
}{
	{
		name: "vote",
		record: operation.NewPacked(operation.Vote).
			AppendString("alice").
			AppendString("bob").
			AppendString("a-post").
			AppendInt16(-5000),
		expected: []argument{
			{"Voter", "alice"},
			{"Author", "bob"},
			{"Permlink", "a-post"},
			{"Weight", "-5000"},
		},
	},
	{
		name: "comment",
		record: operation.NewPacked(operation.Comment).
			AppendString("").
			AppendString("hive").
			AppendString("alice").
			AppendString("first-post").
			AppendString("First Post").
			AppendString("Hello world").
			AppendString(`{"tags":["hive"]}`),
		expected: []argument{
			{"Parent Author", ""},
			{"Parent Permlink", "hive"},
			{"Author", "alice"},
			{"Permlink", "first-post"},
			{"Title", "First Post"},
			{"Body", "Hello world"},
			{"JSON Metadata", `{"tags":["hive"]}`},
		},
	},
	{
		name: "transfer",
		record: operation.NewPacked(operation.Transfer).
			AppendString("alice").
			AppendString("bob").
			AppendAsset(oneHive).
			AppendString("thanks"),
		expected: []argument{
			{"From", "alice"},
			{"To", "bob"},
			{"Amount", "1.000 HIVE"},
			{"Memo", "thanks"},
		},
	},
	{
		name: "transfer_to_vesting",
		record: operation.NewPacked(operation.TransferToVesting).
			AppendString("alice").
			AppendString("alice").
			AppendAsset(oneHive),
		expected: []argument{
			{"From", "alice"},
			{"To", "alice"},
			{"Amount", "1.000 HIVE"},
		},
	},
	{
		name: "withdraw_vesting",
		record: operation.NewPacked(operation.WithdrawVesting).
			AppendString("alice").
			AppendAsset(someVest),
		expected: []argument{
			{"Account", "alice"},
			{"Vesting Shares", "123.456789 VESTS"},
		},
	},
	{
		name: "limit_order_create",
		record: operation.NewPacked(operation.LimitOrderCreate).
			AppendString("alice").
			AppendUint32(0x01020304).
			AppendAsset(oneHive).
			AppendAsset(someHBD).
			AppendBool(true).
			AppendUint32(1600000000),
		expected: []argument{
			{"Owner", "alice"},
			{"Order ID", "16909060"},
			{"Amount To Sell", "1.000 HIVE"},
			{"Min To Receive", "2.500 HBD"},
			{"Fill or Kill", "true"},
			{"Expiration", "1600000000"},
		},
	},
	{
		name: "limit_order_cancel",
		record: operation.NewPacked(operation.LimitOrderCancel).
			AppendString("alice").
			AppendUint32(42),
		expected: []argument{
			{"Owner", "alice"},
			{"Order ID", "42"},
		},
	},
	{
		name: "feed_publish",
		record: operation.NewPacked(operation.FeedPublish).
			AppendString("witness").
			AppendAsset(someHBD).
			AppendAsset(oneHive),
		expected: []argument{
			{"Publisher", "witness"},
			{"Base", "2.500 HBD"},
			{"Quote", "1.000 HIVE"},
		},
	},
	{
		name: "convert",
		record: operation.NewPacked(operation.Convert).
			AppendString("alice").
			AppendUint32(7).
			AppendAsset(someHBD),
		expected: []argument{
			{"Owner", "alice"},
			{"Request ID", "7"},
			{"Amount", "2.500 HBD"},
		},
	},
	{
		name: "account_create",
		record: operation.NewPacked(operation.AccountCreate).
			AppendAsset(oneHive).
			AppendString("alice").
			AppendString("newbie").
			AppendAuthority(ownerAuthority).
			AppendAuthority(activeAuthority).
			AppendAuthority(postingAuthority).
			AppendPublicKey(memoKey).
			AppendString("{}"),
		expected: []argument{
			{"Fee", "1.000 HIVE"},
			{"Creator", "alice"},
			{"New Account Name", "newbie"},
			{"Owner Auth", ownerAuthorityText},
			{"Active Auth", activeAuthorityText},
			{"Posting Auth", postingAuthorityText},
			{"Memo Key", memoAddress},
			{"JSON Metadata", "{}"},
		},
	},
	{
		name: "account_update",
		record: operation.NewPacked(operation.AccountUpdate).
			AppendString("alice").
			AppendAuthority(ownerAuthority).
			AppendAuthority(activeAuthority).
			AppendAuthority(postingAuthority).
			AppendPublicKey(memoKey).
			AppendString(""),
		expected: []argument{
			{"Account", "alice"},
			{"Owner Auth", ownerAuthorityText},
			{"Active Auth", activeAuthorityText},
			{"Posting Auth", postingAuthorityText},
			{"Memo Key", memoAddress},
			{"JSON Metadata", ""},
		},
	},
	{
		name: "witness_update",
		record: operation.NewPacked(operation.WitnessUpdate).
			AppendString("witness").
			AppendString("https://example.com").
			AppendPublicKey(activeKey).
			AppendAsset(asset.Asset{Amount: 3000, Precision: 3, Symbol: "HIVE"}).
			AppendUint32(65536).
			AppendUint16(1000).
			AppendAsset(oneHive),
		expected: []argument{
			{"Owner", "witness"},
			{"URL", "https://example.com"},
			{"Signing Key", activeAddress},
			{"Witness Props", "Account Creation Fee: 3.000 HIVE - Max Block Size: 65536 - HBD Interest Rate: 1000"},
		},
	},
	{
		name: "account_witness_vote",
		record: operation.NewPacked(operation.AccountWitnessVote).
			AppendString("alice").
			AppendString("witness").
			AppendBool(false),
		expected: []argument{
			{"Account", "alice"},
			{"Witness", "witness"},
			{"Approve", "false"},
		},
	},
	{
		name: "account_witness_proxy",
		record: operation.NewPacked(operation.AccountWitnessProxy).
			AppendString("alice").
			AppendString("bob"),
		expected: []argument{
			{"Account", "alice"},
			{"Proxy", "bob"},
		},
	},
	{
		name: "delete_comment",
		record: operation.NewPacked(operation.DeleteComment).
			AppendString("alice").
			AppendString("first-post"),
		expected: []argument{
			{"Author", "alice"},
			{"Permlink", "first-post"},
		},
	},
	{
		name: "custom_json",
		record: operation.NewPacked(operation.CustomJSON).
			AppendStringList(nil).
			AppendStringList([]string{"alice", "bob"}).
			AppendString("follow").
			AppendString(`["follow",{}]`),
		expected: []argument{
			{"Required Auths", "[ ]"},
			{"Required Posting Auths", "[ alice, bob ]"},
			{"ID", "follow"},
			{"JSON", `["follow",{}]`},
		},
	},
	{
		name: "comment_options",
		record: operation.NewPacked(operation.CommentOptions).
			AppendString("alice").
			AppendString("first-post").
			AppendAsset(asset.Asset{Amount: 1000000000, Precision: 3, Symbol: "HBD"}).
			AppendUint16(10000).
			AppendBool(true).
			AppendBool(false).
			AppendBeneficiaries([]operation.AccountWeight{
				{Account: "bob", Weight: 500},
				{Account: "carol", Weight: 250},
			}),
		expected: []argument{
			{"Author", "alice"},
			{"Permlink", "first-post"},
			{"Max Payout", "1000000.000 HBD"},
			{"Percent HBD", "10000"},
			{"Allow Votes", "true"},
			{"Allow Curation Rewards", "false"},
			{"Beneficiaries", "[ bob - 500, carol - 250 ]"},
		},
	},
	{
		name: "set_withdraw_vesting_route",
		record: operation.NewPacked(operation.SetWithdrawVestingRoute).
			AppendString("alice").
			AppendString("bob").
			AppendUint16(5000).
			AppendBool(true),
		expected: []argument{
			{"From Account", "alice"},
			{"To Account", "bob"},
			{"Percent", "5000"},
			{"Autovest", "true"},
		},
	},
	{
		name: "claim_account",
		record: operation.NewPacked(operation.ClaimAccount).
			AppendString("alice").
			AppendAsset(asset.Asset{Amount: 0, Precision: 3, Symbol: "HIVE"}),
		expected: []argument{
			{"Creator", "alice"},
			{"Fee", "0.000 HIVE"},
		},
	},
	{
		name: "create_claimed_account",
		record: operation.NewPacked(operation.CreateClaimedAccount).
			AppendString("alice").
			AppendString("newbie").
			AppendAuthority(ownerAuthority).
			AppendAuthority(activeAuthority).
			AppendAuthority(postingAuthority).
			AppendPublicKey(memoKey).
			AppendString("{}"),
		expected: []argument{
			{"Creator", "alice"},
			{"New Account Name", "newbie"},
			{"Owner Auth", ownerAuthorityText},
			{"Active Auth", activeAuthorityText},
			{"Posting Auth", postingAuthorityText},
			{"Memo Key", memoAddress},
			{"JSON Metadata", "{}"},
		},
	},
	{
		name: "request_account_recovery",
		record: operation.NewPacked(operation.RequestAccountRecovery).
			AppendString("recoverer").
			AppendString("alice").
			AppendAuthority(ownerAuthority),
		expected: []argument{
			{"Recovery Account", "recoverer"},
			{"Account To Recover", "alice"},
			{"New Owner Auth", ownerAuthorityText},
		},
	},
	{
		name: "recover_account",
		record: operation.NewPacked(operation.RecoverAccount).
			AppendString("alice").
			AppendAuthority(ownerAuthority).
			AppendAuthority(activeAuthority),
		expected: []argument{
			{"Account To Recover", "alice"},
			{"New Owner Auth", ownerAuthorityText},
			{"Recent Owner Auth", activeAuthorityText},
		},
	},
	{
		name: "change_recovery_account",
		record: operation.NewPacked(operation.ChangeRecoveryAccount).
			AppendString("alice").
			AppendString("bob"),
		expected: []argument{
			{"Account To Recover", "alice"},
			{"New Recovery Account", "bob"},
		},
	},
	{
		name: "transfer_to_savings",
		record: operation.NewPacked(operation.TransferToSavings).
			AppendString("alice").
			AppendString("alice").
			AppendAsset(someHBD).
			AppendString("save"),
		expected: []argument{
			{"From", "alice"},
			{"To", "alice"},
			{"Amount", "2.500 HBD"},
			{"Memo", "save"},
		},
	},
	{
		name: "transfer_from_savings",
		record: operation.NewPacked(operation.TransferFromSavings).
			AppendString("alice").
			AppendUint32(99).
			AppendString("bob").
			AppendAsset(someHBD).
			AppendString(""),
		expected: []argument{
			{"From", "alice"},
			{"Request ID", "99"},
			{"To", "bob"},
			{"Amount", "2.500 HBD"},
			{"Memo", ""},
		},
	},
	{
		name: "cancel_transfer_from_savings",
		record: operation.NewPacked(operation.CancelTransferFromSavings).
			AppendString("alice").
			AppendUint32(99),
		expected: []argument{
			{"From", "alice"},
			{"Request ID", "99"},
		},
	},
	{
		name: "decline_voting_rights",
		record: operation.NewPacked(operation.DeclineVotingRights).
			AppendString("alice").
			AppendBool(true),
		expected: []argument{
			{"Account", "alice"},
			{"Decline", "true"},
		},
	},
	{
		name: "reset_account",
		record: operation.NewPacked(operation.ResetAccount).
			AppendString("resetter").
			AppendString("alice").
			AppendAuthority(ownerAuthority),
		expected: []argument{
			{"Reset Account", "resetter"},
			{"Account To Reset", "alice"},
			{"New Owner Auth", ownerAuthorityText},
		},
	},
	{
		name: "set_reset_account",
		record: operation.NewPacked(operation.SetResetAccount).
			AppendString("alice").
			AppendString("old").
			AppendString("new"),
		expected: []argument{
			{"Account", "alice"},
			{"Current Reset Account", "old"},
			{"New Reset Account", "new"},
		},
	},
	{
		name: "claim_reward_balance",
		record: operation.NewPacked(operation.ClaimRewardBalance).
			AppendString("alice").
			AppendAsset(oneHive).
			AppendAsset(someHBD).
			AppendAsset(someVest),
		expected: []argument{
			{"Account", "alice"},
			{"Reward HIVE", "1.000 HIVE"},
			{"Reward HBD", "2.500 HBD"},
			{"Reward VESTS", "123.456789 VESTS"},
		},
	},
	{
		name: "delegate_vesting_shares",
		record: operation.NewPacked(operation.DelegateVestingShares).
			AppendString("alice").
			AppendString("bob").
			AppendAsset(someVest),
		expected: []argument{
			{"Delegator", "alice"},
			{"Delegatee", "bob"},
			{"Vesting Shares", "123.456789 VESTS"},
		},
	},
	{
		name: "create_proposal",
		record: operation.NewPacked(operation.CreateProposal).
			AppendString("alice").
			AppendString("bob").
			AppendUint32(1600000000).
			AppendUint32(1700000000).
			AppendAsset(someHBD).
			AppendString("Fund it").
			AppendString("fund-it"),
		expected: []argument{
			{"Creator", "alice"},
			{"Receiver", "bob"},
			{"Start Date", "1600000000"},
			{"End Date", "1700000000"},
			{"Daily Pay", "2.500 HBD"},
			{"Subject", "Fund it"},
			{"Permlink", "fund-it"},
		},
	},
	{
		name: "update_proposal_votes",
		record: operation.NewPacked(operation.UpdateProposalVotes).
			AppendString("alice").
			AppendInt64List([]int64{0, 17, 123456789012}).
			AppendBool(true),
		expected: []argument{
			{"Voter", "alice"},
			{"Proposal IDs", "[ 0, 17, 123456789012 ]"},
			{"Approve", "true"},
		},
	},
	{
		name: "remove_proposal",
		record: operation.NewPacked(operation.RemoveProposal).
			AppendString("alice").
			AppendInt64List(nil),
		expected: []argument{
			{"Proposal Owner", "alice"},
			{"Proposal IDs", "[ ]"},
		},
	},
}

func TestFormatAll(t *testing.T) {
	field := &operation.Field{}

	seen := make(map[operation.Code]bool)
	for _, item := range operationTests {
		entry, ok := operation.Lookup(item.record.Code())
		if !assert.True(t, ok, "%s: not in catalog", item.name) {
			continue
		}
		seen[entry.Code] = true

		assert.Equal(t, item.name, entry.Name, "%s: wrong name", item.name)
		assert.Equal(t, len(item.expected), entry.ArgumentCount, "%s: wrong argument count", item.name)

		for i, expected := range item.expected {
			err := item.record.Format(i, prefix, field)
			assert.Nil(t, err, "%s: %d: format error", item.name, i)
			assert.Equal(t, expected.label, field.Label(), "%s: %d: wrong label", item.name, i)
			assert.Equal(t, expected.value, field.Value(), "%s: %d: wrong value", item.name, i)
		}

		err := item.record.Format(len(item.expected), prefix, field)
		assert.Equal(t, fault.ErrInvalidArgumentIndex, err, "%s: index past end", item.name)
	}

	// every supported code has a test
	for _, code := range operation.Codes() {
		assert.True(t, seen[code], "no test for: %s", code)
	}
}

// the same index on the same payload always renders the same text
func TestFormatRepeatable(t *testing.T) {
	field := &operation.Field{}
	for _, item := range operationTests {
		for i := range item.expected {
			err := item.record.Format(i, prefix, field)
			assert.Nil(t, err, "%s: %d: first format", item.name, i)
			first := field.Value()

			// disturb the buffer with a different argument
			_ = item.record.Format(len(item.expected)-1-i, prefix, field)

			err = item.record.Format(i, prefix, field)
			assert.Nil(t, err, "%s: %d: second format", item.name, i)
			assert.Equal(t, first, field.Value(), "%s: %d: differs", item.name, i)
		}
	}
}

// every proper prefix of a payload is a structural fault for its last argument
func TestFormatTruncated(t *testing.T) {
	field := &operation.Field{}
	for _, item := range operationTests {
		payload := item.record.Payload()
		last := len(item.expected) - 1
		for n := 0; n < len(payload); n += 1 {
			err := operation.Format(item.record.Code(), payload[:n], last, prefix, field, nil)
			if item.record.Code() == operation.WitnessUpdate && n >= len(payload)-asset.PackedLength {
				// trailing fee is never decoded
				assert.Nil(t, err, "%s: length %d", item.name, n)
				continue
			}
			assert.True(t, fault.IsErrStructure(err), "%s: length %d: err = %v", item.name, n, err)
			assert.Equal(t, "", field.Value(), "%s: length %d: stale value", item.name, n)
		}
	}
}

// a logger sees every decode but never changes the result
func TestFormatWithLogger(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	log := logger.New("operation")
	field := &operation.Field{}
	for _, item := range operationTests {
		for i, expected := range item.expected {
			err := operation.Format(item.record.Code(), item.record.Payload(), i, prefix, field, log)
			assert.Nil(t, err, "%s: %d: format error", item.name, i)
			assert.Equal(t, expected.label, field.Label(), "%s: %d: wrong label", item.name, i)
			assert.Equal(t, expected.value, field.Value(), "%s: %d: wrong value", item.name, i)
		}
	}

	// a structural fault is still returned and clears the field
	record := operationTests[0].record
	payload := record.Payload()
	last := len(operationTests[0].expected) - 1
	err := operation.Format(record.Code(), payload[:len(payload)-1], last, prefix, field, log)
	assert.True(t, fault.IsErrStructure(err), "truncated: err = %v", err)
	assert.Equal(t, "", field.Value(), "truncated: stale value")

	log.Flush()
	info, err := os.Stat(filepath.Join(testingDirName, testingLogFile))
	assert.Nil(t, err, "log file")
	assert.NotEqual(t, int64(0), info.Size(), "empty log file")
}

func TestCommentOptionsExtensions(t *testing.T) {
	field := &operation.Field{}
	base := operation.NewPacked(operation.CommentOptions).
		AppendString("alice").
		AppendString("p").
		AppendAsset(oneHive).
		AppendUint16(0).
		AppendBool(true).
		AppendBool(true)

	none := append(operation.Packed{}, base...).AppendBeneficiaries(nil)
	err := none.Format(6, prefix, field)
	assert.Nil(t, err, "no extensions")
	assert.Equal(t, "[]", field.Value(), "no extensions")

	empty := append(operation.Packed{}, base...).AppendBeneficiaries([]operation.AccountWeight{})
	err = empty.Format(6, prefix, field)
	assert.Nil(t, err, "empty beneficiaries")
	assert.Equal(t, "[ ]", field.Value(), "empty beneficiaries")

	two := append(operation.Packed{}, base...).AppendCount(2).AppendCount(0).AppendCount(0).AppendCount(0).AppendCount(0)
	err = two.Format(6, prefix, field)
	assert.Equal(t, fault.ErrMultipleCommentExtensions, err, "two extensions")
	assert.True(t, fault.IsErrSemantic(err), "two extensions class")

	// earlier arguments are still readable
	err = two.Format(0, prefix, field)
	assert.Nil(t, err, "author of two extensions")
	assert.Equal(t, "alice", field.Value(), "author")

	unknown := append(operation.Packed{}, base...).AppendCount(1).AppendCount(1).AppendCount(0)
	err = unknown.Format(6, prefix, field)
	assert.Equal(t, fault.ErrUnsupportedCommentExtension, err, "unknown extension kind")
}

func TestFieldOverflow(t *testing.T) {
	field := &operation.Field{}

	long := strings.Repeat("x", operation.FieldCapacity+1)
	record := operation.NewPacked(operation.Transfer).
		AppendString("alice").
		AppendString("bob").
		AppendAsset(oneHive).
		AppendString(long)

	err := record.Format(3, prefix, field)
	assert.Equal(t, fault.ErrFieldBufferOverflow, err, "memo too long")
	assert.True(t, fault.IsErrCapacity(err), "capacity class")

	exact := operation.NewPacked(operation.Transfer).
		AppendString("alice").
		AppendString("bob").
		AppendAsset(oneHive).
		AppendString(long[1:])
	err = exact.Format(3, prefix, field)
	assert.Nil(t, err, "memo at capacity")
	assert.Equal(t, operation.FieldCapacity, len(field.Value()), "memo length")

	// composite exceeding the field
	names := make([]string, 30)
	for i := range names {
		names[i] = "account-number"
	}
	list := operation.NewPacked(operation.CustomJSON).
		AppendStringList(names).
		AppendStringList(nil).
		AppendString("id").
		AppendString("{}")
	err = list.Format(0, prefix, field)
	assert.Equal(t, fault.ErrFieldBufferOverflow, err, "list too long")

	// skipping the long list still works
	err = list.Format(2, prefix, field)
	assert.Nil(t, err, "skip long list")
	assert.Equal(t, "id", field.Value(), "id")
}

func TestUnsupported(t *testing.T) {
	field := &operation.Field{}
	for _, code := range []operation.Code{14, 15, 16, 21, 27, 31, 35, 41, 43, 47, 255} {
		_, ok := operation.Lookup(code)
		assert.False(t, ok, "code %d must be unsupported", code)

		err := operation.Format(code, []byte{0x00}, 0, prefix, field, nil)
		assert.Equal(t, fault.ErrUnsupportedOperation, err, "code %d", code)
	}
	assert.Equal(t, "operation_255", operation.Code(255).String(), "unsupported name")
	assert.Equal(t, "vote", operation.Vote.String(), "vote name")
}

func TestInvalidIndex(t *testing.T) {
	field := &operation.Field{}
	record := operationTests[0].record
	assert.Equal(t, fault.ErrInvalidArgumentIndex, record.Format(-1, prefix, field), "negative")
	assert.Equal(t, fault.ErrInvalidArgumentIndex, record.Format(4, prefix, field), "past end")
}

func TestNetworkPrefix(t *testing.T) {
	field := &operation.Field{}
	record := operation.NewPacked(operation.WitnessUpdate).
		AppendString("witness").
		AppendString("").
		AppendPublicKey(activeKey)

	err := record.Format(2, "TST", field)
	assert.Nil(t, err, "format error")
	assert.Equal(t, activeKey.Address("TST"), field.Value(), "testnet address")
	assert.True(t, strings.HasPrefix(field.Value(), "TST"), "prefix")
}

func TestFieldReset(t *testing.T) {
	field := &operation.Field{}
	err := operationTests[0].record.Format(0, prefix, field)
	assert.Nil(t, err, "format error")
	assert.Equal(t, "alice", field.Value(), "value")

	field.Reset()
	assert.Equal(t, "", field.Label(), "label after reset")
	assert.Equal(t, "", field.Value(), "value after reset")
	assert.Equal(t, 0, len(field.Bytes()), "bytes after reset")
}
