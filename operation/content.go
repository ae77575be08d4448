// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

// posting and content operations

func decodeVote(w *walker) {
	w.String("Voter")
	w.String("Author")
	w.String("Permlink")
	w.Int16("Weight")
}

func decodeComment(w *walker) {
	w.String("Parent Author")
	w.String("Parent Permlink")
	w.String("Author")
	w.String("Permlink")
	w.String("Title")
	w.String("Body")
	w.String("JSON Metadata")
}

func decodeDeleteComment(w *walker) {
	w.String("Author")
	w.String("Permlink")
}

func decodeCustomJSON(w *walker) {
	w.StringList("Required Auths")
	w.StringList("Required Posting Auths")
	w.String("ID")
	w.String("JSON")
}

func decodeCommentOptions(w *walker) {
	w.String("Author")
	w.String("Permlink")
	w.Asset("Max Payout")
	w.Uint16("Percent HBD")
	w.Bool("Allow Votes")
	w.Bool("Allow Curation Rewards")
	w.Beneficiaries("Beneficiaries")
}
