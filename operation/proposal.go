// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

// decentralised fund proposals

// start and end are seconds since the epoch
func decodeCreateProposal(w *walker) {
	w.String("Creator")
	w.String("Receiver")
	w.Uint32("Start Date")
	w.Uint32("End Date")
	w.Asset("Daily Pay")
	w.String("Subject")
	w.String("Permlink")
}

func decodeUpdateProposalVotes(w *walker) {
	w.String("Voter")
	w.Int64List("Proposal IDs")
	w.Bool("Approve")
}

func decodeRemoveProposal(w *walker) {
	w.String("Proposal Owner")
	w.Int64List("Proposal IDs")
}
