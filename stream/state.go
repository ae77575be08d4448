// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

// State - section of the transaction currently being decoded
type State int

// sections in strict wire order
const (
	ChainID State = iota
	RefBlockNum
	RefBlockPrefix
	Expiration
	OperationListSize
	OperationData
	ExtensionListSize
	Done
)

func (s State) String() string {
	switch s {
	case ChainID:
		return "chain id"
	case RefBlockNum:
		return "ref block num"
	case RefBlockPrefix:
		return "ref block prefix"
	case Expiration:
		return "expiration"
	case OperationListSize:
		return "operation list size"
	case OperationData:
		return "operation data"
	case ExtensionListSize:
		return "extension list size"
	case Done:
		return "done"
	default:
		return "*unknown*"
	}
}

// Status - result of a Feed
type Status int

// possible results
const (
	Fault             Status = iota // terminal, see Err()
	Processing                      // chunk consumed, more input needed
	ActionReady                     // an operation can be formatted
	ConfirmProcessing               // multiple operations, ask before continuing
	Finished                        // whole transaction decoded
)

func (s Status) String() string {
	switch s {
	case Fault:
		return "fault"
	case Processing:
		return "processing"
	case ActionReady:
		return "action ready"
	case ConfirmProcessing:
		return "confirm processing"
	case Finished:
		return "finished"
	default:
		return "*unknown*"
	}
}
