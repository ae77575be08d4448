// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

import (
	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/digest"
	"github.com/bitmark-inc/hivesigner/fault"
	"github.com/bitmark-inc/hivesigner/operation"
)

// fixed buffer sizes
const (
	ActionBufferSize = 512
	SizeBufferSize   = 12
)

// Content - display data for the operation most recently made ready
type Content struct {
	Code          operation.Code
	Name          string
	ArgumentCount int
	Field         operation.Field
}

// Context - state of one transaction review
//
// never copy a Context, never share it between goroutines; discard it
// after Finished or Fault
type Context struct {
	state State
	err   error

	// current chunk, not owned
	input []byte

	// tag and length staging
	tlv       [tlvBufferSize]byte
	tlvLength int

	// current field progress
	processingField bool
	fieldLength     uint32
	fieldPosition   uint32

	size    [SizeBufferSize]byte
	chainID [chain.ChainIDLength]byte

	action       [ActionBufferSize]byte
	actionLength uint32

	numOperations  uint32
	currentOpIndex uint32

	actionReady    bool
	confirmPending bool

	txDigest     digest.Handle
	actionDigest digest.Handle
	content      *Content

	prefix string
	options
}

// New - start the review of one transaction
//
// both digests are reset here and only ever absorb bytes afterwards.
// A nil digest handle or content gives a context that is already
// faulted with ErrNilParameter.
func New(txDigest digest.Handle, actionDigest digest.Handle, content *Content, opts ...Option) *Context {
	ctx := &Context{
		state:        ChainID,
		txDigest:     txDigest,
		actionDigest: actionDigest,
		content:      content,
		options:      defaultOptions(),
	}
	for _, opt := range opts {
		opt(&ctx.options)
	}
	ctx.prefix = chain.AddressPrefix(ctx.network)

	if nil == txDigest || nil == actionDigest || nil == content {
		_, _ = ctx.fault(fault.ErrNilParameter)
		return ctx
	}

	ctx.txDigest.Reset()
	ctx.actionDigest.Reset()

	ctx.debugf("new context: network: %s  length encoding: %s", ctx.network, ctx.encoding)
	return ctx
}

// State - current section
func (ctx *Context) State() State {
	return ctx.state
}

// Err - the fault that stopped the context, nil if none
func (ctx *Context) Err() error {
	return ctx.err
}

// NumOperations - operation count, valid once past the operation list size
func (ctx *Context) NumOperations() int {
	return int(ctx.numOperations)
}

// OperationIndex - number of operations fully received
func (ctx *Context) OperationIndex() int {
	return int(ctx.currentOpIndex)
}

// ChainID - chain id received, valid once past the chain id field
func (ctx *Context) ChainID() []byte {
	return ctx.chainID[:]
}

// Action - raw record of the last operation received, code byte first
func (ctx *Context) Action() []byte {
	return ctx.action[:ctx.actionLength]
}

// Feed - supply the next chunk and run until an event occurs
//
// pass nil to resume after ActionReady or ConfirmProcessing; a
// non-empty chunk is only accepted once the previous one is consumed
func (ctx *Context) Feed(chunk []byte) (Status, error) {
	if nil != ctx.err {
		return Fault, ctx.err
	}
	if len(chunk) > 0 {
		if len(ctx.input) > 0 {
			return ctx.fault(fault.ErrChunkNotConsumed)
		}
		ctx.input = chunk
	}

	status, err := ctx.process()
	if nil != err {
		return ctx.fault(err)
	}
	return status, nil
}

// FormatArgument - render one argument of the ready operation into
// the content field
func (ctx *Context) FormatArgument(index int) error {
	if nil != ctx.err {
		return ctx.err
	}
	if 0 == ctx.actionLength {
		return fault.ErrNoActionReady
	}
	code := operation.Code(ctx.action[0])
	err := operation.Format(code, ctx.action[1:ctx.actionLength], index, ctx.prefix, &ctx.content.Field, ctx.log)
	if nil != err {
		if fault.IsParseFault(err) {
			_, err = ctx.fault(err)
		}
		return err
	}
	return nil
}

// main loop, events are checked in priority order on every pass
func (ctx *Context) process() (Status, error) {
	for {
		if ctx.confirmPending {
			ctx.confirmPending = false
			return ConfirmProcessing, nil
		}
		if ctx.actionReady {
			ctx.actionReady = false
			return ActionReady, nil
		}
		if Done == ctx.state {
			if len(ctx.input) > 0 {
				return Fault, fault.ErrTransactionComplete
			}
			return Finished, nil
		}
		if 0 == len(ctx.input) {
			return Processing, nil
		}

		if !ctx.processingField {
			decoded, err := ctx.readTLV()
			if nil != err {
				return Fault, err
			}
			if !decoded {
				return Processing, nil
			}
			if err := ctx.beginField(); nil != err {
				return Fault, err
			}
		}

		var err error
		switch ctx.state {
		case ChainID, RefBlockNum, RefBlockPrefix, Expiration:
			err = ctx.processHeaderField()
		case OperationListSize:
			err = ctx.processOperationListSize()
		case OperationData:
			err = ctx.processOperationData()
		case ExtensionListSize:
			err = ctx.processExtensionListSize()
		default:
			err = fault.ErrContextFaulted
		}
		if nil != err {
			return Fault, err
		}
	}
}

// record the first fault, it is terminal
func (ctx *Context) fault(err error) (Status, error) {
	if nil == ctx.err {
		ctx.err = err
		ctx.warnf("fault in %s: %s", ctx.state, err)
	}
	return Fault, ctx.err
}

func (ctx *Context) debugf(format string, arguments ...interface{}) {
	if nil != ctx.log {
		ctx.log.Debugf(format, arguments...)
	}
}

func (ctx *Context) warnf(format string, arguments ...interface{}) {
	if nil != ctx.log {
		ctx.log.Warnf(format, arguments...)
	}
}
