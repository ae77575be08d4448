// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream

import (
	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/fault"
	"github.com/bitmark-inc/hivesigner/operation"
	"github.com/bitmark-inc/hivesigner/util"
)

// exact value width of a header field, zero for any other section
func headerFieldLength(state State) uint32 {
	switch state {
	case ChainID:
		return chain.ChainIDLength
	case RefBlockNum:
		return 2
	case RefBlockPrefix, Expiration:
		return 4
	default:
		return 0
	}
}

// stage tag and length bytes one at a time until the length decodes
func (ctx *Context) readTLV() (bool, error) {
	for len(ctx.input) > 0 {
		ctx.tlv[ctx.tlvLength] = ctx.input[0]
		ctx.tlvLength += 1
		ctx.input = ctx.input[1:]

		length, decoded, err := decodeTLV(ctx.tlv[:ctx.tlvLength], ctx.encoding)
		if nil != err {
			return false, err
		}
		if decoded {
			ctx.fieldLength = length
			ctx.fieldPosition = 0
			ctx.tlvLength = 0
			return true, nil
		}
		if tlvBufferSize == ctx.tlvLength {
			return false, fault.ErrTagBufferOverflow
		}
	}
	return false, nil
}

// validate a decoded length against the current section before any
// value byte is consumed
func (ctx *Context) beginField() error {
	switch ctx.state {
	case ChainID, RefBlockNum, RefBlockPrefix, Expiration:
		if headerFieldLength(ctx.state) != ctx.fieldLength {
			return fault.ErrInvalidFieldLength
		}
	case OperationListSize, ExtensionListSize:
		if 0 == ctx.fieldLength {
			return fault.ErrInvalidSizeField
		}
		if ctx.fieldLength > SizeBufferSize {
			return fault.ErrSizeBufferOverflow
		}
	case OperationData:
		if 0 == ctx.fieldLength {
			return fault.ErrEmptyOperation
		}
		if ctx.fieldLength > ActionBufferSize {
			return fault.ErrActionBufferOverflow
		}
		ctx.actionLength = 0
	}
	ctx.processingField = true
	ctx.debugf("%s: length: %d", ctx.state, ctx.fieldLength)
	return nil
}

// consume as much of the current field as the chunk holds
//
// the bytes are hashed before anything else looks at them
func (ctx *Context) consume(hashAction bool) []byte {
	remaining := ctx.fieldLength - ctx.fieldPosition
	n := uint32(len(ctx.input))
	if n > remaining {
		n = remaining
	}
	data := ctx.input[:n]

	_, _ = ctx.txDigest.Write(data)
	if hashAction {
		_, _ = ctx.actionDigest.Write(data)
	}

	ctx.input = ctx.input[n:]
	ctx.fieldPosition += n
	return data
}

func (ctx *Context) fieldComplete() bool {
	return ctx.fieldPosition == ctx.fieldLength
}

// move to the following section
func (ctx *Context) advance(next State) {
	ctx.processingField = false
	ctx.debugf("%s → %s", ctx.state, next)
	ctx.state = next
}

// chain id and header fields are hashed and dropped, except the chain
// id which is kept for the caller to check
func (ctx *Context) processHeaderField() error {
	position := ctx.fieldPosition
	data := ctx.consume(false)
	if ChainID == ctx.state {
		copy(ctx.chainID[position:], data)
	}
	if ctx.fieldComplete() {
		ctx.advance(ctx.state + 1)
	}
	return nil
}

// stage a size field and decode it once complete
func (ctx *Context) readSize() (uint32, bool, error) {
	position := ctx.fieldPosition
	data := ctx.consume(false)
	copy(ctx.size[position:], data)

	if !ctx.fieldComplete() {
		return 0, false, nil
	}

	value, n := util.FromVarint32(ctx.size[:ctx.fieldLength])
	for i := range ctx.size {
		ctx.size[i] = 0
	}
	if 0 == n || uint32(n) != ctx.fieldLength {
		return 0, false, fault.ErrInvalidSizeField
	}
	return value, true, nil
}

func (ctx *Context) processOperationListSize() error {
	count, complete, err := ctx.readSize()
	if nil != err || !complete {
		return err
	}
	if 0 == count {
		return fault.ErrNoOperations
	}

	ctx.numOperations = count
	ctx.currentOpIndex = 0
	if ctx.confirmMultiple && count > 1 {
		ctx.confirmPending = true
	}
	ctx.advance(OperationData)
	return nil
}

// the extension list must be present and empty
func (ctx *Context) processExtensionListSize() error {
	count, complete, err := ctx.readSize()
	if nil != err || !complete {
		return err
	}
	if 0 != count {
		return fault.ErrNonZeroExtensionCount
	}
	ctx.advance(Done)
	return nil
}

// buffer one operation record then publish it for display
func (ctx *Context) processOperationData() error {
	position := ctx.fieldPosition
	data := ctx.consume(true)
	copy(ctx.action[position:], data)

	if !ctx.fieldComplete() {
		return nil
	}
	ctx.actionLength = ctx.fieldLength

	code := operation.Code(ctx.action[0])
	entry, ok := operation.Lookup(code)
	if !ok {
		return fault.ErrUnsupportedOperation
	}

	ctx.content.Field.Reset()
	ctx.content.Code = entry.Code
	ctx.content.Name = entry.Name
	ctx.content.ArgumentCount = entry.ArgumentCount

	ctx.currentOpIndex += 1
	ctx.debugf("operation %d of %d: %s", ctx.currentOpIndex, ctx.numOperations, entry.Name)
	if ctx.currentOpIndex >= ctx.numOperations {
		ctx.advance(ExtensionListSize)
	} else {
		ctx.processingField = false
	}
	ctx.actionReady = true
	return nil
}
