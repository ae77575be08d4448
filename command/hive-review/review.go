// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/digest"
	"github.com/bitmark-inc/hivesigner/stream"
	"github.com/bitmark-inc/hivesigner/util"
)

// reviewer - drives one transaction through a parser context
type reviewer struct {
	network   string
	chunkSize int
	encoding  stream.LengthEncoding
	confirm   bool
	verbose   bool
	log       *logger.L
	w         io.Writer // review output
	e         io.Writer // diagnostics
}

// reviewed - outcome of a review
type reviewed struct {
	Digest     digest.Digest `json:"digest"`
	Network    string        `json:"network"`
	Operations []string      `json:"operations"`
	Accepted   bool          `json:"accepted"`
	Reason     string        `json:"reason,omitempty"`
}

// review - feed the whole transaction and print every operation
//
// the returned error is only for output failures, a parse fault
// produces a rejected result
func (r *reviewer) review(data []byte) (*reviewed, error) {

	if r.chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}

	txDigest := digest.NewSHA256()
	actionDigest := digest.NewSHA256()
	content := &stream.Content{}

	ctx := stream.New(txDigest, actionDigest, content,
		stream.WithNetwork(r.network),
		stream.WithLengthEncoding(r.encoding),
		stream.WithConfirmMultiple(r.confirm),
		stream.WithLogger(r.log),
	)

	result := &reviewed{
		Network:    r.network,
		Operations: make([]string, 0, 4),
	}

	chainChecked := false
	offset := 0

	reject := func(err error) (*reviewed, error) {
		result.Accepted = false
		result.Reason = err.Error()
		result.Digest = txDigest.Sum()
		fmt.Fprintf(r.w, "rejected: %s\n", err)
		return result, nil
	}

	for offset < len(data) {
		n := r.chunkSize
		if offset+n > len(data) {
			n = len(data) - offset
		}
		chunk := data[offset : offset+n]
		if r.verbose {
			fmt.Fprint(r.e, util.HexDump(offset, chunk))
		}
		offset += n

		status, err := ctx.Feed(chunk)

	events:
		for {
			if !chainChecked && stream.ChainID != ctx.State() {
				chainChecked = true
				r.checkChain(ctx.ChainID())
			}

			switch status {
			case stream.Fault:
				return reject(err)

			case stream.Processing:
				break events

			case stream.ConfirmProcessing:
				fmt.Fprintf(r.w, "transaction contains %d operations\n", ctx.NumOperations())

			case stream.ActionReady:
				fmt.Fprintf(r.w, "operation %d/%d: %s\n", ctx.OperationIndex(), ctx.NumOperations(), content.Name)
				for i := 0; i < content.ArgumentCount; i += 1 {
					err := ctx.FormatArgument(i)
					if nil != err {
						return reject(err)
					}
					fmt.Fprintf(r.w, "  %s: %s\n", content.Field.Label(), content.Field.Value())
				}
				fmt.Fprintf(r.w, "  actions digest: %s\n", actionDigest.Sum())
				result.Operations = append(result.Operations, content.Name)

			case stream.Finished:
				if offset < len(data) {
					return reject(fmt.Errorf("%d bytes after end of transaction", len(data)-offset))
				}
				result.Accepted = true
				result.Digest = txDigest.Sum()
				_, err := fmt.Fprintf(r.w, "transaction digest: %s\n", result.Digest)
				return result, err
			}

			status, err = ctx.Feed(nil)
		}
	}

	return reject(ErrTruncatedTransaction)
}

// warn when the transaction was built for a different network
func (r *reviewer) checkChain(id []byte) {
	expected := chain.ChainID(r.network)
	if bytes.Equal(expected, id) {
		return
	}
	name, ok := chain.FromChainID(id)
	if !ok {
		name = "unknown"
	}
	fmt.Fprintf(r.e, "warning: chain id is for %s network, expected %s\n", name, r.network)
	if nil != r.log {
		r.log.Warnf("chain id: %x  expected network: %s", id, r.network)
	}
}
