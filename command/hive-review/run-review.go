// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hivesigner/fault"
	"github.com/bitmark-inc/hivesigner/journal"
	"github.com/bitmark-inc/hivesigner/stream"
)

func runReview(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := readTransaction(c)
	if nil != err {
		return err
	}

	encoding, err := stream.LengthEncodingFromString(m.config.LengthEncoding)
	if nil != err {
		return err
	}
	if c.Bool("der") {
		encoding = stream.LengthDER
	}

	chunkSize := m.config.ChunkSize
	if c.Int("chunk") != 0 {
		chunkSize = c.Int("chunk")
	}

	r := &reviewer{
		network:   m.config.Network,
		chunkSize: chunkSize,
		encoding:  encoding,
		confirm:   m.config.ConfirmMultiple || c.Bool("confirm"),
		verbose:   m.verbose,
		w:         m.w,
		e:         m.e,
	}
	if m.configured {
		r.log = logger.New("stream")
		defer r.log.Flush()
	}

	result, err := r.review(data)
	if nil != err {
		return err
	}

	if m.config.Journal.Enabled && m.configured {
		err := recordReview(m.config.Journal.Directory, result)
		if nil != err {
			fault.Criticalf("journal record error: %s", err)
			return err
		}
	}

	if !result.Accepted {
		return fault.ProcessError("transaction rejected: " + result.Reason)
	}
	return nil
}

// hex from the first argument, the --file flag or stdin
func readTransaction(c *cli.Context) ([]byte, error) {
	var text string

	if c.NArg() > 0 {
		text = c.Args().Get(0)
	} else {
		var r io.Reader = os.Stdin
		if fileName := c.String("file"); "" != fileName {
			f, err := os.Open(fileName)
			if nil != err {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		b, err := ioutil.ReadAll(r)
		if nil != err {
			return nil, err
		}
		text = string(b)
	}

	text = strings.Join(strings.Fields(text), "")
	text = strings.TrimPrefix(text, "0x")
	if "" == text {
		return nil, ErrMissingTransaction
	}

	data, err := hex.DecodeString(text)
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return data, nil
}

func recordReview(directory string, result *reviewed) error {
	j, err := journal.Open(directory, false)
	if nil != err {
		return err
	}
	defer j.Close()

	return j.Record(journal.Entry{
		Digest:     result.Digest,
		Network:    result.Network,
		Operations: result.Operations,
		Accepted:   result.Accepted,
		Reason:     result.Reason,
		Timestamp:  time.Now().UTC(),
	})
}
