// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hivesigner/digest"
	"github.com/bitmark-inc/hivesigner/journal"
)

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if !m.configured {
		return ErrJournalUnavailable
	}

	j, err := journal.Open(m.config.Journal.Directory, true)
	if nil != err {
		return err
	}
	defer j.Close()

	if s := c.String("digest"); "" != s {
		var d digest.Digest
		err := d.UnmarshalText([]byte(s))
		if nil != err {
			return err
		}
		entry, err := j.Get(d)
		if nil != err {
			return err
		}
		return printJSON(m.w, entry)
	}

	entries, err := j.List(c.Int("count"))
	if nil != err {
		return err
	}
	return printJSON(m.w, entries)
}
