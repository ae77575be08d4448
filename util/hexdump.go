// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

const hexDumpWidth = 16

// HexDump - render data as offset prefixed rows of hex bytes
//
//	0000: 04 20 00 00 00 00 00 00 00 00 00 00 00 00 00 00
//
// base is added to each offset so successive chunks of one stream
// line up
func HexDump(base int, data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); i += hexDumpWidth {
		end := i + hexDumpWidth
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "%04x: % x\n", base+i, data[i:end])
	}
	return b.String()
}
