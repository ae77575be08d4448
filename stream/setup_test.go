// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stream_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hivesigner/asset"
	"github.com/bitmark-inc/hivesigner/operation"
	"github.com/bitmark-inc/hivesigner/stream"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func voteRecord(weight int16) operation.Packed {
	return operation.NewPacked(operation.Vote).
		AppendString("alice").
		AppendString("bob").
		AppendString("a-post").
		AppendInt16(weight)
}

func transferAmount() asset.Asset {
	return asset.Asset{Amount: 1000, Precision: 3, Symbol: "HIVE"}
}

func transferRecord(memo string) operation.Packed {
	return operation.NewPacked(operation.Transfer).
		AppendString("alice").
		AppendString("bob").
		AppendAsset(asset.Asset{Amount: 1500000, Precision: 3, Symbol: "HIVE"}).
		AppendString(memo)
}

func testTransaction(operations ...operation.Packed) stream.Transaction {
	return stream.Transaction{
		ChainID:        make([]byte, 32),
		RefBlockNum:    0x1234,
		RefBlockPrefix: 0xdeadbeef,
		Expiration:     1600000000,
		Operations:     operations,
	}
}

// a reviewed operation
type action struct {
	name      string
	labels    []string
	arguments []string
}

// feed data in chunks of the given size, formatting every argument of
// every ready action
func review(t *testing.T, ctx *stream.Context, content *stream.Content, data []byte, chunkSize int) ([]action, error) {
	actions := []action{}

	for len(data) > 0 {
		n := chunkSize
		if n > len(data) {
			n = len(data)
		}
		chunk := data[:n]
		data = data[n:]

		status, err := ctx.Feed(chunk)
	events:
		for {
			switch status {
			case stream.Fault:
				return actions, err
			case stream.Processing:
				break events
			case stream.Finished:
				if len(data) > 0 {
					t.Errorf("finished with %d bytes left", len(data))
				}
				return actions, nil
			case stream.ConfirmProcessing:
			case stream.ActionReady:
				a := action{name: content.Name}
				for i := 0; i < content.ArgumentCount; i += 1 {
					if err := ctx.FormatArgument(i); nil != err {
						return actions, err
					}
					a.labels = append(a.labels, content.Field.Label())
					a.arguments = append(a.arguments, content.Field.Value())
				}
				actions = append(actions, a)
			}
			status, err = ctx.Feed(nil)
		}
	}
	return actions, nil
}
