// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/fault"
)

type metadata struct {
	config     *Configuration
	configured bool
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "hive-review"
	app.Usage = "decode a Hive transaction the way a signing device displays it"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " override network `NAME` [hive|testnet]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "review",
			Usage:     "replay a hex encoded transaction through the parser",
			ArgsUsage: "[HEX]\n   (transaction from argument, --file or stdin)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " read hex transaction from `FILE`",
				},
				cli.IntFlag{
					Name:  "chunk, s",
					Value: 0,
					Usage: " bytes per chunk `COUNT` [default from configuration]",
				},
				cli.BoolFlag{
					Name:  "der, d",
					Usage: " field lengths use DER instead of varint",
				},
				cli.BoolFlag{
					Name:  "confirm, m",
					Usage: " report multi-operation confirmation",
				},
			},
			Action: runReview,
		},
		{
			Name:      "address",
			Usage:     "display the address of a public key or decode an address",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, p",
					Value: "",
					Usage: "+hex compressed public `KEY`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+prefixed base58 `ADDRESS` e.g. STM…",
				},
			},
			Action: runAddress,
		},
		{
			Name:  "history",
			Usage: "list recorded reviews, most recent first",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.StringFlag{
					Name:  "digest, t",
					Value: "",
					Usage: " show only the review of transaction `DIGEST`",
				},
			},
			Action: runHistory,
		},
		{
			Name:  "version",
			Usage: "display hive-review version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		if "version" == c.Args().Get(0) {
			return nil
		}

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		fileName := c.GlobalString("config-file")
		if "" == fileName {
			m.config = defaultConfiguration()
		} else {
			if m.verbose {
				fmt.Fprintf(m.e, "reading config file: %s\n", fileName)
			}
			config, err := getConfiguration(fileName)
			if nil != err {
				return err
			}
			m.config = config

			// start logging
			if err := logger.Initialise(config.Logging); nil != err {
				return err
			}
			fault.PanicIfError("fault.Initialise", fault.Initialise())
			m.configured = true
		}

		if network := c.GlobalString("network"); "" != network {
			if !chain.Valid(network) {
				return fault.ErrInvalidChain
			}
			m.config.Network = network
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.configured {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
