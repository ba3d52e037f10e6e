// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "freight-cli"
	app.Usage = "command line client for freightd"
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
			Name:  "connect, c",
			Value: "127.0.0.1:2230",
			Usage: " freightd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "reserve",
			Usage:     "create a pending payment reservation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "flow, f",
					Value: "",
					Usage: "*payment flow `NAME` [driver|distributor|warehouse|admin]",
				},
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*paying identity `NAME`",
				},
				cli.StringFlag{
					Name:  "obligation, o",
					Value: "",
					Usage: "*obligation record `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: " amount to reserve `N` (driver flow only)",
				},
			},
			Action: runReserve,
		},
		{
			Name:      "complete",
			Usage:     "settle a pending reservation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "flow, f",
					Value: "",
					Usage: "*payment flow `NAME` [driver|distributor|warehouse|admin]",
				},
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*paying identity `NAME`",
				},
				cli.StringFlag{
					Name:  "obligation, o",
					Value: "",
					Usage: "*obligation record `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: " amount claimed as paid `N`",
				},
				cli.Uint64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*ledger block `HEIGHT` carrying the payment",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*reservation `TOKEN` from reserve",
				},
			},
			Action: runComplete,
		},
		{
			Name:      "verify",
			Usage:     "poll the ledger for a matching payment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "flow, f",
					Value: "",
					Usage: "*payment flow `NAME` [driver|distributor|warehouse|admin]",
				},
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*paying identity `NAME`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving identity `NAME`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount paid `N`",
				},
				cli.Uint64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*ledger block `HEIGHT` carrying the payment",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*reservation `TOKEN` from reserve",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "settlement",
			Usage:     "show the last completed reservation for an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "flow, f",
					Value: "",
					Usage: "*payment flow `NAME` [driver|distributor|warehouse|admin]",
				},
				cli.StringFlag{
					Name:  "identity, i",
					Value: "",
					Usage: "*identity `NAME` that settled",
				},
			},
			Action: runSettlement,
		},
		{
			Name:      "add",
			Usage:     "store a registry record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*record `TYPE` [driver|distributor|manager|admin|detail|tender|processing|sales]",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*record as a `JSON` document",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display freightd status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display version",
			Action: runVersion,
		},
	}

	app.Metadata = map[string]interface{}{
		"config": &metadata{},
	}

	app.Before = func(c *cli.Context) error {
		m := c.App.Metadata["config"].(*metadata)
		m.connect = c.GlobalString("connect")
		m.verbose = c.GlobalBool("verbose")
		m.e = c.App.ErrWriter
		m.w = c.App.Writer
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
