// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/freightline/freightd/command/freight-cli/rpccalls"
)

func runComplete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	flow, err := checkRequired(c, "flow")
	if nil != err {
		return err
	}
	caller, err := checkRequired(c, "caller")
	if nil != err {
		return err
	}
	obligationId, err := checkRequired(c, "obligation")
	if nil != err {
		return err
	}
	token, err := parseToken(c)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	block := c.Uint64("block")

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Complete(flow, caller, obligationId, amount, block, token)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
