// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/freightline/freightd/command/freight-cli/rpccalls"
)

func runSettlement(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	flow, err := checkRequired(c, "flow")
	if nil != err {
		return err
	}
	identity, err := checkRequired(c, "identity")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Settlement(flow, identity)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
