// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/freightline/freightd/command/freight-cli/rpccalls"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recordType, err := checkRequired(c, "type")
	if nil != err {
		return err
	}
	data, err := checkRequired(c, "data")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AddRecord(recordType, data)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
