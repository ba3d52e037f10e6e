// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/reservation"
)

// checkRequired - fetch a string flag that must not be empty
func checkRequired(c *cli.Context, name string) (string, error) {
	value := c.String(name)
	if "" == value {
		return "", fault.MissingParameters
	}
	return value, nil
}

// parseToken - decode the token printed by the reserve command
func parseToken(c *cli.Context) (reservation.Token, error) {
	text, err := checkRequired(c, "token")
	if nil != err {
		return 0, err
	}
	var token reservation.Token
	if err := token.UnmarshalText([]byte(text)); nil != err {
		return 0, err
	}
	return token, nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		panic(fmt.Sprintf("printJson marshal error: %s", err))
	}
	fmt.Fprintf(handle, "%s\n", b)
}
