// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/reservation"
	"github.com/freightline/freightd/rpc"
)

// flow names accepted on the command line mapped to RPC service names
var flowServices = map[string]string{
	"driver":      "Driver",
	"distributor": "Distributor",
	"warehouse":   "Warehouse",
	"admin":       "Admin",
}

func serviceFor(flow string) (string, error) {
	service, ok := flowServices[flow]
	if !ok {
		return "", fault.InvalidError("no such flow: " + flow)
	}
	return service, nil
}

// Reserve - create a pending reservation in one of the payment flows
func (client *Client) Reserve(flow string, caller string, obligationId string, amount uint64) (*rpc.ReserveReply, error) {

	service, err := serviceFor(flow)
	if nil != err {
		return nil, err
	}

	arguments := rpc.ReserveArguments{
		Caller:       caller,
		ObligationId: obligationId,
		Amount:       amount,
	}

	client.printJson("Reserve Request", arguments)

	var reply rpc.ReserveReply
	if err := client.client.Call(service+".Reserve", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Reserve Reply", reply)

	return &reply, nil
}

// Complete - settle a pending reservation after the payment is on the ledger
func (client *Client) Complete(flow string, caller string, obligationId string, amount uint64, block uint64, token reservation.Token) (*rpc.CompleteReply, error) {

	service, err := serviceFor(flow)
	if nil != err {
		return nil, err
	}

	arguments := rpc.CompleteArguments{
		Caller:       caller,
		ObligationId: obligationId,
		Amount:       amount,
		Block:        block,
		Token:        token,
	}

	client.printJson("Complete Request", arguments)

	var reply rpc.CompleteReply
	if err := client.client.Call(service+".Complete", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Complete Reply", reply)

	return &reply, nil
}

// Verify - poll the ledger for a matching payment
func (client *Client) Verify(flow string, caller string, receiver string, amount uint64, block uint64, token reservation.Token) (*rpc.VerifyReply, error) {

	service, err := serviceFor(flow)
	if nil != err {
		return nil, err
	}

	arguments := rpc.VerifyArguments{
		Caller:   caller,
		Receiver: receiver,
		Amount:   amount,
		Block:    block,
		Token:    token,
	}

	client.printJson("Verify Request", arguments)

	var reply rpc.VerifyReply
	if err := client.client.Call(service+".Verify", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Verify Reply", reply)

	return &reply, nil
}

// Settlement - the caller's last completed reservation in a flow
func (client *Client) Settlement(flow string, identity string) (*rpc.SettlementReply, error) {

	service, err := serviceFor(flow)
	if nil != err {
		return nil, err
	}

	arguments := rpc.SettlementArguments{
		Identity: identity,
	}

	var reply rpc.SettlementReply
	if err := client.client.Call(service+".Settlement", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Settlement Reply", reply)

	return &reply, nil
}
