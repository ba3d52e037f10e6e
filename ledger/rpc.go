// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/freightline/freightd/fault"
)

// for encoding the RPC arguments
type ledgerArguments struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// the RPC error response
type ledgerRpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// for decoding the RPC reply
type ledgerReply struct {
	Id     uint64          `json:"id"`
	Result interface{}     `json:"result"`
	Error  *ledgerRpcError `json:"error"`
}

// high level call - only use while global data locked
// because the HTTP RPC cannot interleave calls and responses
func ledgerCall(method string, params []interface{}, reply interface{}) error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.id += 1

	arguments := ledgerArguments{
		Id:     globalData.id,
		Method: method,
		Params: params,
	}
	response := ledgerReply{
		Result: reply,
	}
	globalData.log.Debugf("rpc call with: %v", arguments)
	err := ledgerRPC(&arguments, &response)
	if nil != err {
		globalData.log.Tracef("rpc returned error: %v", err)
		return err
	}

	if nil != response.Error {
		s := response.Error.Message
		return fault.ProcessError("ledger RPC error: " + s)
	}
	return nil
}

// basic RPC - only use while global data locked
func ledgerRPC(arguments *ledgerArguments, reply *ledgerReply) error {

	s, err := json.Marshal(arguments)
	if nil != err {
		return err
	}

	globalData.log.Tracef("rpc send: %s", s)

	postData := bytes.NewBuffer(s)

	request, err := http.NewRequest("POST", globalData.url, postData)
	if nil != err {
		return err
	}
	if "" != globalData.username {
		request.SetBasicAuth(globalData.username, globalData.password)
	}

	response, err := globalData.client.Do(request)
	if nil != err {
		return fault.ProcessError("ledger unreachable: " + err.Error())
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return fault.ProcessError("ledger read: " + err.Error())
	}

	globalData.log.Tracef("rpc response body: %s", body)

	err = json.Unmarshal(body, &reply)
	if nil != err {
		return fault.ProcessError("ledger decode: " + err.Error())
	}

	return nil
}
