// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/registry"
	"github.com/freightline/freightd/rpc"
)

// registry record type names mapped to RPC methods and argument shapes
var registryAdds = map[string]struct {
	method string
	record func() interface{}
}{
	"driver":      {"Registry.AddDriver", func() interface{} { return &registry.Driver{} }},
	"distributor": {"Registry.AddDistributor", func() interface{} { return &registry.DistributorsCompany{} }},
	"manager":     {"Registry.AddManager", func() interface{} { return &registry.WarehouseManager{} }},
	"admin":       {"Registry.AddAdmin", func() interface{} { return &registry.Admin{} }},
	"detail":      {"Registry.AddDetail", func() interface{} { return &registry.DeliveryDetail{} }},
	"tender":      {"Registry.AddTender", func() interface{} { return &registry.DeliveryTender{} }},
	"processing":  {"Registry.AddProcessingAdvert", func() interface{} { return &registry.ProcessingAdvert{} }},
	"sales":       {"Registry.AddSalesAdvert", func() interface{} { return &registry.SalesAdvert{} }},
}

// AddRecord - store a registry record supplied as a JSON document
func (client *Client) AddRecord(recordType string, data string) (*rpc.RegistryReply, error) {

	add, ok := registryAdds[recordType]
	if !ok {
		return nil, fault.InvalidError("no such record type: " + recordType)
	}

	arguments := add.record()
	if err := json.Unmarshal([]byte(data), arguments); nil != err {
		return nil, err
	}

	client.printJson("Add Request", arguments)

	var reply rpc.RegistryReply
	if err := client.client.Call(add.method, arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Add Reply", reply)

	return &reply, nil
}
