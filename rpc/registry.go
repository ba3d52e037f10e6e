// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/registry"
	"github.com/freightline/freightd/rpc/ratelimit"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - RPC access to the participant and obligation records
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// NewRegistry - registry handler
func NewRegistry(log *logger.L) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
	}
}

// RegistryReply - id of the stored record
type RegistryReply struct {
	Id string `json:"id"`
}

// RegistryLookup - id of a record to fetch
type RegistryLookup struct {
	Id string `json:"id"`
}

// AddDriver - store a driver record
func (r *Registry) AddDriver(arguments *registry.Driver, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id || "" == arguments.Identity {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddDriver: %s", arguments.Id)
	registry.PutDriver(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddDistributor - store a distributors company record
func (r *Registry) AddDistributor(arguments *registry.DistributorsCompany, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id || "" == arguments.Identity {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddDistributor: %s", arguments.Id)
	registry.PutDistributor(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddManager - store a warehouse manager record
func (r *Registry) AddManager(arguments *registry.WarehouseManager, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id || "" == arguments.Identity {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddManager: %s", arguments.Id)
	registry.PutManager(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddAdmin - store an admin record
func (r *Registry) AddAdmin(arguments *registry.Admin, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id || "" == arguments.Identity {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddAdmin: %s", arguments.Id)
	registry.PutAdmin(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddDetail - store a delivery detail record
func (r *Registry) AddDetail(arguments *registry.DeliveryDetail, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddDetail: %s", arguments.Id)
	registry.PutDetail(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddTender - store a delivery tender record
func (r *Registry) AddTender(arguments *registry.DeliveryTender, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id || "" == arguments.DeliveryDetailsId {
		return fault.MissingParameters
	}
	if 0 == arguments.TotalCost {
		arguments.TotalCost = arguments.DeliveryWeight*arguments.CostPerWeight + arguments.AdditionalCost
	}
	r.Log.Infof("Registry.AddTender: %s", arguments.Id)
	registry.PutTender(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddProcessingAdvert - store a processing advert record
func (r *Registry) AddProcessingAdvert(arguments *registry.ProcessingAdvert, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddProcessingAdvert: %s", arguments.Id)
	registry.PutProcessingAdvert(arguments)
	reply.Id = arguments.Id
	return nil
}

// AddSalesAdvert - store a sales advert record
func (r *Registry) AddSalesAdvert(arguments *registry.SalesAdvert, reply *RegistryReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if "" == arguments.Id {
		return fault.MissingParameters
	}
	r.Log.Infof("Registry.AddSalesAdvert: %s", arguments.Id)
	registry.PutSalesAdvert(arguments)
	reply.Id = arguments.Id
	return nil
}

// GetTender - fetch a delivery tender record
func (r *Registry) GetTender(arguments *RegistryLookup, reply *registry.DeliveryTender) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	record, err := registry.GetTender(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *record
	return nil
}

// GetDetail - fetch a delivery detail record
func (r *Registry) GetDetail(arguments *RegistryLookup, reply *registry.DeliveryDetail) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	record, err := registry.GetDetail(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *record
	return nil
}

// GetProcessingAdvert - fetch a processing advert record
func (r *Registry) GetProcessingAdvert(arguments *RegistryLookup, reply *registry.ProcessingAdvert) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	record, err := registry.GetProcessingAdvert(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *record
	return nil
}

// GetSalesAdvert - fetch a sales advert record
func (r *Registry) GetSalesAdvert(arguments *RegistryLookup, reply *registry.SalesAdvert) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	record, err := registry.GetSalesAdvert(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *record
	return nil
}
