// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"github.com/freightline/freightd/registry"
)

// distributor pay: the warehouse manager pays the distributor company
// the total cost of an accepted delivery tender
type distributorResolver struct{}

func (distributorResolver) Resolve(deliveryTenderId string, callerAmount uint64) (*Obligation, error) {

	tender, err := registry.GetTender(deliveryTenderId)
	if nil != err {
		return nil, err
	}

	distributor, err := registry.GetDistributor(tender.DistributorsId)
	if nil != err {
		return nil, err
	}

	manager, err := registry.GetManager(tender.WarehouseManagerId)
	if nil != err {
		return nil, err
	}

	return &Obligation{
		Reference: deliveryTenderId,
		Payer:     manager.Identity,
		Payee:     distributor.Identity,
		Amount:    tender.TotalCost,
	}, nil
}

func (distributorResolver) MarkSettled(deliveryTenderId string) error {
	tender, err := registry.GetTender(deliveryTenderId)
	if nil != err {
		return err
	}
	tender.Accepted = true
	registry.PutTender(tender)
	return nil
}
