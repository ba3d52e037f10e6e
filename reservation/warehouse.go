// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"github.com/freightline/freightd/registry"
)

// warehouse pay: the admin pays the warehouse manager the price of a
// processing advert
type warehouseResolver struct{}

func (warehouseResolver) Resolve(advertId string, callerAmount uint64) (*Obligation, error) {

	advert, err := registry.GetProcessingAdvert(advertId)
	if nil != err {
		return nil, err
	}

	manager, err := registry.GetManager(advert.WarehouseManagerId)
	if nil != err {
		return nil, err
	}

	admin, err := registry.GetAdmin(advert.AdminId)
	if nil != err {
		return nil, err
	}

	return &Obligation{
		Reference: advertId,
		Payer:     admin.Identity,
		Payee:     manager.Identity,
		Amount:    advert.Price,
	}, nil
}

func (warehouseResolver) MarkSettled(advertId string) error {
	advert, err := registry.GetProcessingAdvert(advertId)
	if nil != err {
		return err
	}
	advert.AdminPaid = true
	advert.Status = StatusCompleted
	registry.PutProcessingAdvert(advert)
	return nil
}
