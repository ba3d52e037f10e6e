// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"github.com/freightline/freightd/registry"
)

// admin settlement: the buying company pays the admin the price of a
// sales advert
type adminResolver struct{}

func (adminResolver) Resolve(advertId string, callerAmount uint64) (*Obligation, error) {

	advert, err := registry.GetSalesAdvert(advertId)
	if nil != err {
		return nil, err
	}

	admin, err := registry.GetAdmin(advert.AdminId)
	if nil != err {
		return nil, err
	}

	buyer, err := registry.GetDistributor(advert.BuyerId)
	if nil != err {
		return nil, err
	}

	return &Obligation{
		Reference: advertId,
		Payer:     buyer.Identity,
		Payee:     admin.Identity,
		Amount:    advert.Price,
	}, nil
}

func (adminResolver) MarkSettled(advertId string) error {
	advert, err := registry.GetSalesAdvert(advertId)
	if nil != err {
		return err
	}
	advert.Paid = true
	advert.Status = StatusCompleted
	registry.PutSalesAdvert(advert)
	return nil
}
