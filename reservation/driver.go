// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/registry"
)

// driver pay: the distributor company pays the assigned driver of a
// delivery; the rate is negotiated off-ledger so the amount is caller
// supplied
type driverResolver struct{}

func (driverResolver) Resolve(deliveryTenderId string, callerAmount uint64) (*Obligation, error) {

	tender, err := registry.GetTender(deliveryTenderId)
	if nil != err {
		return nil, err
	}

	detail, err := registry.GetDetail(tender.DeliveryDetailsId)
	if nil != err {
		return nil, err
	}
	if "" == detail.DriverId {
		return nil, fault.NotFoundError("delivery details with id=" + detail.Id + " has no assigned driver")
	}

	driver, err := registry.GetDriver(detail.DriverId)
	if nil != err {
		return nil, err
	}

	distributor, err := registry.GetDistributor(detail.DistributorsId)
	if nil != err {
		return nil, err
	}

	if 0 == callerAmount {
		return nil, fault.InvalidReservationAmount
	}

	return &Obligation{
		Reference: deliveryTenderId,
		Payer:     distributor.Identity,
		Payee:     driver.Identity,
		Amount:    callerAmount,
	}, nil
}

func (driverResolver) MarkSettled(deliveryTenderId string) error {
	tender, err := registry.GetTender(deliveryTenderId)
	if nil != err {
		return err
	}
	detail, err := registry.GetDetail(tender.DeliveryDetailsId)
	if nil != err {
		return err
	}
	detail.Status = "driver paid"
	registry.PutDetail(detail)
	return nil
}
