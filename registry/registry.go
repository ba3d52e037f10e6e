// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/storage"
)

// fetch a JSON record, notFound carries the entity name and id
func fetch(pool *storage.PoolHandle, name string, id string, record interface{}) error {
	data := pool.Get([]byte(id))
	if nil == data {
		return fault.NotFoundError(name + " with id=" + id + " not found")
	}
	err := json.Unmarshal(data, record)
	if nil != err {
		return err
	}
	return nil
}

// store a JSON record
//
// encode failures can only come from broken record types, so panic
func store(pool *storage.PoolHandle, id string, record interface{}) {
	data, err := json.Marshal(record)
	logger.PanicIfError("registry.store", err)
	pool.Put([]byte(id), data)
}

// GetAdmin - point lookup of an admin record
func GetAdmin(id string) (*Admin, error) {
	record := &Admin{}
	if err := fetch(storage.Pool.Admins, "Admin", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutAdmin - full record upsert
func PutAdmin(record *Admin) {
	store(storage.Pool.Admins, record.Id, record)
}

// GetDriver - point lookup of a driver record
func GetDriver(id string) (*Driver, error) {
	record := &Driver{}
	if err := fetch(storage.Pool.Drivers, "driver", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutDriver - full record upsert
func PutDriver(record *Driver) {
	store(storage.Pool.Drivers, record.Id, record)
}

// GetDistributor - point lookup of a distributors company record
func GetDistributor(id string) (*DistributorsCompany, error) {
	record := &DistributorsCompany{}
	if err := fetch(storage.Pool.Distributors, "distributor company", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutDistributor - full record upsert
func PutDistributor(record *DistributorsCompany) {
	store(storage.Pool.Distributors, record.Id, record)
}

// GetManager - point lookup of a warehouse manager record
func GetManager(id string) (*WarehouseManager, error) {
	record := &WarehouseManager{}
	if err := fetch(storage.Pool.Managers, "warehouse manager", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutManager - full record upsert
func PutManager(record *WarehouseManager) {
	store(storage.Pool.Managers, record.Id, record)
}

// GetDetail - point lookup of a delivery detail record
func GetDetail(id string) (*DeliveryDetail, error) {
	record := &DeliveryDetail{}
	if err := fetch(storage.Pool.Details, "delivery details", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutDetail - full record upsert
func PutDetail(record *DeliveryDetail) {
	store(storage.Pool.Details, record.Id, record)
}

// GetTender - point lookup of a delivery tender record
func GetTender(id string) (*DeliveryTender, error) {
	record := &DeliveryTender{}
	if err := fetch(storage.Pool.Tenders, "delivery tender", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutTender - full record upsert
func PutTender(record *DeliveryTender) {
	store(storage.Pool.Tenders, record.Id, record)
}

// GetProcessingAdvert - point lookup of a processing advert record
func GetProcessingAdvert(id string) (*ProcessingAdvert, error) {
	record := &ProcessingAdvert{}
	if err := fetch(storage.Pool.Adverts, "processing advert", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutProcessingAdvert - full record upsert
func PutProcessingAdvert(record *ProcessingAdvert) {
	store(storage.Pool.Adverts, record.Id, record)
}

// GetSalesAdvert - point lookup of a sales advert record
func GetSalesAdvert(id string) (*SalesAdvert, error) {
	record := &SalesAdvert{}
	if err := fetch(storage.Pool.SalesAdverts, "sales advert", id, record); nil != err {
		return nil, err
	}
	return record, nil
}

// PutSalesAdvert - full record upsert
func PutSalesAdvert(record *SalesAdvert) {
	store(storage.Pool.SalesAdverts, record.Id, record)
}
