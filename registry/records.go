// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

// Admin - an administrative principal running processing stations
type Admin struct {
	Id       string `json:"id"`
	Identity string `json:"identity"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// Driver - a delivery driver
type Driver struct {
	Id        string `json:"id"`
	Identity  string `json:"identity"`
	FullName  string `json:"fullName"`
	Contact   string `json:"contact"`
	LicenceNo string `json:"licenceNo"`
	Rating    uint64 `json:"rating"`
	Status    string `json:"status"`
}

// DistributorsCompany - a logistics company operating vehicles and drivers
type DistributorsCompany struct {
	Id           string `json:"id"`
	Identity     string `json:"identity"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	BusinessType string `json:"businessType"`
	RegNo        string `json:"regNo"`
}

// WarehouseManager - a processing station manager
type WarehouseManager struct {
	Id       string `json:"id"`
	Identity string `json:"identity"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// DeliveryDetail - a scheduled delivery
type DeliveryDetail struct {
	Id                 string `json:"id"`
	WarehouseManagerId string `json:"warehouseManagerId"`
	AdminId            string `json:"adminId"`
	ItemId             string `json:"itemId"`
	DriverId           string `json:"driverId,omitempty"` // empty until a driver is assigned
	DistributorsId     string `json:"distributorsId"`
	PickupRegion       string `json:"pickupRegion"`
	DeliveredRegion    string `json:"deliveredRegion"`
	Priority           string `json:"priority"`
	Status             string `json:"status"`
}

// DeliveryTender - a priced offer to carry out a delivery
type DeliveryTender struct {
	Id                 string `json:"id"`
	DeliveryDetailsId  string `json:"deliveryDetailsId"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	WarehouseManagerId string `json:"warehouseManagerId"`
	DistributorsId     string `json:"distributorsId"`
	DeliveryWeight     uint64 `json:"deliveryWeight"`
	CostPerWeight      uint64 `json:"costPerWeight"`
	AdditionalCost     uint64 `json:"additionalCost"`
	TotalCost          uint64 `json:"totalCost"`
	Accepted           bool   `json:"accepted"`
}

// ProcessingAdvert - an admin request for warehouse processing
type ProcessingAdvert struct {
	Id                 string `json:"id"`
	AdminId            string `json:"adminId"`
	WarehouseManagerId string `json:"warehouseManagerId"`
	ItemId             string `json:"itemId"`
	Quantity           uint64 `json:"quantity"`
	Price              uint64 `json:"price"`
	Status             string `json:"status"`
	AdminPaid          bool   `json:"adminPaid"`
}

// SalesAdvert - an admin sale looked into by a buyer company
type SalesAdvert struct {
	Id       string `json:"id"`
	AdminId  string `json:"adminId"`
	BuyerId  string `json:"buyerId"`
	ItemId   string `json:"itemId"`
	Quantity uint64 `json:"quantity"`
	Price    uint64 `json:"price"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
}
