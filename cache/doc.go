// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains the in-memory pending reservation pools
//
//  ***** Data Structure *****
//
//  Pool                     Key                 Value                      ExpiresAfter
//  |___ DriverReserves      reservation.Token   reservation record         reservation window
//  |___ DistributorReserves reservation.Token   reservation record         reservation window
//  |___ WarehouseReserves   reservation.Token   reservation record         reservation window
//  |___ AdminReserves       reservation.Token   reservation record         reservation window
//
//  ***** Purpose *****
//
//  each pool holds the reservations of one payment flow that are
//  awaiting proof of payment; an entry that is not completed within
//  the reservation window is discarded
//
//  Take is the single point of commitment for completion: whoever
//  takes a key owns the right to settle the reservation
package cache
