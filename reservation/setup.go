// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/background"
	"github.com/freightline/freightd/cache"
	"github.com/freightline/freightd/fault"
)

// default bound on the life of an unconfirmed reservation
const defaultReservationWindow = 2 * time.Hour

// globals
type globalDataType struct {
	sync.RWMutex

	log    *logger.L
	window time.Duration
	reader BlockReader

	driver      *Engine
	distributor *Engine
	warehouse   *Engine
	admin       *Engine

	expiry     expiryData
	background *background.T

	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - create the four flow engines and start the expiry process
//
// cache.Initialise must have been called first as the engines store
// their pending records in the cache pools
func Initialise(reservationWindow time.Duration, reader BlockReader) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("reservation")
	if nil == globalData.log {
		return fault.InvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	if reservationWindow <= 0 {
		reservationWindow = defaultReservationWindow
	}
	globalData.window = reservationWindow
	globalData.reader = reader

	globalData.expiry.log = logger.New("reservation-expiry")
	if nil == globalData.expiry.log {
		return fault.InvalidLoggerChannel
	}
	globalData.expiry.queue = make(chan expiry, expiryQueueSize)

	globalData.driver = &Engine{
		flow:     "driver",
		log:      globalData.log,
		pending:  cache.Pool.DriverReserves,
		resolver: driverResolver{},
	}
	globalData.distributor = &Engine{
		flow:     "distributor",
		log:      globalData.log,
		pending:  cache.Pool.DistributorReserves,
		resolver: distributorResolver{},
	}
	globalData.warehouse = &Engine{
		flow:     "warehouse",
		log:      globalData.log,
		pending:  cache.Pool.WarehouseReserves,
		resolver: warehouseResolver{},
	}
	globalData.admin = &Engine{
		flow:     "admin",
		log:      globalData.log,
		pending:  cache.Pool.AdminReserves,
		resolver: adminResolver{},
	}

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.expiry,
	}
	globalData.background = background.Start(processes, nil)

	globalData.initialised = true

	return nil
}

// Finalise - stop the background processes
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
}

// Driver - the driver pay flow
func Driver() *Engine { return globalData.driver }

// Distributor - the distributor pay flow
func Distributor() *Engine { return globalData.distributor }

// Warehouse - the warehouse pay flow
func Warehouse() *Engine { return globalData.warehouse }

// Admin - the administrative settlement flow
func Admin() *Engine { return globalData.admin }
