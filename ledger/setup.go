// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"net/http"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/fault"
)

// Configuration - ledger client configuration from the daemon
// configuration file
type Configuration struct {
	URL      string `gluamapper:"url" json:"url"`
	Username string `gluamapper:"username" json:"username"`
	Password string `gluamapper:"password" json:"password"`
}

const (
	requestTimeout = 30 * time.Second

	// fetched blocks are immutable so may be memoised; keep the TTL
	// short anyway to bound memory on long polling runs
	blockCacheExpiry  = 2 * time.Minute
	blockCacheCleanup = 5 * time.Minute
)

// globals for the ledger connection
type globalDataType struct {
	sync.RWMutex

	log *logger.L

	url      string
	username string
	password string
	client   *http.Client
	id       uint64

	blockCache *gocache.Cache

	initialised bool
}

var globalData globalDataType

// Initialise - set up the connection to the external ledger service
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	if nil == globalData.log {
		return fault.InvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	if "" == configuration.URL {
		return fault.MissingParameters
	}

	globalData.url = configuration.URL
	globalData.username = configuration.Username
	globalData.password = configuration.Password
	globalData.client = &http.Client{
		Timeout: requestTimeout,
	}
	globalData.id = 0
	globalData.blockCache = gocache.New(blockCacheExpiry, blockCacheCleanup)

	globalData.initialised = true

	return nil
}

// Finalise - drop the connection
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.client = nil
	globalData.blockCache = nil
	globalData.initialised = false
}

// Handle - the narrow read-only view handed to the reservation engine
type Handle struct{}

// QueryBlocks - interface passthrough to the package level call
func (Handle) QueryBlocks(start uint64, length uint64) ([]Block, error) {
	return QueryBlocks(start, length)
}

// Global - the handle backed by the initialised package state
func Global() Handle {
	return Handle{}
}
