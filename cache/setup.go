// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/freightline/freightd/background"
)

type item struct {
	object    interface{}
	expiresAt time.Time
}

type poolData struct {
	sync.RWMutex
	items        map[string]item
	expiresAfter time.Duration
}

// one pool per payment flow
//
// the "exp" tag is the default expiry and is overridden by the
// reservation window passed to Initialise; untagged pools never expire
type pools struct {
	DriverReserves      *poolData `exp:"2h"`
	DistributorReserves *poolData `exp:"2h"`
	WarehouseReserves   *poolData `exp:"2h"`
	AdminReserves       *poolData `exp:"2h"`
	TestA               *poolData `exp:"3s"`
	TestB               *poolData
}

type globalDataType struct {
	background *background.T
}

// Pool - the interface to perform CRUD operations on objects stored in memory
var Pool pools
var globalData globalDataType

// Initialise - create the pools
//
// must be called before any operation on a pool; a non-zero
// reservationWindow overrides the tagged expiry of every expiring pool
func Initialise(reservationWindow time.Duration) error {
	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {
		var exp time.Duration

		fieldInfo := poolType.Field(i)
		expTag := fieldInfo.Tag.Get("exp")
		if len(expTag) > 0 {
			d, err := time.ParseDuration(expTag)
			if nil != err {
				return fmt.Errorf("invalid time duration: %s", expTag)
			}
			exp = d
			if reservationWindow > 0 {
				exp = reservationWindow
			}
		}

		p := &poolData{items: make(map[string]item), expiresAfter: exp}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	processes := background.Processes{
		&cleaner{},
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the expiration check process
func Finalise() {
	globalData.background.Stop()
}

// Put - store an object, restarting its expiry countdown
func (p *poolData) Put(key string, value interface{}) {
	p.Lock()
	defer p.Unlock()

	val := item{object: value}
	if p.expiresAfter > 0 {
		val.expiresAt = time.Now().Add(p.expiresAfter)
	}
	p.items[key] = val
}

// Get - fetch an object
//
// an item past its expiry time is treated as absent even if the
// cleaner has not swept it yet
func (p *poolData) Get(key string) (interface{}, bool) {
	p.RLock()
	defer p.RUnlock()

	item, ok := p.items[key]
	if !ok || expired(item.expiresAt) {
		return nil, false
	}
	return item.object, true
}

// Take - atomically fetch and remove an object
//
// only one caller can take a given key; all later calls see false
func (p *poolData) Take(key string) (interface{}, bool) {
	p.Lock()
	defer p.Unlock()

	item, ok := p.items[key]
	if !ok {
		return nil, false
	}
	delete(p.items, key)
	if expired(item.expiresAt) {
		return nil, false
	}
	return item.object, true
}

// Delete - remove an object, a missing key is a no-op
func (p *poolData) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	delete(p.items, key)
}

// Items - a copy of the current unexpired objects
func (p *poolData) Items() map[string]interface{} {
	p.RLock()
	defer p.RUnlock()

	m := make(map[string]interface{}, len(p.items))
	for k, v := range p.items {
		if !expired(v.expiresAt) {
			m[k] = v.object
		}
	}
	return m
}

// Size - count of stored objects including not yet swept expired ones
func (p *poolData) Size() int {
	p.RLock()
	defer p.RUnlock()

	return len(p.items)
}
