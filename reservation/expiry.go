// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"container/list"
	"time"

	"github.com/bitmark-inc/logger"
)

const expiryQueueSize = 100

// to control expiry
type expiry struct {
	pool    pendingPool // pending pool holding the record
	key     string      // item to remove
	expires time.Time   // remove the record after this time
}

type expiryData struct {
	log   *logger.L
	queue chan expiry
}

// arm a one-shot removal for a freshly reserved token
//
// all reservations share one window so the queue stays ordered by
// expiry time
func armExpiry(pool pendingPool, key string) {
	globalData.expiry.queue <- expiry{
		pool:    pool,
		key:     key,
		expires: time.Now().Add(globalData.window),
	}
}

// expiry loop
//
// removal is idempotent: a reservation completed in the meantime has
// already left the pool and the Delete is a no-op
func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	log.Info("starting…")

	l := list.New()
	delay := time.After(time.Minute)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-state.queue:
			log.Infof("armed: token: %s", item.key)
			l.PushBack(item)
		case <-delay:
			for {
				e := l.Front()
				if nil == e {
					delay = time.After(time.Minute)
					break
				}
				item := e.Value.(expiry)
				d := time.Since(item.expires)
				if d < 0 {
					delay = time.After(-d)
					break
				}
				log.Infof("expired: token: %s", item.key)
				item.pool.Delete(item.key)
				l.Remove(e)
			}
		}
	}
}
