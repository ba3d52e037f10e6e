// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/storage"
)

// settlement ledger key: one record per settling identity per flow
func (e *Engine) settlementKey(identity string) []byte {
	return []byte(e.flow + ":" + identity)
}

// write the completed record to the durable settlement ledger
func (e *Engine) persistSettlement(identity string, record *Record) {
	data, err := json.Marshal(record)
	logger.PanicIfError("reservation.persistSettlement", err)
	storage.Pool.Settlements.Put(e.settlementKey(identity), data)
}

// Settlement - the completed reservation last settled by an identity
// in this flow
func (e *Engine) Settlement(identity string) (*Record, error) {
	data := storage.Pool.Settlements.Get(e.settlementKey(identity))
	if nil == data {
		return nil, fault.NotFoundError("no settlement for identity=" + identity)
	}
	record := &Record{}
	if err := json.Unmarshal(data, record); nil != err {
		return nil, err
	}
	return record, nil
}
