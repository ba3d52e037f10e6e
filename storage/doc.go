// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
//  maintains levelDB on disk and provides prefixed pools of key:value
//  records inside the single database
//
//  Settlements pool:
//    completed reservation records keyed by the identity that settled,
//    written only after ledger verification succeeds; this is the
//    durable audit trail of completed payments
//
//  entity pools:
//    the registry records (drivers, companies, managers, tenders,
//    adverts, deliveries) as JSON encoded values keyed by record id
package storage
