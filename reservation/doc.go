// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservation - the payment reservation and verification engine
//
// four payment flows (driver, distributor, warehouse, admin) share one
// engine; a flow differs only in how an obligation id is resolved to
// the paying and receiving identities and the amount
//
// life cycle of a reservation:
//
//            Reserve()                 Verify ok  and  pending removal ok
//   (none) ------------> PENDING -------------------------------------> COMPLETED
//                           |  \
//              expiry fires |   \  Verify fails -> stays PENDING (retry)
//                           v
//                       (removed, terminal, no record)
//
// the removal from the pending pool is the single point of commitment:
// whoever removes the record owns the right to settle it, so a lost
// removal race or a fired expiry surfaces as a not-found condition and
// never as a duplicate settlement
package reservation
