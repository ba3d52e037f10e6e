// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - typed point access to the entity records
//
// the reservation engine resolves obligations through this package:
// it only needs existence checks and a handful of fields, so the
// record types carry just the durable state, JSON encoded into the
// storage pools
package registry
