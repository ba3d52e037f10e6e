// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client RPC interface to the payment reservation engine
//
// JSON RPC over TLS; one handler per payment flow plus registry and
// node enquiries; callers are already authenticated principals so the
// caller identity arrives as an ordinary argument
package rpc
