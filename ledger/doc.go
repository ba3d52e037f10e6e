// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - client for the external transaction ledger
//
// the ledger is an append-only chain of blocks maintained by a
// separate service; each block optionally carries one transfer
// operation and a memo field; freightd only ever reads it, over a
// JSON RPC interface, in order to verify that a claimed payment was
// actually made
//
// the ledger service is untrusted infrastructure: a transport or RPC
// failure is reported as a ProcessError so that callers can tell
// "ledger unreachable" apart from "payment not present"
package ledger
