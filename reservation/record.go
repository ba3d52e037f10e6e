// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

// reservation status values
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Record - one payment reservation
//
// created pending by Reserve; the only mutation is the completion
// transition which fills Status and SettledAtBlock on the copy moved
// to the settlement ledger; the pending original is simply removed
type Record struct {
	Flow           string  `json:"flow"`
	ObligationId   string  `json:"obligationId"`
	Payer          string  `json:"payer"`
	Payee          string  `json:"payee"`
	Amount         uint64  `json:"amount"`
	Status         string  `json:"status"`
	Token          Token   `json:"token"`
	SettledAtBlock *uint64 `json:"settledAtBlock,omitempty"`
	SettledBy      string  `json:"settledBy,omitempty"`
}
