// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

// Obligation - the resolved parties and price of a payment obligation
type Obligation struct {
	Reference string // id of the obligation record
	Payer     string // identity expected to pay
	Payee     string // identity receiving the payment
	Amount    uint64 // smallest currency unit
}

// Resolver - how a flow turns an obligation id into an Obligation
//
// Resolve runs at reservation time and must fail with a not-found
// error naming any missing related record; callerAmount is only
// honoured by flows whose price is caller supplied
//
// MarkSettled applies the flow's obligation-side status change after a
// successful settlement; it is best effort and its failure never
// invalidates the settlement record
type Resolver interface {
	Resolve(obligationId string, callerAmount uint64) (*Obligation, error)
	MarkSettled(obligationId string) error
}
