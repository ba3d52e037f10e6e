// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/fault"
)

// pendingPool - the pending ledger operations the engine needs
//
// satisfied by the cache pools; Take is atomic so only one caller ever
// obtains a given record
type pendingPool interface {
	Put(key string, value interface{})
	Get(key string) (interface{}, bool)
	Take(key string) (interface{}, bool)
	Delete(key string)
}

// Engine - the orchestrator of one payment flow
type Engine struct {
	flow     string
	log      *logger.L
	pending  pendingPool
	resolver Resolver
}

// Flow - the name of this engine's payment flow
func (e *Engine) Flow() string {
	return e.flow
}

// Reserve - create a pending reservation for an obligation
//
// resolves the obligation to payer, payee and amount, stores the
// pending record keyed by a fresh correlation token and arms its
// one-shot expiry; the returned record carries the token the caller
// must use as the transfer memo and present back to Complete
//
// no ledger call is made here, verification happens at completion
func (e *Engine) Reserve(callerIdentity string, obligationId string, amount uint64) (*Record, error) {

	obligation, err := e.resolver.Resolve(obligationId, amount)
	if nil != err {
		return nil, err
	}

	token := NewToken(obligationId, callerIdentity, time.Now())

	record := &Record{
		Flow:         e.flow,
		ObligationId: obligation.Reference,
		Payer:        obligation.Payer,
		Payee:        obligation.Payee,
		Amount:       obligation.Amount,
		Status:       StatusPending,
		Token:        token,
	}

	e.pending.Put(token.String(), record)
	armExpiry(e.pending, token.String())

	e.log.Infof("reserve: flow: %s  obligation: %s  amount: %d  token: %s", e.flow, obligationId, record.Amount, token)

	return record, nil
}

// Complete - settle a pending reservation after proof of payment
//
// the ledger is consulted with the stored payee and amount, never the
// caller supplied ones, so a tampered amount cannot under-settle; the
// atomic removal from the pending pool is the single point of
// commitment and whoever wins it owns the settlement
func (e *Engine) Complete(callerIdentity string, obligationId string, amount uint64, blockNumber uint64, token Token) (*Record, error) {

	key := token.String()

	stored, ok := e.pending.Get(key)
	if !ok {
		return nil, fault.NotFoundError("no pending reserve with token=" + token.String())
	}
	pending := stored.(*Record)

	if amount != pending.Amount {
		e.log.Warnf("complete: flow: %s  token: %s  claimed amount: %d  differs from reserved: %d", e.flow, token, amount, pending.Amount)
	}

	// suspension point: while the ledger query is in flight the
	// pending record may expire or be completed by a concurrent call
	verified, err := e.Verify(callerIdentity, pending.Payee, pending.Amount, blockNumber, token)
	if nil != err {
		return nil, err
	}
	if !verified {
		e.log.Infof("complete: flow: %s  token: %s  no matching transfer in block %d", e.flow, token, blockNumber)
		return nil, fault.PaymentNotVerified
	}

	taken, ok := e.pending.Take(key)
	if !ok {
		// lost the removal race or expired while verifying
		return nil, fault.NotFoundError("no pending reserve with token=" + token.String())
	}
	reserved := taken.(*Record)

	completed := *reserved
	completed.Status = StatusCompleted
	completed.SettledAtBlock = &blockNumber
	completed.SettledBy = callerIdentity

	e.persistSettlement(callerIdentity, &completed)

	if err := e.resolver.MarkSettled(completed.ObligationId); nil != err {
		// the settlement record stands; the obligation status gap is
		// surfaced for reconciliation
		e.log.Errorf("complete: flow: %s  obligation: %s  settled but status update failed: %s", e.flow, completed.ObligationId, err)
	}

	e.log.Infof("complete: flow: %s  obligation: %s  token: %s  block: %d  settled by: %s", e.flow, completed.ObligationId, token, blockNumber, callerIdentity)

	return &completed, nil
}
