// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/reservation"
	"github.com/freightline/freightd/rpc/ratelimit"
)

const (
	rateLimitPayments = 200
	rateBurstPayments = 100
)

// ReserveArguments - arguments for creating a reservation
type ReserveArguments struct {
	Caller       string `json:"caller"`
	ObligationId string `json:"obligationId"`
	Amount       uint64 `json:"amount"`
}

// ReserveReply - the pending reservation including its token
type ReserveReply struct {
	Reservation *reservation.Record `json:"reservation"`
}

// CompleteArguments - arguments for settling a reservation
type CompleteArguments struct {
	Caller       string            `json:"caller"`
	ObligationId string            `json:"obligationId"`
	Amount       uint64            `json:"amount"`
	Block        uint64            `json:"block"`
	Token        reservation.Token `json:"token"`
}

// CompleteReply - the completed reservation
type CompleteReply struct {
	Reservation *reservation.Record `json:"reservation"`
}

// VerifyArguments - arguments for a standalone verification poll
type VerifyArguments struct {
	Caller   string            `json:"caller"`
	Receiver string            `json:"receiver"`
	Amount   uint64            `json:"amount"`
	Block    uint64            `json:"block"`
	Token    reservation.Token `json:"token"`
}

// VerifyReply - result of a verification poll
type VerifyReply struct {
	Verified bool `json:"verified"`
}

// SettlementArguments - lookup of the caller's last settlement
type SettlementArguments struct {
	Identity string `json:"identity"`
}

// SettlementReply - the completed reservation record
type SettlementReply struct {
	Reservation *reservation.Record `json:"reservation"`
}

// Payments - shared implementation behind the four flow handlers
type Payments struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *reservation.Engine
}

func newPayments(log *logger.L, engine *reservation.Engine) Payments {
	return Payments{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPayments, rateBurstPayments),
		Engine:  engine,
	}
}

// Reserve - create a pending reservation
func (p *Payments) Reserve(arguments *ReserveArguments, reply *ReserveReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	p.Log.Infof("%s.Reserve: %+v", p.Engine.Flow(), arguments)

	record, err := p.Engine.Reserve(arguments.Caller, arguments.ObligationId, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Reservation = record
	return nil
}

// Complete - settle a pending reservation after payment
func (p *Payments) Complete(arguments *CompleteArguments, reply *CompleteReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	p.Log.Infof("%s.Complete: %+v", p.Engine.Flow(), arguments)

	record, err := p.Engine.Complete(arguments.Caller, arguments.ObligationId, arguments.Amount, arguments.Block, arguments.Token)
	if nil != err {
		return err
	}
	reply.Reservation = record
	return nil
}

// Verify - poll the external ledger before attempting Complete
func (p *Payments) Verify(arguments *VerifyArguments, reply *VerifyReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	verified, err := p.Engine.Verify(arguments.Caller, arguments.Receiver, arguments.Amount, arguments.Block, arguments.Token)
	if nil != err {
		return err
	}
	reply.Verified = verified
	return nil
}

// Settlement - the caller's last completed reservation in this flow
func (p *Payments) Settlement(arguments *SettlementArguments, reply *SettlementReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	record, err := p.Engine.Settlement(arguments.Identity)
	if nil != err {
		return err
	}
	reply.Reservation = record
	return nil
}

// Driver - the driver pay flow for RPC
type Driver struct {
	Payments
}

// NewDriver - driver flow handler
func NewDriver(log *logger.L) *Driver {
	return &Driver{newPayments(log, reservation.Driver())}
}

// Distributor - the distributor pay flow for RPC
type Distributor struct {
	Payments
}

// NewDistributor - distributor flow handler
func NewDistributor(log *logger.L) *Distributor {
	return &Distributor{newPayments(log, reservation.Distributor())}
}

// Warehouse - the warehouse pay flow for RPC
type Warehouse struct {
	Payments
}

// NewWarehouse - warehouse flow handler
func NewWarehouse(log *logger.L) *Warehouse {
	return &Warehouse{newPayments(log, reservation.Warehouse())}
}

// Admin - the administrative settlement flow for RPC
type Admin struct {
	Payments
}

// NewAdmin - admin flow handler
func NewAdmin(log *logger.L) *Admin {
	return &Admin{newPayments(log, reservation.Admin())}
}
