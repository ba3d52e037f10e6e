// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/freightline/freightd/cache"
	"github.com/freightline/freightd/counter"
	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/ledger"
	"github.com/freightline/freightd/registry"
	"github.com/freightline/freightd/reservation"
	"github.com/freightline/freightd/rpc"
	"github.com/freightline/freightd/storage"
)

const (
	distributorIdentity = "distributor-owner"
	driverIdentity      = "driver-owner"
)

type stubLedger struct {
	sync.Mutex
	blocks map[uint64]ledger.Block
}

func (s *stubLedger) QueryBlocks(start uint64, length uint64) ([]ledger.Block, error) {
	s.Lock()
	defer s.Unlock()

	blocks := []ledger.Block{}
	for i := uint64(0); i < length; i += 1 {
		if b, ok := s.blocks[start+i]; ok {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

func (s *stubLedger) record(height uint64, memo reservation.Token, from string, to string, amount uint64) {
	s.Lock()
	defer s.Unlock()

	s.blocks[height] = ledger.Block{
		Height: height,
		Memo:   uint64(memo),
		Transfer: &ledger.Transfer{
			From:   ledger.AddressOf(from),
			To:     ledger.AddressOf(to),
			Amount: amount,
		},
	}
}

var testLedger = &stubLedger{blocks: map[uint64]ledger.Block{}}

var testLog *logger.L

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "rpc-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialisation failed: %s", err))
	}
	testLog = logger.New("testing")

	if err := storage.Initialise(filepath.Join(dir, "test")); nil != err {
		panic(err)
	}
	if err := cache.Initialise(0); nil != err {
		panic(err)
	}
	if err := reservation.Initialise(time.Hour, testLedger); nil != err {
		panic(err)
	}

	registry.PutDistributor(&registry.DistributorsCompany{
		Id:       "company-1",
		Identity: distributorIdentity,
		Name:     "Haulage Ltd",
	})
	registry.PutDriver(&registry.Driver{
		Id:       "driver-1",
		Identity: driverIdentity,
		FullName: "A Driver",
	})
	registry.PutDetail(&registry.DeliveryDetail{
		Id:             "detail-1",
		DriverId:       "driver-1",
		DistributorsId: "company-1",
		Status:         "in transit",
	})
	registry.PutTender(&registry.DeliveryTender{
		Id:                "tender-1",
		DeliveryDetailsId: "detail-1",
		DistributorsId:    "company-1",
		TotalCost:         750,
	})

	rc := m.Run()

	reservation.Finalise()
	cache.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func TestDriverReserveAndComplete(t *testing.T) {

	handler := rpc.NewDriver(testLog)

	var reserved rpc.ReserveReply
	err := handler.Reserve(&rpc.ReserveArguments{
		Caller:       distributorIdentity,
		ObligationId: "tender-1",
		Amount:       500,
	}, &reserved)
	assert.NoError(t, err, "reserve")
	assert.Equal(t, reservation.StatusPending, reserved.Reservation.Status, "status")
	assert.Equal(t, driverIdentity, reserved.Reservation.Payee, "payee")

	token := reserved.Reservation.Token
	testLedger.record(10, token, distributorIdentity, driverIdentity, 500)

	var verified rpc.VerifyReply
	err = handler.Verify(&rpc.VerifyArguments{
		Caller:   distributorIdentity,
		Receiver: driverIdentity,
		Amount:   500,
		Block:    10,
		Token:    token,
	}, &verified)
	assert.NoError(t, err, "verify")
	assert.True(t, verified.Verified, "payment on chain")

	var completed rpc.CompleteReply
	err = handler.Complete(&rpc.CompleteArguments{
		Caller:       distributorIdentity,
		ObligationId: "tender-1",
		Amount:       500,
		Block:        10,
		Token:        token,
	}, &completed)
	assert.NoError(t, err, "complete")
	assert.Equal(t, reservation.StatusCompleted, completed.Reservation.Status, "status")

	var settled rpc.SettlementReply
	err = handler.Settlement(&rpc.SettlementArguments{
		Identity: distributorIdentity,
	}, &settled)
	assert.NoError(t, err, "settlement")
	assert.Equal(t, token, settled.Reservation.Token, "settled token")
}

func TestCompleteUnknownToken(t *testing.T) {

	handler := rpc.NewDriver(testLog)

	var completed rpc.CompleteReply
	err := handler.Complete(&rpc.CompleteArguments{
		Caller:       distributorIdentity,
		ObligationId: "tender-1",
		Amount:       500,
		Block:        10,
		Token:        reservation.Token(12345),
	}, &completed)
	assert.Error(t, err, "unknown token")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestRegistryAdd(t *testing.T) {

	handler := rpc.NewRegistry(testLog)

	var reply rpc.RegistryReply
	err := handler.AddDriver(&registry.Driver{
		Id:       "driver-2",
		Identity: "driver-2-owner",
		FullName: "B Driver",
	}, &reply)
	assert.NoError(t, err, "add driver")
	assert.Equal(t, "driver-2", reply.Id, "id echoed")

	stored, err := registry.GetDriver("driver-2")
	assert.NoError(t, err, "fetch")
	assert.Equal(t, "B Driver", stored.FullName, "record stored")
}

func TestRegistryMissingParameters(t *testing.T) {

	handler := rpc.NewRegistry(testLog)

	var reply rpc.RegistryReply
	err := handler.AddDriver(&registry.Driver{
		FullName: "No Id",
	}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "id and identity required")
}

func TestRegistryTenderTotal(t *testing.T) {

	handler := rpc.NewRegistry(testLog)

	var reply rpc.RegistryReply
	err := handler.AddTender(&registry.DeliveryTender{
		Id:                "tender-2",
		DeliveryDetailsId: "detail-1",
		DeliveryWeight:    10,
		CostPerWeight:     20,
		AdditionalCost:    5,
	}, &reply)
	assert.NoError(t, err, "add tender")

	var fetched registry.DeliveryTender
	err = handler.GetTender(&rpc.RegistryLookup{Id: "tender-2"}, &fetched)
	assert.NoError(t, err, "get tender")
	assert.Equal(t, uint64(205), fetched.TotalCost, "total derived from weight and cost")
}

func TestNodeInfo(t *testing.T) {

	count := counter.Counter(0)
	handler := rpc.NewNode(testLog, "1.0.0-test", &count)

	var reply rpc.InfoReply
	err := handler.Info(&rpc.InfoArguments{}, &reply)
	assert.NoError(t, err, "info")
	assert.Equal(t, "1.0.0-test", reply.Version, "version")
	assert.Contains(t, reply.Pending, "driver", "pending counts by flow")
}
