// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation_test

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
	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/ledger"
	"github.com/freightline/freightd/registry"
	"github.com/freightline/freightd/reservation"
	"github.com/freightline/freightd/storage"
)

// short window so expiry can be observed in a test run
const testWindow = 2 * time.Second

// identities used by the fixtures
const (
	distributorIdentity = "distributor-owner"
	driverIdentity      = "driver-owner"
	managerIdentity     = "manager-owner"
	adminIdentity       = "admin-owner"
)

// in-memory stand-in for the external ledger service
type stubLedger struct {
	sync.Mutex
	blocks map[uint64]ledger.Block
	fail   bool
}

func (s *stubLedger) QueryBlocks(start uint64, length uint64) ([]ledger.Block, error) {
	s.Lock()
	defer s.Unlock()

	if s.fail {
		return nil, fault.ProcessError("ledger unreachable: connection refused")
	}
	blocks := []ledger.Block{}
	for i := uint64(0); i < length; i += 1 {
		if b, ok := s.blocks[start+i]; ok {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

// record a transfer into the stub chain
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

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "reservation-test")
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

	if err := storage.Initialise(filepath.Join(dir, "test")); nil != err {
		panic(err)
	}
	if err := cache.Initialise(testWindow); nil != err {
		panic(err)
	}
	if err := reservation.Initialise(testWindow, testLedger); nil != err {
		panic(err)
	}

	fixtures()

	rc := m.Run()

	reservation.Finalise()
	cache.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// entity records the resolvers walk through
func fixtures() {
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
	registry.PutManager(&registry.WarehouseManager{
		Id:       "manager-1",
		Identity: managerIdentity,
		FullName: "A Manager",
	})
	registry.PutAdmin(&registry.Admin{
		Id:       "admin-1",
		Identity: adminIdentity,
		FullName: "An Admin",
	})
	registry.PutDetail(&registry.DeliveryDetail{
		Id:             "detail-1",
		DriverId:       "driver-1",
		DistributorsId: "company-1",
		AdminId:        "admin-1",
		Status:         "in transit",
	})
	registry.PutTender(&registry.DeliveryTender{
		Id:                 "tender-1",
		DeliveryDetailsId:  "detail-1",
		WarehouseManagerId: "manager-1",
		DistributorsId:     "company-1",
		TotalCost:          750,
	})
	registry.PutProcessingAdvert(&registry.ProcessingAdvert{
		Id:                 "advert-1",
		AdminId:            "admin-1",
		WarehouseManagerId: "manager-1",
		Price:              300,
		Status:             "open",
	})
	registry.PutSalesAdvert(&registry.SalesAdvert{
		Id:      "sale-1",
		AdminId: "admin-1",
		BuyerId: "company-1",
		Price:   900,
		Status:  "open",
	})
}

func TestReserveDriverPay(t *testing.T) {

	record, err := reservation.Driver().Reserve(distributorIdentity, "tender-1", 500)
	assert.NoError(t, err, "reserve")

	assert.Equal(t, reservation.StatusPending, record.Status, "status")
	assert.Equal(t, uint64(500), record.Amount, "amount")
	assert.Equal(t, distributorIdentity, record.Payer, "payer")
	assert.Equal(t, driverIdentity, record.Payee, "payee")
	assert.Nil(t, record.SettledAtBlock, "not settled yet")

	_, present := cache.Pool.DriverReserves.Get(record.Token.String())
	assert.True(t, present, "pending pool holds the token")
}

func TestReserveMissingObligation(t *testing.T) {

	_, err := reservation.Driver().Reserve(distributorIdentity, "no-such-tender", 500)
	assert.Error(t, err, "missing tender")
	assert.True(t, fault.IsErrNotFound(err), "error class")
	assert.Contains(t, err.Error(), "no-such-tender", "error names the id")

	// distributor flow resolves the amount itself
	_, err = reservation.Distributor().Reserve(managerIdentity, "no-such-tender", 0)
	assert.Error(t, err, "missing tender")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestReserveZeroDriverAmount(t *testing.T) {

	_, err := reservation.Driver().Reserve(distributorIdentity, "tender-1", 0)
	assert.Equal(t, fault.InvalidReservationAmount, err, "zero amount rejected")
}

func TestCompleteDriverPay(t *testing.T) {

	record, err := reservation.Driver().Reserve(distributorIdentity, "tender-1", 500)
	assert.NoError(t, err, "reserve")

	testLedger.record(10, record.Token, distributorIdentity, driverIdentity, 500)

	completed, err := reservation.Driver().Complete(distributorIdentity, "tender-1", 500, 10, record.Token)
	assert.NoError(t, err, "complete")
	assert.Equal(t, reservation.StatusCompleted, completed.Status, "status")
	if assert.NotNil(t, completed.SettledAtBlock, "settled block recorded") {
		assert.Equal(t, uint64(10), *completed.SettledAtBlock, "block number")
	}
	assert.Equal(t, distributorIdentity, completed.SettledBy, "settled by caller")

	// pending entry consumed
	_, present := cache.Pool.DriverReserves.Get(record.Token.String())
	assert.False(t, present, "pending pool no longer holds the token")

	// settlement ledger records it under the caller
	settled, err := reservation.Driver().Settlement(distributorIdentity)
	assert.NoError(t, err, "settlement lookup")
	assert.Equal(t, record.Token, settled.Token, "settled token")

	// obligation side effect applied
	detail, err := registry.GetDetail("detail-1")
	assert.NoError(t, err, "detail lookup")
	assert.Equal(t, "driver paid", detail.Status, "delivery detail marked")
}

func TestCompleteTwice(t *testing.T) {

	record, err := reservation.Warehouse().Reserve(adminIdentity, "advert-1", 0)
	assert.NoError(t, err, "reserve")
	assert.Equal(t, uint64(300), record.Amount, "advert price resolved")

	testLedger.record(20, record.Token, adminIdentity, managerIdentity, 300)

	_, err = reservation.Warehouse().Complete(adminIdentity, "advert-1", 300, 20, record.Token)
	assert.NoError(t, err, "first complete")

	_, err = reservation.Warehouse().Complete(adminIdentity, "advert-1", 300, 20, record.Token)
	assert.Error(t, err, "second complete must fail")
	assert.True(t, fault.IsErrNotFound(err), "race loss reports not found")
}

func TestCompleteUnverified(t *testing.T) {

	record, err := reservation.Distributor().Reserve(managerIdentity, "tender-1", 0)
	assert.NoError(t, err, "reserve")
	assert.Equal(t, uint64(750), record.Amount, "tender cost resolved")

	// block 30 carries an unrelated transfer with a different memo
	testLedger.record(30, record.Token+1, managerIdentity, distributorIdentity, 750)

	_, err = reservation.Distributor().Complete(managerIdentity, "tender-1", 750, 30, record.Token)
	assert.Equal(t, fault.PaymentNotVerified, err, "verification failed")

	// still pending, completable later
	testLedger.record(31, record.Token, managerIdentity, distributorIdentity, 750)
	completed, err := reservation.Distributor().Complete(managerIdentity, "tender-1", 750, 31, record.Token)
	assert.NoError(t, err, "retry with the correct block")
	assert.Equal(t, reservation.StatusCompleted, completed.Status, "status")

	tender, err := registry.GetTender("tender-1")
	assert.NoError(t, err, "tender lookup")
	assert.True(t, tender.Accepted, "tender marked accepted")
}

// verification always runs against the reserved amount, a tampered
// claim cannot under-settle
func TestCompleteAmountTampering(t *testing.T) {

	record, err := reservation.Admin().Reserve(distributorIdentity, "sale-1", 0)
	assert.NoError(t, err, "reserve")
	assert.Equal(t, uint64(900), record.Amount, "sale price resolved")

	// only a short payment is on the ledger
	testLedger.record(40, record.Token, distributorIdentity, adminIdentity, 100)

	_, err = reservation.Admin().Complete(distributorIdentity, "sale-1", 100, 40, record.Token)
	assert.Equal(t, fault.PaymentNotVerified, err, "short payment rejected despite matching claim")

	// the full amount settles even when the claim is wrong
	testLedger.record(41, record.Token, distributorIdentity, adminIdentity, 900)
	completed, err := reservation.Admin().Complete(distributorIdentity, "sale-1", 100, 41, record.Token)
	assert.NoError(t, err, "full payment settles")
	assert.Equal(t, uint64(900), completed.Amount, "settled at the reserved amount")
}

func TestCompleteInfrastructureFault(t *testing.T) {

	record, err := reservation.Driver().Reserve(distributorIdentity, "tender-1", 600)
	assert.NoError(t, err, "reserve")

	testLedger.Lock()
	testLedger.fail = true
	testLedger.Unlock()

	_, err = reservation.Driver().Complete(distributorIdentity, "tender-1", 600, 50, record.Token)
	assert.Error(t, err, "ledger down must error")
	assert.True(t, fault.IsErrProcess(err), "process error, not a negative verification")

	testLedger.Lock()
	testLedger.fail = false
	testLedger.Unlock()

	// the reservation survived the fault
	_, present := cache.Pool.DriverReserves.Get(record.Token.String())
	assert.True(t, present, "still pending")
}

func TestReservationExpiry(t *testing.T) {

	record, err := reservation.Driver().Reserve(distributorIdentity, "tender-1", 700)
	assert.NoError(t, err, "reserve")

	testLedger.record(60, record.Token, distributorIdentity, driverIdentity, 700)

	time.Sleep(testWindow + 500*time.Millisecond)

	_, err = reservation.Driver().Complete(distributorIdentity, "tender-1", 700, 60, record.Token)
	assert.Error(t, err, "expired reservation cannot complete")
	assert.True(t, fault.IsErrNotFound(err), "reports not found")
}

func TestVerifyMatching(t *testing.T) {

	token := reservation.NewToken("tender-1", distributorIdentity, time.Now())

	testLedger.record(70, token, distributorIdentity, driverIdentity, 500)
	testLedger.Lock()
	testLedger.blocks[71] = ledger.Block{Height: 71} // no transfer operation
	testLedger.Unlock()

	engine := reservation.Driver()

	ok, err := engine.Verify(distributorIdentity, driverIdentity, 500, 70, token)
	assert.NoError(t, err, "verify")
	assert.True(t, ok, "exact match verifies")

	ok, err = engine.Verify(distributorIdentity, driverIdentity, 500, 71, token)
	assert.NoError(t, err, "verify")
	assert.False(t, ok, "block without transfer")

	ok, err = engine.Verify(distributorIdentity, driverIdentity, 500, 99, token)
	assert.NoError(t, err, "verify")
	assert.False(t, ok, "missing block")

	ok, err = engine.Verify(distributorIdentity, driverIdentity, 500, 70, token+1)
	assert.NoError(t, err, "verify")
	assert.False(t, ok, "memo mismatch")

	ok, err = engine.Verify(distributorIdentity, driverIdentity, 499, 70, token)
	assert.NoError(t, err, "verify")
	assert.False(t, ok, "amount mismatch")

	ok, err = engine.Verify(managerIdentity, driverIdentity, 500, 70, token)
	assert.NoError(t, err, "verify")
	assert.False(t, ok, "sender mismatch")

	ok, err = engine.Verify(distributorIdentity, managerIdentity, 500, 70, token)
	assert.NoError(t, err, "verify")
	assert.False(t, ok, "receiver mismatch")
}
