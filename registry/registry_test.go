// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freightline/freightd/fault"
	"github.com/freightline/freightd/registry"
	"github.com/freightline/freightd/storage"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "registry-test")
	if nil != err {
		panic(err)
	}
	if err := storage.Initialise(filepath.Join(dir, "test")); nil != err {
		panic(err)
	}

	rc := m.Run()

	storage.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func TestDriverRoundTrip(t *testing.T) {

	registry.PutDriver(&registry.Driver{
		Id:        "driver-1",
		Identity:  "driver-identity-1",
		FullName:  "A Driver",
		LicenceNo: "L-1234",
		Status:    "active",
	})

	record, err := registry.GetDriver("driver-1")
	assert.NoError(t, err, "get driver")
	assert.Equal(t, "driver-identity-1", record.Identity, "driver identity")
	assert.Equal(t, "A Driver", record.FullName, "driver name")
}

func TestMissingRecord(t *testing.T) {

	_, err := registry.GetTender("no-such-tender")
	assert.Error(t, err, "missing tender")
	assert.True(t, fault.IsErrNotFound(err), "error class")
	assert.Contains(t, err.Error(), "no-such-tender", "error names the id")
}

func TestUpsertReplaces(t *testing.T) {

	registry.PutTender(&registry.DeliveryTender{
		Id:        "tender-1",
		TotalCost: 500,
	})
	registry.PutTender(&registry.DeliveryTender{
		Id:        "tender-1",
		TotalCost: 750,
		Accepted:  true,
	})

	record, err := registry.GetTender("tender-1")
	assert.NoError(t, err, "get tender")
	assert.Equal(t, uint64(750), record.TotalCost, "total cost replaced")
	assert.True(t, record.Accepted, "accepted replaced")
}
