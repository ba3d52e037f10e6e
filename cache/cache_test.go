// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestPool(t *testing.T) {
	Initialise(0)
	defer Finalise()

	Pool.TestB.Put("key-one", "data-one")
	Pool.TestB.Put("key-two", "data-two")
	Pool.TestB.Put("key-remove-me", "to be deleted")
	Pool.TestB.Delete("key-remove-me")
	Pool.TestB.Put("key-three", "data-three")
	Pool.TestB.Put("key-one", "data-one(NEW)") // duplicate
	Pool.TestB.Put("key-four", "data-four")
	expectedItems := map[string]string{
		"key-one":   "data-one(NEW)",
		"key-two":   "data-two",
		"key-three": "data-three",
		"key-four":  "data-four",
	}

	if Pool.TestB.Size() != len(expectedItems) {
		t.Errorf("length mismatch, got: %d  expected: %d", Pool.TestB.Size(), len(expectedItems))
	}

	for key, val := range Pool.TestB.Items() {
		expVal, ok := expectedItems[key]
		if !ok || val.(string) != expVal {
			t.Fail()
		}
	}
}

func TestExpiration(t *testing.T) {
	Initialise(0)
	defer Finalise()

	Pool.TestA.Put("a1", struct{}{})
	Pool.TestA.Put("a2", struct{}{})
	Pool.TestB.Put("b1", struct{}{})
	Pool.TestB.Put("b2", struct{}{})
	expectedKeysInPoolA := map[string]bool{"a1": false, "a2": false}
	expectedKeysInPoolB := map[string]bool{"b1": true, "b2": true}

	time.Sleep(3100 * time.Millisecond)
	deleteExpiredItems()

	for key, existed := range expectedKeysInPoolA {
		_, ok := Pool.TestA.Get(key)
		if ok != existed {
			t.Fatalf("the existence of key %q should be %t instead of %t", key, existed, ok)
		}
	}

	for key, existed := range expectedKeysInPoolB {
		_, ok := Pool.TestB.Get(key)
		if ok != existed {
			t.Fatalf("the existence of key %q should be %t instead of %t", key, existed, ok)
		}
	}
}

// an expired but unswept item must already read as absent
func TestExpiredBeforeSweep(t *testing.T) {
	Initialise(0)
	defer Finalise()

	Pool.TestA.Put("a1", "data")
	time.Sleep(3100 * time.Millisecond)

	// no deleteExpiredItems here
	if _, ok := Pool.TestA.Get("a1"); ok {
		t.Errorf("expired item still visible to Get")
	}
	if _, ok := Pool.TestA.Take("a1"); ok {
		t.Errorf("expired item still visible to Take")
	}
}

// exactly one concurrent Take succeeds for a given key
func TestTakeSingleWinner(t *testing.T) {
	Initialise(0)
	defer Finalise()

	Pool.TestB.Put("contested", "data")

	const n = 16
	winners := make(chan interface{}, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i += 1 {
		go func() {
			defer wg.Done()
			if value, ok := Pool.TestB.Take("contested"); ok {
				winners <- value
			}
		}()
	}
	wg.Wait()
	close(winners)

	count := 0
	for value := range winners {
		count += 1
		if "data" != value.(string) {
			t.Errorf("unexpected value: %v", value)
		}
	}
	if 1 != count {
		t.Fatalf("take winners: %d  expected: 1", count)
	}
	if _, ok := Pool.TestB.Get("contested"); ok {
		t.Errorf("taken item still present")
	}
}

// the reservation window must override the tagged pool expiry
func TestWindowOverride(t *testing.T) {
	Initialise(time.Hour)
	defer Finalise()

	Pool.TestA.Put("a1", "data")
	time.Sleep(3100 * time.Millisecond)

	if _, ok := Pool.TestA.Get("a1"); !ok {
		t.Errorf("item expired despite one hour window")
	}
}
