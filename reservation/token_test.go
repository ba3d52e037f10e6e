// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/freightline/freightd/reservation"
)

func TestTokenDeterminism(t *testing.T) {

	now := time.Now()

	t1 := reservation.NewToken("tender-1", "caller-1", now)
	t2 := reservation.NewToken("tender-1", "caller-1", now)
	assert.Equal(t, t1, t2, "same inputs must derive the same token")

	t3 := reservation.NewToken("tender-1", "caller-1", now.Add(time.Nanosecond))
	assert.NotEqual(t, t1, t3, "different times must derive different tokens")

	t4 := reservation.NewToken("tender-2", "caller-1", now)
	assert.NotEqual(t, t1, t4, "different obligations must derive different tokens")

	t5 := reservation.NewToken("tender-1", "caller-2", now)
	assert.NotEqual(t, t1, t5, "different callers must derive different tokens")
}

func TestTokenText(t *testing.T) {

	token := reservation.NewToken("tender-1", "caller-1", time.Now())

	text, err := token.MarshalText()
	assert.NoError(t, err, "marshal")
	assert.Len(t, text, 16, "fixed width hex")

	var decoded reservation.Token
	err = decoded.UnmarshalText(text)
	assert.NoError(t, err, "unmarshal")
	assert.Equal(t, token, decoded, "round trip")

	err = decoded.UnmarshalText([]byte("zz"))
	assert.Error(t, err, "bad length must fail")

	err = decoded.UnmarshalText([]byte("zzzzzzzzzzzzzzzz"))
	assert.Error(t, err, "bad hex must fail")
}
