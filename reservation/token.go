// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/freightline/freightd/fault"
)

// Token - correlation token binding one reservation attempt
//
// derived from obligation id, calling identity and wall-clock time so
// that every attempt is independently identifiable; used as the memo
// of the matching ledger transfer and compared only for equality
type Token uint64

// NewToken - derive the token for a reservation attempt
//
// deterministic for identical inputs; attempts at different times
// yield different tokens with overwhelming probability
func NewToken(obligationId string, callerIdentity string, now time.Time) Token {
	input := obligationId + "_" + callerIdentity + "_" + strconv.FormatInt(now.UnixNano(), 10)
	digest := sha3.Sum256([]byte(input))
	return Token(binary.BigEndian.Uint64(digest[:8]))
}

// String - fixed width hex for use by the fmt package (for %s)
func (token Token) String() string {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(token))
	return hex.EncodeToString(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (token Token) GoString() string {
	return "<token:" + token.String() + ">"
}

// MarshalText - convert a token to hex text
func (token Token) MarshalText() ([]byte, error) {
	return []byte(token.String()), nil
}

// UnmarshalText - convert hex text into a token
func (token *Token) UnmarshalText(s []byte) error {
	if 16 != len(s) {
		return fault.InvalidToken
	}
	buffer := make([]byte, 8)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if 8 != byteCount {
		return fault.InvalidToken
	}
	*token = Token(binary.BigEndian.Uint64(buffer))
	return nil
}
