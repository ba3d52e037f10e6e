// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/freightline/freightd/fault"
)

// Address - the ledger-side address of an identity
//
// base58 over a truncated SHA3-256 digest of the identity plus a four
// byte SHA3 checksum; the mapping is deterministic so both sides of a
// transfer can be recomputed from the identities alone
type Address string

const (
	addressDigestLength   = 20
	addressChecksumLength = 4
)

// AddressOf - derive the ledger address of an identity
func AddressOf(identity string) Address {
	digest := sha3.Sum256([]byte(identity))

	buffer := make([]byte, addressDigestLength, addressDigestLength+addressChecksumLength)
	copy(buffer, digest[:addressDigestLength])

	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:addressChecksumLength]...)

	return Address(base58.Encode(buffer))
}

// Valid - check an address round-trips through base58 with a correct
// checksum
func (address Address) Valid() error {
	decoded, err := base58.Decode(string(address))
	if nil != err {
		return fault.CannotDecodeAddress
	}
	if addressDigestLength+addressChecksumLength != len(decoded) {
		return fault.CannotDecodeAddress
	}
	checksum := sha3.Sum256(decoded[:addressDigestLength])
	if !bytes.Equal(checksum[:addressChecksumLength], decoded[addressDigestLength:]) {
		return fault.CannotDecodeAddress
	}
	return nil
}

// String - for use by the fmt package (for %s)
func (address Address) String() string {
	return string(address)
}
