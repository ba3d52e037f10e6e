// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservation

import (
	"github.com/freightline/freightd/ledger"
)

// BlockReader - the narrow view of the external ledger client needed
// for verification
type BlockReader interface {
	QueryBlocks(start uint64, length uint64) ([]ledger.Block, error)
}

// Verify - check the external ledger for a transfer matching the
// reservation
//
// a transfer matches when the block memo equals the token, the sender
// address derives from the caller, the receiver address derives from
// the receiver identity and the amount is exact
//
// note the sender is the identity making this call, not the payer
// stored at reservation time: anyone able to present a matching
// block and token may submit proof of payment on the payer's behalf;
// this mirrors the settlement rules of the surrounding system and is
// deliberate
//
// a false result means "no matching transfer recorded", which is
// retryable; an error means the ledger itself could not be consulted
func (e *Engine) Verify(callerIdentity string, receiverIdentity string, amount uint64, blockNumber uint64, token Token) (bool, error) {

	blocks, err := globalData.reader.QueryBlocks(blockNumber, 1)
	if nil != err {
		return false, err
	}

	senderAddress := ledger.AddressOf(callerIdentity)
	receiverAddress := ledger.AddressOf(receiverIdentity)

	for _, block := range blocks {
		if nil == block.Transfer {
			continue
		}
		if block.Memo == uint64(token) &&
			block.Transfer.From == senderAddress &&
			block.Transfer.To == receiverAddress &&
			block.Transfer.Amount == amount {
			return true, nil
		}
	}
	return false, nil
}
