// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strconv"
)

// Transfer - the single transfer operation a block may carry
type Transfer struct {
	From   Address `json:"from"`
	To     Address `json:"to"`
	Amount uint64  `json:"amount"`
}

// Block - one recorded ledger block
//
// Transfer is nil for blocks carrying no transfer operation
type Block struct {
	Height   uint64    `json:"height"`
	Memo     uint64    `json:"memo"`
	Transfer *Transfer `json:"transfer"`
}

// reply from the get_blocks call
type blocksReply struct {
	Blocks []Block `json:"blocks"`
}

// QueryBlocks - fetch a range of blocks from the external ledger
//
// a start beyond the chain head yields an empty slice, not an error;
// an error always means the ledger itself could not answer
func QueryBlocks(start uint64, length uint64) ([]Block, error) {
	globalData.Lock()
	defer globalData.Unlock()

	// single block fetches are memoised, blocks never change
	cacheKey := ""
	if 1 == length && nil != globalData.blockCache {
		cacheKey = strconv.FormatUint(start, 10)
		if cached, ok := globalData.blockCache.Get(cacheKey); ok {
			return cached.([]Block), nil
		}
	}

	arguments := []interface{}{
		start,
		length,
	}
	reply := &blocksReply{}
	err := ledgerCall("get_blocks", arguments, reply)
	if nil != err {
		return nil, err
	}

	if "" != cacheKey && len(reply.Blocks) > 0 {
		globalData.blockCache.SetDefault(cacheKey, reply.Blocks)
	}

	return reply.Blocks, nil
}
