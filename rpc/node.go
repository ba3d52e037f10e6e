// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/cache"
	"github.com/freightline/freightd/counter"
)

// Node - status queries about this node
type Node struct {
	Log     *logger.L
	Start   time.Time
	Version string
	Count   *counter.Counter
}

// NewNode - node status handler
func NewNode(log *logger.L, version string, count *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Start:   time.Now(),
		Version: version,
		Count:   count,
	}
}

// InfoArguments - empty
type InfoArguments struct{}

// InfoReply - node status
type InfoReply struct {
	Version     string         `json:"version"`
	Uptime      string         `json:"uptime"`
	Connections uint64         `json:"connections"`
	Pending     map[string]int `json:"pending"`
}

// Info - return some information about this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Connections = node.Count.Uint64()
	reply.Pending = map[string]int{
		"driver":      cache.Pool.DriverReserves.Size(),
		"distributor": cache.Pool.DistributorReserves.Size(),
		"warehouse":   cache.Pool.WarehouseReserves.Size(),
		"admin":       cache.Pool.AdminReserves.Size(),
	}

	return nil
}
