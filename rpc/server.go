// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/freightline/freightd/counter"
)

// Create - a server with all services registered
func Create(log *logger.L, version string, count *counter.Counter) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(NewDriver(log))
	_ = server.Register(NewDistributor(log))
	_ = server.Register(NewWarehouse(log))
	_ = server.Register(NewAdmin(log))
	_ = server.Register(NewRegistry(log))
	_ = server.Register(NewNode(log, version, count))

	return server
}
