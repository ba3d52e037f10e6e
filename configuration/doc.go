// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the configuration file
//
// the configuration file is actually a Lua script so that it can
// compute local values rather than forcing them to be repeated
package configuration
