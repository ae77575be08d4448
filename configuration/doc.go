// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is an ordinary Lua chunk that must return a table, so
// os.getenv, string functions and local variables can all be used
// to compute settings.  Extra values supplied by the caller are
// visible as globals before the chunk runs.
package configuration
