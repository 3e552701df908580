// Copyright 2026 The JSComp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jsdebug holds the debug configuration read from JSCOMP_DEBUG.
package jsdebug

import (
	"sync"

	"jscomp.dev/go/internal/envflag"
)

// Flags holds the set of global JSCOMP_DEBUG flags. It is initialized by Init.
var Flags Config

// Config holds the JSCOMP_DEBUG flags.
//
// When adding a flag, update the environment help of cmd/jscomp as well.
type Config struct {
	// LogPasses enables debug level logging of every optimization pass.
	LogPasses bool

	// Strict verifies the consistency of the parent index after each pass
	// and panics on a mismatch.
	Strict bool

	// NoLookahead disables the look-ahead clinit pruner.
	NoLookahead bool
}

// Init initializes Flags. Note: this isn't named "init" because we
// don't always want it to be called (for example we don't want it to be
// called when running "jscomp help"), and also because we want the failure
// mode to be one of error not panic, which would be the only option if
// it was a top level init function.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	return envflag.Init(&Flags, "JSCOMP_DEBUG")
})
