// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "github.com/decred/slog"

// log is the package-level logger used by the stake package. It defaults
// to the disabled backend so importers that never call UseLogger still
// link and run without emitting anything.
var log = slog.Disabled

// UseLogger sets the package-wide logger used by the stake package. It is
// called once from the main package, the way every dcrd-lineage leaf
// package exposes its own UseLogger hook rather than importing a global
// logging singleton directly.
func UseLogger(logger slog.Logger) {
	log = logger
}
