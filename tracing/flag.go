// Copyright 2026 The nodeboot Authors
// This file is part of the nodeboot library.
//
// The nodeboot library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The nodeboot library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the nodeboot library. If not, see <http://www.gnu.org/licenses/>.

package tracing

import "sync/atomic"

// enabled signals whether traces should be propagated into sandboxed
// execution. It never gates span creation on the host.
var enabled atomic.Bool

// Enable switches sandbox trace propagation on for the rest of the process
// lifetime. It is meant to be called once during startup and reports whether
// this call flipped the flag.
func Enable() bool {
	return enabled.CompareAndSwap(false, true)
}

// Enabled reports whether sandbox trace propagation is on.
func Enabled() bool {
	return enabled.Load()
}

// EnableForTargets enables propagation if the target list (as accepted by
// ParseTargets) names WasmTraceIdentifier. It returns the flag value after the
// call.
func EnableForTargets(targets string) bool {
	for _, t := range ParseTargets(targets) {
		if t.Name == WasmTraceIdentifier {
			Enable()
			break
		}
	}
	return Enabled()
}
