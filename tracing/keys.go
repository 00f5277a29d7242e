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

const (
	// WasmTargetKey is the reserved field carrying the real target of a
	// span emitted from inside a sandbox.
	WasmTargetKey = "target"

	// WasmNameKey is the reserved field carrying the real name of a span
	// emitted from inside a sandbox.
	WasmNameKey = "name"

	// WasmTraceIdentifier is the span name signalling that the actual name and
	// target live in the WasmNameKey and WasmTargetKey fields.
	WasmTraceIdentifier = "wasm_tracing"
)
