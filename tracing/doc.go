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

/*
Package tracing provides scoped timing spans for node code.

Code is instrumented with Run, RunValue and Enter:

	tracing.Run(ctx, "import-block", func(ctx context.Context) {
		...
	})

	ctx, end := tracing.Enter(ctx, "validate")
	defer end()

Spans are produced by a Spanner. Host builds default to an OpenTelemetry backed
spanner; builds for sandboxed targets (js, wasip1) default to a no-op spanner.
Either way the wrapped code runs exactly once with unchanged results.

# Reserved identifiers

Code running inside an execution sandbox cannot name host spans directly. It
emits spans named WasmTraceIdentifier instead and records the real name and
target under the WasmNameKey and WasmTargetKey fields. Instrumented code must
not use either key for its own fields. Collectors rename such spans with
Rehydrate, or install Rehydrator on an OpenTelemetry SDK provider.
*/
package tracing
