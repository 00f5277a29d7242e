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

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TargetAttribute is the attribute under which Rehydrator stores the restored
// target of a forwarded span.
const TargetAttribute = "tracing.target"

// Rehydrate returns the real name and target of a span. Spans not named
// WasmTraceIdentifier are returned as is with an empty target. For forwarded
// spans ok is false when the reserved name field is missing.
func Rehydrate(name string, attrs []attribute.KeyValue) (realName, target string, ok bool) {
	if name != WasmTraceIdentifier {
		return name, "", true
	}
	realName = name
	for _, kv := range attrs {
		switch kv.Key {
		case WasmNameKey:
			realName, ok = kv.Value.AsString(), true
		case WasmTargetKey:
			target = kv.Value.AsString()
		}
	}
	return realName, target, ok
}

// Rehydrator is an SDK span processor renaming forwarded sandbox spans. It has
// to be registered before any exporting processor.
type Rehydrator struct{}

func (Rehydrator) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if s.Name() != WasmTraceIdentifier {
		return
	}
	name, target, ok := Rehydrate(s.Name(), s.Attributes())
	if !ok {
		return
	}
	s.SetName(name)
	if target != "" {
		s.SetAttributes(attribute.String(TargetAttribute, target))
	}
}

func (Rehydrator) OnEnd(sdktrace.ReadOnlySpan)        {}
func (Rehydrator) Shutdown(context.Context) error   { return nil }
func (Rehydrator) ForceFlush(context.Context) error { return nil }
