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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HostSpanner records spans through an OpenTelemetry tracer provider, using
// the span target as the instrumentation scope.
type HostSpanner struct {
	provider trace.TracerProvider // nil means the otel global provider
}

// NewHostSpanner creates a spanner on tp. A nil provider follows whatever
// otel.SetTracerProvider installs, at span time.
func NewHostSpanner(tp trace.TracerProvider) *HostSpanner {
	return &HostSpanner{provider: tp}
}

func (s *HostSpanner) Start(ctx context.Context, target, name string) (context.Context, func()) {
	ctx, span := tracerProvider(s.provider).Tracer(target).Start(ctx, name)
	return ctx, func() { span.End() }
}

// GuestSpanner is the spanner used on the sandbox side of the boundary. Every
// span is emitted under WasmTraceIdentifier with the real name and target in
// the reserved fields, to be restored by the host collector.
type GuestSpanner struct {
	provider trace.TracerProvider
}

// NewGuestSpanner creates a forwarding spanner on tp (nil for the otel global).
func NewGuestSpanner(tp trace.TracerProvider) *GuestSpanner {
	return &GuestSpanner{provider: tp}
}

func (s *GuestSpanner) Start(ctx context.Context, target, name string) (context.Context, func()) {
	ctx, span := tracerProvider(s.provider).Tracer(WasmTraceIdentifier).Start(ctx, WasmTraceIdentifier,
		trace.WithAttributes(
			attribute.String(WasmTargetKey, target),
			attribute.String(WasmNameKey, name),
		),
	)
	return ctx, func() { span.End() }
}

// ForSandbox picks the spanner to hand to sandboxed code: forwarding spans
// when propagation was enabled with Enable, nothing otherwise.
func ForSandbox(tp trace.TracerProvider) Spanner {
	if Enabled() {
		return NewGuestSpanner(tp)
	}
	return NoopSpanner{}
}

func tracerProvider(tp trace.TracerProvider) trace.TracerProvider {
	if tp == nil {
		return otel.GetTracerProvider()
	}
	return tp
}
