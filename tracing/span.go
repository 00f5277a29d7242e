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
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
)

// Spanner creates spans. Implementations must not alter the behaviour of the
// code being instrumented.
type Spanner interface {
	// Start opens a span and returns the context carrying it together with
	// the function that ends it.
	Start(ctx context.Context, target, name string) (context.Context, func())
}

type spannerBox struct{ s Spanner }

var current atomic.Pointer[spannerBox]

func init() {
	current.Store(&spannerBox{defaultSpanner()})
}

// isNilSpanner reports whether s is nil or an interface holding a nil pointer.
func isNilSpanner(s Spanner) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// SetSpanner replaces the process-wide spanner. A nil spanner, typed or not,
// restores the build default.
func SetSpanner(s Spanner) {
	if isNilSpanner(s) {
		s = defaultSpanner()
	}
	current.Store(&spannerBox{s})
}

// Current returns the process-wide spanner.
func Current() Spanner {
	return current.Load().s
}

type spannerKey struct{}

// WithSpanner returns a context that routes spans started from it through s
// instead of the process-wide spanner. A nil s, typed or not, leaves the
// process-wide spanner in charge.
func WithSpanner(ctx context.Context, s Spanner) context.Context {
	return context.WithValue(ctx, spannerKey{}, s)
}

func spannerFrom(ctx context.Context) Spanner {
	if s, ok := ctx.Value(spannerKey{}).(Spanner); ok && !isNilSpanner(s) {
		return s
	}
	return Current()
}

// Enter opens a span named name, targeted at the calling package, and keeps it
// open until the returned function is called:
//
//	ctx, end := tracing.Enter(ctx, "resolve")
//	defer end()
func Enter(ctx context.Context, name string) (context.Context, func()) {
	s := spannerFrom(ctx)
	if _, ok := s.(NoopSpanner); ok {
		return ctx, func() {}
	}
	return s.Start(ctx, callerTarget(1), name)
}

// EnterTarget is like Enter with an explicit target.
func EnterTarget(ctx context.Context, target, name string) (context.Context, func()) {
	return spannerFrom(ctx).Start(ctx, target, name)
}

// Run executes fn inside a span named name. The span is ended however fn
// returns, panics included.
func Run(ctx context.Context, name string, fn func(ctx context.Context)) {
	ctx, end := enterAt(ctx, name, 2)
	defer end()
	fn(ctx)
}

// RunValue executes fn inside a span named name and returns its result.
func RunValue[T any](ctx context.Context, name string, fn func(ctx context.Context) T) T {
	ctx, end := enterAt(ctx, name, 2)
	defer end()
	return fn(ctx)
}

func enterAt(ctx context.Context, name string, skip int) (context.Context, func()) {
	s := spannerFrom(ctx)
	if _, ok := s.(NoopSpanner); ok {
		return ctx, func() {}
	}
	return s.Start(ctx, callerTarget(skip), name)
}

// callerTarget returns the import path of the package skip frames above the
// caller, e.g. "github.com/nodeboot/nodeboot/node".
func callerTarget(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return defaultTarget
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return defaultTarget
	}
	return packagePath(fn.Name())
}

const defaultTarget = "nodeboot"

func packagePath(funcName string) string {
	slash := strings.LastIndexByte(funcName, '/')
	if dot := strings.IndexByte(funcName[slash+1:], '.'); dot >= 0 {
		return funcName[:slash+1+dot]
	}
	return funcName
}
