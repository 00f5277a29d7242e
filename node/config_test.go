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

package node

import (
	"bytes"
	"context"
	"testing"

	"github.com/nodeboot/nodeboot/telemetry"
	"github.com/nodeboot/nodeboot/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesText(t *testing.T) {
	var r Roles
	require.NoError(t, r.UnmarshalText([]byte("Full | authority")))
	assert.Equal(t, RoleFull|RoleAuthority, r)
	assert.Equal(t, "full|authority", r.String())
	assert.True(t, r.IsAuthority())
	assert.False(t, RoleLight.IsAuthority())
	assert.Equal(t, "none", Roles(0).String())
	assert.Error(t, r.UnmarshalText([]byte("miner")))
}

func TestPruningModeText(t *testing.T) {
	tests := []struct {
		text string
		mode PruningMode
	}{
		{"archive", ArchiveAll()},
		{"archive-canonical", PruningMode{Kind: PruneArchiveCanonical}},
		{"256", KeepBlocks(256)},
	}
	for _, tt := range tests {
		var m PruningMode
		require.NoError(t, m.UnmarshalText([]byte(tt.text)))
		assert.Equal(t, tt.mode, m)
		assert.Equal(t, tt.text, m.String())
	}
	var m PruningMode
	assert.Error(t, m.UnmarshalText([]byte("-1")))
	assert.False(t, KeepBlocks(1).IsArchive())
	assert.True(t, ArchiveAll().IsArchive())
}

func TestExecutionStrategyText(t *testing.T) {
	for _, s := range []ExecutionStrategy{ExecNative, ExecAlwaysWasm, ExecNativeWhenPossible, ExecNativeElseWasm} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var got ExecutionStrategy
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}
	var s ExecutionStrategy
	assert.Error(t, s.UnmarshalText([]byte("jit")))

	var m WasmExecutionMethod
	require.NoError(t, m.UnmarshalText([]byte("compiled")))
	assert.Equal(t, WasmCompiled, m)
}

func TestConfigInitTracing(t *testing.T) {
	cfg, err := newTestResolver(nil).Resolve(&Overrides{BasePath: ptr(t.TempDir())}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	tp, err := cfg.InitTracing(context.Background(), &out)
	require.NoError(t, err)
	t.Cleanup(func() { tracing.SetSpanner(nil) })

	// The provider is installed process-wide.
	tracing.Run(context.Background(), "startup", func(context.Context) {})
	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, out.String(), `"Name":"startup"`)
}

func TestConfigInitTracingTelemetryEndpoint(t *testing.T) {
	t.Cleanup(func() { tracing.SetSpanner(nil) })
	cfg, err := newTestResolver(nil).Resolve(&Overrides{
		BasePath:        ptr(t.TempDir()),
		TracingReceiver: ptr(tracing.ReceiverTelemetry),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "wss://telemetry.example.org/submit", cfg.TelemetryEndpoints[0].URL)

	tp, err := cfg.InitTracing(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, tp.Shutdown(context.Background()))

	cfg.TelemetryEndpoints = telemetry.Endpoints{{URL: "udp://telemetry.example.org:4000"}}
	_, err = cfg.InitTracing(context.Background(), nil)
	assert.ErrorContains(t, err, "unsupported trace endpoint scheme")
}
