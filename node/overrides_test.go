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
	"os"
	"path/filepath"
	"testing"

	"github.com/nodeboot/nodeboot/telemetry"
	"github.com/nodeboot/nodeboot/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesMerge(t *testing.T) {
	file := &Overrides{Dev: ptr(true), DatabaseCacheSize: ptr(64), BootNodes: []string{"a"}}
	env := &Overrides{Dev: ptr(false), RPCHTTP: ptr("127.0.0.1:1")}

	merged := file.Merge(env)
	assert.False(t, merged.IsDev())
	assert.Equal(t, 64, *merged.DatabaseCacheSize)
	assert.Equal(t, "127.0.0.1:1", *merged.RPCHTTP)
	assert.Equal(t, []string{"a"}, merged.BootNodes)

	// Inputs are left alone.
	assert.True(t, file.IsDev())
	assert.Nil(t, file.RPCHTTP)

	var none *Overrides
	assert.Equal(t, env, none.Merge(env))
	assert.Equal(t, file, file.Merge(nil))
}

func TestOverridesValidate(t *testing.T) {
	require.NoError(t, (*Overrides)(nil).Validate())
	require.NoError(t, (&Overrides{RPCHTTP: ptr("127.0.0.1:9933")}).Validate())

	tests := []*Overrides{
		{RPCWS: ptr("no-port")},
		{PrometheusAddr: ptr("127.0.0.1:99999")},
		{NodeName: ptr("this-node-name-is-far-too-long-to-use")},
		{DatabaseEngine: ptr("rocksdb")},
		{DatabaseCacheSize: ptr(-1)},
		{TelemetryEndpoints: telemetry.Endpoints{{URL: "ftp://x"}}},
	}
	for _, o := range tests {
		assert.Error(t, o.Validate())
	}
}

const testOverridesTOML = `
Chain = "testnet"
BasePath = "/data/node1"
DatabaseCacheSize = 256
Roles = "full|authority"
Pruning = "archive"
WasmMethod = "compiled"
TracingReceiver = "telemetry"
BootNodes = ["/dns/a/tcp/1", "/dns/b/tcp/2"]
TelemetryEndpoints = ["wss://telemetry.example.org/submit 3"]
`

func TestLoadOverrides(t *testing.T) {
	file := filepath.Join(t.TempDir(), "node.toml")
	require.NoError(t, os.WriteFile(file, []byte(testOverridesTOML), 0600))

	o, err := LoadOverrides(file)
	require.NoError(t, err)
	assert.Equal(t, "testnet", *o.Chain)
	assert.Equal(t, "/data/node1", *o.BasePath)
	assert.Equal(t, 256, *o.DatabaseCacheSize)
	assert.Equal(t, RoleFull|RoleAuthority, *o.Roles)
	assert.Equal(t, ArchiveAll(), *o.Pruning)
	assert.Equal(t, WasmCompiled, *o.WasmMethod)
	assert.Equal(t, tracing.ReceiverTelemetry, *o.TracingReceiver)
	assert.Equal(t, []string{"/dns/a/tcp/1", "/dns/b/tcp/2"}, o.BootNodes)
	assert.Equal(t, telemetry.Endpoints{{URL: "wss://telemetry.example.org/submit", Verbosity: 3}}, o.TelemetryEndpoints)
	assert.Nil(t, o.Dev)
}

func TestLoadOverridesUnknownField(t *testing.T) {
	file := filepath.Join(t.TempDir(), "node.toml")
	require.NoError(t, os.WriteFile(file, []byte("Bogus = 1\n"), 0600))

	_, err := LoadOverrides(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bogus")
}

func TestOverridesFromEnv(t *testing.T) {
	t.Setenv("NODEBOOT_CHAIN", "dev")
	t.Setenv("NODEBOOT_DEV", "true")
	t.Setenv("NODEBOOT_DATABASECACHESIZE", "512")
	t.Setenv("NODEBOOT_ROLES", "authority")
	t.Setenv("NODEBOOT_PRUNING", "1000")
	t.Setenv("NODEBOOT_EXECUTIONSTRATEGY", "native-else-wasm")
	t.Setenv("NODEBOOT_RESERVEDNODES", "/dns/a/tcp/1,/dns/b/tcp/2")

	o, err := OverridesFromEnv("nodeboot")
	require.NoError(t, err)
	assert.Equal(t, "dev", *o.Chain)
	assert.True(t, o.IsDev())
	assert.Equal(t, 512, *o.DatabaseCacheSize)
	assert.Equal(t, RoleAuthority, *o.Roles)
	assert.Equal(t, KeepBlocks(1000), *o.Pruning)
	assert.Equal(t, ExecNativeElseWasm, *o.ExecutionStrategy)
	assert.Equal(t, []string{"/dns/a/tcp/1", "/dns/b/tcp/2"}, o.ReservedNodes)
	assert.Nil(t, o.WasmMethod)
	assert.Nil(t, o.TracingReceiver)
	assert.Nil(t, o.BasePath)
}

func TestOverridesFromEnvInvalid(t *testing.T) {
	t.Setenv("NODEBOOT_PRUNING", "sometimes")
	_, err := OverridesFromEnv("nodeboot")
	require.Error(t, err)
}
