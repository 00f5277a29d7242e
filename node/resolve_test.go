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
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nodeboot/nodeboot/chainspec"
	"github.com/nodeboot/nodeboot/internal/appdirs"
	"github.com/nodeboot/nodeboot/log"
	"github.com/nodeboot/nodeboot/p2p"
	"github.com/nodeboot/nodeboot/rpc"
	"github.com/nodeboot/nodeboot/telemetry"
	"github.com/nodeboot/nodeboot/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testProgram struct {
	specs map[string]chainspec.ChainSpec
}

func newTestProgram() *testProgram {
	return &testProgram{specs: map[string]chainspec.ChainSpec{
		"testnet": chainspec.New("testnet", "Test Net", chainspec.Live, telemetry.Endpoints{
			{URL: "wss://telemetry.example.org/submit", Verbosity: 0},
		}),
		"dev": chainspec.New("dev", "Development", chainspec.Development, nil),
	}}
}

func (*testProgram) ImplName() string       { return "nodeboot" }
func (*testProgram) ImplVersion() string    { return "1.2.3" }
func (*testProgram) ExecutableName() string { return "nodeboot" }
func (*testProgram) Author() string         { return "nodeboot-authors" }

func (p *testProgram) LoadSpec(id string) (chainspec.ChainSpec, error) {
	if id == "" {
		id = "testnet"
	}
	spec, ok := p.specs[id]
	if !ok {
		return nil, fmt.Errorf("unknown chain %q", id)
	}
	return spec, nil
}

func ptr[T any](v T) *T { return &v }

func newTestResolver(dirs PlatformDirs) *Resolver {
	return &Resolver{
		Program: newTestProgram(),
		Dirs:    dirs,
		Logger:  log.New(),
	}
}

func fixedRoot(root string) PlatformDirs {
	return func(appdirs.AppInfo) (string, error) { return root, nil }
}

func TestResolveScenario(t *testing.T) {
	base := filepath.Join("/data", "node1")
	cfg, err := newTestResolver(nil).Resolve(&Overrides{Chain: ptr("testnet"), BasePath: ptr(base)}, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "chains", "testnet", "network"), cfg.Network.ConfigDir)
	assert.Equal(t, filepath.Join(base, "chains", "testnet"), cfg.Database.Root)
	assert.Equal(t, filepath.Join(base, "chains", "testnet", "db"), cfg.Database.Path)
	assert.Equal(t, 128, cfg.Database.CacheSize)
	assert.Equal(t, Directories{
		Base:    base,
		Config:  filepath.Join(base, "chains", "testnet"),
		Network: filepath.Join(base, "chains", "testnet", "network"),
	}, cfg.Dirs)
}

func TestResolveCacheSizePassedThrough(t *testing.T) {
	cfg, err := newTestResolver(fixedRoot(t.TempDir())).Resolve(&Overrides{DatabaseCacheSize: ptr(256)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Database.CacheSize)
}

func TestResolveDefaults(t *testing.T) {
	root := t.TempDir()
	for _, src := range []*Overrides{nil, {}} {
		cfg, err := newTestResolver(fixedRoot(root)).Resolve(src, nil)
		require.NoError(t, err)

		assert.Equal(t, "nodeboot", cfg.ImplName)
		assert.Equal(t, "1.2.3", cfg.ImplVersion)
		assert.Equal(t, RoleFull, cfg.Roles)
		assert.Equal(t, DefaultTransactionPool, cfg.TransactionPool)
		assert.Equal(t, KeystoreConfig{}, cfg.Keystore)
		assert.True(t, cfg.Keystore.InMemory())
		assert.Equal(t, DatabaseConfig{
			Root:      filepath.Join(root, "chains", "testnet"),
			Path:      filepath.Join(root, "chains", "testnet", "db"),
			CacheSize: DefaultDatabaseCache,
			Handles:   DefaultDatabaseHandles,
		}, cfg.Database)
		assert.Zero(t, cfg.StateCacheSize)
		assert.Nil(t, cfg.StateCacheChildRatio)
		assert.Equal(t, KeepBlocks(DefaultKeepBlocks), cfg.Pruning)
		assert.Equal(t, WasmInterpreted, cfg.WasmMethod)
		assert.Equal(t, DefaultExecutionStrategies, cfg.ExecutionStrategies)
		assert.Empty(t, cfg.RPCHTTP)
		assert.Empty(t, cfg.RPCWS)
		assert.Zero(t, cfg.RPCWSMaxConnections)
		assert.Equal(t, rpc.AllowOrigins(rpc.DefaultCorsOrigins...), cfg.RPCCors)
		assert.Nil(t, cfg.Prometheus)
		assert.Equal(t, telemetry.Endpoints{{URL: "wss://telemetry.example.org/submit"}}, cfg.TelemetryEndpoints)
		assert.Nil(t, cfg.TelemetryExternalTransport)
		assert.Nil(t, cfg.DefaultHeapPages)
		assert.False(t, cfg.OffchainWorker)
		assert.False(t, cfg.SentryMode)
		assert.False(t, cfg.ForceAuthoring)
		assert.False(t, cfg.DisableGrandpa)
		assert.Empty(t, cfg.DevKeySeed)
		assert.Empty(t, cfg.TracingTargets)
		assert.Equal(t, tracing.ReceiverLog, cfg.TracingReceiver)
		assert.Equal(t, "testnet", cfg.ChainSpec.ID())
		assert.Equal(t, DefaultMaxRuntimeInstances, cfg.MaxRuntimeInstances)

		net := cfg.Network
		assert.Equal(t, "nodeboot/v1.2.3", net.ClientVersion)
		assert.Less(t, len(net.NodeName), NodeNameMaxLength)
		assert.Equal(t, p2p.DefaultNodeKey(cfg.Dirs.Network), net.NodeKey)
		assert.Equal(t, p2p.DefaultInPeers, net.InPeers)
		assert.Equal(t, p2p.DefaultOutPeers, net.OutPeers)
		assert.Equal(t, p2p.AcceptNonReserved, net.NonReservedMode)
		assert.False(t, net.Transport.EnableMDNS)
	}
}

func TestResolveDev(t *testing.T) {
	cfg, err := newTestResolver(fixedRoot(t.TempDir())).Resolve(&Overrides{Dev: ptr(true)}, nil)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.ChainSpec.ID())
	assert.Equal(t, RoleAuthority, cfg.Roles)
	assert.Equal(t, ArchiveAll(), cfg.Pruning)
	assert.Equal(t, DevExecutionStrategies, cfg.ExecutionStrategies)
	assert.Equal(t, rpc.AllowAny(), cfg.RPCCors)
	assert.True(t, cfg.OffchainWorker)
	assert.Equal(t, DefaultDevKeySeed, cfg.DevKeySeed)
	assert.True(t, cfg.Network.Transport.EnableMDNS)
	assert.Nil(t, cfg.TelemetryEndpoints)
}

func TestResolveOverrides(t *testing.T) {
	strategy := ExecAlwaysWasm
	receiver := tracing.ReceiverTelemetry
	src := &Overrides{
		BasePath:            ptr(t.TempDir()),
		Roles:               ptr(RoleFull | RoleAuthority),
		NodeName:            ptr("alice"),
		NodeKeyHex:          ptr("00"),
		ReservedOnly:        ptr(true),
		InPeers:             ptr(5),
		BootNodes:           []string{"/dns/boot.example/tcp/30333"},
		KeystorePath:        ptr("keys"),
		Pruning:             ptr(KeepBlocks(1000)),
		ExecutionStrategy:   &strategy,
		RPCHTTP:             ptr("127.0.0.1:9933"),
		RPCCors:             []string{"https://app.example"},
		PrometheusAddr:      ptr("127.0.0.1:9615"),
		NoTelemetry:         ptr(true),
		DefaultHeapPages:    ptr(uint64(64)),
		OffchainWorker:      ptr(false),
		TracingTargets:      ptr("wasm_tracing=trace"),
		TracingReceiver:     &receiver,
		MaxRuntimeInstances: ptr(2),
	}
	var ran bool
	exec := TaskExecutor(func(ctx context.Context, task func(context.Context)) { ran = true })

	cfg, err := newTestResolver(nil).Resolve(src, exec)
	require.NoError(t, err)

	assert.False(t, ran, "executor must not be invoked")
	require.NotNil(t, cfg.TaskExecutor)
	assert.True(t, cfg.Roles.IsAuthority())
	assert.Equal(t, "alice", cfg.Network.NodeName)
	assert.Equal(t, p2p.InputSecret("00"), cfg.Network.NodeKey)
	assert.Equal(t, p2p.DenyNonReserved, cfg.Network.NonReservedMode)
	assert.Equal(t, 5, cfg.Network.InPeers)
	assert.Equal(t, []string{"/dns/boot.example/tcp/30333"}, cfg.Network.BootNodes)
	assert.Equal(t, filepath.Join(cfg.Dirs.Config, "keys"), cfg.Keystore.Path)
	assert.Equal(t, KeepBlocks(1000), cfg.Pruning)
	assert.Equal(t, ExecutionStrategies{strategy, strategy, strategy, strategy, strategy}, cfg.ExecutionStrategies)
	assert.Equal(t, "127.0.0.1:9933", cfg.RPCHTTP)
	assert.True(t, cfg.RPCCors.Allows("https://app.example"))
	assert.False(t, cfg.RPCCors.Allows("http://localhost:3000"))
	require.NotNil(t, cfg.Prometheus)
	assert.Equal(t, "127.0.0.1:9615", cfg.Prometheus.Addr)
	assert.Nil(t, cfg.TelemetryEndpoints)
	assert.Equal(t, uint64(64), *cfg.DefaultHeapPages)
	assert.False(t, cfg.OffchainWorker)
	assert.Equal(t, "wasm_tracing=trace", cfg.TracingTargets)
	assert.Equal(t, tracing.ReceiverTelemetry, cfg.TracingReceiver)
	assert.Equal(t, 2, cfg.MaxRuntimeInstances)
}

func TestResolvePlatformDirFailure(t *testing.T) {
	failing := func(appdirs.AppInfo) (string, error) { return "", appdirs.ErrNoHome }

	_, err := newTestResolver(failing).Resolve(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDataDir)
	assert.ErrorIs(t, err, appdirs.ErrNoHome)

	var perr *PlatformDirError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "nodeboot", perr.App)

	// A supplied base path never consults the platform.
	_, err = newTestResolver(failing).Resolve(&Overrides{BasePath: ptr(t.TempDir())}, nil)
	require.NoError(t, err)
}

func TestResolveChainSpecFailure(t *testing.T) {
	_, err := newTestResolver(fixedRoot(t.TempDir())).Resolve(&Overrides{Chain: ptr("nope")}, nil)

	var rerr *ResolveError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "chain spec", rerr.Facet)
}

func TestResolveSuppliedChainSpec(t *testing.T) {
	spec := chainspec.New("custom", "Custom", chainspec.Local, nil)
	cfg, err := newTestResolver(fixedRoot(t.TempDir())).Resolve(&Overrides{ChainSpec: spec, Chain: ptr("nope")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.ChainSpec.ID())
	assert.Equal(t, "custom", filepath.Base(cfg.Dirs.Config))
}

func TestResolveDatabaseFailure(t *testing.T) {
	_, err := newTestResolver(fixedRoot(t.TempDir())).Resolve(&Overrides{DatabaseEngine: ptr("rocksdb")}, nil)

	var rerr *ResolveError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "database", rerr.Facet)
	assert.Contains(t, err.Error(), "rocksdb")
}

func TestResolveCreatesNoDirectories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "base")
	_, err := newTestResolver(nil).Resolve(&Overrides{BasePath: ptr(base)}, nil)
	require.NoError(t, err)
	assert.NoDirExists(t, base)
}

func TestResolveFunc(t *testing.T) {
	cfg, err := Resolve(newTestProgram(), &Overrides{BasePath: ptr(t.TempDir())}, nil)
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.ChainSpec.ID())
}

// sharedBootSpec hands out a view of its boot node array with spare capacity.
type sharedBootSpec struct {
	*chainspec.Spec
	boot []string
}

func (s *sharedBootSpec) BootNodes() []string { return s.boot[:1] }

func TestResolveBootNodesLeaveSpecIntact(t *testing.T) {
	spec := &sharedBootSpec{
		Spec: chainspec.New("shared", "Shared", chainspec.Live, nil),
		boot: []string{"spec-a", "spec-b"},
	}
	cfg, err := newTestResolver(fixedRoot(t.TempDir())).Resolve(&Overrides{
		ChainSpec: spec,
		BootNodes: []string{"user"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"spec-a", "user"}, cfg.Network.BootNodes)
	assert.Equal(t, []string{"spec-a", "spec-b"}, spec.boot)
}

func TestResolveRejectsUnsafeChainID(t *testing.T) {
	base := filepath.Join(t.TempDir(), "node1")
	for _, id := range []string{"", ".", "..", "../../etc", "a/b", "/abs"} {
		t.Run(fmt.Sprintf("%q", id), func(t *testing.T) {
			spec := chainspec.New(id, "Unsafe", chainspec.Live, nil)
			cfg, err := newTestResolver(nil).Resolve(&Overrides{ChainSpec: spec, BasePath: ptr(base)}, nil)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var rerr *ResolveError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, "chain spec", rerr.Facet)
		})
	}
}
