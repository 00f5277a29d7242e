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

	"github.com/nodeboot/nodeboot/internal/appdirs"
	"github.com/nodeboot/nodeboot/log"
	"github.com/nodeboot/nodeboot/tracing"
)

// Resolver turns Overrides into a complete Config for a program.
type Resolver struct {
	Program Program

	// Dirs looks up the platform data root when no base path is supplied,
	// DefaultPlatformDirs if nil.
	Dirs PlatformDirs

	// Logger receives resolution progress, log.Root() if nil.
	Logger log.Logger
}

// Resolve builds the configuration of program from src using the default
// platform lookup and the root logger.
func Resolve(program Program, src *Overrides, exec TaskExecutor) (*Config, error) {
	return (&Resolver{Program: program}).Resolve(src, exec)
}

// Resolve runs the defaulting cascade. Facets are resolved in dependency
// order: chain spec and dev flag, directories, client id and cache size,
// node key, roles and runtime instances, then everything derived from them.
// Only the chain spec, the platform directory lookup and the database
// settings can fail. No directories are created.
func (r *Resolver) Resolve(src *Overrides, exec TaskExecutor) (*Config, error) {
	_, end := tracing.Enter(context.Background(), "resolve_configuration")
	defer end()

	logger := r.Logger
	if logger == nil {
		logger = log.Root()
	}
	p := r.Program

	isDev := src.IsDev()
	spec, err := src.LoadChainSpec(p, isDev)
	if err != nil {
		return nil, &ResolveError{Facet: "chain spec", Err: err}
	}
	if err := validChainID(spec.ID()); err != nil {
		return nil, &ResolveError{Facet: "chain spec", Err: err}
	}

	basePath, _ := src.Base()
	app := appdirs.AppInfo{Name: p.ExecutableName(), Author: p.Author()}
	dirs, err := DeriveDirectories(basePath, spec.ID(), app, r.Dirs)
	if err != nil {
		return nil, err
	}
	logger.Debug("Derived node directories", "base", dirs.Base, "config", dirs.Config, "network", dirs.Network)

	clientID := ClientID(p)
	cacheSize, ok := src.DatabaseCache()
	if !ok {
		cacheSize = DefaultDatabaseCache
	}
	nodeKey := src.NodeKey(dirs.Network)
	roles := src.NodeRoles(isDev)
	instances, ok := src.RuntimeInstances()
	if !ok {
		instances = DefaultMaxRuntimeInstances
	}

	nodeName := src.ResolveNodeName()
	if src == nil || src.NodeName == nil || *src.NodeName == "" {
		logger.Debug("Generated node name", "name", nodeName)
	}
	database, err := src.DatabaseConfig(dirs.Config, cacheSize)
	if err != nil {
		return nil, &ResolveError{Facet: "database", Err: err}
	}

	cfg := &Config{
		ImplName:                   p.ImplName(),
		ImplVersion:                p.ImplVersion(),
		Roles:                      roles,
		TaskExecutor:               exec,
		TransactionPool:            src.TransactionPool(),
		Network:                    src.NetworkConfig(spec, isDev, dirs.Network, clientID, nodeName, nodeKey),
		Keystore:                   src.KeystoreConfig(dirs.Config),
		Database:                   database,
		StateCacheSize:             src.StateCache(),
		StateCacheChildRatio:       src.StateCacheChild(),
		Pruning:                    src.PruningMode(isDev, roles),
		WasmMethod:                 src.WasmExecutionMethod(),
		ExecutionStrategies:        src.ExecutionStrategies(isDev),
		RPCHTTP:                    src.RPCHTTPAddr(),
		RPCWS:                      src.RPCWSAddr(),
		RPCWSMaxConnections:        src.RPCWSMaxConns(),
		RPCCors:                    src.RPCCorsPolicy(isDev),
		Prometheus:                 src.PrometheusConfig(spec.ID(), p.ImplName(), p.ImplVersion()),
		TelemetryEndpoints:         src.Telemetry(spec),
		TelemetryExternalTransport: src.TelemetryExternalTransport(),
		DefaultHeapPages:           src.HeapPages(),
		OffchainWorker:             src.OffchainWorkerEnabled(roles),
		SentryMode:                 src.IsSentry(),
		ForceAuthoring:             src.ForcesAuthoring(),
		DisableGrandpa:             src.GrandpaDisabled(),
		DevKeySeed:                 src.DevSeed(isDev),
		TracingTargets:             src.Tracing(),
		TracingReceiver:            src.TraceReceiver(),
		ChainSpec:                  spec,
		MaxRuntimeInstances:        instances,
		Dirs:                       dirs,
	}
	logger.Info("Resolved node configuration", "chain", spec.ID(), "name", nodeName, "roles", roles, "dev", isDev, "database", database.Path, "cache", cacheSize)
	return cfg, nil
}
