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
	"errors"
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/nodeboot/nodeboot/chainspec"
	"github.com/nodeboot/nodeboot/kvdb"
	"github.com/nodeboot/nodeboot/metrics"
	"github.com/nodeboot/nodeboot/p2p"
	"github.com/nodeboot/nodeboot/rpc"
	"github.com/nodeboot/nodeboot/telemetry"
	"github.com/nodeboot/nodeboot/tracing"
)

// Overrides are the options supplied by the caller. A nil field is "not
// supplied" and resolves to the default documented on the matching method. A
// nil *Overrides behaves like an empty one.
//
// Overrides can be decoded from TOML (LoadOverrides) and the environment
// (OverridesFromEnv), and layered with Merge.
type Overrides struct {
	Chain    *string // Chain id passed to Program.LoadSpec
	BasePath *string
	Dev      *bool

	// ChainSpec is used as is when set, bypassing Program.LoadSpec.
	ChainSpec chainspec.ChainSpec `toml:"-" ignored:"true"`

	Roles *Roles `ignored:"true"`

	TxPoolReadyCount  *int
	TxPoolReadyBytes  *int
	TxPoolFutureCount *int
	TxPoolFutureBytes *int

	NodeName    *string
	NodeKeyHex  *string
	NodeKeyFile *string

	ListenAddresses      []string
	PublicAddresses      []string
	BootNodes            []string
	ReservedNodes        []string
	ReservedOnly         *bool
	InPeers              *int
	OutPeers             *int
	NoMDNS               *bool
	AllowPrivateIPv4     *bool
	MaxParallelDownloads *int

	KeystorePath     *string
	KeystorePassword *string `toml:"-"`

	DatabaseEngine       *string
	DatabasePath         *string
	DatabaseCacheSize    *int
	DatabaseHandles      *int
	StateCacheSize       *int
	StateCacheChildRatio *int

	Pruning           *PruningMode         `ignored:"true"`
	WasmMethod        *WasmExecutionMethod `ignored:"true"`
	ExecutionStrategy *ExecutionStrategy   `ignored:"true"` // Applied to every context

	RPCHTTP             *string
	RPCWS               *string
	RPCWSMaxConnections *int
	RPCCors             []string // "all" allows any origin, an empty list disables CORS
	PrometheusAddr      *string

	TelemetryEndpoints telemetry.Endpoints
	NoTelemetry        *bool

	// TelemetryTransport is used instead of dialing the endpoints directly.
	TelemetryTransport telemetry.ExternalTransport `toml:"-" ignored:"true"`

	DefaultHeapPages    *uint64
	OffchainWorker      *bool
	SentryMode          *bool
	ForceAuthoring      *bool
	DisableGrandpa      *bool
	DevKeySeed          *string
	TracingTargets      *string
	TracingReceiver     *tracing.Receiver `ignored:"true"`
	MaxRuntimeInstances *int
}

// Base returns the caller supplied base path, if any.
func (o *Overrides) Base() (string, bool) {
	if o == nil || o.BasePath == nil || *o.BasePath == "" {
		return "", false
	}
	return *o.BasePath, true
}

// ChainID is the chain to load. Development nodes default to "dev", all
// others to the program default selected by the empty id.
func (o *Overrides) ChainID(isDev bool) string {
	if o != nil && o.Chain != nil {
		return *o.Chain
	}
	if isDev {
		return DevChainID
	}
	return ""
}

// LoadChainSpec returns the supplied chain spec or loads it through p.
func (o *Overrides) LoadChainSpec(p Program, isDev bool) (chainspec.ChainSpec, error) {
	if o != nil && o.ChainSpec != nil {
		return o.ChainSpec, nil
	}
	id := o.ChainID(isDev)
	spec, err := p.LoadSpec(id)
	if err == nil && spec == nil {
		err = fmt.Errorf("no chain spec for %q", id)
	}
	return spec, err
}

// IsDev reports whether the node runs in development mode. Default false.
func (o *Overrides) IsDev() bool {
	return o != nil && o.Dev != nil && *o.Dev
}

// NodeRoles returns the roles of the node. Development nodes default to
// authorities, all others to full nodes.
func (o *Overrides) NodeRoles(isDev bool) Roles {
	if o != nil && o.Roles != nil {
		return *o.Roles
	}
	if isDev {
		return RoleAuthority
	}
	return RoleFull
}

// TransactionPool returns the pool limits. Default DefaultTransactionPool.
func (o *Overrides) TransactionPool() TransactionPoolOptions {
	opts := DefaultTransactionPool
	if o == nil {
		return opts
	}
	setInt(&opts.Ready.Count, o.TxPoolReadyCount)
	setInt(&opts.Ready.TotalBytes, o.TxPoolReadyBytes)
	setInt(&opts.Future.Count, o.TxPoolFutureCount)
	setInt(&opts.Future.TotalBytes, o.TxPoolFutureBytes)
	return opts
}

// ResolveNodeName returns the supplied name or a freshly generated one.
func (o *Overrides) ResolveNodeName() string {
	if o != nil && o.NodeName != nil && *o.NodeName != "" {
		return *o.NodeName
	}
	return GenerateNodeName()
}

// NodeKey returns the node key descriptor. Default is the key file in the
// network config directory.
func (o *Overrides) NodeKey(netConfigDir string) p2p.NodeKeyConfig {
	switch {
	case o != nil && o.NodeKeyHex != nil:
		return p2p.InputSecret(*o.NodeKeyHex)
	case o != nil && o.NodeKeyFile != nil:
		return p2p.FileSecret(*o.NodeKeyFile)
	}
	return p2p.DefaultNodeKey(netConfigDir)
}

// NetworkConfig builds the network configuration. Boot nodes of the chain
// spec come first, followed by the supplied ones. Development nodes enable
// mDNS discovery unless disabled explicitly.
func (o *Overrides) NetworkConfig(spec chainspec.ChainSpec, isDev bool, netConfigDir, clientID, nodeName string, nodeKey p2p.NodeKeyConfig) p2p.Config {
	cfg := p2p.NewConfig(nodeName, clientID, nodeKey, netConfigDir)
	cfg.BootNodes = append([]string(nil), spec.BootNodes()...)
	cfg.Transport.EnableMDNS = isDev
	if o == nil {
		return cfg
	}
	cfg.ListenAddresses = append(cfg.ListenAddresses, o.ListenAddresses...)
	cfg.PublicAddresses = append(cfg.PublicAddresses, o.PublicAddresses...)
	cfg.BootNodes = append(cfg.BootNodes, o.BootNodes...)
	cfg.ReservedNodes = append(cfg.ReservedNodes, o.ReservedNodes...)
	if o.ReservedOnly != nil && *o.ReservedOnly {
		cfg.NonReservedMode = p2p.DenyNonReserved
	}
	setInt(&cfg.InPeers, o.InPeers)
	setInt(&cfg.OutPeers, o.OutPeers)
	setInt(&cfg.MaxParallelDownloads, o.MaxParallelDownloads)
	if o.NoMDNS != nil {
		cfg.Transport.EnableMDNS = !*o.NoMDNS
	}
	if o.AllowPrivateIPv4 != nil {
		cfg.Transport.AllowPrivateIPv4 = *o.AllowPrivateIPv4
	}
	return cfg
}

// KeystoreConfig returns the keystore location. Default in memory. A
// relative path is taken relative to the config directory.
func (o *Overrides) KeystoreConfig(configDir string) KeystoreConfig {
	var ks KeystoreConfig
	if o == nil {
		return ks
	}
	if o.KeystorePath != nil && *o.KeystorePath != "" {
		ks.Path = *o.KeystorePath
		if !filepath.IsAbs(ks.Path) {
			ks.Path = filepath.Join(configDir, ks.Path)
		}
	}
	if o.KeystorePassword != nil {
		ks.Password = *o.KeystorePassword
	}
	return ks
}

// DatabaseCache returns the supplied cache size in megabytes, if any.
func (o *Overrides) DatabaseCache() (int, bool) {
	if o == nil || o.DatabaseCacheSize == nil {
		return 0, false
	}
	return *o.DatabaseCacheSize, true
}

// DatabaseConfig returns the database settings rooted at configDir. The
// database lives in <configDir>/db unless a path is supplied.
func (o *Overrides) DatabaseConfig(configDir string, cacheSize int) (DatabaseConfig, error) {
	cfg := DatabaseConfig{
		Root:      configDir,
		Path:      filepath.Join(configDir, DefaultDatabasePath),
		CacheSize: cacheSize,
		Handles:   DefaultDatabaseHandles,
	}
	if o == nil {
		return cfg, nil
	}
	if o.DatabaseEngine != nil {
		cfg.Engine = *o.DatabaseEngine
	}
	if o.DatabasePath != nil && *o.DatabasePath != "" {
		cfg.Path = *o.DatabasePath
		if !filepath.IsAbs(cfg.Path) {
			cfg.Path = filepath.Join(configDir, cfg.Path)
		}
	}
	setInt(&cfg.Handles, o.DatabaseHandles)
	if err := cfg.validate(); err != nil {
		return DatabaseConfig{}, err
	}
	return cfg, nil
}

// StateCache returns the state cache size in bytes. Default 0.
func (o *Overrides) StateCache() int {
	if o == nil || o.StateCacheSize == nil {
		return 0
	}
	return *o.StateCacheSize
}

// StateCacheChild returns the child storage cache share. Default nil.
func (o *Overrides) StateCacheChild() *int {
	if o == nil || o.StateCacheChildRatio == nil {
		return nil
	}
	v := *o.StateCacheChildRatio
	return &v
}

// PruningMode returns the pruning setting. Authorities default to archive,
// every other node keeps DefaultKeepBlocks blocks of state.
func (o *Overrides) PruningMode(isDev bool, roles Roles) PruningMode {
	if o != nil && o.Pruning != nil {
		return *o.Pruning
	}
	if roles.IsAuthority() {
		return ArchiveAll()
	}
	return KeepBlocks(DefaultKeepBlocks)
}

// WasmExecutionMethod returns the wasm execution method. Default
// interpreted.
func (o *Overrides) WasmExecutionMethod() WasmExecutionMethod {
	if o == nil || o.WasmMethod == nil {
		return WasmInterpreted
	}
	return *o.WasmMethod
}

// ExecutionStrategies returns the per-context strategies. A supplied
// strategy applies to every context; otherwise development nodes run
// natively and all others use DefaultExecutionStrategies.
func (o *Overrides) ExecutionStrategies(isDev bool) ExecutionStrategies {
	if o != nil && o.ExecutionStrategy != nil {
		s := *o.ExecutionStrategy
		return ExecutionStrategies{s, s, s, s, s}
	}
	if isDev {
		return DevExecutionStrategies
	}
	return DefaultExecutionStrategies
}

// RPCHTTPAddr returns the HTTP RPC listen address. Default disabled.
func (o *Overrides) RPCHTTPAddr() string {
	if o == nil || o.RPCHTTP == nil {
		return ""
	}
	return *o.RPCHTTP
}

// RPCWSAddr returns the websocket RPC listen address. Default disabled.
func (o *Overrides) RPCWSAddr() string {
	if o == nil || o.RPCWS == nil {
		return ""
	}
	return *o.RPCWS
}

// RPCWSMaxConns returns the websocket connection cap. Default 0, unlimited.
func (o *Overrides) RPCWSMaxConns() int {
	if o == nil || o.RPCWSMaxConnections == nil {
		return 0
	}
	return *o.RPCWSMaxConnections
}

// RPCCorsPolicy returns the allowed RPC origins. Development nodes accept
// any origin, all others the local ones.
func (o *Overrides) RPCCorsPolicy(isDev bool) rpc.Cors {
	if o != nil && o.RPCCors != nil {
		for _, origin := range o.RPCCors {
			if origin == "all" || origin == "*" {
				return rpc.AllowAny()
			}
		}
		return rpc.AllowOrigins(o.RPCCors...)
	}
	if isDev {
		return rpc.AllowAny()
	}
	return rpc.AllowOrigins(rpc.DefaultCorsOrigins...)
}

// PrometheusConfig returns the metrics endpoint settings. Default disabled.
func (o *Overrides) PrometheusConfig(chainID, implName, implVersion string) *metrics.PrometheusConfig {
	if o == nil || o.PrometheusAddr == nil || *o.PrometheusAddr == "" {
		return nil
	}
	return metrics.NewPrometheusConfig(*o.PrometheusAddr, chainID, implName, implVersion)
}

// Telemetry returns the telemetry endpoints. Default the chain spec's.
func (o *Overrides) Telemetry(spec chainspec.ChainSpec) telemetry.Endpoints {
	if o != nil && o.NoTelemetry != nil && *o.NoTelemetry {
		return nil
	}
	if o != nil && len(o.TelemetryEndpoints) > 0 {
		return o.TelemetryEndpoints.Clone()
	}
	return spec.TelemetryEndpoints()
}

// TelemetryExternalTransport returns the supplied transport. Default nil.
func (o *Overrides) TelemetryExternalTransport() telemetry.ExternalTransport {
	if o == nil {
		return nil
	}
	return o.TelemetryTransport
}

// HeapPages returns the default runtime heap pages. Default nil.
func (o *Overrides) HeapPages() *uint64 {
	if o == nil || o.DefaultHeapPages == nil {
		return nil
	}
	v := *o.DefaultHeapPages
	return &v
}

// OffchainWorkerEnabled reports whether the offchain worker runs. Default
// enabled for authorities only.
func (o *Overrides) OffchainWorkerEnabled(roles Roles) bool {
	if o != nil && o.OffchainWorker != nil {
		return *o.OffchainWorker
	}
	return roles.IsAuthority()
}

// IsSentry reports whether sentry mode is on. Default false.
func (o *Overrides) IsSentry() bool {
	return o != nil && o.SentryMode != nil && *o.SentryMode
}

// ForcesAuthoring reports whether block authoring is forced. Default false.
func (o *Overrides) ForcesAuthoring() bool {
	return o != nil && o.ForceAuthoring != nil && *o.ForceAuthoring
}

// GrandpaDisabled reports whether finality voting is off. Default false.
func (o *Overrides) GrandpaDisabled() bool {
	return o != nil && o.DisableGrandpa != nil && *o.DisableGrandpa
}

// DevSeed returns the development key seed. Development nodes default to
// DefaultDevKeySeed, all others to none.
func (o *Overrides) DevSeed(isDev bool) string {
	if o != nil && o.DevKeySeed != nil {
		return *o.DevKeySeed
	}
	if isDev {
		return DefaultDevKeySeed
	}
	return ""
}

// Tracing returns the tracing targets. Default none.
func (o *Overrides) Tracing() string {
	if o == nil || o.TracingTargets == nil {
		return ""
	}
	return *o.TracingTargets
}

// TraceReceiver returns where spans are sent. Default tracing.ReceiverLog.
func (o *Overrides) TraceReceiver() tracing.Receiver {
	if o == nil || o.TracingReceiver == nil {
		return tracing.ReceiverLog
	}
	return *o.TracingReceiver
}

// RuntimeInstances returns the supplied maximum of runtime instances, if
// any.
func (o *Overrides) RuntimeInstances() (int, bool) {
	if o == nil || o.MaxRuntimeInstances == nil {
		return 0, false
	}
	return *o.MaxRuntimeInstances, true
}

// Merge returns a copy of o with every value supplied by other layered on
// top. Either side may be nil.
func (o *Overrides) Merge(other *Overrides) *Overrides {
	merged := new(Overrides)
	if o != nil {
		*merged = *o
	}
	if other == nil {
		return merged
	}
	dst, src := reflect.ValueOf(merged).Elem(), reflect.ValueOf(other).Elem()
	for i := 0; i < src.NumField(); i++ {
		if f := src.Field(i); !f.IsNil() {
			dst.Field(i).Set(f)
		}
	}
	return merged
}

// Validate checks the syntax of the supplied values.
func (o *Overrides) Validate() error {
	if o == nil {
		return nil
	}
	var errs []error
	if o.NodeName != nil && len([]rune(*o.NodeName)) >= NodeNameMaxLength {
		errs = append(errs, fmt.Errorf("node name %q is longer than %d characters", *o.NodeName, NodeNameMaxLength-1))
	}
	for _, f := range []struct {
		name string
		addr *string
	}{{"RPCHTTP", o.RPCHTTP}, {"RPCWS", o.RPCWS}, {"PrometheusAddr", o.PrometheusAddr}} {
		if f.addr != nil && *f.addr != "" {
			if err := rpc.ValidateEndpoint(*f.addr); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			}
		}
	}
	if err := o.TelemetryEndpoints.Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.DatabaseEngine != nil {
		if err := validEngine(*o.DatabaseEngine); err != nil {
			errs = append(errs, err)
		}
	}
	for _, f := range []struct {
		name string
		v    *int
	}{
		{"DatabaseCacheSize", o.DatabaseCacheSize},
		{"MaxRuntimeInstances", o.MaxRuntimeInstances},
		{"InPeers", o.InPeers},
		{"OutPeers", o.OutPeers},
	} {
		if f.v != nil && *f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", f.name))
		}
	}
	return errors.Join(errs...)
}

func validEngine(engine string) error {
	switch engine {
	case "", kvdb.EngineLeveldb, kvdb.EnginePebble, kvdb.EngineMemory:
		return nil
	}
	return fmt.Errorf("unknown db.engine %v", engine)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
