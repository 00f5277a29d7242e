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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nodeboot/nodeboot/chainspec"
	"github.com/nodeboot/nodeboot/kvdb"
	"github.com/nodeboot/nodeboot/metrics"
	"github.com/nodeboot/nodeboot/p2p"
	"github.com/nodeboot/nodeboot/rpc"
	"github.com/nodeboot/nodeboot/telemetry"
	"github.com/nodeboot/nodeboot/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config is the resolved configuration of a node. Every field holds a
// concrete value; optional facets use nil or the empty string for
// "disabled". A Config is built by Resolve and must not be modified
// afterwards.
type Config struct {
	// ImplName and ImplVersion identify the running implementation.
	ImplName    string
	ImplVersion string

	Roles Roles

	// TaskExecutor is handed to the services started from this config.
	TaskExecutor TaskExecutor

	TransactionPool TransactionPoolOptions
	Network         p2p.Config
	Keystore        KeystoreConfig
	Database        DatabaseConfig

	// StateCacheSize is the size of the internal state cache in bytes.
	StateCacheSize int

	// StateCacheChildRatio is the percentage of the state cache reserved for
	// child storage, nil for the runtime default.
	StateCacheChildRatio *int

	Pruning             PruningMode
	WasmMethod          WasmExecutionMethod
	ExecutionStrategies ExecutionStrategies

	// RPCHTTP and RPCWS are listen addresses, empty when disabled.
	RPCHTTP string
	RPCWS   string

	// RPCWSMaxConnections caps websocket clients, zero for unlimited.
	RPCWSMaxConnections int

	RPCCors rpc.Cors

	// Prometheus is nil when the metrics endpoint is disabled.
	Prometheus *metrics.PrometheusConfig

	TelemetryEndpoints         telemetry.Endpoints
	TelemetryExternalTransport telemetry.ExternalTransport

	// DefaultHeapPages is the heap size of the runtime in pages, nil for the
	// runtime default.
	DefaultHeapPages *uint64

	OffchainWorker bool

	// SentryMode acts as an authority but never actively participates.
	SentryMode     bool
	ForceAuthoring bool
	DisableGrandpa bool

	// DevKeySeed is the seed of the development key inserted into the
	// keystore, empty when unset.
	DevKeySeed string

	TracingTargets  string
	TracingReceiver tracing.Receiver

	ChainSpec chainspec.ChainSpec

	MaxRuntimeInstances int

	// Dirs are the directories derived for the selected chain.
	Dirs Directories
}

// OpenDatabase opens the configured key-value store.
func (c *Config) OpenDatabase() (kvdb.KeyValueStore, error) {
	return OpenDatabase(c.Database, false)
}

// InitTracing sets the sandbox propagation flag from the tracing targets,
// builds a tracer provider for the configured receiver and installs it as the
// process-wide spanner. Log receivers write to out. The telemetry receiver
// exports to the first telemetry endpoint, wss endpoints over https. The
// caller owns the provider and must shut it down; tracing.SetSpanner(nil)
// uninstalls it.
func (c *Config) InitTracing(ctx context.Context, out io.Writer) (*sdktrace.TracerProvider, error) {
	tracing.EnableForTargets(c.TracingTargets)

	pc := tracing.ProviderConfig{
		Receiver:    c.TracingReceiver,
		ServiceName: c.ImplName,
		Output:      out,
	}
	if len(c.TelemetryEndpoints) > 0 {
		pc.Endpoint = c.TelemetryEndpoints[0].URL
	}
	tp, err := tracing.NewTracerProvider(ctx, pc)
	if err != nil {
		return nil, err
	}
	tracing.SetSpanner(tracing.NewHostSpanner(tp))
	return tp, nil
}

// Roles is the set of roles a node plays.
type Roles uint8

const (
	RoleFull Roles = 1 << iota
	RoleLight
	RoleAuthority
)

var roleNames = []struct {
	role Roles
	name string
}{
	{RoleFull, "full"},
	{RoleLight, "light"},
	{RoleAuthority, "authority"},
}

// IsAuthority reports whether the node takes part in block production.
func (r Roles) IsAuthority() bool {
	return r&RoleAuthority != 0
}

func (r Roles) String() string {
	var names []string
	for _, rn := range roleNames {
		if r&rn.role != 0 {
			names = append(names, rn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

func (r Roles) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a "|" separated role list such as "full|authority".
func (r *Roles) UnmarshalText(text []byte) error {
	var roles Roles
outer:
	for _, part := range strings.Split(string(text), "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		for _, rn := range roleNames {
			if part == rn.name {
				roles |= rn.role
				continue outer
			}
		}
		return fmt.Errorf("unknown role %q", part)
	}
	*r = roles
	return nil
}

// TransactionPoolLimit bounds one queue of the transaction pool.
type TransactionPoolLimit struct {
	Count      int // Maximum number of transactions
	TotalBytes int // Maximum total size of the transactions
}

// TransactionPoolOptions holds the limits of the ready and future queues.
type TransactionPoolOptions struct {
	Ready  TransactionPoolLimit
	Future TransactionPoolLimit
}

// KeystoreConfig selects where keys are kept. An empty Path keeps them in
// memory.
type KeystoreConfig struct {
	Path     string
	Password string `toml:"-"`
}

// InMemory reports whether the keystore is not backed by the filesystem.
func (k KeystoreConfig) InMemory() bool {
	return k.Path == ""
}

// PruningKind selects how much state history is kept.
type PruningKind int

const (
	PruneKeepBlocks PruningKind = iota // Keep the state of the last KeepBlocks blocks
	PruneArchiveAll                    // Keep the state of all blocks
	PruneArchiveCanonical              // Keep the state of all canonical blocks
)

// PruningMode is the state pruning setting. Its text form is "archive",
// "archive-canonical" or the number of blocks to keep.
type PruningMode struct {
	Kind       PruningKind
	KeepBlocks uint32
}

// KeepBlocks returns a mode keeping the state of the last n blocks.
func KeepBlocks(n uint32) PruningMode {
	return PruningMode{Kind: PruneKeepBlocks, KeepBlocks: n}
}

// ArchiveAll returns a mode that never prunes.
func ArchiveAll() PruningMode {
	return PruningMode{Kind: PruneArchiveAll}
}

func (p PruningMode) IsArchive() bool {
	return p.Kind != PruneKeepBlocks
}

func (p PruningMode) String() string {
	switch p.Kind {
	case PruneArchiveAll:
		return "archive"
	case PruneArchiveCanonical:
		return "archive-canonical"
	default:
		return strconv.FormatUint(uint64(p.KeepBlocks), 10)
	}
}

func (p PruningMode) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PruningMode) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "archive":
		*p = ArchiveAll()
	case "archive-canonical":
		*p = PruningMode{Kind: PruneArchiveCanonical}
	default:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid pruning mode %q: expected archive, archive-canonical or a block count", s)
		}
		*p = KeepBlocks(uint32(n))
	}
	return nil
}

// WasmExecutionMethod selects how runtime code is executed.
type WasmExecutionMethod int

const (
	WasmInterpreted WasmExecutionMethod = iota
	WasmCompiled
)

func (m WasmExecutionMethod) String() string {
	switch m {
	case WasmInterpreted:
		return "interpreted"
	case WasmCompiled:
		return "compiled"
	default:
		return fmt.Sprintf("WasmExecutionMethod(%d)", int(m))
	}
}

func (m WasmExecutionMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *WasmExecutionMethod) UnmarshalText(text []byte) error {
	switch string(text) {
	case "interpreted":
		*m = WasmInterpreted
	case "compiled":
		*m = WasmCompiled
	default:
		return fmt.Errorf("unknown wasm execution method %q", text)
	}
	return nil
}

// ExecutionStrategy decides between the native and the wasm runtime.
type ExecutionStrategy int

const (
	ExecNative ExecutionStrategy = iota
	ExecAlwaysWasm
	ExecNativeWhenPossible
	ExecNativeElseWasm
)

var strategyNames = [...]string{
	ExecNative:             "native",
	ExecAlwaysWasm:         "wasm",
	ExecNativeWhenPossible: "native-when-possible",
	ExecNativeElseWasm:     "native-else-wasm",
}

func (s ExecutionStrategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("ExecutionStrategy(%d)", int(s))
}

func (s ExecutionStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ExecutionStrategy) UnmarshalText(text []byte) error {
	for i, name := range strategyNames {
		if name == string(text) {
			*s = ExecutionStrategy(i)
			return nil
		}
	}
	return fmt.Errorf("unknown execution strategy %q", text)
}

// ExecutionStrategies holds the strategy used in each execution context.
type ExecutionStrategies struct {
	Syncing           ExecutionStrategy
	Importing         ExecutionStrategy
	BlockConstruction ExecutionStrategy
	OffchainWorker    ExecutionStrategy
	Other             ExecutionStrategy
}
