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
	"github.com/nodeboot/nodeboot/internal/appdirs"
)

const (
	// NodeNameMaxLength bounds generated and accepted node names. Names must be
	// strictly shorter.
	NodeNameMaxLength = 32

	// DefaultNetworkConfigPath is the network sub directory of the config dir.
	DefaultNetworkConfigPath = "network"

	DefaultDatabaseCache       = 128 // Megabytes of database cache
	DefaultDatabaseHandles     = 512 // File handles held open by the database
	DefaultDatabasePath        = "db"
	DefaultMaxRuntimeInstances = 8
	DefaultKeepBlocks          = 256 // Blocks of state kept by non-archive nodes

	// DevChainID is the chain loaded by development nodes unless another
	// one is selected.
	DevChainID = "dev"

	// DefaultDevKeySeed is the development account inserted into dev nodes.
	DefaultDevKeySeed = "//Alice"

	chainsDir = "chains"
)

// DefaultTransactionPool holds the transaction queue limits.
var DefaultTransactionPool = TransactionPoolOptions{
	Ready:  TransactionPoolLimit{Count: 8192, TotalBytes: 20 * 1024 * 1024},
	Future: TransactionPoolLimit{Count: 512, TotalBytes: 1 * 1024 * 1024},
}

// DefaultExecutionStrategies is used outside of development mode.
var DefaultExecutionStrategies = ExecutionStrategies{
	Syncing:           ExecNativeElseWasm,
	Importing:         ExecNativeElseWasm,
	BlockConstruction: ExecAlwaysWasm,
	OffchainWorker:    ExecNativeWhenPossible,
	Other:             ExecNativeElseWasm,
}

// DevExecutionStrategies runs everything natively.
var DevExecutionStrategies = ExecutionStrategies{
	Syncing:           ExecNative,
	Importing:         ExecNative,
	BlockConstruction: ExecNative,
	OffchainWorker:    ExecNative,
	Other:             ExecNative,
}

// PlatformDirs looks up the application data root of the host platform.
type PlatformDirs func(app appdirs.AppInfo) (string, error)

// DefaultPlatformDirs is the lookup used when a Resolver has none set.
var DefaultPlatformDirs PlatformDirs = appdirs.DataDir
