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

/*
Package node resolves the configuration a node process is bootstrapped with.

The caller describes the running binary with a Program and supplies a sparse set of
Overrides. Resolve turns them into a Config in which every facet holds a concrete value:
anything not supplied falls back to the default documented on the matching Overrides
method. Overrides may come from code, from a TOML file (LoadOverrides) or from the
environment (OverridesFromEnv), and can be layered with Merge.

# Resolution Order

Facets depend on each other and are resolved in this order:

	chain spec, dev flag
	        │
	        ▼
	directories ◀──── platform data root (only without a base path)
	        │
	        ▼
	client id, database cache size
	        │
	        ▼
	node key ──▶ roles ──▶ max runtime instances
	        │
	        ▼
	network, keystore, database, pruning, execution strategies,
	RPC CORS, telemetry, offchain worker, dev key seed, ...

Only the chain spec, the platform data root and the database settings can fail. Their
failures are returned as *ResolveError and *PlatformDirError. Resolution performs no I/O
besides the platform lookup and never starts a service: the TaskExecutor is stored, not
called.

# Data Directory

All file-system resources of a node live below the base path, one config directory per
chain. For base path /data/node1 and chain "testnet":

	/data/node1/
		chains/
			testnet/               -- config directory, Directories.Config
				LOCK               -- held by Directories.Lock while the node runs
				db/                -- key-value database (leveldb or pebble)
				keystore/          -- keys, when a keystore path is configured
				network/           -- network state, Directories.Network
					secret_secp256k1   -- hex encoded node key

Without a base path the platform's application data root is used, e.g.
~/.local/share/<executable name> on Linux.
*/
package node
