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
	"fmt"

	"github.com/nodeboot/nodeboot/kvdb"
	"github.com/nodeboot/nodeboot/kvdb/leveldb"
	"github.com/nodeboot/nodeboot/kvdb/memorydb"
	"github.com/nodeboot/nodeboot/kvdb/pebble"
	"github.com/nodeboot/nodeboot/log"
)

// DatabaseConfig holds the settings the node database is opened with.
type DatabaseConfig struct {
	// Engine is "leveldb", "pebble" or "memory". Empty means whatever
	// exists, defaulting to pebble for a fresh database.
	Engine string

	Root      string // Config directory the database belongs to
	Path      string // Database directory, <Root>/db by default
	CacheSize int    // Megabytes of cache
	Handles   int    // Number of files held open
}

func (c DatabaseConfig) validate() error {
	if err := validEngine(c.Engine); err != nil {
		return err
	}
	if c.Engine != kvdb.EngineMemory && c.Path == "" {
		return fmt.Errorf("no path for %q database", c.Engine)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("negative database cache size %d", c.CacheSize)
	}
	return nil
}

// OpenDatabase opens the key-value store described by cfg. When an engine
// is given it must match the one of an existing database.
func OpenDatabase(cfg DatabaseConfig, readonly bool) (kvdb.KeyValueStore, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Engine == kvdb.EngineMemory {
		log.Info("Using in-memory database")
		return memorydb.New(), nil
	}
	existing := kvdb.PreexistingEngine(cfg.Path)
	if len(existing) != 0 && len(cfg.Engine) != 0 && cfg.Engine != existing {
		return nil, fmt.Errorf("db.engine choice was %v but found pre-existing %v database in specified data directory", cfg.Engine, existing)
	}
	if cfg.Engine == kvdb.EngineLeveldb || existing == kvdb.EngineLeveldb {
		log.Info("Using leveldb as the backing database")
		db, err := leveldb.New(cfg.Path, cfg.CacheSize, cfg.Handles, readonly)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	if cfg.Engine == kvdb.EnginePebble || existing == kvdb.EnginePebble {
		log.Info("Using pebble as the backing database")
	} else {
		log.Info("Defaulting to pebble as the backing database")
	}
	db, err := pebble.New(cfg.Path, cfg.CacheSize, cfg.Handles, readonly)
	if err != nil {
		return nil, err
	}
	return db, nil
}
