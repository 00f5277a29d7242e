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
	"path/filepath"
	"testing"

	"github.com/nodeboot/nodeboot/kvdb"
	"github.com/nodeboot/nodeboot/kvdb/leveldb"
	"github.com/nodeboot/nodeboot/kvdb/memorydb"
	"github.com/nodeboot/nodeboot/kvdb/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig(t *testing.T, engine string) DatabaseConfig {
	root := t.TempDir()
	return DatabaseConfig{
		Engine:    engine,
		Root:      root,
		Path:      filepath.Join(root, DefaultDatabasePath),
		CacheSize: 16,
		Handles:   16,
	}
}

func TestOpenDatabaseDefaultsToPebble(t *testing.T) {
	cfg := testDatabaseConfig(t, "")
	db, err := OpenDatabase(cfg, false)
	require.NoError(t, err)
	assert.IsType(t, &pebble.Database{}, db)
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())

	assert.Equal(t, kvdb.EnginePebble, kvdb.PreexistingEngine(cfg.Path))
}

func TestOpenDatabaseExistingEngineWins(t *testing.T) {
	cfg := testDatabaseConfig(t, kvdb.EngineLeveldb)
	db, err := OpenDatabase(cfg, false)
	require.NoError(t, err)
	assert.IsType(t, &leveldb.Database{}, db)
	require.NoError(t, db.Close())

	cfg.Engine = ""
	db, err = OpenDatabase(cfg, false)
	require.NoError(t, err)
	assert.IsType(t, &leveldb.Database{}, db)
	require.NoError(t, db.Close())

	cfg.Engine = kvdb.EnginePebble
	_, err = OpenDatabase(cfg, false)
	require.ErrorContains(t, err, "pre-existing leveldb")
}

func TestOpenDatabaseMemory(t *testing.T) {
	db, err := OpenDatabase(DatabaseConfig{Engine: kvdb.EngineMemory}, false)
	require.NoError(t, err)
	assert.IsType(t, &memorydb.Database{}, db)
	require.NoError(t, db.Close())
}

func TestOpenDatabaseUnknownEngine(t *testing.T) {
	_, err := OpenDatabase(testDatabaseConfig(t, "rocksdb"), false)
	require.ErrorContains(t, err, "unknown db.engine")
}

func TestConfigOpenDatabase(t *testing.T) {
	cfg, err := newTestResolver(nil).Resolve(&Overrides{BasePath: ptr(t.TempDir()), DatabaseEngine: ptr(kvdb.EngineLeveldb)}, nil)
	require.NoError(t, err)

	db, err := cfg.OpenDatabase()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	assert.DirExists(t, cfg.Database.Path)
}
