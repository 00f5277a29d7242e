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

// Package leveldb implements the key-value store on top of LevelDB.
package leveldb

import (
	"errors"
	"sync"

	"github.com/nodeboot/nodeboot/kvdb"
	"github.com/nodeboot/nodeboot/log"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const (
	// minCache is the minimum amount of memory in megabytes to allocate to leveldb
	// read and write caching, split half and half.
	minCache = 16

	// minHandles is the minimum number of files handles to allocate to the open
	// database files.
	minHandles = 16
)

// Database is a persistent key-value store backed by LevelDB.
type Database struct {
	fn string
	db *leveldb.DB

	closeOnce sync.Once
}

// New returns a wrapped LevelDB object. Cache is given in megabytes.
func New(file string, cache int, handles int, readonly bool) (*Database, error) {
	if cache < minCache {
		cache = minCache
	}
	if handles < minHandles {
		handles = minHandles
	}
	options := &opt.Options{
		Filter:                 nil,
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB, // Two of these are used internally
		ReadOnly:               readonly,
		DisableSeeksCompaction: true,
	}
	log.New("database", file).Info("Allocated cache and file handles", "cache", cache, "handles", handles, "readonly", readonly)

	db, err := leveldb.OpenFile(file, options)
	if _, corrupted := err.(*lerrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, err
	}
	return &Database{fn: file, db: db}, nil
}

// Close stops the database, flushing any pending data to disk.
func (db *Database) Close() error {
	var err error
	db.closeOnce.Do(func() { err = db.db.Close() })
	return err
}

// Has retrieves if a key is present in the key-value store.
func (db *Database) Has(key []byte) (bool, error) {
	return db.db.Has(key, nil)
}

// Get retrieves the given key if it's present in the key-value store.
func (db *Database) Get(key []byte) ([]byte, error) {
	dat, err := db.db.Get(key, nil)
	return dat, translate(err)
}

// Put inserts the given value into the key-value store.
func (db *Database) Put(key []byte, value []byte) error {
	return translate(db.db.Put(key, value, nil))
}

// Delete removes the key from the key-value store.
func (db *Database) Delete(key []byte) error {
	return translate(db.db.Delete(key, nil))
}

// Path returns the path to the database directory.
func (db *Database) Path() string {
	return db.fn
}

func translate(err error) error {
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return kvdb.ErrNotFound
	case errors.Is(err, leveldb.ErrClosed):
		return kvdb.ErrClosed
	}
	return err
}
