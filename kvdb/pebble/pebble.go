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

// Package pebble implements the key-value store on top of Pebble.
package pebble

import (
	"bytes"
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/nodeboot/nodeboot/kvdb"
	"github.com/nodeboot/nodeboot/log"
)

const (
	// minCache is the minimum amount of memory in megabytes to allocate to pebble
	// read and write caching, split half and half.
	minCache = 16

	// minHandles is the minimum number of files handles to allocate to the open
	// database files.
	minHandles = 16
)

// Database is a persistent key-value store based on the pebble storage engine.
type Database struct {
	fn string
	db *pebble.DB

	lock   sync.RWMutex
	closed bool

	writeOptions *pebble.WriteOptions
}

// New returns a wrapped pebble DB object. Cache is given in megabytes.
func New(file string, cache int, handles int, readonly bool) (*Database, error) {
	if cache < minCache {
		cache = minCache
	}
	if handles < minHandles {
		handles = minHandles
	}
	log.New("database", file).Info("Allocated cache and file handles", "cache", cache, "handles", handles, "readonly", readonly)

	// The memory table size is currently capped at maxMemTableSize-1 due to a
	// known bug in the pebble where maxMemTableSize is not recognized as a
	// valid size.
	memTableLimit := 2
	memTableSize := cache * 1024 * 1024 / 2 / memTableLimit

	c := pebble.NewCache(int64(cache * 1024 * 1024))
	defer c.Unref()

	opt := &pebble.Options{
		Cache:                       c,
		MaxOpenFiles:                handles,
		MemTableSize:                uint64(memTableSize),
		MemTableStopWritesThreshold: memTableLimit,
		ReadOnly:                    readonly,
	}
	db, err := pebble.Open(file, opt)
	if err != nil {
		return nil, err
	}
	return &Database{
		fn:           file,
		db:           db,
		writeOptions: pebble.NoSync,
	}, nil
}

// Close stops the database, flushing any pending data to disk.
func (d *Database) Close() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.db.Close()
}

// Has retrieves if a key is present in the key-value store.
func (d *Database) Has(key []byte) (bool, error) {
	_, err := d.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, kvdb.ErrNotFound):
		return false, nil
	}
	return false, err
}

// Get retrieves the given key if it's present in the key-value store.
func (d *Database) Get(key []byte) ([]byte, error) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return nil, kvdb.ErrClosed
	}
	dat, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, kvdb.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ret := bytes.Clone(dat)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Put inserts the given value into the key-value store.
func (d *Database) Put(key []byte, value []byte) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return kvdb.ErrClosed
	}
	return d.db.Set(key, value, d.writeOptions)
}

// Delete removes the key from the key-value store.
func (d *Database) Delete(key []byte) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return kvdb.ErrClosed
	}
	return d.db.Delete(key, d.writeOptions)
}

// Path returns the path to the database directory.
func (d *Database) Path() string {
	return d.fn
}
