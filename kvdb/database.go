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

// Package kvdb defines the key-value store a node database is opened as.
package kvdb

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

const (
	EnginePebble  = "pebble"
	EngineLeveldb = "leveldb"
	EngineMemory  = "memory"
)

var (
	// ErrNotFound is returned by Get for missing keys, whatever the engine.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned on access to a closed store.
	ErrClosed = errors.New("database closed")
)

// KeyValueReader wraps the Has and Get method of a backing data store.
type KeyValueReader interface {
	// Has retrieves if a key is present in the key-value data store.
	Has(key []byte) (bool, error)

	// Get retrieves the given key if it's present in the key-value data store.
	Get(key []byte) ([]byte, error)
}

// KeyValueWriter wraps the Put and Delete methods of a backing data store.
type KeyValueWriter interface {
	// Put inserts the given value into the key-value data store.
	Put(key []byte, value []byte) error

	// Delete removes the key from the key-value data store.
	Delete(key []byte) error
}

// KeyValueStore contains all the methods required to allow handling different
// key-value data stores backing the node database.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	io.Closer
}

// PreexistingEngine checks the given data directory whether a database is
// already instantiated at that location, and if so, returns its engine.
func PreexistingEngine(path string) string {
	if _, err := os.Stat(filepath.Join(path, "CURRENT")); err != nil {
		return "" // No pre-existing db
	}
	if matches, _ := filepath.Glob(filepath.Join(path, "OPTIONS*")); len(matches) > 0 {
		return EnginePebble
	}
	return EngineLeveldb
}
