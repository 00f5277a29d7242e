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
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/nodeboot/nodeboot/internal/appdirs"
)

// Directories are the on-disk locations of a node.
type Directories struct {
	Base    string // Root holding the data of all chains
	Config  string // <Base>/chains/<chain id>
	Network string // <Config>/network
}

var errEmptyChainID = errors.New("empty chain id")

// validChainID checks that id can serve as a single directory name below
// the chains directory.
func validChainID(id string) error {
	switch {
	case id == "":
		return errEmptyChainID
	case id == "." || id == ".." || filepath.Base(id) != id || filepath.Clean(id) != id:
		return fmt.Errorf("chain id %q is not a single path element", id)
	}
	return nil
}

// DeriveDirectories computes the directories of chainID below basePath. When
// basePath is empty the platform data root of app is used instead, looked up
// via dirs (DefaultPlatformDirs if nil). Failure to find that root is
// reported as a *PlatformDirError. A chain id that is not a single path
// element is rejected.
func DeriveDirectories(basePath, chainID string, app appdirs.AppInfo, dirs PlatformDirs) (Directories, error) {
	if err := validChainID(chainID); err != nil {
		return Directories{}, err
	}
	if basePath == "" {
		if dirs == nil {
			dirs = DefaultPlatformDirs
		}
		root, err := dirs(app)
		if err == nil && root == "" {
			err = appdirs.ErrNoHome
		}
		if err != nil {
			return Directories{}, &PlatformDirError{App: app.Name, Err: err}
		}
		basePath = root
	}
	config := filepath.Join(basePath, chainsDir, chainID)
	return Directories{
		Base:    basePath,
		Config:  config,
		Network: filepath.Join(config, DefaultNetworkConfigPath),
	}, nil
}

// Lock creates the config directory and takes an exclusive lock on it to
// prevent concurrent use by another instance. The returned lock must be
// released with Unlock.
func (d Directories) Lock() (*flock.Flock, error) {
	if err := os.MkdirAll(d.Config, 0700); err != nil {
		return nil, err
	}
	lock := flock.New(filepath.Join(d.Config, "LOCK"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, convertFileLockError(err)
	}
	if !locked {
		return nil, ErrDatadirUsed
	}
	return lock, nil
}
