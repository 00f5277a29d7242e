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
	"path/filepath"
	"testing"

	"github.com/nodeboot/nodeboot/internal/appdirs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApp = appdirs.AppInfo{Name: "nodeboot", Author: "nodeboot-authors"}

func TestDeriveDirectoriesBasePath(t *testing.T) {
	called := false
	dirs, err := DeriveDirectories("/data/node1", "testnet", testApp, func(appdirs.AppInfo) (string, error) {
		called = true
		return "/unused", nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, Directories{
		Base:    "/data/node1",
		Config:  filepath.Join("/data/node1", "chains", "testnet"),
		Network: filepath.Join("/data/node1", "chains", "testnet", "network"),
	}, dirs)
}

func TestDeriveDirectoriesPlatformRoot(t *testing.T) {
	var got appdirs.AppInfo
	dirs, err := DeriveDirectories("", "dev", testApp, func(app appdirs.AppInfo) (string, error) {
		got = app
		return "/home/u/.local/share/nodeboot", nil
	})
	require.NoError(t, err)
	assert.Equal(t, testApp, got)
	assert.Equal(t, filepath.Join("/home/u/.local/share/nodeboot", "chains", "dev"), dirs.Config)
}

func TestDeriveDirectoriesPlatformFailure(t *testing.T) {
	for _, lookup := range []PlatformDirs{
		func(appdirs.AppInfo) (string, error) { return "", errors.New("boom") },
		func(appdirs.AppInfo) (string, error) { return "", nil },
	} {
		_, err := DeriveDirectories("", "dev", testApp, lookup)
		require.ErrorIs(t, err, ErrNoDataDir)
	}
}

func TestDirectoriesLock(t *testing.T) {
	dirs, err := DeriveDirectories(t.TempDir(), "testnet", testApp, nil)
	require.NoError(t, err)

	lock, err := dirs.Lock()
	require.NoError(t, err)
	assert.DirExists(t, dirs.Config)

	_, err = dirs.Lock()
	require.ErrorIs(t, err, ErrDatadirUsed)

	require.NoError(t, lock.Unlock())
	lock, err = dirs.Lock()
	require.NoError(t, err)
	require.NoError(t, lock.Unlock())
}

func TestDeriveDirectoriesRejectsChainID(t *testing.T) {
	for _, id := range []string{"", ".", "..", "../../etc", "a/b"} {
		_, err := DeriveDirectories("/data/node1", id, testApp, nil)
		assert.Error(t, err, "chain id %q", id)
	}
	dirs, err := DeriveDirectories("/data/node1", "my-chain.v2", testApp, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/node1", "chains", "my-chain.v2"), dirs.Config)
}
