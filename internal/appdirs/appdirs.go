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

// Package appdirs locates the per-user application data root of the host
// platform.
package appdirs

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
)

// ErrNoHome is returned when neither the environment nor the user database
// tell where the current user's home directory is.
var ErrNoHome = errors.New("cannot determine home directory")

// AppInfo names the application a data directory is looked up for.
type AppInfo struct {
	Name   string
	Author string
}

// DataDir returns the platform's application data root for app:
//
//	darwin:  ~/Library/Application Support/<name>
//	windows: %APPDATA%\<author>\<name>
//	others:  $XDG_DATA_HOME/<name>, falling back to ~/.local/share/<name>
func DataDir(app AppInfo) (string, error) {
	return dataDir(runtime.GOOS, os.Getenv, app)
}

func dataDir(goos string, getenv func(string) string, app AppInfo) (string, error) {
	if app.Name == "" {
		return "", errors.New("empty application name")
	}
	switch goos {
	case "windows":
		if appdata := getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, app.Author, app.Name), nil
		}
		home := homeDir(getenv)
		if home == "" {
			return "", ErrNoHome
		}
		return filepath.Join(home, "AppData", "Roaming", app.Author, app.Name), nil
	case "darwin", "ios":
		home := homeDir(getenv)
		if home == "" {
			return "", ErrNoHome
		}
		return filepath.Join(home, "Library", "Application Support", app.Name), nil
	default:
		if xdg := getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
			return filepath.Join(xdg, app.Name), nil
		}
		home := homeDir(getenv)
		if home == "" {
			return "", ErrNoHome
		}
		return filepath.Join(home, ".local", "share", app.Name), nil
	}
}

func homeDir(getenv func(string) string) string {
	if home := getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
