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
	"syscall"
)

var (
	ErrDatadirUsed = errors.New("datadir already used by another process")

	// ErrNoDataDir is matched by every PlatformDirError.
	ErrNoDataDir = errors.New("no default data directory")

	datadirInUseErrnos = map[uint]bool{11: true, 32: true, 35: true}
)

func convertFileLockError(err error) error {
	if errno, ok := err.(syscall.Errno); ok && datadirInUseErrnos[uint(errno)] {
		return ErrDatadirUsed
	}
	return err
}

// ResolveError is returned by Resolve when a fallible facet cannot be
// resolved.
type ResolveError struct {
	Facet string // "chain spec" or "database"
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %v", e.Facet, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// PlatformDirError is returned when no base path was given and the platform
// cannot tell where application data lives.
type PlatformDirError struct {
	App string
	Err error
}

func (e *PlatformDirError) Error() string {
	return fmt.Sprintf("cannot determine data directory of %s: %v", e.App, e.Err)
}

func (e *PlatformDirError) Unwrap() error { return e.Err }

func (e *PlatformDirError) Is(target error) bool { return target == ErrNoDataDir }
