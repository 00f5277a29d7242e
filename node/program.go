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
	"context"

	"github.com/nodeboot/nodeboot/chainspec"
)

// Program describes the binary a configuration is resolved for.
type Program interface {
	// ImplName is the implementation name, e.g. "nodeboot".
	ImplName() string

	// ImplVersion is the implementation version without leading "v".
	ImplVersion() string

	// ExecutableName is used as the application name for the platform data
	// directory.
	ExecutableName() string

	// Author is the vendor of the program.
	Author() string

	// LoadSpec returns the chain specification for id. An empty id selects
	// the program's default chain.
	LoadSpec(id string) (chainspec.ChainSpec, error)
}

// ClientID is the client version string announced on the network.
func ClientID(p Program) string {
	return p.ImplName() + "/v" + p.ImplVersion()
}

// TaskExecutor spawns background tasks of the node. It is carried by the
// configuration and never invoked during resolution.
type TaskExecutor func(ctx context.Context, task func(context.Context))
