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

/*
Package rpc holds the cross-origin policy of the RPC servers.

A Cors value decides which browser origins may talk to a node. NewCorsHandler applies it
to HTTP servers, answering preflight requests and setting the CORS headers, and
NewUpgrader applies it to websocket upgrades by checking the Origin header. Requests that
do not carry an Origin header never come from a browser and are always accepted by the
websocket upgrader.

Patterns may contain a single '*' wildcard:

	http://localhost:*     matches http://localhost:3000 and http://localhost:8080
	*                      matches every origin
*/
package rpc
