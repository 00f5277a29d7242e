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

package rpc

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/cors"
)

const (
	DefaultHTTPPort = 9933 // Default TCP port for the HTTP RPC server
	DefaultWSPort   = 9944 // Default TCP port for the websocket RPC server

	wsReadBuffer  = 1024
	wsWriteBuffer = 1024
)

// DefaultCorsOrigins are the origins allowed on non-development nodes when
// nothing else is configured.
var DefaultCorsOrigins = []string{
	"http://localhost:*",
	"http://127.0.0.1:*",
	"https://localhost:*",
	"https://127.0.0.1:*",
}

// Cors is the cross-origin policy of the RPC servers. Origins may contain a
// single '*' wildcard, e.g. "http://localhost:*".
type Cors struct {
	Any     bool     // every origin is accepted
	Origins []string // accepted origins when Any is false
}

// AllowAny returns a policy accepting every origin.
func AllowAny() Cors {
	return Cors{Any: true}
}

// AllowOrigins returns a policy accepting only the given origins. No
// arguments means no browser origin is accepted.
func AllowOrigins(origins ...string) Cors {
	return Cors{Origins: append([]string{}, origins...)}
}

// Allows reports whether a browser request from origin is accepted.
func (c Cors) Allows(origin string) bool {
	if c.Any {
		return true
	}
	for _, pattern := range c.Origins {
		if matchOrigin(pattern, origin) {
			return true
		}
	}
	return false
}

func matchOrigin(pattern, origin string) bool {
	pattern, origin = strings.ToLower(pattern), strings.ToLower(origin)
	if pattern == "*" {
		return true
	}
	prefix, suffix, wild := strings.Cut(pattern, "*")
	if !wild {
		return pattern == origin
	}
	return len(origin) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix)
}

// NewCorsHandler wraps srv with CORS headers for the policy.
func NewCorsHandler(c Cors, srv http.Handler) http.Handler {
	origins := c.Origins
	if c.Any {
		origins = []string{"*"}
	}
	// disable CORS support if user has not specified a custom CORS configuration
	if len(origins) == 0 {
		return srv
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		AllowedHeaders: []string{"*"},
		MaxAge:         600,
	}).Handler(srv)
}

// NewUpgrader returns a websocket upgrader enforcing the policy on the Origin
// header. Requests without an Origin do not come from a browser and are
// always accepted.
func NewUpgrader(c Cors) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  wsReadBuffer,
		WriteBufferSize: wsWriteBuffer,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || c.Allows(origin)
		},
	}
}

// ValidateEndpoint checks that addr is a "host:port" listen address.
func ValidateEndpoint(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return &net.AddrError{Err: "invalid port", Addr: addr}
	}
	return nil
}

// Endpoint joins host and port into a listen address.
func Endpoint(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
