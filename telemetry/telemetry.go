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

// Package telemetry describes where a node reports its telemetry.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MaxVerbosity is the highest verbosity an endpoint may request.
const MaxVerbosity = 9

// Endpoint is a telemetry server together with the verbosity of the messages
// sent to it.
type Endpoint struct {
	URL       string `json:"url"`
	Verbosity uint8  `json:"verbosity"`
}

func (e Endpoint) String() string {
	return e.URL + " " + strconv.Itoa(int(e.Verbosity))
}

// MarshalText encodes the endpoint as "<url> <verbosity>".
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (e *Endpoint) UnmarshalText(text []byte) error {
	ep, err := ParseEndpoint(string(text))
	if err != nil {
		return err
	}
	*e = ep
	return nil
}

// Endpoints is the ordered list of telemetry servers of a node.
type Endpoints []Endpoint

// ParseEndpoint parses "<url> <verbosity>", e.g. "wss://telemetry.example/submit 0".
// The verbosity may be omitted and then defaults to 0.
func ParseEndpoint(s string) (Endpoint, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Endpoint{}, fmt.Errorf("invalid telemetry endpoint %q, should be \"<url> <verbosity>\"", s)
	}
	ep := Endpoint{URL: fields[0]}
	if len(fields) == 2 {
		v, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil || v > MaxVerbosity {
			return Endpoint{}, fmt.Errorf("invalid telemetry verbosity %q, expected 0-%d", fields[1], MaxVerbosity)
		}
		ep.Verbosity = uint8(v)
	}
	if err := ep.Validate(); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}

// Validate checks that the endpoint is an absolute ws, wss, http or https URL.
func (e Endpoint) Validate() error {
	u, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("invalid telemetry url %q: %w", e.URL, err)
	}
	switch u.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return fmt.Errorf("invalid telemetry url %q: unsupported scheme %q", e.URL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid telemetry url %q: missing host", e.URL)
	}
	if e.Verbosity > MaxVerbosity {
		return fmt.Errorf("invalid telemetry verbosity %d, expected 0-%d", e.Verbosity, MaxVerbosity)
	}
	return nil
}

// Validate checks every endpoint of the list.
func (es Endpoints) Validate() error {
	for _, e := range es {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of the list, nil for a nil list.
func (es Endpoints) Clone() Endpoints {
	if es == nil {
		return nil
	}
	return append(Endpoints(nil), es...)
}

// ExternalTransport carries telemetry over a connection that the host
// environment establishes, for nodes that cannot dial out themselves.
type ExternalTransport interface {
	Dial(ctx context.Context, url string) (Conn, error)
}

// Conn is a message connection obtained from an ExternalTransport.
type Conn interface {
	Send(msg []byte) error
	Close() error
}
