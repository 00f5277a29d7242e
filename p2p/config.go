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

package p2p

import (
	"fmt"
)

const (
	DefaultInPeers              = 25 // Default number of inbound peer slots
	DefaultOutPeers             = 75 // Default number of outbound peer slots
	DefaultMaxParallelDownloads = 5  // Default number of peers a block is requested from at once
)

// NonReservedMode decides whether peers outside the reserved set may connect.
type NonReservedMode int

const (
	AcceptNonReserved NonReservedMode = iota
	DenyNonReserved
)

func (m NonReservedMode) String() string {
	switch m {
	case AcceptNonReserved:
		return "accept"
	case DenyNonReserved:
		return "deny"
	default:
		return fmt.Sprintf("NonReservedMode(%d)", int(m))
	}
}

func (m NonReservedMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *NonReservedMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "accept":
		*m = AcceptNonReserved
	case "deny":
		*m = DenyNonReserved
	default:
		return fmt.Errorf("unknown non-reserved mode %q", text)
	}
	return nil
}

// TransportConfig selects the transports the network layer may use.
type TransportConfig struct {
	// EnableMDNS turns on local network discovery.
	EnableMDNS bool

	// AllowPrivateIPv4 allows dialing private addresses learned from
	// discovery. Reserved and bootstrap addresses are always dialed.
	AllowPrivateIPv4 bool
}

// Config holds network options of a node.
type Config struct {
	// NodeName is the display name announced to telemetry and peers.
	NodeName string

	// ClientVersion identifies the implementation, e.g. "nodeboot/v1.2.0".
	ClientVersion string

	// NodeKey is the descriptor of the node's identity key.
	NodeKey NodeKeyConfig

	// ConfigDir is the directory network state such as the key is kept in.
	ConfigDir string

	// ListenAddresses are the multiaddresses to listen on.
	ListenAddresses []string

	// PublicAddresses are announced to peers in addition to observed ones.
	PublicAddresses []string

	// BootNodes are dialed on startup to join the network.
	BootNodes []string

	// ReservedNodes are always kept connected.
	ReservedNodes []string

	NonReservedMode NonReservedMode

	// InPeers and OutPeers bound the non-reserved slots.
	InPeers  int
	OutPeers int

	Transport TransportConfig

	// MaxParallelDownloads is the number of peers a block is requested from.
	MaxParallelDownloads int
}

// NewConfig returns a network configuration with default limits and no
// addresses.
func NewConfig(nodeName, clientVersion string, nodeKey NodeKeyConfig, configDir string) Config {
	return Config{
		NodeName:             nodeName,
		ClientVersion:        clientVersion,
		NodeKey:              nodeKey,
		ConfigDir:            configDir,
		NonReservedMode:      AcceptNonReserved,
		InPeers:              DefaultInPeers,
		OutPeers:             DefaultOutPeers,
		Transport:            TransportConfig{AllowPrivateIPv4: true},
		MaxParallelDownloads: DefaultMaxParallelDownloads,
	}
}

// MaxPeers is the total number of non-reserved peer slots.
func (c *Config) MaxPeers() int {
	return c.InPeers + c.OutPeers
}
