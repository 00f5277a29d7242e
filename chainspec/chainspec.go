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

// Package chainspec defines the chain specification consumed by node
// configuration and a JSON backed implementation of it.
package chainspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nodeboot/nodeboot/telemetry"
)

// ChainType classifies a chain.
type ChainType string

const (
	Development ChainType = "Development"
	Local       ChainType = "Local"
	Live        ChainType = "Live"
)

var errMissingID = errors.New("chain spec has no id")

// ChainSpec is the descriptor of the chain a node is configured for.
type ChainSpec interface {
	// ID is the chain identifier, also used as a directory name.
	ID() string
	// Name is the human readable chain name.
	Name() string
	ChainType() ChainType
	BootNodes() []string
	// TelemetryEndpoints returns the default telemetry servers, nil if none.
	TelemetryEndpoints() telemetry.Endpoints
	// Properties holds free-form chain metadata (token symbol, decimals...).
	Properties() map[string]any
}

// Spec is the JSON backed ChainSpec.
type Spec struct {
	name       string
	id         string
	chainType  ChainType
	bootNodes  []string
	telemetry  telemetry.Endpoints
	properties map[string]any
}

// New creates a spec in code. The chain type defaults to Live.
func New(id, name string, chainType ChainType, endpoints telemetry.Endpoints) *Spec {
	if chainType == "" {
		chainType = Live
	}
	return &Spec{id: id, name: name, chainType: chainType, telemetry: endpoints}
}

func (s *Spec) ID() string                              { return s.id }
func (s *Spec) Name() string                            { return s.name }
func (s *Spec) ChainType() ChainType                    { return s.chainType }
func (s *Spec) BootNodes() []string                     { return append([]string(nil), s.bootNodes...) }
func (s *Spec) TelemetryEndpoints() telemetry.Endpoints { return s.telemetry.Clone() }
func (s *Spec) Properties() map[string]any              { return s.properties }

// specJSON is the file layout. Telemetry endpoints are [url, verbosity] pairs.
type specJSON struct {
	Name               string            `json:"name"`
	ID                 string            `json:"id"`
	ChainType          ChainType         `json:"chainType,omitempty"`
	BootNodes          []string          `json:"bootNodes,omitempty"`
	TelemetryEndpoints []json.RawMessage `json:"telemetryEndpoints,omitempty"`
	Properties         map[string]any    `json:"properties,omitempty"`
}

// Parse decodes a JSON chain spec.
func Parse(data []byte) (*Spec, error) {
	var enc specJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("invalid chain spec: %w", err)
	}
	if enc.ID == "" {
		return nil, errMissingID
	}
	spec := New(enc.ID, enc.Name, enc.ChainType, nil)
	spec.bootNodes = enc.BootNodes
	spec.properties = enc.Properties
	for i, raw := range enc.TelemetryEndpoints {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("invalid chain spec: telemetry endpoint %d is not a [url, verbosity] pair", i)
		}
		var ep telemetry.Endpoint
		if err := json.Unmarshal(pair[0], &ep.URL); err != nil {
			return nil, fmt.Errorf("invalid chain spec: telemetry endpoint %d url: %w", i, err)
		}
		if err := json.Unmarshal(pair[1], &ep.Verbosity); err != nil {
			return nil, fmt.Errorf("invalid chain spec: telemetry endpoint %d verbosity: %w", i, err)
		}
		if err := ep.Validate(); err != nil {
			return nil, fmt.Errorf("invalid chain spec: %w", err)
		}
		spec.telemetry = append(spec.telemetry, ep)
	}
	return spec, nil
}

// Load reads and decodes a JSON chain spec file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain spec: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}
