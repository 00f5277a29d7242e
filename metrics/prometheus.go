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

// Package metrics holds the Prometheus exporter settings of a node.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultPrometheusPort is the default port of the metrics endpoint.
const DefaultPrometheusPort = 9615

// PrometheusConfig is the metrics endpoint address and the registry metrics
// are collected in.
type PrometheusConfig struct {
	Addr     string
	Registry *prometheus.Registry
}

// NewPrometheusConfig creates a config with a fresh registry. Every metric
// registered through Registerer is labelled with the chain id, and a build
// info gauge describing the running implementation is pre-registered.
func NewPrometheusConfig(addr, chainID, implName, implVersion string) *PrometheusConfig {
	reg := prometheus.NewRegistry()
	cfg := &PrometheusConfig{Addr: addr, Registry: reg}

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nodeboot_build_info",
		Help: "A metric with a constant '1' value labeled by name and version",
	}, []string{"name", "version"})
	buildInfo.WithLabelValues(implName, implVersion).Set(1)
	cfg.Registerer(chainID).MustRegister(buildInfo)
	return cfg
}

// Registerer returns a registerer adding the chain label to every metric.
func (c *PrometheusConfig) Registerer(chainID string) prometheus.Registerer {
	return prometheus.WrapRegistererWith(prometheus.Labels{"chain": chainID}, c.Registry)
}
