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

package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Receiver selects where recorded spans are delivered.
type Receiver int

const (
	// ReceiverLog writes finished spans to the log output.
	ReceiverLog Receiver = iota
	// ReceiverTelemetry ships finished spans to a telemetry collector.
	ReceiverTelemetry
)

var errNoEndpoint = errors.New("telemetry trace receiver needs an endpoint")

func (r Receiver) String() string {
	switch r {
	case ReceiverLog:
		return "log"
	case ReceiverTelemetry:
		return "telemetry"
	default:
		return fmt.Sprintf("Receiver(%d)", int(r))
	}
}

func (r Receiver) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Receiver) UnmarshalText(text []byte) error {
	switch string(text) {
	case "log":
		*r = ReceiverLog
	case "telemetry":
		*r = ReceiverTelemetry
	default:
		return fmt.Errorf("unknown tracing receiver %q", text)
	}
	return nil
}

// ProviderConfig configures NewTracerProvider.
type ProviderConfig struct {
	Receiver    Receiver
	ServiceName string
	Output      io.Writer // ReceiverLog destination, stderr when nil
	Endpoint    string    // ReceiverTelemetry endpoint URL, ws(s) or http(s)
}

// otlpEndpointURL converts a telemetry endpoint into an OTLP/HTTP one.
// Websocket schemes map to their HTTP counterpart so that wss keeps TLS.
func otlpEndpointURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid trace endpoint %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https":
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	default:
		return "", fmt.Errorf("unsupported trace endpoint scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("trace endpoint %q has no host", raw)
	}
	return u.String(), nil
}

// NewTracerProvider builds an SDK tracer provider delivering to the configured
// receiver. Forwarded sandbox spans are renamed before export.
func NewTracerProvider(ctx context.Context, cfg ProviderConfig) (*sdktrace.TracerProvider, error) {
	var (
		exporter sdktrace.SpanExporter
		err      error
	)
	switch cfg.Receiver {
	case ReceiverLog:
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(out))
	case ReceiverTelemetry:
		if cfg.Endpoint == "" {
			return nil, errNoEndpoint
		}
		endpoint, uerr := otlpEndpointURL(cfg.Endpoint)
		if uerr != nil {
			return nil, uerr
		}
		exporter, err = otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	default:
		return nil, fmt.Errorf("unknown tracing receiver %v", cfg.Receiver)
	}
	if err != nil {
		return nil, fmt.Errorf("create %v span exporter: %w", cfg.Receiver, err)
	}
	name := cfg.ServiceName
	if name == "" {
		name = defaultTarget
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", name))),
		sdktrace.WithSpanProcessor(Rehydrator{}),
		sdktrace.WithBatcher(exporter),
	), nil
}
