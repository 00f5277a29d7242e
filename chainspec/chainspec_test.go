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

package chainspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeboot/nodeboot/telemetry"
)

const testnetJSON = `{
	"name": "Test Net",
	"id": "testnet",
	"chainType": "Local",
	"bootNodes": ["/dns/boot.example/tcp/30333/p2p/12D3KooW"],
	"telemetryEndpoints": [["wss://telemetry.example/submit/", 0], ["https://stats.example", 4]],
	"properties": {"tokenSymbol": "TST"}
}`

func TestParse(t *testing.T) {
	spec, err := Parse([]byte(testnetJSON))
	require.NoError(t, err)

	assert.Equal(t, "testnet", spec.ID())
	assert.Equal(t, "Test Net", spec.Name())
	assert.Equal(t, Local, spec.ChainType())
	assert.Len(t, spec.BootNodes(), 1)
	assert.Equal(t, telemetry.Endpoints{
		{URL: "wss://telemetry.example/submit/"},
		{URL: "https://stats.example", Verbosity: 4},
	}, spec.TelemetryEndpoints())
	assert.Equal(t, "TST", spec.Properties()["tokenSymbol"])
}

func TestParseDefaults(t *testing.T) {
	spec, err := Parse([]byte(`{"id": "dev"}`))
	require.NoError(t, err)
	assert.Equal(t, Live, spec.ChainType())
	assert.Nil(t, spec.TelemetryEndpoints())
}

func TestParseErrors(t *testing.T) {
	for name, in := range map[string]string{
		"syntax":        `{"id":`,
		"no id":         `{"name": "nameless"}`,
		"bad pair":      `{"id": "x", "telemetryEndpoints": [["wss://a.example"]]}`,
		"bad verbosity": `{"id": "x", "telemetryEndpoints": [["wss://a.example", "high"]]}`,
		"bad url":       `{"id": "x", "telemetryEndpoints": [["ftp://a.example", 0]]}`,
	} {
		_, err := Parse([]byte(in))
		assert.Error(t, err, name)
	}
	_, err := Parse([]byte(`{"name": "nameless"}`))
	assert.ErrorIs(t, err, errMissingID)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testnet.json")
	require.NoError(t, os.WriteFile(path, []byte(testnetJSON), 0o600))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testnet", spec.ID())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAccessorsCopy(t *testing.T) {
	spec := New("x", "X", "", telemetry.Endpoints{{URL: "wss://a.example"}})
	eps := spec.TelemetryEndpoints()
	eps[0].Verbosity = 7
	assert.Zero(t, spec.TelemetryEndpoints()[0].Verbosity)
}
