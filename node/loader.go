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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/kelseyhightower/envconfig"
	"github.com/naoina/toml"
	"github.com/nodeboot/nodeboot/tracing"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// LoadOverrides decodes a TOML override file. Keys are the field names of
// Overrides.
func LoadOverrides(file string) (*Overrides, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	o := new(Overrides)
	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(o)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return o, nil
}

// envOverrides shadows the text encoded facets of Overrides with strings.
// envconfig would otherwise call UnmarshalText on nil pointers.
type envOverrides struct {
	Overrides
	Roles             *string
	Pruning           *string
	WasmMethod        *string
	ExecutionStrategy *string
	TracingReceiver   *string
}

// OverridesFromEnv reads overrides from environment variables named
// <PREFIX>_<FIELD>, e.g. NODEBOOT_DATABASECACHESIZE=256. Lists are comma
// separated.
func OverridesFromEnv(prefix string) (*Overrides, error) {
	var env envOverrides
	if err := envconfig.Process(prefix, &env); err != nil {
		return nil, err
	}
	o := env.Overrides
	var err error
	if o.Roles, err = parseText[Roles](env.Roles); err != nil {
		return nil, err
	}
	if o.Pruning, err = parseText[PruningMode](env.Pruning); err != nil {
		return nil, err
	}
	if o.WasmMethod, err = parseText[WasmExecutionMethod](env.WasmMethod); err != nil {
		return nil, err
	}
	if o.ExecutionStrategy, err = parseText[ExecutionStrategy](env.ExecutionStrategy); err != nil {
		return nil, err
	}
	if o.TracingReceiver, err = parseText[tracing.Receiver](env.TracingReceiver); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

type textUnmarshaler[T any] interface {
	*T
	UnmarshalText([]byte) error
}

func parseText[T any, P textUnmarshaler[T]](s *string) (*T, error) {
	if s == nil {
		return nil, nil
	}
	v := new(T)
	if err := P(v).UnmarshalText([]byte(*s)); err != nil {
		return nil, err
	}
	return v, nil
}
