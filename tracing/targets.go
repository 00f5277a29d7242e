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

import "strings"

// Target is a single entry of a tracing target list.
type Target struct {
	Name  string
	Level string // empty when not given
}

// ParseTargets splits a comma separated list of "target" or "target=level"
// entries. Blank entries are dropped.
func ParseTargets(s string) []Target {
	var targets []Target
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, level, _ := strings.Cut(part, "=")
		targets = append(targets, Target{
			Name:  strings.TrimSpace(name),
			Level: strings.TrimSpace(level),
		})
	}
	return targets
}
