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
	"fmt"
	"math/rand/v2"
	"unicode/utf8"
)

// GenerateNodeName returns a random "adjective-noun-NNNN" name shorter than
// NodeNameMaxLength characters. Candidates are drawn from a fresh source on
// every call until one fits.
func GenerateNodeName() string {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	for {
		name := nameCandidate(rng)
		if utf8.RuneCountInString(name) < NodeNameMaxLength {
			return name
		}
	}
}

func nameCandidate(rng *rand.Rand) string {
	adj := adjectives[rng.IntN(len(adjectives))]
	noun := nouns[rng.IntN(len(nouns))]
	return fmt.Sprintf("%s-%s-%04d", adj, noun, rng.IntN(10000))
}
