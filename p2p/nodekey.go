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
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nodeboot/nodeboot/log"
)

// DefaultNodeKeyFile is the file name of the persisted node key within the
// network config directory.
const DefaultNodeKeyFile = "secret_secp256k1"

var errInvalidNodeKey = errors.New("invalid node key, expected 32 hex encoded bytes")

// SecretKind tells where the node key comes from.
type SecretKind int

const (
	// SecretNew generates a fresh key on every start.
	SecretNew SecretKind = iota
	// SecretFile reads the key from a file, generating and persisting it if
	// the file does not exist.
	SecretFile
	// SecretInput uses a key given inline.
	SecretInput
)

// NodeKeyConfig describes the secp256k1 identity key of the node. It is a
// descriptor only: the key is materialised by PrivateKey.
type NodeKeyConfig struct {
	Kind SecretKind
	Path string // SecretFile
	Hex  string // SecretInput
}

// NewSecret returns a descriptor for an ephemeral key.
func NewSecret() NodeKeyConfig {
	return NodeKeyConfig{Kind: SecretNew}
}

// FileSecret returns a descriptor for a key persisted at path.
func FileSecret(path string) NodeKeyConfig {
	return NodeKeyConfig{Kind: SecretFile, Path: path}
}

// InputSecret returns a descriptor for a hex encoded key.
func InputSecret(hexkey string) NodeKeyConfig {
	return NodeKeyConfig{Kind: SecretInput, Hex: hexkey}
}

// DefaultNodeKey is the key persisted in the network config directory.
func DefaultNodeKey(netConfigDir string) NodeKeyConfig {
	return FileSecret(filepath.Join(netConfigDir, DefaultNodeKeyFile))
}

func (c NodeKeyConfig) String() string {
	switch c.Kind {
	case SecretNew:
		return "new"
	case SecretFile:
		return "file:" + c.Path
	case SecretInput:
		return "input"
	default:
		return fmt.Sprintf("SecretKind(%d)", int(c.Kind))
	}
}

// PrivateKey materialises the node key. A file key that cannot be persisted
// is still returned, the failure is only logged.
func (c NodeKeyConfig) PrivateKey() (*secp256k1.PrivateKey, error) {
	switch c.Kind {
	case SecretNew:
		return secp256k1.GeneratePrivateKey()
	case SecretInput:
		return parseNodeKey([]byte(c.Hex))
	case SecretFile:
		return loadOrCreateNodeKey(c.Path)
	default:
		return nil, fmt.Errorf("unknown node key kind %d", c.Kind)
	}
}

func loadOrCreateNodeKey(path string) (*secp256k1.PrivateKey, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		key, err := parseNodeKey(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return key, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.Error("Failed to persist node key", "path", path, "err", err)
		return key, nil
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key.Serialize())), 0600); err != nil {
		log.Error("Failed to persist node key", "path", path, "err", err)
		return key, nil
	}
	log.Info("Generated new node key", "path", path, "id", NodeID(key))
	return key, nil
}

func parseNodeKey(text []byte) (*secp256k1.PrivateKey, error) {
	raw, err := hex.DecodeString(string(bytes.TrimSpace(text)))
	if err != nil || len(raw) != secp256k1.PrivKeyBytesLen {
		return nil, errInvalidNodeKey
	}
	return secp256k1.PrivKeyFromBytes(raw), nil
}

// NodeID is the hex encoded compressed public key of the node.
func NodeID(key *secp256k1.PrivateKey) string {
	return hex.EncodeToString(key.PubKey().SerializeCompressed())
}
