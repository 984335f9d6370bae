// Package snapshot persists the node registry and block ledger as JSON files.
// Every save is a complete rewrite of the prior snapshot: the structure is
// written to a temp file in the same directory and renamed over the target,
// so a reader never sees a partial snapshot.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

// Store reads and writes the two snapshot files.
type Store struct {
	nodesPath  string
	blocksPath string
}

// NewStore validates both paths and ensures their directories exist.
func NewStore(nodesPath, blocksPath string) (*Store, error) {
	if nodesPath == "" || blocksPath == "" {
		return nil, errors.New("snapshot paths are required")
	}
	for _, path := range []string{nodesPath, blocksPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir for %s: %w", path, err)
		}
	}
	return &Store{nodesPath: nodesPath, blocksPath: blocksPath}, nil
}

// LoadNodes restores the node registry snapshot. A missing file is an empty
// registry; a malformed file returns an empty registry and the parse error.
func (s *Store) LoadNodes() (map[string]model.NodeRecord, error) {
	out := make(map[string]model.NodeRecord)
	err := loadJSON(s.nodesPath, &out)
	if err != nil {
		return make(map[string]model.NodeRecord), err
	}
	return out, nil
}

// LoadBlocks restores the block ledger snapshot with the same missing or
// malformed handling as LoadNodes.
func (s *Store) LoadBlocks() (map[string]model.BlockRecord, error) {
	out := make(map[string]model.BlockRecord)
	err := loadJSON(s.blocksPath, &out)
	if err != nil {
		return make(map[string]model.BlockRecord), err
	}
	return out, nil
}

// SaveNodes writes the full node registry snapshot.
func (s *Store) SaveNodes(nodes map[string]model.NodeRecord) error {
	return saveJSON(s.nodesPath, nodes)
}

// SaveBlocks writes the full block ledger snapshot.
func (s *Store) SaveBlocks(blocks map[string]model.BlockRecord) error {
	return saveJSON(s.blocksPath, blocks)
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return nil
}

func saveJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot %s: %w", path, err)
	}
	return nil
}
