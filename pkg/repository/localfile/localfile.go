package localfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/interfaces"
	"github.com/riskops-lab/themis/pkg/domain/model"
)

// LocalFile persists the register as a single JSON file with
// string-serialized dates, suitable for single-user deployments.
type LocalFile struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.Repository = &LocalFile{}

func New(path string) (*LocalFile, error) {
	if path == "" {
		return nil, goerr.New("register file path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, goerr.Wrap(err, "failed to create register directory", goerr.V("dir", dir))
		}
	}
	return &LocalFile{path: path}, nil
}

func (f *LocalFile) Load(ctx context.Context) ([]*model.RiskEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// #nosec G304 - path comes from CLI configuration
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read register file", goerr.V("path", f.path))
	}

	var entries []*model.RiskEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, goerr.Wrap(err, "failed to parse register file", goerr.V("path", f.path))
	}
	return entries, nil
}

func (f *LocalFile) Save(ctx context.Context, entries []*model.RiskEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entries == nil {
		entries = []*model.RiskEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to serialize register")
	}

	// Write to a sibling temp file first so a crash never truncates the
	// register.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return goerr.Wrap(err, "failed to write register file", goerr.V("path", tmp))
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return goerr.Wrap(err, "failed to replace register file", goerr.V("path", f.path))
	}
	return nil
}

func (f *LocalFile) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to remove register file", goerr.V("path", f.path))
	}
	return nil
}

func (f *LocalFile) Close() error {
	return nil
}
