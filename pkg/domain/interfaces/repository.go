package interfaces

import (
	"context"

	"github.com/riskops-lab/themis/pkg/domain/model"
)

// Repository persists the risk register as a whole collection. The register
// follows copy-on-write semantics: Load returns an independent snapshot,
// Save replaces the stored collection, and callers never mutate entries they
// handed to or received from a repository.
type Repository interface {
	// Load returns the full register in insertion order
	Load(ctx context.Context) ([]*model.RiskEntry, error)

	// Save replaces the stored register with the given collection
	Save(ctx context.Context, entries []*model.RiskEntry) error

	// Clear removes the stored register
	Clear(ctx context.Context) error

	// Close releases backend resources
	Close() error
}
