package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/interfaces"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
	"github.com/riskops-lab/themis/pkg/service/export"
	"github.com/riskops-lab/themis/pkg/utils/logging"
)

// RegisterUseCase manages the risk register lifecycle. Every mutation loads
// the current register, applies the change to the copy and saves the whole
// collection back, so the repository always holds a consistent snapshot.
type RegisterUseCase struct {
	repo   interfaces.Repository
	bands  risk.MonetaryBands
	clock  func() time.Time
	review time.Duration
}

// Filter narrows List results. Zero-value fields do not filter. Query is a
// case-insensitive substring match over name, asset and threat.
type Filter struct {
	Status types.RiskStatus
	Type   types.RiskType
	Query  string
}

func (f Filter) match(entry *model.RiskEntry) bool {
	if f.Status != "" && entry.Status != f.Status {
		return false
	}
	if f.Type != "" && entry.Type() != f.Type {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(entry.Name), q) &&
			!strings.Contains(strings.ToLower(entry.AssetName), q) &&
			!strings.Contains(strings.ToLower(entry.ThreatDescription), q) {
			return false
		}
	}
	return true
}

// UpdateInput carries editable entry fields. Nil pointers leave the field
// unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *types.RiskStatus
	Owner       *string
	ReviewDate  *time.Time
	Notes       *string
}

// List returns register entries matching the filter, in insertion order.
func (uc *RegisterUseCase) List(ctx context.Context, filter Filter) ([]*model.RiskEntry, error) {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register")
	}

	if filter == (Filter{}) {
		return entries, nil
	}

	matched := make([]*model.RiskEntry, 0, len(entries))
	for _, entry := range entries {
		if filter.match(entry) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Get returns the entry with the given ID.
func (uc *RegisterUseCase) Get(ctx context.Context, id types.EntryID) (*model.RiskEntry, error) {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register")
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, goerr.Wrap(model.ErrEntryNotFound, "no such entry", goerr.V("id", id))
}

// Add accepts an assessment result into the register and returns the new
// entry.
func (uc *RegisterUseCase) Add(ctx context.Context, result model.RiskResult, name, description, owner, notes string) (*model.RiskEntry, error) {
	now := uc.clock()
	entry, err := model.NewRiskEntry(result, name, description, owner, notes, now)
	if err != nil {
		return nil, err
	}
	if uc.review > 0 {
		entry.ReviewDate = now.Add(uc.review)
	}

	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register")
	}
	entries = append(entries, entry)
	if err := uc.repo.Save(ctx, entries); err != nil {
		return nil, goerr.Wrap(err, "failed to save register", goerr.V("id", entry.ID))
	}

	logging.From(ctx).Info("Risk registered",
		"id", entry.ID, "name", entry.Name, "type", entry.Type())
	return entry.Clone(), nil
}

// Update modifies entry metadata. The assessment itself is immutable; a
// changed risk is re-assessed and registered as a new entry.
func (uc *RegisterUseCase) Update(ctx context.Context, id types.EntryID, input UpdateInput) (*model.RiskEntry, error) {
	if input.Status != nil {
		if err := input.Status.Validate(); err != nil {
			return nil, err
		}
	}
	if input.Name != nil && *input.Name == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "entry name cannot be empty", goerr.V("id", id))
	}

	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register")
	}

	var updated *model.RiskEntry
	for _, entry := range entries {
		if entry.ID != id {
			continue
		}
		if input.Name != nil {
			entry.Name = *input.Name
		}
		if input.Description != nil {
			entry.Description = *input.Description
		}
		if input.Status != nil {
			entry.Status = *input.Status
		}
		if input.Owner != nil {
			entry.Owner = *input.Owner
		}
		if input.ReviewDate != nil {
			entry.ReviewDate = *input.ReviewDate
		}
		if input.Notes != nil {
			entry.Notes = *input.Notes
		}
		entry.UpdatedAt = uc.clock()
		updated = entry
		break
	}
	if updated == nil {
		return nil, goerr.Wrap(model.ErrEntryNotFound, "no such entry", goerr.V("id", id))
	}

	if err := uc.repo.Save(ctx, entries); err != nil {
		return nil, goerr.Wrap(err, "failed to save register", goerr.V("id", id))
	}
	return updated.Clone(), nil
}

// UpdateStatus transitions an entry to the given status.
func (uc *RegisterUseCase) UpdateStatus(ctx context.Context, id types.EntryID, status types.RiskStatus) (*model.RiskEntry, error) {
	return uc.Update(ctx, id, UpdateInput{Status: &status})
}

// Delete removes an entry from the register.
func (uc *RegisterUseCase) Delete(ctx context.Context, id types.EntryID) error {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load register")
	}

	remaining := make([]*model.RiskEntry, 0, len(entries))
	found := false
	for _, entry := range entries {
		if entry.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, entry)
	}
	if !found {
		return goerr.Wrap(model.ErrEntryNotFound, "no such entry", goerr.V("id", id))
	}

	if err := uc.repo.Save(ctx, remaining); err != nil {
		return goerr.Wrap(err, "failed to save register", goerr.V("id", id))
	}
	logging.From(ctx).Info("Risk deleted", "id", id)
	return nil
}

// Clear removes every entry from the register.
func (uc *RegisterUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear register")
	}
	logging.From(ctx).Info("Register cleared")
	return nil
}

// Heatmap builds the 5×5 likelihood × impact matrix over the current
// register.
func (uc *RegisterUseCase) Heatmap(ctx context.Context) ([][]model.HeatmapCell, error) {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register")
	}
	return risk.GenerateHeatmap(entries), nil
}

// ExportCSV renders the current register as CSV text.
func (uc *RegisterUseCase) ExportCSV(ctx context.Context) (string, error) {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to load register")
	}
	return export.ToCSV(entries), nil
}

// ExportJSON renders the current register as a versioned JSON envelope.
func (uc *RegisterUseCase) ExportJSON(ctx context.Context) ([]byte, error) {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register")
	}
	return export.ToJSON(entries, uc.clock())
}

// ImportJSON replaces the register with the entries of an exported
// envelope. Returns the number of imported entries.
func (uc *RegisterUseCase) ImportJSON(ctx context.Context, data []byte) (int, error) {
	entries, err := export.FromJSON(data)
	if err != nil {
		return 0, err
	}

	if err := uc.repo.Save(ctx, entries); err != nil {
		return 0, goerr.Wrap(err, "failed to save imported register")
	}
	logging.From(ctx).Info("Register imported", "count", len(entries))
	return len(entries), nil
}

// Seed loads the bundled sample risks into an empty register. It refuses to
// overwrite existing entries.
func (uc *RegisterUseCase) Seed(ctx context.Context) (int, error) {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to load register")
	}
	if len(entries) > 0 {
		return 0, goerr.New("register is not empty", goerr.V("count", len(entries)))
	}

	samples := model.SampleEntries(uc.clock())
	if err := uc.repo.Save(ctx, samples); err != nil {
		return 0, goerr.Wrap(err, "failed to save sample register")
	}
	return len(samples), nil
}
