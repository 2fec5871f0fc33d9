package model

import (
	"encoding/json"
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

// DefaultReviewInterval is applied to ReviewDate when a result is saved to
// the register.
const DefaultReviewInterval = 90 * 24 * time.Hour

// RiskEntry is a persisted register row. The register owns its entries;
// callers receive copies and never mutate an entry held by a repository.
type RiskEntry struct {
	ID                types.EntryID
	Name              string
	Description       string
	AssetName         string
	ThreatDescription string
	Assessment        RiskResult
	Status            types.RiskStatus
	Owner             string
	ReviewDate        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Notes             string
}

// NewRiskEntry builds a register entry from an accepted assessment result.
// Asset and threat fields are copied from the result's input, status starts
// as active and the review date defaults to now plus DefaultReviewInterval.
func NewRiskEntry(result RiskResult, name, description, owner, notes string, now time.Time) (*RiskEntry, error) {
	if err := result.Validate(); err != nil {
		return nil, goerr.Wrap(err, "cannot register invalid result")
	}
	if name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "entry name is required")
	}

	return &RiskEntry{
		ID:                types.NewEntryID(),
		Name:              name,
		Description:       description,
		AssetName:         result.AssetName(),
		ThreatDescription: result.ThreatDescription(),
		Assessment:        result,
		Status:            types.StatusActive,
		Owner:             owner,
		ReviewDate:        now.Add(DefaultReviewInterval),
		CreatedAt:         now,
		UpdatedAt:         now,
		Notes:             notes,
	}, nil
}

// Type returns the discriminator of the embedded assessment
func (e *RiskEntry) Type() types.RiskType {
	return e.Assessment.Type
}

// Validate checks entry integrity
func (e *RiskEntry) Validate() error {
	if err := e.ID.Validate(); err != nil {
		return err
	}
	if e.Name == "" {
		return goerr.Wrap(ErrInvalidInput, "entry name is required", goerr.V("id", e.ID))
	}
	if err := e.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid entry status", goerr.V("id", e.ID))
	}
	if err := e.Assessment.Validate(); err != nil {
		return goerr.Wrap(err, "invalid entry assessment", goerr.V("id", e.ID))
	}
	return nil
}

// Clone returns a deep copy of the entry
func (e *RiskEntry) Clone() *RiskEntry {
	out := *e
	out.Assessment = e.Assessment.clone()
	return &out
}

// DaysUntilReview returns the number of days (rounded up) until the review
// date, negative when overdue.
func (e *RiskEntry) DaysUntilReview(now time.Time) int {
	diff := e.ReviewDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// entryWire is the persisted/exported shape of an entry: the assessment is
// split into a type tag, a loose result object and a loose input object, as
// the register file format defines.
type entryWire struct {
	ID                types.EntryID    `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	AssetName         string           `json:"assetName"`
	ThreatDescription string           `json:"threatDescription"`
	Type              types.RiskType   `json:"type"`
	Result            json.RawMessage  `json:"result"`
	Input             json.RawMessage  `json:"input"`
	Status            types.RiskStatus `json:"status"`
	Owner             string           `json:"owner"`
	ReviewDate        time.Time        `json:"reviewDate"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	Notes             string           `json:"notes,omitempty"`
}

// MarshalJSON serializes the entry into the register wire shape
func (e RiskEntry) MarshalJSON() ([]byte, error) {
	var result, input any
	switch e.Assessment.Type {
	case types.RiskTypeQualitative:
		if e.Assessment.Qualitative == nil {
			return nil, goerr.Wrap(ErrEmptyVariant, "qualitative variant is nil", goerr.V("id", e.ID))
		}
		result = e.Assessment.Qualitative.Output
		input = e.Assessment.Qualitative.Input
	case types.RiskTypeQuantitative:
		if e.Assessment.Quantitative == nil {
			return nil, goerr.Wrap(ErrEmptyVariant, "quantitative variant is nil", goerr.V("id", e.ID))
		}
		result = e.Assessment.Quantitative.Output
		input = e.Assessment.Quantitative.Input
	default:
		return nil, goerr.Wrap(ErrInvalidResult, "bad type tag", goerr.V("type", e.Assessment.Type))
	}

	resultRaw, err := json.Marshal(result)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal entry result")
	}
	inputRaw, err := json.Marshal(input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal entry input")
	}

	return json.Marshal(entryWire{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description,
		AssetName:         e.AssetName,
		ThreatDescription: e.ThreatDescription,
		Type:              e.Assessment.Type,
		Result:            resultRaw,
		Input:             inputRaw,
		Status:            e.Status,
		Owner:             e.Owner,
		ReviewDate:        e.ReviewDate,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		Notes:             e.Notes,
	})
}

// UnmarshalJSON reconstructs the entry from the register wire shape,
// resolving the assessment variant from the type tag.
func (e *RiskEntry) UnmarshalJSON(data []byte) error {
	var w entryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return goerr.Wrap(err, "failed to decode register entry")
	}

	var assessment RiskResult
	switch w.Type {
	case types.RiskTypeQualitative:
		var input QualitativeInput
		var output QualitativeOutput
		if len(w.Input) > 0 {
			if err := json.Unmarshal(w.Input, &input); err != nil {
				return goerr.Wrap(err, "failed to decode qualitative input", goerr.V("id", w.ID))
			}
		}
		if len(w.Result) > 0 {
			if err := json.Unmarshal(w.Result, &output); err != nil {
				return goerr.Wrap(err, "failed to decode qualitative result", goerr.V("id", w.ID))
			}
		}
		assessment = NewQualitativeResult(input, output)
	case types.RiskTypeQuantitative:
		var input QuantitativeInput
		var output QuantitativeOutput
		if len(w.Input) > 0 {
			if err := json.Unmarshal(w.Input, &input); err != nil {
				return goerr.Wrap(err, "failed to decode quantitative input", goerr.V("id", w.ID))
			}
		}
		if len(w.Result) > 0 {
			if err := json.Unmarshal(w.Result, &output); err != nil {
				return goerr.Wrap(err, "failed to decode quantitative result", goerr.V("id", w.ID))
			}
		}
		assessment = NewQuantitativeResult(input, output)
	default:
		return goerr.Wrap(ErrInvalidResult, "bad type tag in register entry", goerr.V("id", w.ID), goerr.V("type", w.Type))
	}

	*e = RiskEntry{
		ID:                w.ID,
		Name:              w.Name,
		Description:       w.Description,
		AssetName:         w.AssetName,
		ThreatDescription: w.ThreatDescription,
		Assessment:        assessment,
		Status:            w.Status,
		Owner:             w.Owner,
		ReviewDate:        w.ReviewDate,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
		Notes:             w.Notes,
	}
	return nil
}
