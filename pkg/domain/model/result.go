package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

// QualitativeAssessment pairs a validated input with its computed output
type QualitativeAssessment struct {
	Input  QualitativeInput
	Output QualitativeOutput
}

// QuantitativeAssessment pairs a validated input with its computed output
type QuantitativeAssessment struct {
	Input  QuantitativeInput
	Output QuantitativeOutput
}

// RiskResult is a discriminated union over the two assessment
// methodologies. Exactly one variant is live at a time and must match the
// Type tag; accessors dispatch on the tag so callers never touch the wrong
// variant's fields.
type RiskResult struct {
	Type         types.RiskType
	Qualitative  *QualitativeAssessment
	Quantitative *QuantitativeAssessment
}

// NewQualitativeResult builds a qualitative RiskResult
func NewQualitativeResult(input QualitativeInput, output QualitativeOutput) RiskResult {
	return RiskResult{
		Type:        types.RiskTypeQualitative,
		Qualitative: &QualitativeAssessment{Input: input, Output: output},
	}
}

// NewQuantitativeResult builds a quantitative RiskResult
func NewQuantitativeResult(input QuantitativeInput, output QuantitativeOutput) RiskResult {
	return RiskResult{
		Type:         types.RiskTypeQuantitative,
		Quantitative: &QuantitativeAssessment{Input: input, Output: output},
	}
}

// Validate checks that the type tag is valid and exactly one matching
// variant is live.
func (r *RiskResult) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidResult, "bad type tag", goerr.V("type", r.Type))
	}
	switch r.Type {
	case types.RiskTypeQualitative:
		if r.Qualitative == nil {
			return goerr.Wrap(ErrEmptyVariant, "qualitative variant is nil")
		}
		if r.Quantitative != nil {
			return goerr.Wrap(ErrVariantMismatch, "quantitative variant set on qualitative result")
		}
	case types.RiskTypeQuantitative:
		if r.Quantitative == nil {
			return goerr.Wrap(ErrEmptyVariant, "quantitative variant is nil")
		}
		if r.Qualitative != nil {
			return goerr.Wrap(ErrVariantMismatch, "qualitative variant set on quantitative result")
		}
	}
	return nil
}

// AssetName returns the asset name of the live variant's input
func (r *RiskResult) AssetName() string {
	switch r.Type {
	case types.RiskTypeQualitative:
		return r.Qualitative.Input.AssetName
	case types.RiskTypeQuantitative:
		return r.Quantitative.Input.AssetName
	}
	return ""
}

// ThreatDescription returns the threat description of the live variant's input
func (r *RiskResult) ThreatDescription() string {
	switch r.Type {
	case types.RiskTypeQualitative:
		return r.Qualitative.Input.ThreatDescription
	case types.RiskTypeQuantitative:
		return r.Quantitative.Input.ThreatDescription
	}
	return ""
}

// InherentRating returns the inherent rating band of the live variant
func (r *RiskResult) InherentRating() types.Rating {
	switch r.Type {
	case types.RiskTypeQualitative:
		return r.Qualitative.Output.InherentRating
	case types.RiskTypeQuantitative:
		return r.Quantitative.Output.InherentRating
	}
	return ""
}

// ResidualRating returns the residual rating band of the live variant
func (r *RiskResult) ResidualRating() types.Rating {
	switch r.Type {
	case types.RiskTypeQualitative:
		return r.Qualitative.Output.ResidualRating
	case types.RiskTypeQuantitative:
		return r.Quantitative.Output.ResidualRating
	}
	return ""
}

// RiskReduction returns the reduction percentage of the live variant
func (r *RiskResult) RiskReduction() float64 {
	switch r.Type {
	case types.RiskTypeQualitative:
		return r.Qualitative.Output.RiskReduction
	case types.RiskTypeQuantitative:
		return r.Quantitative.Output.RiskReduction
	}
	return 0
}

// RecommendedActions returns the ordered action list of the live variant
func (r *RiskResult) RecommendedActions() []string {
	switch r.Type {
	case types.RiskTypeQualitative:
		return r.Qualitative.Output.RecommendedActions
	case types.RiskTypeQuantitative:
		return r.Quantitative.Output.RecommendedActions
	}
	return nil
}

// clone returns a deep copy of the union
func (r *RiskResult) clone() RiskResult {
	out := RiskResult{Type: r.Type}
	if r.Qualitative != nil {
		q := *r.Qualitative
		q.Output.RecommendedActions = append([]string(nil), r.Qualitative.Output.RecommendedActions...)
		out.Qualitative = &q
	}
	if r.Quantitative != nil {
		q := *r.Quantitative
		q.Output.RecommendedActions = append([]string(nil), r.Quantitative.Output.RecommendedActions...)
		out.Quantitative = &q
	}
	return out
}

// MarshalJSON flattens the live variant into the wire shape
// {type, input, ...output}.
func (r RiskResult) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case types.RiskTypeQualitative:
		if r.Qualitative == nil {
			return nil, goerr.Wrap(ErrEmptyVariant, "qualitative variant is nil")
		}
		return json.Marshal(struct {
			Type  types.RiskType   `json:"type"`
			Input QualitativeInput `json:"input"`
			QualitativeOutput
		}{r.Type, r.Qualitative.Input, r.Qualitative.Output})
	case types.RiskTypeQuantitative:
		if r.Quantitative == nil {
			return nil, goerr.Wrap(ErrEmptyVariant, "quantitative variant is nil")
		}
		return json.Marshal(struct {
			Type  types.RiskType    `json:"type"`
			Input QuantitativeInput `json:"input"`
			QuantitativeOutput
		}{r.Type, r.Quantitative.Input, r.Quantitative.Output})
	default:
		return nil, goerr.Wrap(ErrInvalidResult, "bad type tag", goerr.V("type", r.Type))
	}
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON.
func (r *RiskResult) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type types.RiskType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return goerr.Wrap(err, "failed to decode result type tag")
	}

	switch tag.Type {
	case types.RiskTypeQualitative:
		var v struct {
			Input QualitativeInput `json:"input"`
			QualitativeOutput
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return goerr.Wrap(err, "failed to decode qualitative result")
		}
		*r = NewQualitativeResult(v.Input, v.QualitativeOutput)
	case types.RiskTypeQuantitative:
		var v struct {
			Input QuantitativeInput `json:"input"`
			QuantitativeOutput
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return goerr.Wrap(err, "failed to decode quantitative result")
		}
		*r = NewQuantitativeResult(v.Input, v.QuantitativeOutput)
	default:
		return goerr.Wrap(ErrInvalidResult, "bad type tag", goerr.V("type", tag.Type))
	}
	return nil
}
