package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
)

// AssessUseCase validates assessment inputs at the boundary and runs the
// scoring engines. The engines themselves assume validated ranges.
type AssessUseCase struct {
	bands risk.MonetaryBands
}

// Qualitative runs an ordinal likelihood × impact assessment.
func (uc *AssessUseCase) Qualitative(ctx context.Context, input model.QualitativeInput) (*model.RiskResult, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid qualitative input")
	}

	output := risk.AssessQualitative(input)
	result := model.NewQualitativeResult(input, output)
	return &result, nil
}

// Quantitative runs a monetary loss-expectancy assessment.
func (uc *AssessUseCase) Quantitative(ctx context.Context, input model.QuantitativeInput) (*model.RiskResult, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid quantitative input")
	}

	output := risk.AssessQuantitative(input, uc.bands)
	result := model.NewQuantitativeResult(input, output)
	return &result, nil
}
