package model

import (
	"github.com/riskops-lab/themis/pkg/domain/types"
)

// QualitativeOutput is the result of an ordinal assessment.
// InherentRisk is an integer in [1,25]; ResidualRisk satisfies
// 1 <= ResidualRisk <= InherentRisk.
type QualitativeOutput struct {
	InherentRisk       int          `json:"inherentRisk"`
	ResidualRisk       float64      `json:"residualRisk"`
	InherentRating     types.Rating `json:"inherentRating"`
	ResidualRating     types.Rating `json:"residualRating"`
	InherentColor      string       `json:"inherentColor"`
	ResidualColor      string       `json:"residualColor"`
	RiskReduction      float64      `json:"riskReduction"` // percentage, 0-100
	RecommendedActions []string     `json:"recommendedActions"`
}

// QuantitativeOutput is the result of a monetary loss-expectancy assessment.
// ResidualALE never exceeds InherentALE; ControlROI and CostBenefit are
// signed.
type QuantitativeOutput struct {
	InherentSLE        float64      `json:"inherentSLE"`
	InherentALE        float64      `json:"inherentALE"`
	ResidualSLE        float64      `json:"residualSLE"`
	ResidualALE        float64      `json:"residualALE"`
	ControlROI         float64      `json:"controlROI"`  // percentage, signed
	CostBenefit        float64      `json:"costBenefit"` // signed monetary delta
	RiskReduction      float64      `json:"riskReduction"`
	RecommendedActions []string     `json:"recommendedActions"`
	InherentRating     types.Rating `json:"inherentRating"`
	ResidualRating     types.Rating `json:"residualRating"`
	InherentColor      string       `json:"inherentColor"`
	ResidualColor      string       `json:"residualColor"`
}
