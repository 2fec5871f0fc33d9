package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// QualitativeInput holds the form values for an ordinal likelihood × impact
// assessment. Validate enforces the documented ranges at the boundary; the
// engine assumes a validated input and does not re-check.
type QualitativeInput struct {
	AssetName            string  `json:"assetName"`
	ThreatDescription    string  `json:"threatDescription"`
	Likelihood           int     `json:"likelihood"`           // 1-5 scale
	Impact               int     `json:"impact"`               // 1-5 scale
	ControlEffectiveness float64 `json:"controlEffectiveness"` // 0-100 percentage
	DetectionCapability  int     `json:"detectionCapability"`  // 1-5 scale
}

// Validate checks the documented input ranges
func (x *QualitativeInput) Validate() error {
	if x.AssetName == "" {
		return goerr.Wrap(ErrInvalidInput, "asset name is required")
	}
	if x.ThreatDescription == "" {
		return goerr.Wrap(ErrInvalidInput, "threat description is required")
	}
	if x.Likelihood < 1 || x.Likelihood > 5 {
		return goerr.Wrap(ErrInvalidInput, "likelihood must be between 1 and 5", goerr.V("likelihood", x.Likelihood))
	}
	if x.Impact < 1 || x.Impact > 5 {
		return goerr.Wrap(ErrInvalidInput, "impact must be between 1 and 5", goerr.V("impact", x.Impact))
	}
	if x.ControlEffectiveness < 0 || x.ControlEffectiveness > 100 {
		return goerr.Wrap(ErrInvalidInput, "control effectiveness must be between 0 and 100", goerr.V("controlEffectiveness", x.ControlEffectiveness))
	}
	if x.DetectionCapability < 1 || x.DetectionCapability > 5 {
		return goerr.Wrap(ErrInvalidInput, "detection capability must be between 1 and 5", goerr.V("detectionCapability", x.DetectionCapability))
	}
	return nil
}

// QuantitativeInput holds the form values for a monetary loss-expectancy
// assessment.
type QuantitativeInput struct {
	AssetName                  string  `json:"assetName"`
	AssetValue                 float64 `json:"assetValue"` // monetary value
	ThreatDescription          string  `json:"threatDescription"`
	ExposureFactor             float64 `json:"exposureFactor"`             // 0-100 percentage of asset value at risk
	AnnualizedRateOfOccurrence float64 `json:"annualizedRateOfOccurrence"` // expected occurrences per year
	ControlCost                float64 `json:"controlCost"`                // annual cost of controls
	ControlEffectiveness       float64 `json:"controlEffectiveness"`       // 0-100 percentage
	DetectionCapability        int     `json:"detectionCapability"`        // 1-5 scale
}

// Validate checks the documented input ranges
func (x *QuantitativeInput) Validate() error {
	if x.AssetName == "" {
		return goerr.Wrap(ErrInvalidInput, "asset name is required")
	}
	if x.ThreatDescription == "" {
		return goerr.Wrap(ErrInvalidInput, "threat description is required")
	}
	if x.AssetValue <= 0 {
		return goerr.Wrap(ErrInvalidInput, "asset value must be positive", goerr.V("assetValue", x.AssetValue))
	}
	if x.ExposureFactor < 0 || x.ExposureFactor > 100 {
		return goerr.Wrap(ErrInvalidInput, "exposure factor must be between 0 and 100", goerr.V("exposureFactor", x.ExposureFactor))
	}
	if x.AnnualizedRateOfOccurrence < 0 {
		return goerr.Wrap(ErrInvalidInput, "annualized rate of occurrence cannot be negative", goerr.V("aro", x.AnnualizedRateOfOccurrence))
	}
	if x.ControlCost < 0 {
		return goerr.Wrap(ErrInvalidInput, "control cost cannot be negative", goerr.V("controlCost", x.ControlCost))
	}
	if x.ControlEffectiveness < 0 || x.ControlEffectiveness > 100 {
		return goerr.Wrap(ErrInvalidInput, "control effectiveness must be between 0 and 100", goerr.V("controlEffectiveness", x.ControlEffectiveness))
	}
	if x.DetectionCapability < 1 || x.DetectionCapability > 5 {
		return goerr.Wrap(ErrInvalidInput, "detection capability must be between 1 and 5", goerr.V("detectionCapability", x.DetectionCapability))
	}
	return nil
}
