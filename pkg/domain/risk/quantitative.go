package risk

import (
	"math"

	"github.com/riskops-lab/themis/pkg/domain/model"
)

// Detection capability contributes at most 15% additional reduction on the
// monetary scale.
const quantitativeDetectionCap = 0.15

// aroFloor guards the ALE→SLE division against near-zero occurrence rates.
// Numerical safety only, not a domain rule.
const aroFloor = 0.01

// SLE computes the single loss expectancy: asset value × exposure factor.
func SLE(assetValue, exposureFactor float64) float64 {
	return assetValue * (exposureFactor / 100)
}

// ALE computes the annualized loss expectancy: SLE × ARO.
func ALE(sle, aro float64) float64 {
	return sle * aro
}

// ResidualALE reduces an inherent ALE by control effectiveness (0-100) and
// detection capability (1-5).
func ResidualALE(inherentALE, controlEffectiveness float64, detectionCapability int) float64 {
	controlReduction := controlEffectiveness / 100
	detectionReduction := float64(detectionCapability-1) / 4 * quantitativeDetectionCap
	totalReduction := math.Min(controlReduction+detectionReduction, maxTotalReduction)
	return inherentALE * (1 - totalReduction)
}

// ControlROI computes the return on control investment as a percentage.
// A zero control cost is defined as 0% ROI, not a division.
func ControlROI(inherentALE, residualALE, controlCost float64) float64 {
	if controlCost == 0 {
		return 0
	}
	netBenefit := (inherentALE - residualALE) - controlCost
	return netBenefit / controlCost * 100
}

// AssessQuantitative runs the full loss-expectancy assessment over a
// validated input, classifying ALE values against the given bands.
func AssessQuantitative(input model.QuantitativeInput, bands MonetaryBands) model.QuantitativeOutput {
	inherentSLE := SLE(input.AssetValue, input.ExposureFactor)
	inherentALE := ALE(inherentSLE, input.AnnualizedRateOfOccurrence)

	residualALE := ResidualALE(inherentALE, input.ControlEffectiveness, input.DetectionCapability)
	residualSLE := residualALE / math.Max(input.AnnualizedRateOfOccurrence, aroFloor)

	roi := ControlROI(inherentALE, residualALE, input.ControlCost)
	costBenefit := (inherentALE - residualALE) - input.ControlCost

	// A zero inherent ALE (EF or ARO of zero) leaves nothing to reduce.
	var reduction float64
	if inherentALE > 0 {
		reduction = (inherentALE - residualALE) / inherentALE * 100
	}

	inherentRating := bands.Rate(inherentALE)
	residualRating := bands.Rate(residualALE)

	return model.QuantitativeOutput{
		InherentSLE:        inherentSLE,
		InherentALE:        inherentALE,
		ResidualSLE:        residualSLE,
		ResidualALE:        residualALE,
		ControlROI:         roi,
		CostBenefit:        costBenefit,
		RiskReduction:      reduction,
		RecommendedActions: quantitativeActions(residualRating, roi, costBenefit),
		InherentRating:     inherentRating,
		ResidualRating:     residualRating,
		InherentColor:      inherentRating.Color(),
		ResidualColor:      residualRating.Color(),
	}
}
