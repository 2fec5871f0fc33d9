package risk

import (
	"math"

	"github.com/riskops-lab/themis/pkg/domain/model"
)

// Detection capability contributes at most 20% additional reduction on the
// ordinal scale (0.15 on the monetary scale; the asymmetry is deliberate).
const qualitativeDetectionCap = 0.2

// maxTotalReduction caps combined control + detection reduction: residual
// risk can never drop below 5% of inherent.
const maxTotalReduction = 0.95

// InherentScore computes the inherent ordinal risk as likelihood × impact.
func InherentScore(likelihood, impact int) int {
	return likelihood * impact
}

// ResidualScore reduces an inherent score by control effectiveness (0-100)
// and detection capability (1-5), floored at a score of 1.
func ResidualScore(inherent int, controlEffectiveness float64, detectionCapability int) float64 {
	controlReduction := controlEffectiveness / 100
	detectionReduction := float64(detectionCapability-1) / 4 * qualitativeDetectionCap
	totalReduction := math.Min(controlReduction+detectionReduction, maxTotalReduction)
	return math.Max(float64(inherent)*(1-totalReduction), 1)
}

// AssessQualitative runs the full ordinal assessment over a validated input.
func AssessQualitative(input model.QualitativeInput) model.QualitativeOutput {
	inherent := InherentScore(input.Likelihood, input.Impact)
	residual := ResidualScore(inherent, input.ControlEffectiveness, input.DetectionCapability)

	inherentRating := RateScore(float64(inherent))
	residualRating := RateScore(residual)

	reduction := (float64(inherent) - residual) / float64(inherent) * 100

	return model.QualitativeOutput{
		InherentRisk:       inherent,
		ResidualRisk:       residual,
		InherentRating:     inherentRating,
		ResidualRating:     residualRating,
		InherentColor:      inherentRating.Color(),
		ResidualColor:      residualRating.Color(),
		RiskReduction:      reduction,
		RecommendedActions: qualitativeActions(residualRating),
	}
}
