// Package risk implements the assessment and classification engine:
// qualitative (ordinal) and quantitative (loss expectancy) scoring, rating
// classification, recommendation catalogs and heatmap aggregation.
package risk

import (
	"math"

	"github.com/riskops-lab/themis/pkg/domain/types"
)

// RateScore classifies an ordinal risk score (1-25) into a rating band.
// Boundaries are inclusive: a score of exactly 5 is Bajo, 5.01 is Medio.
// Negative or non-finite scores yield the zero Rating (gray).
func RateScore(score float64) types.Rating {
	if !finite(score) {
		return ""
	}
	if score <= 5 {
		return types.RatingBajo
	}
	if score <= 10 {
		return types.RatingMedio
	}
	if score <= 15 {
		return types.RatingAlto
	}
	return types.RatingCritico
}

// MonetaryBands holds the ALE thresholds that separate the monetary rating
// bands. Upper boundaries are exclusive: an ALE of exactly Low is Medio.
type MonetaryBands struct {
	Low    float64
	Medium float64
	High   float64
}

// DefaultMonetaryBands returns the standard organizational thresholds.
func DefaultMonetaryBands() MonetaryBands {
	return MonetaryBands{
		Low:    10000,
		Medium: 50000,
		High:   200000,
	}
}

// Rate classifies an annualized loss expectancy into a rating band.
// Negative or non-finite values yield the zero Rating (gray).
func (b MonetaryBands) Rate(ale float64) types.Rating {
	if !finite(ale) {
		return ""
	}
	if ale < b.Low {
		return types.RatingBajo
	}
	if ale < b.Medium {
		return types.RatingMedio
	}
	if ale < b.High {
		return types.RatingAlto
	}
	return types.RatingCritico
}

func finite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
