package risk_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

func TestRateScore(t *testing.T) {
	cases := []struct {
		score  float64
		rating types.Rating
	}{
		{1, types.RatingBajo},
		{5, types.RatingBajo}, // boundary is inclusive
		{5.01, types.RatingMedio},
		{10, types.RatingMedio},
		{10.5, types.RatingAlto},
		{15, types.RatingAlto},
		{15.01, types.RatingCritico},
		{25, types.RatingCritico},
	}

	for _, tc := range cases {
		gt.Value(t, risk.RateScore(tc.score)).Equal(tc.rating)
	}
}

func TestRateScore_Guards(t *testing.T) {
	gt.Value(t, risk.RateScore(-1)).Equal(types.Rating(""))
	gt.Value(t, risk.RateScore(math.NaN())).Equal(types.Rating(""))
	gt.Value(t, risk.RateScore(math.Inf(1))).Equal(types.Rating(""))

	gt.Value(t, types.Rating("").Color()).Equal("gray")
}

func TestMonetaryBands_Rate(t *testing.T) {
	bands := risk.DefaultMonetaryBands()

	cases := []struct {
		ale    float64
		rating types.Rating
	}{
		{0, types.RatingBajo},
		{9999.99, types.RatingBajo},
		{10000, types.RatingMedio}, // boundary is exclusive
		{49999.99, types.RatingMedio},
		{50000, types.RatingAlto},
		{199999.99, types.RatingAlto},
		{200000, types.RatingCritico},
		{1e9, types.RatingCritico},
	}

	for _, tc := range cases {
		gt.Value(t, bands.Rate(tc.ale)).Equal(tc.rating)
	}
}

func TestMonetaryBands_Custom(t *testing.T) {
	bands := risk.MonetaryBands{Low: 1000, Medium: 5000, High: 20000}

	gt.Value(t, bands.Rate(999)).Equal(types.RatingBajo)
	gt.Value(t, bands.Rate(1000)).Equal(types.RatingMedio)
	gt.Value(t, bands.Rate(20000)).Equal(types.RatingCritico)
}
