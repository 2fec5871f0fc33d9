package risk_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

func qualitativeEntry(t *testing.T, likelihood, impact int) *model.RiskEntry {
	t.Helper()

	input := model.QualitativeInput{
		AssetName:           "asset",
		ThreatDescription:   "threat",
		Likelihood:          likelihood,
		Impact:              impact,
		DetectionCapability: 1,
	}
	result := model.NewQualitativeResult(input, risk.AssessQualitative(input))

	entry, err := model.NewRiskEntry(result, "entry", "", "", "", time.Now())
	gt.NoError(t, err).Required()
	return entry
}

func TestGenerateHeatmap_Shape(t *testing.T) {
	matrix := risk.GenerateHeatmap(nil)

	gt.Array(t, matrix).Length(5)
	for _, row := range matrix {
		gt.Array(t, row).Length(5)
	}

	// Rows run likelihood 5 down to 1, columns impact 1 to 5
	gt.Value(t, matrix[0][0].Likelihood).Equal(5)
	gt.Value(t, matrix[0][0].Impact).Equal(1)
	gt.Value(t, matrix[4][4].Likelihood).Equal(1)
	gt.Value(t, matrix[4][4].Impact).Equal(5)

	// Every cell carries score, rating and color
	gt.Value(t, matrix[0][4].RiskScore).Equal(25)
	gt.Value(t, matrix[0][4].Rating).Equal(types.RatingCritico)
	gt.Value(t, matrix[0][4].Color).Equal("red")
	gt.Value(t, matrix[4][0].RiskScore).Equal(1)
	gt.Value(t, matrix[4][0].Rating).Equal(types.RatingBajo)
	gt.Value(t, matrix[4][0].Color).Equal("green")
}

func TestGenerateHeatmap_Counts(t *testing.T) {
	entries := []*model.RiskEntry{
		qualitativeEntry(t, 3, 4),
		qualitativeEntry(t, 3, 4),
		qualitativeEntry(t, 5, 5),
	}

	matrix := risk.GenerateHeatmap(entries)

	for _, row := range matrix {
		for _, cell := range row {
			switch {
			case cell.Likelihood == 3 && cell.Impact == 4:
				gt.Value(t, cell.Count).Equal(2)
			case cell.Likelihood == 5 && cell.Impact == 5:
				gt.Value(t, cell.Count).Equal(1)
			default:
				gt.Value(t, cell.Count).Equal(0)
			}
		}
	}
}

func TestGenerateHeatmap_IgnoresQuantitative(t *testing.T) {
	input := model.QuantitativeInput{
		AssetName:                  "asset",
		ThreatDescription:          "threat",
		AssetValue:                 100000,
		ExposureFactor:             50,
		AnnualizedRateOfOccurrence: 1,
		DetectionCapability:        1,
	}
	result := model.NewQuantitativeResult(input, risk.AssessQuantitative(input, risk.DefaultMonetaryBands()))
	entry, err := model.NewRiskEntry(result, "entry", "", "", "", time.Now())
	gt.NoError(t, err).Required()

	matrix := risk.GenerateHeatmap([]*model.RiskEntry{entry})
	for _, row := range matrix {
		for _, cell := range row {
			gt.Value(t, cell.Count).Equal(0)
		}
	}
}
