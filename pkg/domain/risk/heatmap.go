package risk

import (
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

// MatrixSize is the number of likelihood and impact levels.
const MatrixSize = 5

// GenerateHeatmap builds the 5×5 likelihood × impact matrix over a register.
// Rows run from likelihood 5 down to 1 (highest at top), columns from impact
// 1 to 5; the ordering is a display convention and part of the contract.
// Only qualitative entries contribute to cell counts.
func GenerateHeatmap(entries []*model.RiskEntry) [][]model.HeatmapCell {
	matrix := make([][]model.HeatmapCell, 0, MatrixSize)

	for likelihood := MatrixSize; likelihood >= 1; likelihood-- {
		row := make([]model.HeatmapCell, 0, MatrixSize)
		for impact := 1; impact <= MatrixSize; impact++ {
			score := InherentScore(likelihood, impact)
			rating := RateScore(float64(score))

			var count int
			for _, entry := range entries {
				if entry.Type() != types.RiskTypeQualitative || entry.Assessment.Qualitative == nil {
					continue
				}
				input := entry.Assessment.Qualitative.Input
				if input.Likelihood == likelihood && input.Impact == impact {
					count++
				}
			}

			row = append(row, model.HeatmapCell{
				Likelihood: likelihood,
				Impact:     impact,
				RiskScore:  score,
				Rating:     rating,
				Color:      rating.Color(),
				Count:      count,
			})
		}
		matrix = append(matrix, row)
	}

	return matrix
}
