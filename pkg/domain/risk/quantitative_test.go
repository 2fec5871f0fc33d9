package risk_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

func TestAssessQuantitative(t *testing.T) {
	bands := risk.DefaultMonetaryBands()

	t.Run("full scenario", func(t *testing.T) {
		out := risk.AssessQuantitative(model.QuantitativeInput{
			AssetName:                  "Plataforma de pagos",
			ThreatDescription:          "Fuga de datos de tarjetas",
			AssetValue:                 500000,
			ExposureFactor:             30,
			AnnualizedRateOfOccurrence: 0.3,
			ControlCost:                10000,
			ControlEffectiveness:       70,
			DetectionCapability:        4,
		}, bands)

		nearly(t, out.InherentSLE, 150000)
		nearly(t, out.InherentALE, 45000)
		gt.Value(t, out.InherentRating).Equal(types.RatingMedio)

		// control 0.7 + detection 0.1125 = 0.8125 total reduction
		nearly(t, out.ResidualALE, 8437.5)
		gt.Value(t, out.ResidualRating).Equal(types.RatingBajo)
		nearly(t, out.ResidualSLE, 8437.5/0.3)

		nearly(t, out.ControlROI, 265.625)
		nearly(t, out.CostBenefit, 26562.5)
		nearly(t, out.RiskReduction, 81.25)
	})

	t.Run("zero control cost defines zero ROI", func(t *testing.T) {
		out := risk.AssessQuantitative(model.QuantitativeInput{
			AssetName: "a", ThreatDescription: "t",
			AssetValue:                 100000,
			ExposureFactor:             50,
			AnnualizedRateOfOccurrence: 1,
			ControlCost:                0,
			ControlEffectiveness:       50,
			DetectionCapability:        1,
		}, bands)

		gt.Value(t, out.ControlROI).Equal(float64(0))
		nearly(t, out.CostBenefit, 25000)
	})

	t.Run("zero ARO yields zero ALE and zero reduction", func(t *testing.T) {
		out := risk.AssessQuantitative(model.QuantitativeInput{
			AssetName: "a", ThreatDescription: "t",
			AssetValue:                 100000,
			ExposureFactor:             50,
			AnnualizedRateOfOccurrence: 0,
			ControlEffectiveness:       80,
			DetectionCapability:        3,
		}, bands)

		gt.Value(t, out.InherentALE).Equal(float64(0))
		gt.Value(t, out.ResidualALE).Equal(float64(0))
		gt.Value(t, out.RiskReduction).Equal(float64(0))
		gt.Value(t, out.InherentRating).Equal(types.RatingBajo)
	})

	t.Run("negative ROI recommends cheaper options", func(t *testing.T) {
		out := risk.AssessQuantitative(model.QuantitativeInput{
			AssetName: "a", ThreatDescription: "t",
			AssetValue:                 10000,
			ExposureFactor:             10,
			AnnualizedRateOfOccurrence: 1,
			ControlCost:                5000,
			ControlEffectiveness:       50,
			DetectionCapability:        1,
		}, bands)

		gt.Number(t, out.ControlROI).Less(0)
		gt.Number(t, out.CostBenefit).Less(0)

		actions := out.RecommendedActions
		gt.Value(t, actions[len(actions)-2]).Equal("ROI negativo - buscar opciones más costo-efectivas")
		gt.Value(t, actions[len(actions)-1]).Equal("Costo de controles excede beneficio esperado")
	})

	t.Run("positive cost benefit is stated with formatted amount", func(t *testing.T) {
		out := risk.AssessQuantitative(model.QuantitativeInput{
			AssetName: "a", ThreatDescription: "t",
			AssetValue:                 500000,
			ExposureFactor:             30,
			AnnualizedRateOfOccurrence: 0.3,
			ControlCost:                10000,
			ControlEffectiveness:       70,
			DetectionCapability:        4,
		}, bands)

		actions := out.RecommendedActions
		gt.Value(t, actions[len(actions)-1]).Equal("Beneficio neto positivo: $26.562,5")
	})
}

func TestResidualALE_DetectionCap(t *testing.T) {
	// Detection alone contributes at most 15% on the monetary scale
	full := risk.ResidualALE(100000, 0, 5)
	nearly(t, full, 85000)

	none := risk.ResidualALE(100000, 0, 1)
	nearly(t, none, 100000)
}
