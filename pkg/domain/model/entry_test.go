package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

func testResult(t *testing.T) model.RiskResult {
	t.Helper()

	input := model.QualitativeInput{
		AssetName:            "Servidor web",
		ThreatDescription:    "Explotación de vulnerabilidad",
		Likelihood:           4,
		Impact:               3,
		ControlEffectiveness: 60,
		DetectionCapability:  3,
	}
	return model.NewQualitativeResult(input, risk.AssessQualitative(input))
}

func TestNewRiskEntry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry, err := model.NewRiskEntry(testResult(t), "Riesgo web", "desc", "equipo-seguridad", "nota", now)
	gt.NoError(t, err).Required()

	gt.Bool(t, strings.HasPrefix(entry.ID.String(), "risk_")).True()
	gt.Value(t, entry.Name).Equal("Riesgo web")
	gt.Value(t, entry.AssetName).Equal("Servidor web")
	gt.Value(t, entry.ThreatDescription).Equal("Explotación de vulnerabilidad")
	gt.Value(t, entry.Status).Equal(types.StatusActive)
	gt.Value(t, entry.Owner).Equal("equipo-seguridad")
	gt.Bool(t, entry.CreatedAt.Equal(now)).True()
	gt.Bool(t, entry.UpdatedAt.Equal(now)).True()

	// Review defaults to 90 days out
	gt.Bool(t, entry.ReviewDate.Equal(now.Add(90*24*time.Hour))).True()
	gt.Value(t, entry.DaysUntilReview(now)).Equal(90)
}

func TestNewRiskEntry_UniqueIDs(t *testing.T) {
	now := time.Now()

	a, err := model.NewRiskEntry(testResult(t), "a", "", "", "", now)
	gt.NoError(t, err).Required()
	b, err := model.NewRiskEntry(testResult(t), "b", "", "", "", now)
	gt.NoError(t, err).Required()

	gt.Value(t, a.ID).NotEqual(b.ID)
}

func TestNewRiskEntry_Invalid(t *testing.T) {
	now := time.Now()

	t.Run("empty name", func(t *testing.T) {
		_, err := model.NewRiskEntry(testResult(t), "", "", "", "", now)
		gt.Error(t, err)
	})

	t.Run("invalid result", func(t *testing.T) {
		_, err := model.NewRiskEntry(model.RiskResult{Type: types.RiskTypeQualitative}, "x", "", "", "", now)
		gt.Error(t, err)
	})
}

func TestRiskEntry_Clone(t *testing.T) {
	entry, err := model.NewRiskEntry(testResult(t), "original", "", "", "", time.Now())
	gt.NoError(t, err).Required()

	clone := entry.Clone()
	clone.Name = "changed"
	clone.Assessment.Qualitative.Output.RecommendedActions[0] = "changed"

	gt.Value(t, entry.Name).Equal("original")
	gt.Value(t, entry.Assessment.Qualitative.Output.RecommendedActions[0]).NotEqual("changed")
}

func TestRiskEntry_WireRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entry, err := model.NewRiskEntry(testResult(t), "Riesgo web", "desc", "owner", "nota", now)
	gt.NoError(t, err).Required()
	entry.Status = types.StatusMitigated

	data, err := json.Marshal(entry)
	gt.NoError(t, err).Required()

	// The wire shape splits the assessment into type, result and input
	var wire map[string]json.RawMessage
	gt.NoError(t, json.Unmarshal(data, &wire)).Required()
	gt.Value(t, string(wire["type"])).Equal(`"qualitative"`)
	gt.Bool(t, wire["result"] != nil).True()
	gt.Bool(t, wire["input"] != nil).True()

	var decoded model.RiskEntry
	gt.NoError(t, json.Unmarshal(data, &decoded)).Required()

	gt.Value(t, decoded.ID).Equal(entry.ID)
	gt.Value(t, decoded.Name).Equal(entry.Name)
	gt.Value(t, decoded.Status).Equal(types.StatusMitigated)
	gt.Value(t, decoded.Type()).Equal(types.RiskTypeQualitative)
	gt.Value(t, decoded.Assessment.Qualitative.Input).Equal(entry.Assessment.Qualitative.Input)
	gt.Value(t, decoded.Assessment.Qualitative.Output.InherentRisk).Equal(entry.Assessment.Qualitative.Output.InherentRisk)
	gt.Bool(t, decoded.CreatedAt.Equal(entry.CreatedAt)).True()
	gt.Bool(t, decoded.ReviewDate.Equal(entry.ReviewDate)).True()
}

func TestRiskEntry_WireRoundTrip_Quantitative(t *testing.T) {
	input := model.QuantitativeInput{
		AssetName:                  "Plataforma",
		ThreatDescription:          "Fuga de datos",
		AssetValue:                 500000,
		ExposureFactor:             30,
		AnnualizedRateOfOccurrence: 0.3,
		ControlCost:                10000,
		ControlEffectiveness:       70,
		DetectionCapability:        4,
	}
	result := model.NewQuantitativeResult(input, risk.AssessQuantitative(input, risk.DefaultMonetaryBands()))

	entry, err := model.NewRiskEntry(result, "Riesgo pagos", "", "", "", time.Now())
	gt.NoError(t, err).Required()

	data, err := json.Marshal(entry)
	gt.NoError(t, err).Required()

	var decoded model.RiskEntry
	gt.NoError(t, json.Unmarshal(data, &decoded)).Required()

	gt.Value(t, decoded.Type()).Equal(types.RiskTypeQuantitative)
	gt.Value(t, decoded.Assessment.Quantitative.Input).Equal(input)
	gt.Value(t, decoded.Assessment.Quantitative.Output.InherentALE).Equal(result.Quantitative.Output.InherentALE)
}

func TestRiskEntry_UnmarshalBadType(t *testing.T) {
	var entry model.RiskEntry
	err := json.Unmarshal([]byte(`{"id":"risk_x","type":"hybrid"}`), &entry)
	gt.Error(t, err)
}
