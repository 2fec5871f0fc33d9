package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
	"github.com/riskops-lab/themis/pkg/repository/memory"
	"github.com/riskops-lab/themis/pkg/usecase"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(), usecase.WithClock(func() time.Time { return fixedNow }))
}

func qualitativeInput() model.QualitativeInput {
	return model.QualitativeInput{
		AssetName:            "Servidor web",
		ThreatDescription:    "Explotación de vulnerabilidad",
		Likelihood:           4,
		Impact:               3,
		ControlEffectiveness: 60,
		DetectionCapability:  3,
	}
}

func quantitativeInput() model.QuantitativeInput {
	return model.QuantitativeInput{
		AssetName:                  "Base de datos",
		ThreatDescription:          "Fuga de datos",
		AssetValue:                 500000,
		ExposureFactor:             30,
		AnnualizedRateOfOccurrence: 0.3,
		ControlCost:                10000,
		ControlEffectiveness:       70,
		DetectionCapability:        4,
	}
}

func TestAssessUseCase(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	t.Run("qualitative", func(t *testing.T) {
		result, err := ucs.Assess.Qualitative(ctx, qualitativeInput())
		gt.NoError(t, err).Required()
		gt.Value(t, result.Type).Equal(types.RiskTypeQualitative)
		gt.Value(t, result.Qualitative.Output.InherentRisk).Equal(12)
	})

	t.Run("qualitative rejects bad input", func(t *testing.T) {
		input := qualitativeInput()
		input.Likelihood = 9
		_, err := ucs.Assess.Qualitative(ctx, input)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrInvalidInput)).True()
	})

	t.Run("quantitative", func(t *testing.T) {
		result, err := ucs.Assess.Quantitative(ctx, quantitativeInput())
		gt.NoError(t, err).Required()
		gt.Value(t, result.Type).Equal(types.RiskTypeQuantitative)
		gt.Value(t, result.Quantitative.Output.InherentALE).Equal(float64(45000))
		gt.Value(t, result.Quantitative.Output.InherentRating).Equal(types.RatingMedio)
	})

	t.Run("quantitative honors custom bands", func(t *testing.T) {
		strict := usecase.New(memory.New(), usecase.WithMonetaryBands(risk.MonetaryBands{
			Low: 100, Medium: 1000, High: 10000,
		}))
		result, err := strict.Assess.Quantitative(ctx, quantitativeInput())
		gt.NoError(t, err).Required()
		gt.Value(t, result.Quantitative.Output.InherentRating).Equal(types.RatingCritico)
	})
}

func addEntry(t *testing.T, ucs *usecase.UseCases, name string) *model.RiskEntry {
	t.Helper()
	ctx := context.Background()

	result, err := ucs.Assess.Qualitative(ctx, qualitativeInput())
	gt.NoError(t, err).Required()

	entry, err := ucs.Register.Add(ctx, *result, name, "desc", "owner", "")
	gt.NoError(t, err).Required()
	return entry
}

func TestRegisterUseCase_AddAndGet(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	entry := addEntry(t, ucs, "Riesgo web")
	gt.Value(t, entry.Status).Equal(types.StatusActive)
	gt.Bool(t, entry.CreatedAt.Equal(fixedNow)).True()
	gt.Bool(t, entry.ReviewDate.Equal(fixedNow.Add(90*24*time.Hour))).True()

	got, err := ucs.Register.Get(ctx, entry.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("Riesgo web")

	_, err = ucs.Register.Get(ctx, "risk_missing")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrEntryNotFound)).True()
}

func TestRegisterUseCase_ReviewInterval(t *testing.T) {
	ucs := usecase.New(memory.New(),
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithReviewInterval(30*24*time.Hour),
	)

	entry := addEntry(t, ucs, "Riesgo web")
	gt.Bool(t, entry.ReviewDate.Equal(fixedNow.Add(30*24*time.Hour))).True()
}

func TestRegisterUseCase_List(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	a := addEntry(t, ucs, "Riesgo correo")
	b := addEntry(t, ucs, "Riesgo backup")
	_, err := ucs.Register.UpdateStatus(ctx, b.ID, types.StatusMitigated)
	gt.NoError(t, err).Required()

	t.Run("no filter returns everything in order", func(t *testing.T) {
		entries, err := ucs.Register.List(ctx, usecase.Filter{})
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(2)
		gt.Value(t, entries[0].ID).Equal(a.ID)
	})

	t.Run("filter by status", func(t *testing.T) {
		entries, err := ucs.Register.List(ctx, usecase.Filter{Status: types.StatusMitigated})
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(1)
		gt.Value(t, entries[0].ID).Equal(b.ID)
	})

	t.Run("filter by query is case-insensitive", func(t *testing.T) {
		entries, err := ucs.Register.List(ctx, usecase.Filter{Query: "BACKUP"})
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(1)
		gt.Value(t, entries[0].ID).Equal(b.ID)
	})

	t.Run("filter by type", func(t *testing.T) {
		entries, err := ucs.Register.List(ctx, usecase.Filter{Type: types.RiskTypeQuantitative})
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(0)
	})
}

func TestRegisterUseCase_Update(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	entry := addEntry(t, ucs, "antes")

	name := "después"
	owner := "nuevo-dueño"
	updated, err := ucs.Register.Update(ctx, entry.ID, usecase.UpdateInput{
		Name:  &name,
		Owner: &owner,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Name).Equal("después")
	gt.Value(t, updated.Owner).Equal("nuevo-dueño")
	// Untouched fields stay put
	gt.Value(t, updated.Description).Equal("desc")

	t.Run("empty name is rejected", func(t *testing.T) {
		empty := ""
		_, err := ucs.Register.Update(ctx, entry.ID, usecase.UpdateInput{Name: &empty})
		gt.Error(t, err)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		bad := types.RiskStatus("archived")
		_, err := ucs.Register.Update(ctx, entry.ID, usecase.UpdateInput{Status: &bad})
		gt.Error(t, err)
	})

	t.Run("unknown entry", func(t *testing.T) {
		_, err := ucs.Register.Update(ctx, "risk_missing", usecase.UpdateInput{Owner: &owner})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrEntryNotFound)).True()
	})
}

func TestRegisterUseCase_Delete(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	entry := addEntry(t, ucs, "borrable")
	keep := addEntry(t, ucs, "permanente")

	gt.NoError(t, ucs.Register.Delete(ctx, entry.ID)).Required()

	entries, err := ucs.Register.List(ctx, usecase.Filter{})
	gt.NoError(t, err).Required()
	gt.Array(t, entries).Length(1)
	gt.Value(t, entries[0].ID).Equal(keep.ID)

	err = ucs.Register.Delete(ctx, entry.ID)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrEntryNotFound)).True()
}

func TestRegisterUseCase_Heatmap(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	addEntry(t, ucs, "uno")
	addEntry(t, ucs, "dos")

	matrix, err := ucs.Register.Heatmap(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, matrix).Length(5)

	// Both entries land on likelihood 4, impact 3
	for _, row := range matrix {
		for _, cell := range row {
			if cell.Likelihood == 4 && cell.Impact == 3 {
				gt.Value(t, cell.Count).Equal(2)
			}
		}
	}
}

func TestRegisterUseCase_ExportImport(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	addEntry(t, ucs, "exportable")

	data, err := ucs.Register.ExportJSON(ctx)
	gt.NoError(t, err).Required()

	csv, err := ucs.Register.ExportCSV(ctx)
	gt.NoError(t, err).Required()
	gt.Bool(t, len(csv) > 0).True()

	// Import into a fresh register replaces its contents
	other := newUseCases(t)
	addEntry(t, other, "se pierde")

	count, err := other.Register.ImportJSON(ctx, data)
	gt.NoError(t, err).Required()
	gt.Value(t, count).Equal(1)

	entries, err := other.Register.List(ctx, usecase.Filter{})
	gt.NoError(t, err).Required()
	gt.Array(t, entries).Length(1)
	gt.Value(t, entries[0].Name).Equal("exportable")

	t.Run("invalid payload is rejected", func(t *testing.T) {
		_, err := other.Register.ImportJSON(ctx, []byte(`{"version":"1.0"}`))
		gt.Error(t, err)
	})
}

func TestRegisterUseCase_SeedAndClear(t *testing.T) {
	ucs := newUseCases(t)
	ctx := context.Background()

	count, err := ucs.Register.Seed(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, count).Equal(2)

	entries, err := ucs.Register.List(ctx, usecase.Filter{})
	gt.NoError(t, err).Required()
	gt.Array(t, entries).Length(2)
	gt.Value(t, entries[0].ID).Equal(types.EntryID("demo_001"))

	// Seeding a non-empty register is refused
	_, err = ucs.Register.Seed(ctx)
	gt.Error(t, err)

	gt.NoError(t, ucs.Register.Clear(ctx)).Required()
	entries, err = ucs.Register.List(ctx, usecase.Filter{})
	gt.NoError(t, err).Required()
	gt.Array(t, entries).Length(0)
}
