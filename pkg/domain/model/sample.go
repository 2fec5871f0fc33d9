package model

import (
	"time"

	"github.com/riskops-lab/themis/pkg/domain/types"
)

// SampleEntries returns demo register data for seeding a fresh deployment.
func SampleEntries(now time.Time) []*RiskEntry {
	review := now.AddDate(0, 3, 0)

	qualitative := NewQualitativeResult(
		QualitativeInput{
			AssetName:            "Sistema de Correo Corporativo",
			ThreatDescription:    "Atacantes externos enviando correos de phishing dirigidos",
			Likelihood:           4,
			Impact:               3,
			ControlEffectiveness: 60,
			DetectionCapability:  3,
		},
		QualitativeOutput{
			InherentRisk:       12,
			ResidualRisk:       6,
			InherentRating:     types.RatingAlto,
			ResidualRating:     types.RatingMedio,
			InherentColor:      "orange",
			ResidualColor:      "yellow",
			RiskReduction:      50,
			RecommendedActions: []string{"Capacitación en seguridad", "Filtros de correo avanzados"},
		},
	)

	quantitative := NewQuantitativeResult(
		QuantitativeInput{
			AssetName:                  "Base de Datos de Clientes",
			AssetValue:                 500000,
			ThreatDescription:          "Fallo técnico en infraestructura de backup",
			ExposureFactor:             30,
			AnnualizedRateOfOccurrence: 0.3,
			ControlCost:                10000,
			ControlEffectiveness:       70,
			DetectionCapability:        4,
		},
		QuantitativeOutput{
			InherentSLE:        150000,
			InherentALE:        45000,
			ResidualSLE:        75000,
			ResidualALE:        22500,
			ControlROI:         125,
			CostBenefit:        12500,
			RiskReduction:      50,
			RecommendedActions: []string{"Implementar backup redundante", "Monitoreo proactivo"},
			InherentRating:     types.RatingMedio,
			ResidualRating:     types.RatingBajo,
			InherentColor:      "yellow",
			ResidualColor:      "green",
		},
	)

	return []*RiskEntry{
		{
			ID:                "demo_001",
			Name:              "Ataque de Phishing a Empleados",
			Description:       "Riesgo de compromiso de credenciales mediante correos maliciosos",
			AssetName:         qualitative.AssetName(),
			ThreatDescription: qualitative.ThreatDescription(),
			Assessment:        qualitative,
			Status:            types.StatusActive,
			Owner:             "Equipo de Seguridad IT",
			ReviewDate:        review,
			CreatedAt:         now,
			UpdatedAt:         now,
			Notes:             "Riesgo identificado en auditoría de seguridad - Requiere capacitación urgente",
		},
		{
			ID:                "demo_002",
			Name:              "Fallo del Sistema de Backup",
			Description:       "Pérdida de datos por fallo en el sistema de respaldo",
			AssetName:         quantitative.AssetName(),
			ThreatDescription: quantitative.ThreatDescription(),
			Assessment:        quantitative,
			Status:            types.StatusMitigated,
			Owner:             "Administrador de Sistemas",
			ReviewDate:        review,
			CreatedAt:         now,
			UpdatedAt:         now,
			Notes:             "Controles implementados - Sistema de backup redundante operativo",
		},
	}
}
