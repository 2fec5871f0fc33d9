package risk

import (
	"fmt"

	"github.com/riskops-lab/themis/pkg/domain/types"
)

// qualitativeActions returns the fixed ordered action list for a residual
// rating band. Urgency and count grow strictly with the band.
func qualitativeActions(rating types.Rating) []string {
	switch rating {
	case types.RatingBajo:
		return []string{
			"Aceptar el riesgo con monitoreo periódico",
			"Mantener controles actuales",
			"Revisar anualmente",
		}
	case types.RatingMedio:
		return []string{
			"Mitigar mediante controles adicionales",
			"Evaluar costo-beneficio de tratamiento",
			"Monitorear trimestralmente",
			"Considerar transferencia si es aplicable",
		}
	case types.RatingAlto:
		return []string{
			"Mitigar urgentemente",
			"Implementar controles compensatorios",
			"Evaluar transferencia del riesgo",
			"Monitorear mensualmente",
			"Revisar efectividad de controles",
		}
	case types.RatingCritico:
		return []string{
			"Acción inmediata requerida",
			"Implementar controles de emergencia",
			"Considerar evitar la actividad",
			"Transferir el riesgo si es posible",
			"Monitoreo continuo hasta mitigación",
			"Escalamiento a alta dirección",
		}
	default:
		return []string{"Evaluar riesgo apropiadamente"}
	}
}

// quantitativeActions concatenates three recommendation groups, always in
// this order: residual band, ROI bracket, cost-benefit statement.
func quantitativeActions(rating types.Rating, controlROI, costBenefit float64) []string {
	var actions []string

	switch rating {
	case types.RatingBajo:
		actions = append(actions,
			"Aceptar riesgo con monitoreo básico",
			"Revisar anualmente los controles actuales")
	case types.RatingMedio:
		actions = append(actions,
			"Evaluar controles adicionales costo-efectivos",
			"Considerar transferencia mediante seguros")
	case types.RatingAlto:
		actions = append(actions,
			"Implementar controles de mitigación prioritarios",
			"Evaluar urgentemente opciones de transferencia")
	case types.RatingCritico:
		actions = append(actions,
			"Acción inmediata requerida - riesgo inaceptable",
			"Implementar controles de emergencia")
	}

	switch {
	case controlROI > 100:
		actions = append(actions, "ROI excelente - implementar controles inmediatamente")
	case controlROI > 50:
		actions = append(actions, "ROI positivo - controles recomendados")
	case controlROI > 0:
		actions = append(actions, "ROI marginal - evaluar alternativas")
	default:
		actions = append(actions, "ROI negativo - buscar opciones más costo-efectivas")
	}

	if costBenefit > 0 {
		actions = append(actions, fmt.Sprintf("Beneficio neto positivo: $%s", FormatNumber(costBenefit)))
	} else {
		actions = append(actions, "Costo de controles excede beneficio esperado")
	}

	return actions
}
