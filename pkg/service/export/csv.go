// Package export converts the risk register to and from its exchange
// formats: the 16-column Spanish CSV and the versioned JSON envelope.
package export

import (
	"strconv"
	"strings"

	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
)

// csvHeaders is the fixed column set of the register CSV, in contract order.
var csvHeaders = []string{
	"ID",
	"Nombre",
	"Descripción",
	"Activo",
	"Amenaza",
	"Tipo",
	"Estado",
	"Propietario",
	"Riesgo Inherente",
	"Riesgo Residual",
	"Calificación Inherente",
	"Calificación Residual",
	"Reducción %",
	"Fecha Creación",
	"Fecha Revisión",
	"Notas",
}

// csvDateLayout renders dates as es-ES day/month/year without zero padding
const csvDateLayout = "2/1/2006"

// ToCSV renders the register as CSV text. Every cell is double-quoted;
// embedded double quotes are NOT escaped, which corrupts rows containing
// them. Known limitation of the documented format, kept as-is.
func ToCSV(entries []*model.RiskEntry) string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, csvHeaders)

	for _, entry := range entries {
		rows = append(rows, []string{
			entry.ID.String(),
			entry.Name,
			entry.Description,
			entry.AssetName,
			entry.ThreatDescription,
			entry.Type().Label(),
			entry.Status.Label(),
			entry.Owner,
			inherentValue(entry),
			residualValue(entry),
			entry.Assessment.InherentRating().String(),
			entry.Assessment.ResidualRating().String(),
			risk.FormatPercentage(entry.Assessment.RiskReduction()),
			entry.CreatedAt.Format(csvDateLayout),
			entry.ReviewDate.Format(csvDateLayout),
			entry.Notes,
		})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = `"` + cell + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// inherentValue renders the inherent magnitude: raw ordinal score for
// qualitative entries, formatted currency for quantitative ones.
func inherentValue(entry *model.RiskEntry) string {
	switch entry.Type() {
	case types.RiskTypeQualitative:
		return strconv.Itoa(entry.Assessment.Qualitative.Output.InherentRisk)
	case types.RiskTypeQuantitative:
		return risk.FormatCurrency(entry.Assessment.Quantitative.Output.InherentALE)
	}
	return ""
}

func residualValue(entry *model.RiskEntry) string {
	switch entry.Type() {
	case types.RiskTypeQualitative:
		return formatScore(entry.Assessment.Qualitative.Output.ResidualRisk)
	case types.RiskTypeQuantitative:
		return risk.FormatCurrency(entry.Assessment.Quantitative.Output.ResidualALE)
	}
	return ""
}

// formatScore renders a residual score the shortest way the value allows
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
