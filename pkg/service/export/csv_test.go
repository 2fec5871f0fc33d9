package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/service/export"
)

func TestToCSV_Header(t *testing.T) {
	text := export.ToCSV(nil)

	lines := strings.Split(text, "\n")
	gt.Array(t, lines).Length(1)
	gt.Value(t, lines[0]).Equal(`"ID","Nombre","Descripción","Activo","Amenaza","Tipo","Estado","Propietario","Riesgo Inherente","Riesgo Residual","Calificación Inherente","Calificación Residual","Reducción %","Fecha Creación","Fecha Revisión","Notas"`)
}

func TestToCSV_Rows(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := model.SampleEntries(now)

	text := export.ToCSV(entries)
	lines := strings.Split(text, "\n")
	gt.Array(t, lines).Length(3)

	qualitative := strings.Split(lines[1], ",")
	gt.Value(t, qualitative[0]).Equal(`"demo_001"`)
	gt.Value(t, qualitative[1]).Equal(`"Ataque de Phishing a Empleados"`)
	gt.Value(t, qualitative[5]).Equal(`"Cualitativo"`)
	gt.Value(t, qualitative[6]).Equal(`"Activo"`)
	gt.Value(t, qualitative[8]).Equal(`"12"`)
	gt.Value(t, qualitative[9]).Equal(`"6"`)
	gt.Value(t, qualitative[10]).Equal(`"Alto"`)
	gt.Value(t, qualitative[11]).Equal(`"Medio"`)
	gt.Value(t, qualitative[12]).Equal(`"50.0%"`)

	// Dates render day/month/year without zero padding
	gt.Value(t, qualitative[13]).Equal(`"1/6/2025"`)
	gt.Value(t, qualitative[14]).Equal(`"1/9/2025"`)

	// Quantitative magnitudes render as es-ES currency
	quantitative := lines[2]
	gt.Bool(t, strings.Contains(quantitative, `"45.000 €"`)).True()
	gt.Bool(t, strings.Contains(quantitative, `"22.500 €"`)).True()
	gt.Bool(t, strings.Contains(quantitative, `"Cuantitativo"`)).True()
	gt.Bool(t, strings.Contains(quantitative, `"Mitigado"`)).True()
}

func TestToCSV_AllCellsQuoted(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	text := export.ToCSV(model.SampleEntries(now))

	for _, line := range strings.Split(text, "\n") {
		gt.Bool(t, strings.HasPrefix(line, `"`)).True()
		gt.Bool(t, strings.HasSuffix(line, `"`)).True()
	}
}
