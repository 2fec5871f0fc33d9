package risk

// CVSSMapping relates a CVSS score ceiling to a severity label and an
// impact multiplier for translating vulnerability scores into the matrix.
type CVSSMapping struct {
	Score            float64
	Severity         string
	Description      string
	ImpactMultiplier float64
}

var cvssMappings = []CVSSMapping{
	{Score: 0.1, Severity: "Informativo", Description: "Sin impacto directo en seguridad", ImpactMultiplier: 0.2},
	{Score: 3.9, Severity: "Baja", Description: "Impacto mínimo en operaciones", ImpactMultiplier: 0.6},
	{Score: 6.9, Severity: "Media", Description: "Impacto moderado en operaciones", ImpactMultiplier: 1.0},
	{Score: 8.9, Severity: "Alta", Description: "Impacto significativo en operaciones", ImpactMultiplier: 1.5},
	{Score: 10.0, Severity: "Crítica", Description: "Impacto severo o completo", ImpactMultiplier: 2.0},
}

// CVSSMappingFor returns the first mapping whose ceiling covers the score,
// falling back to the highest band for out-of-range values.
func CVSSMappingFor(score float64) CVSSMapping {
	for _, m := range cvssMappings {
		if score <= m.Score {
			return m
		}
	}
	return cvssMappings[len(cvssMappings)-1]
}
