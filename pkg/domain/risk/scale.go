package risk

// LikelihoodDescription returns the Spanish label for a 1-5 likelihood level.
func LikelihoodDescription(level int) string {
	descriptions := []string{
		"", // 0 is not used
		"Muy Improbable",
		"Improbable",
		"Posible",
		"Probable",
		"Muy Probable",
	}
	if level < 1 || level >= len(descriptions) {
		return "No definido"
	}
	return descriptions[level]
}

// ImpactDescription returns the Spanish label for a 1-5 impact level.
func ImpactDescription(level int) string {
	descriptions := []string{
		"", // 0 is not used
		"Insignificante",
		"Menor",
		"Moderado",
		"Mayor",
		"Catastrófico",
	}
	if level < 1 || level >= len(descriptions) {
		return "No definido"
	}
	return descriptions[level]
}
