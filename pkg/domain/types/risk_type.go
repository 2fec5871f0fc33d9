package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskType discriminates the two assessment methodologies
type RiskType string

const (
	RiskTypeQualitative  RiskType = "qualitative"
	RiskTypeQuantitative RiskType = "quantitative"
)

// Validate checks if the RiskType is valid
func (t RiskType) Validate() error {
	switch t {
	case RiskTypeQualitative, RiskTypeQuantitative:
		return nil
	default:
		return goerr.New("invalid risk type", goerr.V("type", t))
	}
}

// String returns the string representation of RiskType
func (t RiskType) String() string {
	return string(t)
}

// Label returns the Spanish display label for the risk type
func (t RiskType) Label() string {
	switch t {
	case RiskTypeQualitative:
		return "Cualitativo"
	case RiskTypeQuantitative:
		return "Cuantitativo"
	default:
		return string(t)
	}
}
