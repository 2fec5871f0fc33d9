package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Rating is a discrete risk severity band. The zero value marks a score the
// classifier refused to rate (negative or non-finite input) and renders gray.
type Rating string

const (
	RatingBajo    Rating = "Bajo"
	RatingMedio   Rating = "Medio"
	RatingAlto    Rating = "Alto"
	RatingCritico Rating = "Crítico"
)

// Validate checks if the Rating is valid
func (r Rating) Validate() error {
	switch r {
	case RatingBajo, RatingMedio, RatingAlto, RatingCritico:
		return nil
	default:
		return goerr.New("invalid rating", goerr.V("rating", r))
	}
}

// String returns the string representation of Rating
func (r Rating) String() string {
	return string(r)
}

// Color returns the display color for the rating band
func (r Rating) Color() string {
	switch r {
	case RatingBajo:
		return "green"
	case RatingMedio:
		return "yellow"
	case RatingAlto:
		return "orange"
	case RatingCritico:
		return "red"
	default:
		return "gray"
	}
}

// Severity returns the ordinal position of the band, for monotonicity
// comparisons. Higher is worse. The zero Rating yields 0.
func (r Rating) Severity() int {
	switch r {
	case RatingBajo:
		return 1
	case RatingMedio:
		return 2
	case RatingAlto:
		return 3
	case RatingCritico:
		return 4
	default:
		return 0
	}
}
