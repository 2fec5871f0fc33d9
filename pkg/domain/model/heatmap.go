package model

import (
	"github.com/riskops-lab/themis/pkg/domain/types"
)

// HeatmapCell is one cell of the 5×5 likelihood × impact matrix. Count is
// the number of qualitative register entries that land exactly on this cell;
// zero means "no data" and is omitted from JSON rather than emitted as 0.
type HeatmapCell struct {
	Likelihood int          `json:"likelihood"`
	Impact     int          `json:"impact"`
	RiskScore  int          `json:"riskScore"`
	Rating     types.Rating `json:"rating"`
	Color      string       `json:"color"`
	Count      int          `json:"count,omitempty"`
}
