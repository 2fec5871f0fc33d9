package export

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
)

// EnvelopeVersion identifies the register exchange format
const EnvelopeVersion = "1.0"

// ErrInvalidImportFormat is returned when imported text is not valid JSON
// or lacks the risks array.
var ErrInvalidImportFormat = goerr.New("invalid register import format")

// Envelope is the JSON exchange wrapper around a register snapshot.
type Envelope struct {
	ExportDate time.Time          `json:"exportDate"`
	Version    string             `json:"version"`
	TotalRisks int                `json:"totalRisks"`
	Risks      []*model.RiskEntry `json:"risks"`
}

// ToJSON renders the register as a versioned JSON envelope with ISO-8601
// date fields.
func ToJSON(entries []*model.RiskEntry, now time.Time) ([]byte, error) {
	if entries == nil {
		entries = []*model.RiskEntry{}
	}
	envelope := Envelope{
		ExportDate: now,
		Version:    EnvelopeVersion,
		TotalRisks: len(entries),
		Risks:      entries,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize register envelope")
	}
	return data, nil
}

// FromJSON parses an exported envelope back into register entries. The
// risks field must be present and an array; entry fields are passed through
// as trusted, with only the variant resolution and date parsing applied.
func FromJSON(data []byte) ([]*model.RiskEntry, error) {
	var probe struct {
		Risks json.RawMessage `json:"risks"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, goerr.Wrap(ErrInvalidImportFormat, "not valid JSON", goerr.V("cause", err.Error()))
	}
	if len(probe.Risks) == 0 || string(probe.Risks) == "null" {
		return nil, goerr.Wrap(ErrInvalidImportFormat, "se esperaba un array de riesgos")
	}

	var entries []*model.RiskEntry
	if err := json.Unmarshal(probe.Risks, &entries); err != nil {
		return nil, goerr.Wrap(ErrInvalidImportFormat, "se esperaba un array de riesgos", goerr.V("cause", err.Error()))
	}
	return entries, nil
}
