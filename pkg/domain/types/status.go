package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskStatus represents the treatment state of a register entry
type RiskStatus string

const (
	StatusActive      RiskStatus = "active"
	StatusMitigated   RiskStatus = "mitigated"
	StatusAccepted    RiskStatus = "accepted"
	StatusTransferred RiskStatus = "transferred"
)

// Validate checks if the RiskStatus is valid
func (s RiskStatus) Validate() error {
	switch s {
	case StatusActive, StatusMitigated, StatusAccepted, StatusTransferred:
		return nil
	default:
		return goerr.New("invalid risk status", goerr.V("status", s))
	}
}

// String returns the string representation of RiskStatus
func (s RiskStatus) String() string {
	return string(s)
}

// Label returns the Spanish display label for the status
func (s RiskStatus) Label() string {
	switch s {
	case StatusActive:
		return "Activo"
	case StatusMitigated:
		return "Mitigado"
	case StatusAccepted:
		return "Aceptado"
	case StatusTransferred:
		return "Transferido"
	default:
		return "Desconocido"
	}
}

// Color returns the display color associated with the status
func (s RiskStatus) Color() string {
	switch s {
	case StatusActive:
		return "red"
	case StatusMitigated:
		return "green"
	case StatusAccepted:
		return "yellow"
	case StatusTransferred:
		return "blue"
	default:
		return "gray"
	}
}
