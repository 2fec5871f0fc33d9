package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// EntryID is a unique identifier of a risk register entry
type EntryID string

// NewEntryID generates a new random EntryID
func NewEntryID() EntryID {
	return EntryID("risk_" + uuid.NewString())
}

// Validate checks if the EntryID is valid
func (id EntryID) Validate() error {
	if id == "" {
		return goerr.New("entry ID cannot be empty")
	}
	return nil
}

// String returns the string representation of EntryID
func (id EntryID) String() string {
	return string(id)
}
