package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for model validation
var (
	ErrInvalidInput    = goerr.New("invalid assessment input")
	ErrInvalidResult   = goerr.New("invalid assessment result")
	ErrEntryNotFound   = goerr.New("register entry not found")
	ErrEmptyVariant    = goerr.New("result has no live variant")
	ErrVariantMismatch = goerr.New("result variant does not match type tag")
)
