package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrInvalidThresholds = goerr.New("invalid rating thresholds")
)
