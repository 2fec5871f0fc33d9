package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/urfave/cli/v3"
)

// Thresholds holds CLI flags for rating threshold configuration. The
// monetary bands that classify annualized loss expectancy and the register
// review interval can be tuned per deployment through a TOML file; the
// ordinal thresholds are fixed by the 5×5 methodology and are not
// configurable.
type Thresholds struct {
	path string
}

// Settings is the parsed threshold configuration
type Settings struct {
	Bands          risk.MonetaryBands
	ReviewInterval time.Duration
}

type thresholdsFile struct {
	Monetary struct {
		Low    float64 `toml:"low"`
		Medium float64 `toml:"medium"`
		High   float64 `toml:"high"`
	} `toml:"monetary"`
	Register struct {
		ReviewDays int `toml:"review_days"`
	} `toml:"register"`
}

// Flags returns CLI flags for threshold configuration
func (t *Thresholds) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "thresholds",
			Usage:       "TOML file overriding the monetary rating thresholds",
			Category:    "Rating",
			Sources:     cli.EnvVars("THEMIS_THRESHOLDS"),
			Destination: &t.path,
		},
	}
}

// Configure loads the threshold settings, falling back to the defaults when
// no file is given.
func (t *Thresholds) Configure() (Settings, error) {
	settings := Settings{
		Bands:          risk.DefaultMonetaryBands(),
		ReviewInterval: model.DefaultReviewInterval,
	}
	if t.path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return Settings{}, goerr.Wrap(err, "failed to read thresholds file", goerr.V("path", t.path))
	}

	var file thresholdsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Settings{}, goerr.Wrap(err, "failed to parse thresholds file", goerr.V("path", t.path))
	}

	bands := risk.MonetaryBands{
		Low:    file.Monetary.Low,
		Medium: file.Monetary.Medium,
		High:   file.Monetary.High,
	}
	if bands.Low <= 0 || bands.Medium <= bands.Low || bands.High <= bands.Medium {
		return Settings{}, goerr.Wrap(ErrInvalidThresholds,
			"monetary thresholds must be positive and strictly ascending",
			goerr.V("low", bands.Low), goerr.V("medium", bands.Medium), goerr.V("high", bands.High))
	}
	settings.Bands = bands

	if days := file.Register.ReviewDays; days != 0 {
		if days < 0 {
			return Settings{}, goerr.Wrap(ErrInvalidThresholds,
				"review_days must be positive", goerr.V("review_days", days))
		}
		settings.ReviewInterval = time.Duration(days) * 24 * time.Hour
	}
	return settings, nil
}
