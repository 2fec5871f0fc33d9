package usecase

import (
	"time"

	"github.com/riskops-lab/themis/pkg/domain/interfaces"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
)

// UseCases bundles the application use cases behind a single entry point.
type UseCases struct {
	Assess   *AssessUseCase
	Register *RegisterUseCase
}

type Option func(*config)

type config struct {
	bands  risk.MonetaryBands
	clock  func() time.Time
	review time.Duration
}

// WithMonetaryBands overrides the ALE classification thresholds
func WithMonetaryBands(bands risk.MonetaryBands) Option {
	return func(c *config) {
		c.bands = bands
	}
}

// WithClock overrides the time source, mainly for tests
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithReviewInterval overrides how far in the future the review date of a
// newly registered risk is scheduled
func WithReviewInterval(d time.Duration) Option {
	return func(c *config) {
		c.review = d
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	cfg := &config{
		bands:  risk.DefaultMonetaryBands(),
		clock:  time.Now,
		review: model.DefaultReviewInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &UseCases{
		Assess:   &AssessUseCase{bands: cfg.bands},
		Register: &RegisterUseCase{repo: repo, bands: cfg.bands, clock: cfg.clock, review: cfg.review},
	}
}
