package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/cli/config"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
	"github.com/riskops-lab/themis/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdAssess() *cli.Command {
	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Run a one-shot risk assessment",
		Commands: []*cli.Command{
			cmdAssessQualitative(),
			cmdAssessQuantitative(),
		},
	}
}

// registerFlags are shared by both assess subcommands: when --register is
// set, the result is saved to the configured repository.
type registerFlags struct {
	register bool
	name     string
	owner    string
	notes    string
}

func (f *registerFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "register",
			Usage:       "Save the result to the risk register",
			Destination: &f.register,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Register entry name (defaults to the asset name)",
			Destination: &f.name,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Register entry owner",
			Destination: &f.owner,
		},
		&cli.StringFlag{
			Name:        "notes",
			Usage:       "Register entry notes",
			Destination: &f.notes,
		},
	}
}

// finish prints the result and, when --register is set, saves it as a new
// register entry.
func (f *registerFlags) finish(ctx context.Context, ucs *usecase.UseCases, result *model.RiskResult) error {
	printResult(result)

	if !f.register {
		return nil
	}

	name := f.name
	if name == "" {
		name = result.AssetName()
	}
	entry, err := ucs.Register.Add(ctx, *result, name, "", f.owner, f.notes)
	if err != nil {
		return err
	}
	fmt.Printf("\nRegistered as %s\n", color.CyanString(entry.ID.String()))
	return nil
}

func cmdAssessQualitative() *cli.Command {
	var input model.QualitativeInput
	var likelihood, impact, detection int
	var regFlags registerFlags
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "asset",
			Usage:       "Asset name",
			Required:    true,
			Destination: &input.AssetName,
		},
		&cli.StringFlag{
			Name:        "threat",
			Usage:       "Threat description",
			Required:    true,
			Destination: &input.ThreatDescription,
		},
		&cli.IntFlag{
			Name:        "likelihood",
			Usage:       "Likelihood level (1-5)",
			Required:    true,
			Destination: &likelihood,
		},
		&cli.IntFlag{
			Name:        "impact",
			Usage:       "Impact level (1-5)",
			Required:    true,
			Destination: &impact,
		},
		&cli.Float64Flag{
			Name:        "control-effectiveness",
			Usage:       "Control effectiveness percentage (0-100)",
			Destination: &input.ControlEffectiveness,
		},
		&cli.IntFlag{
			Name:        "detection",
			Usage:       "Detection capability level (1-5)",
			Value:       1,
			Destination: &detection,
		},
	}
	flags = append(flags, regFlags.flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "qualitative",
		Aliases: []string{"ql"},
		Usage:   "Assess a risk on the 5×5 likelihood × impact scale",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			input.Likelihood = int(likelihood)
			input.Impact = int(impact)
			input.DetectionCapability = int(detection)

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)
			result, err := ucs.Assess.Qualitative(ctx, input)
			if err != nil {
				return err
			}
			return regFlags.finish(ctx, ucs, result)
		},
	}
}

func cmdAssessQuantitative() *cli.Command {
	var input model.QuantitativeInput
	var detection int
	var regFlags registerFlags
	var repoCfg config.Repository
	var thresholdsCfg config.Thresholds

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "asset",
			Usage:       "Asset name",
			Required:    true,
			Destination: &input.AssetName,
		},
		&cli.StringFlag{
			Name:        "threat",
			Usage:       "Threat description",
			Required:    true,
			Destination: &input.ThreatDescription,
		},
		&cli.Float64Flag{
			Name:        "asset-value",
			Usage:       "Asset value (monetary)",
			Required:    true,
			Destination: &input.AssetValue,
		},
		&cli.Float64Flag{
			Name:        "exposure-factor",
			Usage:       "Exposure factor percentage (0-100)",
			Required:    true,
			Destination: &input.ExposureFactor,
		},
		&cli.Float64Flag{
			Name:        "aro",
			Usage:       "Annualized rate of occurrence",
			Required:    true,
			Destination: &input.AnnualizedRateOfOccurrence,
		},
		&cli.Float64Flag{
			Name:        "control-cost",
			Usage:       "Annual control cost (monetary)",
			Destination: &input.ControlCost,
		},
		&cli.Float64Flag{
			Name:        "control-effectiveness",
			Usage:       "Control effectiveness percentage (0-100)",
			Destination: &input.ControlEffectiveness,
		},
		&cli.IntFlag{
			Name:        "detection",
			Usage:       "Detection capability level (1-5)",
			Value:       1,
			Destination: &detection,
		},
	}
	flags = append(flags, regFlags.flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, thresholdsCfg.Flags()...)

	return &cli.Command{
		Name:    "quantitative",
		Aliases: []string{"qt"},
		Usage:   "Assess a risk through SLE/ALE loss expectancy",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			input.DetectionCapability = int(detection)

			settings, err := thresholdsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load rating thresholds")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo,
				usecase.WithMonetaryBands(settings.Bands),
				usecase.WithReviewInterval(settings.ReviewInterval),
			)
			result, err := ucs.Assess.Quantitative(ctx, input)
			if err != nil {
				return err
			}
			return regFlags.finish(ctx, ucs, result)
		},
	}
}

// ratingColor maps a rating band color name onto a terminal color
func ratingColor(rating types.Rating) *color.Color {
	switch rating.Color() {
	case "green":
		return color.New(color.FgGreen)
	case "yellow":
		return color.New(color.FgYellow)
	case "orange":
		return color.New(color.FgHiYellow)
	case "red":
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func printResult(result *model.RiskResult) {
	bold := color.New(color.Bold)

	bold.Printf("%s\n", result.AssetName())
	fmt.Printf("  %s\n\n", result.ThreatDescription())

	switch result.Type {
	case types.RiskTypeQualitative:
		out := result.Qualitative.Output
		fmt.Printf("  Inherent risk:  %-4d %s\n", out.InherentRisk,
			ratingColor(out.InherentRating).Sprint(out.InherentRating))
		fmt.Printf("  Residual risk:  %-4s %s\n", risk.FormatNumber(out.ResidualRisk),
			ratingColor(out.ResidualRating).Sprint(out.ResidualRating))
		fmt.Printf("  Risk reduction: %s\n", risk.FormatPercentage(out.RiskReduction))

	case types.RiskTypeQuantitative:
		out := result.Quantitative.Output
		fmt.Printf("  Inherent SLE:   %s\n", risk.FormatCurrency(out.InherentSLE))
		fmt.Printf("  Inherent ALE:   %s %s\n", risk.FormatCurrency(out.InherentALE),
			ratingColor(out.InherentRating).Sprint(out.InherentRating))
		fmt.Printf("  Residual ALE:   %s %s\n", risk.FormatCurrency(out.ResidualALE),
			ratingColor(out.ResidualRating).Sprint(out.ResidualRating))
		fmt.Printf("  Control ROI:    %s\n", risk.FormatPercentage(out.ControlROI))
		fmt.Printf("  Cost benefit:   %s\n", risk.FormatCurrency(out.CostBenefit))
		fmt.Printf("  Risk reduction: %s\n", risk.FormatPercentage(out.RiskReduction))
	}

	fmt.Println("\n  Recommended actions:")
	for _, action := range result.RecommendedActions() {
		fmt.Printf("   - %s\n", action)
	}
}
