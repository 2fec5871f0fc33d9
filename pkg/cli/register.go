package cli

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/cli/config"
	"github.com/riskops-lab/themis/pkg/domain/risk"
	"github.com/riskops-lab/themis/pkg/domain/types"
	"github.com/riskops-lab/themis/pkg/service/export"
	"github.com/riskops-lab/themis/pkg/usecase"
	"github.com/riskops-lab/themis/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdRegister() *cli.Command {
	return &cli.Command{
		Name:    "register",
		Aliases: []string{"r"},
		Usage:   "Manage the risk register",
		Commands: []*cli.Command{
			cmdRegisterList(),
			cmdRegisterHeatmap(),
			cmdRegisterExport(),
			cmdRegisterImport(),
			cmdRegisterSeed(),
			cmdRegisterClear(),
		},
	}
}

func cmdRegisterList() *cli.Command {
	var repoCfg config.Repository
	var status string
	var riskType string
	var query string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Filter by status (active, mitigated, accepted, transferred)",
			Destination: &status,
		},
		&cli.StringFlag{
			Name:        "type",
			Usage:       "Filter by assessment type (qualitative or quantitative)",
			Destination: &riskType,
		},
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Filter by substring over name, asset and threat",
			Destination: &query,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List register entries",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)
			entries, err := ucs.Register.List(ctx, usecase.Filter{
				Status: types.RiskStatus(status),
				Type:   types.RiskType(riskType),
				Query:  query,
			})
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("Register is empty")
				return nil
			}

			bold := color.New(color.Bold)
			for _, entry := range entries {
				bold.Printf("%s", entry.Name)
				fmt.Printf("  [%s]\n", color.CyanString(entry.ID.String()))
				fmt.Printf("  %s / %s\n", entry.AssetName, entry.ThreatDescription)
				fmt.Printf("  %s  %s -> %s  (%s reducción)\n",
					entry.Status.Label(),
					ratingColor(entry.Assessment.InherentRating()).Sprint(entry.Assessment.InherentRating()),
					ratingColor(entry.Assessment.ResidualRating()).Sprint(entry.Assessment.ResidualRating()),
					risk.FormatPercentage(entry.Assessment.RiskReduction()))
				fmt.Println()
			}
			fmt.Printf("%d risks\n", len(entries))
			return nil
		},
	}
}

func cmdRegisterHeatmap() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "heatmap",
		Usage: "Render the 5×5 likelihood × impact matrix",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)
			matrix, err := ucs.Register.Heatmap(ctx)
			if err != nil {
				return err
			}

			fmt.Println("          Impact ->")
			fmt.Println("          1     2     3     4     5")
			for _, row := range matrix {
				fmt.Printf("  L=%d  ", row[0].Likelihood)
				for _, cell := range row {
					label := fmt.Sprintf("%2d", cell.RiskScore)
					if cell.Count > 0 {
						label += fmt.Sprintf("*%d", cell.Count)
					}
					fmt.Printf("%s  ", ratingColor(cell.Rating).Sprintf("%-4s", label))
				}
				fmt.Println()
			}
			fmt.Println("\n  * count of registered qualitative risks on the cell")
			return nil
		},
	}
}

func cmdRegisterExport() *cli.Command {
	var repoCfg config.Repository
	var format string
	var output string
	var gcsBucket string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Export format (json or csv)",
			Value:       "json",
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when empty)",
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Upload the export to this Google Cloud Storage bucket",
			Sources:     cli.EnvVars("THEMIS_GCS_BUCKET"),
			Destination: &gcsBucket,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export the register as JSON or CSV",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)

			var data []byte
			var contentType string
			switch format {
			case "json":
				data, err = ucs.Register.ExportJSON(ctx)
				contentType = "application/json"
			case "csv":
				var text string
				text, err = ucs.Register.ExportCSV(ctx)
				data = []byte(text)
				contentType = "text/csv"
			default:
				return goerr.New("unknown export format", goerr.V("format", format))
			}
			if err != nil {
				return err
			}

			if gcsBucket != "" {
				uploader, err := export.NewUploader(ctx, gcsBucket)
				if err != nil {
					return err
				}
				defer safe.Close(ctx, uploader)

				object := "risk_register." + format
				if output != "" {
					object = path.Base(output)
				}
				return uploader.Upload(ctx, object, contentType, data)
			}

			if output == "" {
				fmt.Println(strings.TrimRight(string(data), "\n"))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return goerr.Wrap(err, "failed to write export file", goerr.V("path", output))
			}
			fmt.Printf("Exported to %s\n", output)
			return nil
		},
	}
}

func cmdRegisterImport() *cli.Command {
	var repoCfg config.Repository
	var input string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Exported JSON file to import",
			Required:    true,
			Destination: &input,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "import",
		Usage: "Replace the register with an exported JSON file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to read import file", goerr.V("path", input))
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)
			count, err := ucs.Register.ImportJSON(ctx, data)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d risks\n", count)
			return nil
		},
	}
}

func cmdRegisterSeed() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the bundled sample risks into an empty register",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)
			count, err := ucs.Register.Seed(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d sample risks\n", count)
			return nil
		},
	}
}

func cmdRegisterClear() *cli.Command {
	var repoCfg config.Repository
	var force bool

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Skip the confirmation prompt",
			Destination: &force,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "clear",
		Usage: "Remove every entry from the register",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !force {
				fmt.Print("Clear the whole register? [y/N]: ")
				var answer string
				fmt.Scanln(&answer) //nolint:errcheck
				if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
					fmt.Println("Aborted")
					return nil
				}
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			ucs := usecase.New(repo)
			if err := ucs.Register.Clear(ctx); err != nil {
				return err
			}
			fmt.Println("Register cleared")
			return nil
		},
	}
}
