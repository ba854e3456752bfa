package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"driftwatch/adapters/excel"
	"driftwatch/adapters/memory"
	"driftwatch/adapters/postgres"
	"driftwatch/app"
	"driftwatch/internal/config"
	"driftwatch/internal/report"
	"driftwatch/internal/testkit"
	"driftwatch/ports"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "driftwatch",
		Short: "Distribution drift detection engine",
	}

	rootCmd.AddCommand(
		newDetectCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildDetector wires the detector with a postgres sink when
// DATABASE_URL is set, falling back to the in-memory sink.
func buildDetector(ctx context.Context, cfg *config.Config) (*app.Detector, error) {
	var sink ports.EpisodeSink = memory.NewEpisodeSink()

	if cfg.Database.URL != "" {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to episode database: %w", err)
		}
		repo := postgres.NewEpisodeRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		sink = repo
	}

	return app.NewDetector(cfg.Engine, sink), nil
}

func newDetectCmd() *cobra.Command {
	var baselineFile, currentFile, column string
	var withReport bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Compare a current sample against a baseline sample from files",
		Long: `Load two numeric samples from xlsx/csv files and run drift detection.

Example: driftwatch detect --baseline-file train.xlsx --current-file live.csv --column latency_ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			detector, err := buildDetector(ctx, cfg)
			if err != nil {
				return err
			}

			baseline, err := excel.NewSampleReader(baselineFile).ReadColumn(column)
			if err != nil {
				return err
			}
			current, err := excel.NewSampleReader(currentFile).ReadColumn(column)
			if err != nil {
				return err
			}

			if err := detector.SetBaseline(ctx, baseline, map[string]interface{}{
				"source": baselineFile,
				"column": column,
			}); err != nil {
				return err
			}

			result, err := detector.DetectDrift(ctx, current)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if withReport {
				builder := report.NewBuilder(20)
				fmt.Println(builder.Markdown(detector.Stats(), detector.History()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baselineFile, "baseline-file", "", "xlsx/csv file holding the baseline sample")
	cmd.Flags().StringVar(&currentFile, "current-file", "", "xlsx/csv file holding the current sample")
	cmd.Flags().StringVar(&column, "column", "", "column name to read from both files")
	cmd.Flags().BoolVar(&withReport, "report", false, "print a markdown report after detection")
	_ = cmd.MarkFlagRequired("baseline-file")
	_ = cmd.MarkFlagRequired("current-file")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var seed int64
	var shift float64
	var htmlOut string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run detection on synthetic Gaussian data",
		Long: `Generate a N(100,10) baseline and a shifted current sample, run a few
checks and print the results plus a report.

Example: driftwatch demo --shift 30 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			detector, err := buildDetector(ctx, cfg)
			if err != nil {
				return err
			}

			baseline := testkit.Gaussian(1000, 100, 10, seed)
			if err := detector.SetBaseline(ctx, baseline, map[string]interface{}{"source": "synthetic"}); err != nil {
				return err
			}

			// A stable check, a repeat (cache hit), then the shifted sample
			stable := testkit.Gaussian(1000, 100, 10, seed+1)
			shifted := testkit.Shifted(stable, shift)

			for _, sample := range [][]float64{stable, stable, shifted} {
				result, err := detector.DetectDrift(ctx, sample)
				if err != nil {
					return err
				}
				fmt.Printf("drift=%v severity=%-8s avg=%.4f cached=%v skipped=%v\n",
					result.IsDrift, result.Severity, result.AverageScore, result.Cached, result.Skipped)
			}

			builder := report.NewBuilder(20)
			md := builder.Markdown(detector.Stats(), detector.History())
			fmt.Println(md)

			if htmlOut != "" {
				if err := os.WriteFile(htmlOut, report.RenderHTML(md), 0o644); err != nil {
					return fmt.Errorf("failed to write HTML report: %w", err)
				}
				fmt.Printf("HTML report written to %s\n", htmlOut)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for synthetic samples")
	cmd.Flags().Float64Var(&shift, "shift", 30, "mean shift applied to the drifted sample")
	cmd.Flags().StringVar(&htmlOut, "html", "", "write the report as HTML to this file")
	return cmd
}
