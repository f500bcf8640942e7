package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/caretrend/internal/aggregate"
	"github.com/gyeh/caretrend/internal/exitcode"
	"github.com/gyeh/caretrend/internal/logging"
	"github.com/gyeh/caretrend/internal/match"
	"github.com/gyeh/caretrend/internal/measure"
	"github.com/gyeh/caretrend/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run matching and aggregation stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.Facilities, "facilities", "", "Facility names of interest, comma-separated (required)")
	f.StringVar(&cfg.DataDir, "data-dir", ".", "Root directory searched recursively for Timely and Effective Care CSVs")
	f.StringVar(&cfg.BlobDir, "blob-dir", "", "Blob store root holding hospitals_MM_YYYY data drops")
	f.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "TTL for caching blob listings and fetches (0 disables)")
	_ = planCmd.MarkFlagRequired("facilities")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	queries := match.SplitQueries(cfg.Facilities)
	sources, err := gatherSources(ctx, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("source discovery failed")
		os.Exit(exitcode.ReadError)
	}

	canonical, skipped := aggregate.CollectFacilities(ctx, log, sources)

	fmt.Println("=== caretrend plan ===")
	fmt.Printf("Sources:    %d found, %d unreadable\n", len(sources), skipped)
	fmt.Printf("Facilities: %d unique names across all sources\n", len(canonical))
	fmt.Println()
	fmt.Println("Matching:")

	matches := match.Resolve(queries, canonical)
	for _, m := range matches {
		switch m.Kind {
		case match.Exact:
			fmt.Printf("  exact  %q\n", m.Query)
		case match.Fuzzy:
			fmt.Printf("  fuzzy  %q → %q (score %d)\n", m.Query, m.Name, m.Score)
		default:
			if m.Name == "" {
				fmt.Printf("  none   %q (no candidates)\n", m.Query)
			} else {
				fmt.Printf("  none   %q (best %q, score %d)\n", m.Query, m.Name, m.Score)
			}
		}
	}

	resolved, _ := match.Resolved(matches)
	if len(resolved) == 0 {
		fmt.Println("\nNo queries resolved; aggregation would fail.")
		os.Exit(exitcode.NoMatchError)
	}

	table, stats, err := aggregate.Aggregate(ctx, log, sources, resolved)
	if err != nil {
		var nde *aggregate.NoDataFoundError
		if errors.As(err, &nde) {
			fmt.Println("\nNo source holds rows for the resolved facilities; aggregation would fail.")
			os.Exit(exitcode.NoDataError)
		}
		log.Error().Err(err).Msg("aggregation scan failed")
		os.Exit(exitcode.ReadError)
	}

	fmt.Println()
	fmt.Printf("Rows: %d scanned, %d matched, %d after dedup\n",
		stats.RowsScanned, stats.RowsMatched, stats.RowsAggregated)
	fmt.Println("Per measure group:")
	for _, g := range model.AllMeasureGroups {
		v := measure.NewView(table, g)
		if v.Len() == 0 {
			fmt.Printf("  %-14s no data\n", g.Label)
		} else {
			fmt.Printf("  %-14s %d points\n", g.Label, v.Len())
		}
	}
	fmt.Println("\nNo files written.")
	return nil
}
