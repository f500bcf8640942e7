package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/caretrend/internal/aggregate"
	"github.com/gyeh/caretrend/internal/config"
	"github.com/gyeh/caretrend/internal/exitcode"
	"github.com/gyeh/caretrend/internal/logging"
	"github.com/gyeh/caretrend/internal/match"
	"github.com/gyeh/caretrend/internal/measure"
	"github.com/gyeh/caretrend/internal/model"
	"github.com/gyeh/caretrend/internal/output"
	"github.com/gyeh/caretrend/internal/source"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate facility data across sources and write outputs",
	RunE:  runAggregate,
}

func init() {
	f := aggregateCmd.Flags()
	f.StringVar(&cfg.Facilities, "facilities", "", "Facility names of interest, comma-separated (required)")
	f.StringVar(&cfg.DataDir, "data-dir", ".", "Root directory searched recursively for Timely and Effective Care CSVs")
	f.StringVar(&cfg.BlobDir, "blob-dir", "", "Blob store root holding hospitals_MM_YYYY data drops")
	f.StringVar(&cfg.OutDir, "out-dir", ".", "Directory the output folder is created under")
	f.StringVar(&cfg.ConfigFile, "config", "", "YAML config selecting measure groups")
	f.BoolVar(&cfg.WriteZip, "zip", false, "Also package the output folder as a ZIP archive")
	f.BoolVar(&cfg.WriteParquet, "parquet", false, "Also export the aggregated table as Parquet")
	f.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "TTL for caching blob listings and fetches (0 disables)")
	_ = aggregateCmd.MarkFlagRequired("facilities")
	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFromFile(cfg.ConfigFile); err != nil {
			log.Error().Err(err).Msg("config file invalid")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	queries := match.SplitQueries(cfg.Facilities)
	if len(queries) == 0 {
		log.Error().Msg("no facility names supplied")
		os.Exit(exitcode.UsageError)
	}

	sources, err := gatherSources(ctx, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("source discovery failed")
		os.Exit(exitcode.ReadError)
	}
	if len(sources) == 0 {
		log.Error().Str("data_dir", cfg.DataDir).Msg("no sources found")
		os.Exit(exitcode.ReadError)
	}

	result, err := aggregate.Run(ctx, log, queries, sources)
	if err != nil {
		exitPipeline(log, err)
	}

	csvPath, err := writeOutputs(log, &cfg, result)
	if err != nil {
		log.Error().Err(err).Msg("writing outputs failed")
		os.Exit(exitcode.WriteError)
	}

	s := result.Summary
	fmt.Printf("Aggregation complete: %d rows for %d facilities → %s (%.1fs)\n",
		s.RowsAggregated, len(result.Resolved), csvPath, s.DurationTotal.Seconds())
	if len(s.UnmatchedQueries) > 0 {
		fmt.Printf("Unmatched queries skipped: %s\n", strings.Join(s.UnmatchedQueries, ", "))
	}
	return nil
}

// exitPipeline maps pipeline failures onto exit codes. Does not return.
func exitPipeline(log zerolog.Logger, err error) {
	var nfe *aggregate.NoFacilitiesResolvedError
	var nde *aggregate.NoDataFoundError
	switch {
	case errors.As(err, &nfe):
		log.Error().Strs("queries", nfe.Queries).Msg("no facilities resolved")
		os.Exit(exitcode.NoMatchError)
	case errors.As(err, &nde):
		log.Error().Strs("facilities", nde.Facilities).Msg("no data found for resolved facilities")
		os.Exit(exitcode.NoDataError)
	}
	var pe *aggregate.PipelineError
	if errors.As(err, &pe) {
		log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("aggregation failed")
	} else {
		log.Error().Err(err).Msg("aggregation failed")
	}
	os.Exit(exitcode.ReadError)
}

// gatherSources combines recursive local discovery with the blob listing.
func gatherSources(ctx context.Context, cfg *config.Config) ([]source.Source, error) {
	var out []source.Source
	if cfg.DataDir != "" {
		found, err := source.Discover(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", cfg.DataDir, err)
		}
		out = append(out, found...)
	}
	if cfg.BlobDir != "" {
		var lister source.Lister = source.DirLister{Root: cfg.BlobDir}
		if cfg.CacheTTL > 0 {
			lister = source.NewCachedLister(lister, cfg.CacheTTL)
		}
		found, err := source.FromBlob(ctx, lister)
		if err != nil {
			return nil, fmt.Errorf("list blob store: %w", err)
		}
		out = append(out, found...)
	}
	return out, nil
}

// writeOutputs creates the output folder and writes the aggregate CSV,
// per-measure series, and optional Parquet/ZIP artifacts. Returns the
// aggregate CSV path.
func writeOutputs(log zerolog.Logger, cfg *config.Config, result *aggregate.Result) (string, error) {
	folder, file := output.Names(result.Resolved)
	dir := filepath.Join(cfg.OutDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output folder: %w", err)
	}

	csvPath := filepath.Join(dir, file)
	if err := output.WriteCSV(result.Table, csvPath); err != nil {
		return "", err
	}
	log.Info().Str("path", csvPath).Int64("rows", result.Summary.RowsAggregated).Msg("aggregate csv written")

	for _, name := range cfg.Measures {
		g, ok := model.MeasureGroupByName(name)
		if !ok {
			continue // validated earlier
		}
		v := measure.NewView(result.Table, g)
		if v.Len() == 0 {
			log.Info().Str("measure", g.Label).Msg("no data for measure")
			continue
		}
		p := filepath.Join(dir, g.FileStem+"_series.csv")
		if err := output.WriteSeriesCSV(v, p); err != nil {
			return "", err
		}
		log.Info().Str("measure", g.Label).Int("points", v.Len()).Str("path", p).Msg("series written")
	}

	if cfg.WriteParquet {
		p := strings.TrimSuffix(csvPath, ".csv") + ".parquet"
		if err := output.WriteParquet(result.Table, p); err != nil {
			return "", err
		}
		log.Info().Str("path", p).Msg("parquet export written")
	}

	if cfg.WriteZip {
		p := dir + "_results.zip"
		zf, err := os.Create(p)
		if err != nil {
			return "", fmt.Errorf("create zip: %w", err)
		}
		if err := output.ZipFolder(dir, zf); err != nil {
			zf.Close()
			return "", err
		}
		if err := zf.Close(); err != nil {
			return "", err
		}
		log.Info().Str("path", p).Msg("zip written")
	}

	return csvPath, nil
}
