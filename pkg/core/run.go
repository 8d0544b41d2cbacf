// Package core orchestrates a csvsieve run: load and compile the rules once,
// stream every input row through the matcher, aggregate the results, and emit
// the consolidated table. Everything happens on one goroutine; files, rows
// and rules are processed strictly in order so output is reproducible.
package core

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/csvsieve/pkg/aggregate"
	"github.com/arthur-debert/csvsieve/pkg/config"
	"github.com/arthur-debert/csvsieve/pkg/csvio"
	"github.com/arthur-debert/csvsieve/pkg/logging"
	"github.com/arthur-debert/csvsieve/pkg/paths"
	"github.com/arthur-debert/csvsieve/pkg/rules"
)

// ruleSeparator joins rule names in the provenance column when a combined
// record was produced by more than one rule
const ruleSeparator = " | "

// RunOptions configures one extraction run
type RunOptions struct {
	// ConfigPath is the rules document
	ConfigPath string

	// Input is a CSV file or a directory of CSV files
	Input string

	// Output is the consolidated destination CSV
	Output string

	// BestEffort continues past unreadable input files instead of aborting
	BestEffort bool
}

// FileStat reports per-file processing counts
type FileStat struct {
	Name    string
	Rows    int
	Records int
	Skipped bool
}

// RunResult summarizes a completed run
type RunResult struct {
	Files   []FileStat
	Schema  []string
	Records int

	// RuleNames in definition order, with per-rule firing counts
	RuleNames  []string
	RuleCounts map[string]int
}

// Run executes a full extraction. Any returned error is fatal to the run;
// the output file's contents are undefined after a write error.
func Run(opts RunOptions) (*RunResult, error) {
	logger := logging.GetLogger("core.run")
	start := time.Now()
	defer logging.LogDuration(start, "extract")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	ruleset, err := rules.Compile(cfg.Rules)
	if err != nil {
		return nil, err
	}

	inputs, err := paths.DiscoverInputs(opts.Input)
	if err != nil {
		return nil, err
	}

	result := &RunResult{RuleCounts: make(map[string]int)}
	for _, rule := range ruleset.Rules() {
		result.RuleNames = append(result.RuleNames, rule.Name)
	}

	agg := aggregate.New()
	if cfg.Output.Annotate {
		agg.SeedSchema(cfg.Output.RuleField, cfg.Output.FileField)
	}

	for _, input := range inputs {
		stat, err := processFile(input, ruleset, cfg.Output, agg, result.RuleCounts)
		if err != nil {
			if !opts.BestEffort {
				return nil, err
			}
			logger.Warn().Err(err).Str("file", input).Msg("Skipping unreadable input file")
			stat.Skipped = true
		}
		result.Files = append(result.Files, stat)
	}

	result.Schema = agg.Schema()
	result.Records = agg.Len()

	if err := writeOutput(opts.Output, agg); err != nil {
		return nil, err
	}

	logger.Info().
		Int("files", len(result.Files)).
		Int("records", result.Records).
		Int("fields", len(result.Schema)).
		Msg("Run complete")

	return result, nil
}

// processFile streams one input file through the matcher into the aggregator
func processFile(path string, ruleset *rules.RuleSet, out config.OutputConfig,
	agg *aggregate.Aggregator, ruleCounts map[string]int) (FileStat, error) {

	logger := logging.GetLogger("core.run")
	stat := FileStat{Name: path}

	reader, err := csvio.Open(path)
	if err != nil {
		return stat, err
	}
	defer func() { _ = reader.Close() }()

	logger.Info().Str("file", path).Msg("Processing file")

	base := filepath.Base(path)
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stat, err
		}
		stat.Rows++

		records := ruleset.EvaluateRow(row)
		for _, rec := range records {
			for _, name := range rec.Rules {
				ruleCounts[name]++
			}
			if out.Annotate {
				rec.Set(out.RuleField, strings.Join(rec.Rules, ruleSeparator))
				rec.Set(out.FileField, base)
			}
			agg.Add(rec)
			stat.Records++
		}

		if len(records) > 0 {
			logger.Debug().
				Str("file", row.File).
				Int("line", row.Line).
				Int("records", len(records)).
				Msg("Row matched")
		}
	}

	return stat, nil
}

// writeOutput emits the header and all aggregated rows to the destination
func writeOutput(path string, agg *aggregate.Aggregator) error {
	writer, err := csvio.Create(path)
	if err != nil {
		return err
	}

	// A run with zero matches produces an empty file, even when annotation
	// has seeded provenance fields into the schema.
	if agg.Len() > 0 {
		if err := writer.WriteHeader(agg.Schema()); err != nil {
			_ = writer.Close()
			return err
		}
	}
	for _, row := range agg.Rows() {
		if err := writer.WriteRow(row); err != nil {
			_ = writer.Close()
			return err
		}
	}

	return writer.Close()
}
