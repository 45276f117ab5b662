// Package main provides the CLI entry point for csvpeek.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"
	"github.com/ukaji3/csvpeek-go/internal/config"
	"github.com/ukaji3/csvpeek-go/internal/logging"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/arrowtable"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/output"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/session"
)

type flags struct {
	configPath string
	outputPath string
	limit      int
	align      string
	delimiter  string
	sniff      bool
	noHeader   bool
	showIndex  bool
	sheet      string
	schema     bool
	jsonOut    bool
	pretty     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "csvpeek [input.csv]",
		Short: "Preview the first rows of a CSV file",
		Long: `csvpeek parses a CSV, TSV or xlsx file, infers column types
and prints an aligned preview of its first rows.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "Config file path (default: $CSVPEEK_CONFIG or ./csvpeek.yaml)")
	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().IntVarP(&f.limit, "limit", "n", 5, "Number of rows to show")
	rootCmd.Flags().StringVar(&f.align, "align", "right", "Cell alignment: left or right")
	rootCmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", "Field delimiter: one character, or tab, comma, semicolon, pipe")
	rootCmd.Flags().BoolVar(&f.sniff, "sniff", false, "Guess the delimiter from the first line")
	rootCmd.Flags().BoolVar(&f.noHeader, "no-header", false, "Treat the first line as data")
	rootCmd.Flags().BoolVar(&f.showIndex, "index", false, "Print a row index column")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to read from an xlsx file (default: first sheet)")
	rootCmd.Flags().BoolVar(&f.schema, "schema", false, "Print the Arrow schema after the preview")
	rootCmd.Flags().BoolVar(&f.jsonOut, "json", false, "Print a JSON summary instead of the preview")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	inputPath := args[0]

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())

	opts, err := cfg.ParseOptions()
	if err != nil {
		return err
	}
	previewOpts, err := cfg.PreviewOptions()
	if err != nil {
		return err
	}

	viewer := session.New(opts, previewOpts, logger)
	snap, err := viewer.LoadFile(cmd.Context(), inputPath)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	var out strings.Builder
	if f.jsonOut {
		jsonData, err := output.ToJSON(snap.Result, f.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		out.Write(jsonData)
		out.WriteByte('\n')
	} else {
		out.WriteString(snap.Preview)
		out.WriteByte('\n')
	}

	if f.schema {
		desc, err := describeSchema(snap.Result.Table)
		if err != nil {
			return fmt.Errorf("schema conversion failed: %w", err)
		}
		out.WriteByte('\n')
		out.WriteString(desc)
	}

	// Write output
	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out.String())
	return err
}

// applyFlags overrides configuration values with flags set on the command line.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("limit") {
		cfg.Preview.Limit = f.limit
	}
	if changed("align") {
		cfg.Preview.Align = f.align
	}
	if changed("index") {
		cfg.Preview.ShowIndex = f.showIndex
	}
	if changed("delimiter") {
		cfg.Parse.Delimiter = f.delimiter
	}
	if changed("sniff") {
		cfg.Parse.Sniff = f.sniff
	}
	if changed("no-header") {
		cfg.Parse.NoHeader = f.noHeader
	}
	if changed("sheet") {
		cfg.Parse.Sheet = f.sheet
	}
}

// describeSchema lists each Arrow field with its type and null count.
func describeSchema(t *models.Table) (string, error) {
	rec, err := arrowtable.ToRecord(t, memory.NewGoAllocator())
	if err != nil {
		return "", err
	}
	defer rec.Release()

	var b strings.Builder
	for i, field := range rec.Schema().Fields() {
		fmt.Fprintf(&b, "%s: %s (nulls: %d)\n", field.Name, field.Type, rec.Column(i).NullN())
	}
	return b.String(), nil
}
