package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/essay-grader/internal/connectives"
	"github.com/jonathan/essay-grader/internal/ingestion"
	"github.com/jonathan/essay-grader/internal/observability"
	"github.com/jonathan/essay-grader/internal/pipeline"
	"github.com/jonathan/essay-grader/internal/schemas"
	"github.com/jonathan/essay-grader/internal/types"
)

// Output formats for analyze.
const (
	formatJSON = "json"
	formatText = "text"
)

var (
	analyzeIn      string
	analyzeURL     string
	analyzeBrowser bool
	analyzeTheme   string
	analyzeTitle   string
	analyzeOut     string
	analyzeFormat  string
	analyzeOffline bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one essay file or published page",
	Long: `Reads an essay (.txt, .md, .html or .docx, or a web page via --url), scores it
and prints the report.

--offline skips the remote corrector and scores with zero grammar and spelling errors.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeIn, "in", "i", "", "Path to the essay file")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "URL of a published essay (alternative to --in)")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "use-browser", false, "Render --url in headless Chrome when the page has too little text")
	analyzeCmd.Flags().StringVar(&analyzeTheme, "theme", "", "Essay theme")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Essay title")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", formatJSON, "Output format: json or text")
	analyzeCmd.Flags().BoolVar(&analyzeOffline, "offline", false, "Do not call the remote corrector")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeIn == "" && analyzeURL == "" {
		return fmt.Errorf("either --in or --url must be provided")
	}
	if analyzeIn != "" && analyzeURL != "" {
		return fmt.Errorf("only one of --in or --url may be provided")
	}
	if analyzeFormat != formatJSON && analyzeFormat != formatText {
		return fmt.Errorf("unknown --format %q (want json or text)", analyzeFormat)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	analyzer, cleanup, err := buildAnalyzer(ctx, cfg, analyzeOffline)
	if err != nil {
		return err
	}
	defer cleanup()

	var essay *ingestion.Essay
	if analyzeURL != "" {
		essay, err = ingestion.ReadEssayFromURL(ctx, analyzeURL, ingestion.URLOptions{
			UseBrowser: analyzeBrowser,
			Timeout:    cfg.Timeout(),
			Verbose:    cfg.Verbose,
		})
	} else {
		essay, err = ingestion.ReadEssay(analyzeIn)
	}
	if err != nil {
		return err
	}

	report, err := analyzeEssay(ctx, analyzer, essay, analyzeTheme, analyzeTitle)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if analyzeOut != "" {
		f, err := os.Create(analyzeOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := writeReport(out, report, analyzeFormat); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintReport(report)
		printer.PrintConnectives(connectives.CountByCategory(report.Text))
	}
	if analyzeOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s (total %d/1000)\n", analyzeOut, report.Score.Total)
	}
	return nil
}

// analyzeEssay scores an ingested essay and checks the report against the
// essay report schema before it is written anywhere.
func analyzeEssay(ctx context.Context, analyzer *pipeline.Analyzer, essay *ingestion.Essay, theme, title string) (*types.EssayReport, error) {
	report, err := analyzer.Analyze(ctx, &types.AnalyzeRequest{Text: essay.Text, Theme: theme, Title: title})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", essay.Path, err)
	}
	if err := schemas.ValidateReport(report); err != nil {
		return nil, fmt.Errorf("report for %s is invalid: %w", essay.Path, err)
	}
	return report, nil
}

// writeReport renders a report as indented JSON or as the feedback text.
func writeReport(w io.Writer, report *types.EssayReport, format string) error {
	if format == formatText {
		observability.NewPrinter(w).PrintScores(report)
		_, err := fmt.Fprintf(w, "\n%s", report.Feedback)
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
