package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/essay-grader/internal/ingestion"
	"github.com/jonathan/essay-grader/internal/pipeline"
)

var (
	batchDir         string
	batchOut         string
	batchConcurrency int
	batchOffline     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every essay in a directory",
	Long: `Analyzes every supported file (.txt, .md, .html, .docx) directly under --dir and
writes one <name>.json report per essay into --out. Essays are analyzed in parallel;
a failing essay is reported without stopping the others.`,
	RunE: runBatchCmd,
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "Directory containing essays (required)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Output directory for reports (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum essays analyzed at once")
	batchCmd.Flags().BoolVar(&batchOffline, "offline", false, "Do not call the remote corrector")

	for _, name := range []string{"dir", "out"} {
		if err := batchCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark '%s' flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(batchCmd)
}

// batchResult is the outcome for one essay file.
type batchResult struct {
	Path   string
	Output string
	Total  int
	Err    error
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	analyzer, cleanup, err := buildAnalyzer(ctx, cfg, batchOffline)
	if err != nil {
		return err
	}
	defer cleanup()

	files, err := listEssays(batchDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported essays found in %s", batchDir)
	}

	results, err := runBatch(ctx, analyzer, files, batchOut, batchConcurrency)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stdout, "✗ %s: %v\n", filepath.Base(r.Path), r.Err)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "✓ %s: %d/1000 -> %s\n", filepath.Base(r.Path), r.Total, r.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d essays failed", failed, len(results))
	}
	return nil
}

// listEssays returns the supported files directly under dir, sorted by name.
func listEssays(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if ingestion.IsSupported(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

// runBatch analyzes files with at most concurrency essays in flight. Per-essay
// failures are returned in the results; only output errors abort the batch.
func runBatch(ctx context.Context, analyzer *pipeline.Analyzer, files []string, outDir string, concurrency int) ([]batchResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]batchResult, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))

	for i, path := range files {
		g.Go(func() error {
			results[i] = batchResult{Path: path}

			essay, err := ingestion.ReadEssay(path)
			if err != nil {
				results[i].Err = err
				return nil
			}
			report, err := analyzeEssay(gCtx, analyzer, essay, "", "")
			if err != nil {
				results[i].Err = err
				return nil
			}

			output := filepath.Join(outDir, reportName(path))
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer func() { _ = f.Close() }()
			if err := writeReport(f, report, formatJSON); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			results[i].Output = output
			results[i].Total = report.Score.Total
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// reportName keeps the source extension so essay.txt and essay.docx in one
// directory get distinct reports.
func reportName(path string) string {
	return filepath.Base(path) + ".json"
}
