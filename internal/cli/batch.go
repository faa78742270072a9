package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raphaelgruber/namesmith/internal/service"
	"github.com/spf13/cobra"
)

var (
	batchFlags       generateFlags
	batchConcurrency int
	batchTop         int
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate names for every keyword in a file",
	Long: `Generate names for a list of keywords, one per line. Blank lines and
lines starting with # are skipped. Use - to read from stdin.

Keywords are processed concurrently. On a terminal a progress bar is shown.

Examples:
  namesmith batch keywords.txt
  namesmith batch keywords.txt --style brandable --concurrency 8 --top 5
  cat keywords.txt | namesmith batch - --local --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchFlags.register(batchCmd)
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 4, "keywords processed in parallel")
	batchCmd.Flags().IntVar(&batchTop, "top", 5, "names printed per keyword (0 for all)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	keywords, err := readKeywordFile(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	if len(keywords) == 0 {
		return service.ErrNoKeywords
	}

	opts, err := batchFlags.options("")
	if err != nil {
		return err
	}

	batchFlags.markSeeded(cmd)
	appOpts := batchFlags.appOptions()
	appOpts.BatchConcurrency = batchConcurrency
	a, err := getApp(ctx, appOpts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := themeFor(out)
	name := filepath.Base(args[0])

	var result *service.BatchResult
	if isTerminal(out) && !batchFlags.json {
		job, err := a.Generation.RunBatchAsync(ctx, a.Jobs, name, keywords, opts)
		if err != nil {
			return err
		}
		if err := runJobProgress(job); err != nil {
			return err
		}
		result = job.Snapshot().Result
	} else {
		job := a.Jobs.CreateJob(name, len(keywords))
		a.Jobs.SetRunning(job)
		result, err = a.Generation.RunBatch(ctx, a.Jobs, job, keywords, opts)
		if err != nil {
			a.Jobs.Fail(job, err)
			return fmt.Errorf("run batch: %w", err)
		}
		a.Jobs.Complete(job, result)
	}

	if batchFlags.json {
		return printJSON(out, result)
	}
	printBatch(out, theme, result, batchTop)
	return nil
}

func readKeywordFile(stdin io.Reader, path string) ([]string, error) {
	if path == "-" {
		return service.ReadKeywords(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyword file: %w", err)
	}
	defer f.Close()
	return service.ReadKeywords(f)
}

func printBatch(w io.Writer, t Theme, res *service.BatchResult, top int) {
	if res == nil {
		fmt.Fprintln(w, "No results.")
		return
	}

	for _, item := range res.Items {
		if item.Error != "" {
			fmt.Fprintln(w, t.errorStyle().Render(fmt.Sprintf("✗ %s: %s", item.Keyword, item.Error)))
			fmt.Fprintln(w)
			continue
		}
		gen := *item.Result
		if top > 0 && len(gen.Suggestions) > top {
			gen.Suggestions = gen.Suggestions[:top]
		}
		printGeneration(w, t, &gen)
		fmt.Fprintln(w)
	}

	summary := fmt.Sprintf("%d succeeded, %d failed", res.Succeeded, res.Failed)
	if res.Failed > 0 {
		fmt.Fprintln(w, t.errorStyle().Render(summary))
		return
	}
	fmt.Fprintln(w, t.completedStyle().Render(summary))
}
