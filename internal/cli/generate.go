package cli

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/namesmith/internal/app"
	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/raphaelgruber/namesmith/internal/service"
	"github.com/spf13/cobra"
)

// generateFlags are shared by generate and batch.
type generateFlags struct {
	style        string
	randomness   string
	availability bool
	local        bool
	checkDomains bool
	tlds         []string
	industry     string
	vibe         string
	country      string
	seed         uint64
	seeded       bool
	limit        int
	json         bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.style, "style", "s", "auto", "name style: "+styleList())
	cmd.Flags().StringVarP(&f.randomness, "randomness", "r", "medium", "ranking randomness: low, medium or high")
	cmd.Flags().BoolVarP(&f.availability, "availability", "a", false, "favour coined names likely to have free domains")
	cmd.Flags().BoolVar(&f.local, "local", false, "use only the local engine")
	cmd.Flags().BoolVarP(&f.checkDomains, "check-domains", "d", false, "check domain availability for every name")
	cmd.Flags().StringSliceVar(&f.tlds, "tlds", nil, "TLDs to check (default from NAMESMITH_TLDS)")
	cmd.Flags().StringVar(&f.industry, "industry", "", "industry hint for the remote model")
	cmd.Flags().StringVar(&f.vibe, "vibe", "", "tone hint for the remote model")
	cmd.Flags().StringVar(&f.country, "country", "", "target market for the remote model")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for reproducible local output (any value, 0 included)")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", naming.DefaultLimit, "max names per run")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON")
}

// options validates the flags and builds the generation request.
func (f *generateFlags) options(keyword string) (service.GenerateOptions, error) {
	style, err := naming.ParseStyle(f.style)
	if err != nil {
		return service.GenerateOptions{}, fmt.Errorf("--style: %w (want %s)", err, styleList())
	}
	randomness, err := naming.ParseRandomness(f.randomness)
	if err != nil {
		return service.GenerateOptions{}, fmt.Errorf("--randomness: %w", err)
	}
	if f.limit <= 0 {
		return service.GenerateOptions{}, fmt.Errorf("--limit must be positive")
	}

	return service.GenerateOptions{
		Keyword:          keyword,
		Style:            style,
		Randomness:       randomness,
		Industry:         f.industry,
		Vibe:             f.vibe,
		Country:          f.country,
		AvailabilityMode: f.availability,
		LocalOnly:        f.local,
		CheckDomains:     f.checkDomains,
		TLDs:             f.tlds,
	}, nil
}

func (f *generateFlags) appOptions() app.Options {
	return app.Options{Seed: f.seed, Seeded: f.seeded, Limit: f.limit, LocalOnly: f.local}
}

// markSeeded records whether --seed was given, so 0 is a usable seed.
func (f *generateFlags) markSeeded(cmd *cobra.Command) {
	f.seeded = cmd.Flags().Changed("seed")
}

func styleList() string {
	names := make([]string, len(naming.Styles))
	for i, s := range naming.Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

var (
	genFlags  generateFlags
	huntMode  bool
	huntWant  int
	huntTries int
	showStats bool
)

var generateCmd = &cobra.Command{
	Use:     "generate <keyword>...",
	Aliases: []string{"gen"},
	Short:   "Generate brand names for a keyword",
	Long: `Generate up to 20 ranked brand name candidates for a keyword or short
description.

With --hunt, generation repeats until enough names with at least one free
domain are found.

Examples:
  namesmith generate "cloud storage"
  namesmith generate fitness --style compound --randomness high
  namesmith generate bakery --industry food --vibe playful --check-domains
  namesmith generate payments --hunt --want 5 --tlds com,io
  namesmith generate coffee --local --seed 42 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	genFlags.register(generateCmd)
	generateCmd.Flags().BoolVar(&huntMode, "hunt", false, "repeat until names with free domains are found")
	generateCmd.Flags().IntVar(&huntWant, "want", service.DefaultHuntWant, "names with a free domain to find (with --hunt)")
	generateCmd.Flags().IntVar(&huntTries, "max-attempts", service.DefaultHuntMaxAttempts, "generation runs to try (with --hunt)")
	generateCmd.Flags().BoolVar(&showStats, "stats", false, "print timing and score statistics")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	keyword := strings.Join(args, " ")

	opts, err := genFlags.options(keyword)
	if err != nil {
		return err
	}

	genFlags.markSeeded(cmd)
	a, err := getApp(ctx, genFlags.appOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := themeFor(out)

	if huntMode {
		res, err := a.Generation.Hunt(ctx, service.HuntOptions{
			GenerateOptions: opts,
			Want:            huntWant,
			MaxAttempts:     huntTries,
			OnAttempt: func(attempt, found int) {
				if !genFlags.json {
					fmt.Fprintln(cmd.ErrOrStderr(), theme.hintStyle().Render(
						fmt.Sprintf("attempt %d/%d, %d found", attempt, huntTries, found)))
				}
			},
		})
		if err != nil {
			return fmt.Errorf("hunt names: %w", err)
		}
		if genFlags.json {
			return printJSON(out, res)
		}
		printHunt(out, theme, res)
	} else {
		res, err := a.Generation.Generate(ctx, opts)
		if err != nil {
			return fmt.Errorf("generate names: %w", err)
		}
		if genFlags.json {
			return printJSON(out, res)
		}
		printGeneration(out, theme, res)
	}

	if showStats {
		fmt.Fprintln(out)
		printStats(out, theme, a.Collector.Snapshot())
	}
	return nil
}
