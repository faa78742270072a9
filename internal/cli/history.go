package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/raphaelgruber/namesmith/internal/app"
	"github.com/raphaelgruber/namesmith/internal/db"
	"github.com/raphaelgruber/namesmith/internal/tools"
	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("generation history is disabled (set NAMESMITH_HISTORY=true and start SurrealDB)")

var (
	historyKeyword string
	historyLimit   int
	historyJSON    bool

	cachedIndustry string
	cachedLimit    int
	cachedJSON     bool
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List or inspect logged generation runs",
	Long: `List recent generation runs, newest first, or show one run by ID.
Requires NAMESMITH_HISTORY=true and a running SurrealDB.

Examples:
  namesmith history
  namesmith history --keyword "cloud storage" --limit 5
  namesmith history 0b7e6f0c-3c1a-4f0e-9a53-4d0f1d2c9b11`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var cachedCmd = &cobra.Command{
	Use:   "cached <keyword>...",
	Short: "List previously generated names for a keyword",
	Long: `List names cached by earlier runs for a keyword, best score first.
Requires NAMESMITH_HISTORY=true and a running SurrealDB.

Examples:
  namesmith cached "cloud storage"
  namesmith cached bakery --industry food --limit 50`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCached,
}

func init() {
	historyCmd.Flags().StringVarP(&historyKeyword, "keyword", "k", "", "only runs for this keyword")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultHistoryLimit, "max results")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print JSON")

	cachedCmd.Flags().StringVar(&cachedIndustry, "industry", "", "only names generated for this industry")
	cachedCmd.Flags().IntVarP(&cachedLimit, "limit", "n", db.DefaultHistoryLimit, "max results")
	cachedCmd.Flags().BoolVar(&cachedJSON, "json", false, "print JSON")
}

func historyStore(cmd *cobra.Command) (*app.App, error) {
	a, err := getApp(commandContext(cmd), app.Options{LocalOnly: true})
	if err != nil {
		return nil, err
	}
	if !a.HasHistory() {
		return nil, errHistoryDisabled
	}
	return a, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := historyStore(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		g, err := a.DB.GetGeneration(ctx, args[0])
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("generation not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("get generation: %w", err)
		}
		view := tools.NewGenerationView(*g)
		if historyJSON {
			return printJSON(out, view)
		}
		printGenerationLog(out, view)
		return nil
	}

	logs, err := a.DB.RecentGenerations(ctx, historyKeyword, historyLimit)
	if err != nil {
		return fmt.Errorf("list generations: %w", err)
	}
	views := make([]tools.GenerationView, len(logs))
	for i, l := range logs {
		views[i] = tools.NewGenerationView(l)
	}
	if historyJSON {
		return printJSON(out, views)
	}

	if len(views) == 0 {
		fmt.Fprintln(out, "No generations found.")
		return nil
	}

	fmt.Fprintf(out, "%-36s %-24s %-10s %-6s %-6s %s\n", "ID", "KEYWORD", "STYLE", "NAMES", "SOURCE", "CREATED")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, v := range views {
		fmt.Fprintf(out, "%-36s %-24s %-10s %-6d %-6s %s\n",
			v.ID, truncate(v.Keyword, 24), v.Settings.Style, v.ResultCount, v.Source, v.Created.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printGenerationLog(w io.Writer, v tools.GenerationView) {
	fmt.Fprintf(w, "Generation: %s\n", v.ID)
	fmt.Fprintf(w, "  Keyword: %s\n", v.Keyword)
	fmt.Fprintf(w, "  Source: %s\n", v.Source)
	fmt.Fprintf(w, "  Names: %d\n", v.ResultCount)
	fmt.Fprintf(w, "  Created: %s\n", v.Created.Format(time.RFC3339))

	s := v.Settings
	fmt.Fprintln(w, "\nSettings:")
	fmt.Fprintf(w, "  Style: %s\n", s.Style)
	fmt.Fprintf(w, "  Randomness: %s\n", s.Randomness)
	if s.Industry != nil {
		fmt.Fprintf(w, "  Industry: %s\n", *s.Industry)
	}
	if s.Vibe != nil {
		fmt.Fprintf(w, "  Vibe: %s\n", *s.Vibe)
	}
	if s.Country != nil {
		fmt.Fprintf(w, "  Country: %s\n", *s.Country)
	}
	if len(s.TLDs) > 0 {
		fmt.Fprintf(w, "  TLDs: %s\n", strings.Join(s.TLDs, ", "))
	}
	if s.AvailabilityMode {
		fmt.Fprintln(w, "  Availability mode: on")
	}
}

func runCached(cmd *cobra.Command, args []string) error {
	a, err := historyStore(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	keyword := strings.Join(args, " ")

	names, err := a.DB.CachedNames(cmd.Context(), keyword, cachedIndustry, cachedLimit)
	if err != nil {
		return fmt.Errorf("list cached names: %w", err)
	}
	views := make([]tools.CachedView, len(names))
	for i, n := range names {
		views[i] = tools.NewCachedView(n)
	}
	if cachedJSON {
		return printJSON(out, views)
	}

	if len(views) == 0 {
		fmt.Fprintf(out, "No cached names for %q.\n", keyword)
		return nil
	}

	theme := themeFor(out)
	fmt.Fprintf(out, "Cached names for %q (%d):\n\n", keyword, len(views))
	for _, v := range views {
		fmt.Fprintf(out, "- %s [%s] %d %s\n", theme.nameStyle().Render(v.Name), v.Style, v.Score, v.Source)
	}
	return nil
}

// truncate shortens s to n bytes, adding "..." if truncated.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n < 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
