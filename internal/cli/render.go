package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/raphaelgruber/namesmith/internal/availability"
	"github.com/raphaelgruber/namesmith/internal/metrics"
	"github.com/raphaelgruber/namesmith/internal/service"
)

// Theme holds the color scheme for terminal output.
type Theme struct {
	Status     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Hint       lipgloss.Color
	Name       lipgloss.Color
	ProgressBg lipgloss.Color

	// plain disables styling for pipes and files.
	plain bool
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:     lipgloss.Color("#5FAFD7"), // light blue
	Success:    lipgloss.Color("#00D787"), // green
	Error:      lipgloss.Color("#FF005F"), // red
	Hint:       lipgloss.Color("#6C6C6C"), // dim gray
	Name:       lipgloss.Color("#FFD75F"), // gold
	ProgressBg: lipgloss.Color("#3A3A3A"), // dark gray
}

var plainTheme = Theme{plain: true}

// themeFor returns the default theme for terminals and no styling otherwise.
func themeFor(w io.Writer) Theme {
	if isTerminal(w) {
		return defaultTheme
	}
	return plainTheme
}

func (t Theme) style(fg lipgloss.Color) lipgloss.Style {
	if t.plain {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(fg)
}

func (t Theme) statusStyle() lipgloss.Style {
	return t.style(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	if t.plain {
		return lipgloss.NewStyle()
	}
	return t.style(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	if t.plain {
		return lipgloss.NewStyle()
	}
	return t.style(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	if t.plain {
		return lipgloss.NewStyle()
	}
	return t.style(t.Hint).Italic(true)
}

func (t Theme) nameStyle() lipgloss.Style {
	if t.plain {
		return lipgloss.NewStyle()
	}
	return t.style(t.Name).Bold(true)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printGeneration(w io.Writer, t Theme, res *service.GenerationResult) {
	header := fmt.Sprintf("%s (source: %s, roots: %s)", res.Keyword, res.Source, strings.Join(res.Roots, ", "))
	fmt.Fprintln(w, t.statusStyle().Render(header))
	if res.LogID != "" {
		fmt.Fprintln(w, t.hintStyle().Render("logged as "+res.LogID))
	}
	fmt.Fprintln(w)

	if len(res.Suggestions) == 0 {
		fmt.Fprintln(w, "No names found.")
		return
	}
	printSuggestions(w, t, res.Suggestions)
}

func printHunt(w io.Writer, t Theme, res *service.HuntResult) {
	header := fmt.Sprintf("%s (%d names with a free domain after %d attempts)", res.Keyword, len(res.Suggestions), res.Attempts)
	fmt.Fprintln(w, t.statusStyle().Render(header))
	fmt.Fprintln(w)

	if len(res.Suggestions) == 0 {
		fmt.Fprintln(w, t.hintStyle().Render("No names with a free domain found. Try --availability or more --tlds."))
		return
	}
	printSuggestions(w, t, res.Suggestions)
}

// printSuggestions prints one ranked row per suggestion. Fields are padded
// before styling so escape codes do not break alignment.
func printSuggestions(w io.Writer, t Theme, suggestions []service.Suggestion) {
	width := 4
	for _, s := range suggestions {
		width = max(width, len(s.Name))
	}

	for i, s := range suggestions {
		name := t.nameStyle().Render(fmt.Sprintf("%-*s", width, s.Name))
		fmt.Fprintf(w, "%3d. %s  %-10s %3.0f  %-5s", i+1, name, s.Style, s.Score, s.Source)
		if s.Availability != nil {
			fmt.Fprintf(w, "  %s", formatDomains(t, *s.Availability))
		}
		fmt.Fprintln(w)
		if verbose && s.Rationale != "" {
			fmt.Fprintf(w, "      %s\n", t.hintStyle().Render(s.Rationale))
		}
	}
}

func formatDomains(t Theme, res availability.Result) string {
	parts := make([]string, len(res.Domains))
	for i, d := range res.Domains {
		if d.Available {
			parts[i] = t.completedStyle().Render(d.Domain + " ✓")
		} else {
			parts[i] = t.hintStyle().Render(d.Domain + " ✗")
		}
	}
	return strings.Join(parts, " ")
}

// printStats displays runtime statistics for the current process.
func printStats(w io.Writer, t Theme, snap metrics.Snapshot) {
	fmt.Fprintln(w, t.statusStyle().Render("Statistics (this run)"))
	fmt.Fprintln(w, "═══════════════════════════════════════")

	ops := []struct {
		label string
		op    *metrics.OperationSnapshot
	}{
		{"Local generate", snap.LocalGenerate},
		{"Remote generate", snap.RemoteGenerate},
		{"Availability", snap.Availability},
		{"History log", snap.DBLog},
	}
	for _, o := range ops {
		if o.op == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", o.label)
		printOpStats(w, o.op)
	}

	if s := snap.Scores; s != nil {
		fmt.Fprintf(w, "\nScores (%d names):\n", s.Count)
		fmt.Fprintf(w, "  mean %.1f, median %.1f, stddev %.1f, min %.0f, max %.0f\n",
			s.Mean, s.Median, s.StdDev, s.Min, s.Max)
	}
}

// printOpStats displays timing statistics for an operation.
func printOpStats(w io.Writer, op *metrics.OperationSnapshot) {
	fmt.Fprintf(w, "  Calls: %d, Errors: %d, Total: %dms\n", op.Count, op.Errors, op.TotalTimeMs)
	fmt.Fprintf(w, "  Time: avg %.1fms, min %dms, max %dms\n", op.AvgTimeMs, op.MinTimeMs, op.MaxTimeMs)
	if op.TotalInputTokens != nil && op.TotalOutputTokens != nil {
		fmt.Fprintf(w, "  Tokens: %d in, %d out\n", *op.TotalInputTokens, *op.TotalOutputTokens)
	}
}
