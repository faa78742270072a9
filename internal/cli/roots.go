package cli

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/spf13/cobra"
)

var rootsCmd = &cobra.Command{
	Use:   "roots <keyword>...",
	Short: "Show the root words a keyword is reduced to",
	Long: `Show the root words the local engine extracts from a keyword before
generating names. Stop words are dropped, letters folded to ASCII and at most
three roots are kept.

Examples:
  namesmith roots "the best cloud storage for teams"
  namesmith roots Café`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoots,
}

func runRoots(cmd *cobra.Command, args []string) error {
	vocab, err := vocabulary()
	if err != nil {
		return err
	}

	roots := vocab.ExtractKeywords(strings.Join(args, " "))
	out := cmd.OutOrStdout()
	if len(roots) == 0 {
		fmt.Fprintln(out, "No roots found.")
		return nil
	}
	for _, r := range roots {
		fmt.Fprintln(out, r)
	}
	return nil
}

// vocabulary returns the configured vocabulary without wiring services.
func vocabulary() (*naming.Vocabulary, error) {
	if cfg.VocabularyFile == "" {
		return naming.DefaultVocabulary(), nil
	}
	v, err := naming.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return v, nil
}
