package cli

import (
	"errors"
	"fmt"

	"github.com/raphaelgruber/namesmith/internal/app"
	"github.com/raphaelgruber/namesmith/internal/availability"
	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/spf13/cobra"
)

var (
	checkDomains bool
	checkTLDs    []string
)

var checkCmd = &cobra.Command{
	Use:   "check <name>...",
	Short: "Check names for pronounceability and free domains",
	Long: `Run names through the pronounceability gate used by the generator and,
with --domains, check which domains are free.

Examples:
  namesmith check Zentora Qxzzt
  namesmith check Lumora --domains --tlds com,io,app`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkDomains, "domains", "d", false, "also check domain availability")
	checkCmd.Flags().StringSliceVar(&checkTLDs, "tlds", nil, "TLDs to check (default from NAMESMITH_TLDS)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	theme := themeFor(out)

	width := 4
	for _, name := range args {
		width = max(width, len(name))
	}

	var checker *availability.DNSChecker
	if checkDomains {
		a, err := getApp(ctx, app.Options{LocalOnly: true, NoHistory: true})
		if err != nil {
			return err
		}
		checker = a.Checker
	}

	for _, name := range args {
		verdict := theme.completedStyle().Render("pronounceable")
		if !naming.PassesQualityCheck(name) {
			verdict = theme.errorStyle().Render("rejected     ")
		}
		fmt.Fprintf(out, "%-*s  %s", width, name, verdict)

		if checker != nil {
			res, err := checker.Check(ctx, name, checkTLDs)
			switch {
			case errors.Is(err, availability.ErrInvalidName):
				fmt.Fprintf(out, "  %s", theme.hintStyle().Render("not a valid domain label"))
			case err != nil:
				return fmt.Errorf("check %s: %w", name, err)
			default:
				fmt.Fprintf(out, "  %s", formatDomains(theme, res))
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}
