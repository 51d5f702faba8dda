package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/passim-labs/passim-cli/internal/adapters/driving/tui"
	"github.com/passim-labs/passim-cli/internal/core/domain"
)

var tuiTopK int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive search UI",
	Long:  `Builds the index once, then opens an interactive query prompt.`,
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().IntVarP(&tuiTopK, "top-k", "k", 0, "maximum number of paragraphs per query")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if retriever == nil {
		return errors.New("retriever not configured")
	}

	ctx := context.Background()
	if err := retriever.Fit(ctx); err != nil {
		if errors.Is(err, domain.ErrEmptyCorpus) {
			return fmt.Errorf("nothing to search - add documents first: %w", err)
		}
		return fmt.Errorf("building index: %w", err)
	}

	app := tui.NewApp(retriever, resolveTopK(tuiTopK))
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
