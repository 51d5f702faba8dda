package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the index and report corpus statistics",
	Long: `Performs a full index rebuild from the document store, the same one
search runs implicitly, and reports what was indexed. Useful to validate
the corpus after bulk ingestion.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if retriever == nil || documentService == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()
	docCount, err := documentService.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting documents: %w", err)
	}

	if err := retriever.Fit(ctx); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	cmd.Printf("Indexed %d paragraphs from %d documents.\n", retriever.ParagraphCount(), docCount)
	return nil
}
