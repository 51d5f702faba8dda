package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

var (
	searchTopK int
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed paragraphs",
	Long: `Rebuilds the in-memory TF-IDF index from the document store and prints
the paragraphs most lexically similar to the query.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "maximum number of paragraphs to return")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

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

	results, err := retriever.Retrieve(ctx, query, domain.RetrieveOptions{TopK: resolveTopK(searchTopK)})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchText(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RetrievedDocument) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, results []domain.RetrievedDocument) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] doc %s, paragraph %d\n", i+1, results[i].DocumentID, results[i].ParagraphID)
		cmd.Printf("      %s\n", snippet(results[i].Text, 200))
		cmd.Println()
	}
	return nil
}

// snippet collapses a paragraph to a single truncated line.
func snippet(text string, limit int) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return text
}
