package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage stored documents",
	Long:  `Add, list, view, or remove documents in the corpus.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Store a document from a file or stdin",
	Long: `Stores a plain-text document in the corpus. With no file argument
(or "-") the text is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents in corpus order",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Print a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentRemoveCmd = &cobra.Command{
	Use:   "remove [doc-id]",
	Short: "Remove a document from the corpus",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentRemove,
}

// Flags for the add command.
var (
	addTitle string
	addMeta  []string
)

func init() {
	documentAddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "document title")
	documentAddCmd.Flags().StringArrayVarP(&addMeta, "meta", "m", nil, "metadata key=value pair (repeatable)")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentRemoveCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	var text []byte
	var err error
	title := addTitle

	if len(args) == 1 && args[0] != "-" {
		text, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		if title == "" {
			title = filepath.Base(args[0])
		}
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	meta, err := parseMetaPairs(addMeta)
	if err != nil {
		return err
	}

	doc, err := documentService.Add(context.Background(), title, string(text), meta)
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	cmd.Printf("Stored document %s (%d bytes).\n", doc.ID, len(text))
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		if docs[i].Title != "" {
			cmd.Printf("    Title: %s\n", docs[i].Title)
		}
		cmd.Printf("    Added: %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n", doc.ID)
	if doc.Title != "" {
		cmd.Printf("  Title: %s\n", doc.Title)
	}
	if len(doc.Meta) > 0 {
		cmd.Println("  Metadata:")
		for k, v := range doc.Meta {
			cmd.Printf("    %s: %s\n", k, v)
		}
	}
	cmd.Println()
	cmd.Println(doc.Text)
	return nil
}

func runDocumentRemove(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	cmd.Printf("Document %s removed.\n", args[0])
	return nil
}

// parseMetaPairs converts repeated key=value flags into a metadata map.
func parseMetaPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid meta pair %q (want key=value): %w", pair, domain.ErrInvalidInput)
		}
		meta[key] = value
	}
	return meta, nil
}
