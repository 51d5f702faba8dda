package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and reindex on change",
	Long: `Ingests every .txt and .md file in the directory into the document
store, then watches for changes and rebuilds the index after each one.
File paths double as document IDs, so edits update documents in place.
Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if store == nil || retriever == nil {
		return errors.New("services not configured")
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ingestDir(ctx, dir); err != nil {
		return err
	}
	refit(ctx, cmd)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	cmd.Printf("Watching %s for changes...\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchableFile(event.Name) {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				if err := store.DeleteDocument(ctx, event.Name); err != nil {
					events.Warn("removing %s: %v", event.Name, err)
					continue
				}
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				if err := ingestFile(ctx, event.Name); err != nil {
					events.Warn("ingesting %s: %v", event.Name, err)
					continue
				}
			default:
				continue
			}
			refit(ctx, cmd)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			events.Warn("watch error: %v", err)
		}
	}
}

// ingestDir stores every watchable file directly under dir.
func ingestDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !watchableFile(path) {
			continue
		}
		if err := ingestFile(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// ingestFile stores one file, keyed by its absolute path so repeated
// ingestion updates rather than duplicates.
func ingestFile(ctx context.Context, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.TrimSpace(string(text)) == "" {
		return nil
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        path,
		Title:     filepath.Base(path),
		Text:      string(text),
		Meta:      map[string]string{"path": path},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return store.SaveDocument(ctx, doc)
}

// refit rebuilds the index, tolerating an empty corpus.
func refit(ctx context.Context, cmd *cobra.Command) {
	if err := retriever.Fit(ctx); err != nil {
		if errors.Is(err, domain.ErrEmptyCorpus) {
			events.Warn("corpus is empty, nothing indexed")
			return
		}
		events.Warn("rebuilding index: %v", err)
		return
	}
	cmd.Printf("Index rebuilt: %d paragraphs.\n", retriever.ParagraphCount())
}

// watchableFile reports whether the path is a plain-text corpus file.
func watchableFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	default:
		return false
	}
}
