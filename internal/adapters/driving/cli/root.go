// Package cli implements the passim command tree. Commands talk to core
// services through the driving ports; the services and their adapters are
// wired once per invocation in initServices.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passim-labs/passim-cli/internal/adapters/driven/config/file"
	"github.com/passim-labs/passim-cli/internal/adapters/driven/logging"
	"github.com/passim-labs/passim-cli/internal/adapters/driven/storage/sqlite"
	"github.com/passim-labs/passim-cli/internal/core/domain"
	"github.com/passim-labs/passim-cli/internal/core/ports/driven"
	"github.com/passim-labs/passim-cli/internal/core/ports/driving"
	"github.com/passim-labs/passim-cli/internal/core/services"
)

// version is injected by Execute.
var version = "dev"

// Persistent flag values.
var (
	flagDataDir string
	flagVerbose bool
)

// Services wired in initServices and consumed by the commands.
var (
	store           *sqlite.Store
	config          driven.ConfigStore
	events          driven.EventSink
	documentService driving.DocumentService
	retriever       driving.Retriever
)

var rootCmd = &cobra.Command{
	Use:   "passim",
	Short: "Lexical paragraph search over local documents",
	Long: `Passim indexes the paragraphs of your stored documents by TF-IDF weight
and answers free-text queries with the most lexically similar paragraphs.
The index lives in memory and is rebuilt from the document store on every run.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"directory holding the document database (default ~/.passim/data)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print index-build and query diagnostics")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	defer closeStore()
	return rootCmd.Execute()
}

// initServices wires the adapters and services the commands use.
func initServices(cmd *cobra.Command, _ []string) error {
	// version and help never touch the store
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config = cfg

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = config.GetString(file.KeyDataDir)
	}

	s, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	store = s

	events = logging.NewWriterSink(cmd.ErrOrStderr(), flagVerbose || config.GetBool(file.KeyVerbose))
	documentService = services.NewDocumentService(store)
	retriever = services.NewTfidfRetriever(store, events)
	return nil
}

func closeStore() {
	if store != nil {
		store.Close()
	}
}

// resolveTopK resolves the effective result limit: command flag first,
// then the configured default, then the domain default.
func resolveTopK(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if config != nil {
		if k := config.GetInt(file.KeyTopK); k > 0 {
			return k
		}
	}
	return domain.DefaultTopK
}
