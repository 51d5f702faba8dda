package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"search", "index", "document", "watch", "tui", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "passim version")
}

func TestSearchRequiresQueryArgument(t *testing.T) {
	_, err := execute(t, "search")
	assert.Error(t, err)
}

func TestResolveTopK(t *testing.T) {
	// Flag wins; without flag or config the domain default applies.
	assert.Equal(t, 7, resolveTopK(7))
	assert.Equal(t, domain.DefaultTopK, resolveTopK(0))
}
