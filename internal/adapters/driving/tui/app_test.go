package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

// stubRetriever implements driving.Retriever for testing.
type stubRetriever struct {
	results []domain.RetrievedDocument
	err     error
	count   int
}

func (s *stubRetriever) Fit(_ context.Context) error { return nil }

func (s *stubRetriever) Retrieve(
	_ context.Context, _ string, _ domain.RetrieveOptions,
) ([]domain.RetrievedDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubRetriever) ParagraphCount() int { return s.count }

func sized(app *App) *App {
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App)
}

func typeQuery(app *App, query string) *App {
	for _, r := range query {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = model.(*App)
	}
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(*App)
}

func TestApp_ShowsIndexSizeBeforeFirstQuery(t *testing.T) {
	app := sized(NewApp(&stubRetriever{count: 42}, 0))

	view := app.View()
	assert.Contains(t, view, "42 paragraphs indexed")
}

func TestApp_RendersResults(t *testing.T) {
	retriever := &stubRetriever{
		count: 2,
		results: []domain.RetrievedDocument{
			{ParagraphID: 0, DocumentID: "doc1", Text: "cats are great"},
			{ParagraphID: 1, DocumentID: "doc1", Text: "Dogs are great too"},
		},
	}
	app := sized(NewApp(retriever, 0))
	app = typeQuery(app, "cats")

	view := app.View()
	assert.Contains(t, view, "[1] cats are great")
	assert.Contains(t, view, "[2] Dogs are great too")
	assert.Contains(t, view, "doc doc1, paragraph 0")
}

func TestApp_CursorWrapsAroundResults(t *testing.T) {
	retriever := &stubRetriever{
		results: []domain.RetrievedDocument{
			{ParagraphID: 0, Text: "first"},
			{ParagraphID: 1, Text: "second"},
		},
	}
	app := sized(NewApp(retriever, 0))
	app = typeQuery(app, "query")
	require.Equal(t, 0, app.cursor)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.cursor)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 0, app.cursor)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 1, app.cursor)
}

func TestApp_ShowsRetrieveError(t *testing.T) {
	app := sized(NewApp(&stubRetriever{err: domain.ErrNotFitted}, 0))
	app = typeQuery(app, "cats")

	assert.Contains(t, app.View(), "Error: index not fitted")
}

func TestApp_QuitKeys(t *testing.T) {
	app := sized(NewApp(&stubRetriever{}, 0))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one two", firstLine("one\ntwo", 40))
	long := strings.Repeat("x", 50)
	assert.Equal(t, strings.Repeat("x", 20)+"…", firstLine(long, 20))
}
