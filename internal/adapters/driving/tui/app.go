// Package tui provides an interactive terminal UI for querying the fitted
// index. It follows the Elm architecture via Bubbletea: a query input on
// top, the ranked paragraphs below, arrow keys to move between results.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/passim-labs/passim-cli/internal/core/domain"
	"github.com/passim-labs/passim-cli/internal/core/ports/driving"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	queryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// App is the interactive search model.
type App struct {
	retriever driving.Retriever
	topK      int

	ti      textinput.Model
	results []domain.RetrievedDocument
	cursor  int
	status  string
	err     error
	width   int
	ready   bool
}

// NewApp creates a TUI over an already fitted retriever. topK bounds the
// number of results per query; zero means the default.
func NewApp(retriever driving.Retriever, topK int) *App {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a query and press Enter"
	ti.Focus()

	return &App{
		retriever: retriever,
		topK:      topK,
		ti:        ti,
		status:    fmt.Sprintf("%d paragraphs indexed. Type to search.", retriever.ParagraphCount()),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			a.runQuery(strings.TrimSpace(a.ti.Value()))
			return a, nil
		case tea.KeyDown:
			if len(a.results) > 0 {
				a.cursor = (a.cursor + 1) % len(a.results)
			}
			return a, nil
		case tea.KeyUp:
			if len(a.results) > 0 {
				a.cursor = (a.cursor - 1 + len(a.results)) % len(a.results)
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.ti, cmd = a.ti.Update(msg)
	return a, cmd
}

// runQuery executes a retrieve and records the outcome on the model.
func (a *App) runQuery(query string) {
	if query == "" {
		return
	}

	results, err := a.retriever.Retrieve(context.Background(), query, domain.RetrieveOptions{TopK: a.topK})
	if err != nil {
		a.err = err
		a.results = nil
		a.cursor = 0
		return
	}

	a.err = nil
	a.results = results
	a.cursor = 0
	a.status = fmt.Sprintf("%d paragraphs for %q", len(results), query)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("passim"))
	b.WriteString("\n")
	b.WriteString(queryBoxStyle.Render(a.ti.View()))
	b.WriteString("\n")

	switch {
	case a.err != nil:
		b.WriteString(errorStyle.Render("Error: " + a.err.Error()))
	case len(a.results) == 0:
		b.WriteString(statusStyle.Render(a.status))
	default:
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n\n")
		for i, r := range a.results {
			line := fmt.Sprintf("[%d] %s", i+1, firstLine(r.Text, a.width-8))
			if i == a.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			if i == a.cursor {
				b.WriteString(metaStyle.Render(fmt.Sprintf("    doc %s, paragraph %d", r.DocumentID, r.ParagraphID)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("↑/↓ select · enter search · esc quit"))
	return b.String()
}

// firstLine collapses a paragraph to a single truncated line for the list.
func firstLine(text string, limit int) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if limit < 10 {
		limit = 10
	}
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit]) + "…"
	}
	return text
}
