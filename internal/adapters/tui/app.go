package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"snipyard/internal/adapters/tui/views"
	"snipyard/internal/ports"
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener
	picker *views.PickerModel

	result string // "here" text from a finished insert
	err    error

	width  int
	height int
}

// NewApp creates a new TUI application. history may be nil.
func NewApp(repo ports.SnippetRepository, sink ports.Sink, ed ports.EditorOpener, history ports.History, query ports.Query, maxDepth int) *App {
	return &App{
		editor: ed,
		picker: views.NewPickerModel(repo, sink, history, query, maxDepth),
	}
}

// Result returns the "here" text of the inserted candidate, to be emitted
// by the caller once the program has finished.
func (a *App) Result() string {
	return a.result
}

// Err returns the failure that ended the program, if any.
func (a *App) Err() error {
	return a.err
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path, msg.Line)

	case views.InsertDoneMsg:
		a.result = msg.Here
		a.err = msg.Err
		return a, tea.Quit

	case editorFinishedMsg:
		return a, nil
	}

	_, cmd := a.picker.Update(msg)
	return a, cmd
}

func (a *App) openEditor(path string, line int) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path, line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	return a.picker.View()
}
