package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"snipyard/internal/adapters/tui/styles"
	"snipyard/internal/application/commands"
	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Insert key.Binding
	Copy   key.Binding
	View   key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Insert: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "insert"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	View: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "view source"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// OpenEditorMsg asks the app to jump to a candidate's source heading.
type OpenEditorMsg struct {
	Path string
	Line int
}

// InsertDoneMsg reports a finished insert: file destinations are already
// written, Here carries the text for the caller's insertion point.
type InsertDoneMsg struct {
	Here string
	Err  error
}

type candidatesMsg struct {
	candidates []domain.Candidate
	err        error
}

type copiedMsg struct{ err error }

// PickerModel is the candidate picker: a filter input over the indexed
// snippets with insert/copy/view actions on the selection.
type PickerModel struct {
	repo     ports.SnippetRepository
	sink     ports.Sink
	history  ports.History // may be nil
	query    ports.Query
	maxDepth int

	input      textinput.Model
	candidates []domain.Candidate
	visible    []domain.Candidate
	cursor     int
	status     string
	statusErr  bool
	width      int
	height     int
}

// NewPickerModel creates a new picker view model
func NewPickerModel(repo ports.SnippetRepository, sink ports.Sink, history ports.History, query ports.Query, maxDepth int) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Filter snippets..."
	input.Focus()

	return &PickerModel{
		repo:     repo,
		sink:     sink,
		history:  history,
		query:    query,
		maxDepth: maxDepth,
		input:    input,
	}
}

// Init loads the candidate list
func (m *PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

func (m *PickerModel) load() tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.repo.Snippets(m.query)
		return candidatesMsg{candidates: candidates, err: err}
	}
}

// SetSize updates the view dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the candidate under the cursor.
func (m *PickerModel) Selected() (domain.Candidate, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.Candidate{}, false
	}
	return m.visible[m.cursor], true
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case candidatesMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.candidates = msg.candidates
		m.refilter()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
		} else {
			m.status = "copied to clipboard"
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.View):
			if c, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: c.File, Line: c.Line}
				}
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Copy):
			if c, ok := m.Selected(); ok {
				m.recordPick(c)
				return m, m.copy(c)
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Insert):
			if c, ok := m.Selected(); ok {
				m.recordPick(c)
				return m, m.insert(c)
			}
			return m, nil
		}
	}

	// Update input and refilter on change
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}

	return m, cmd
}

func (m *PickerModel) refilter() {
	query := m.input.Value()
	if query == "" {
		m.visible = m.candidates
	} else {
		scored := commands.FuzzySort(m.candidates, query)
		m.visible = make([]domain.Candidate, len(scored))
		for i, s := range scored {
			m.visible[i] = s.Candidate
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m *PickerModel) resolver() *commands.ResolveCommand {
	return commands.NewResolveCommand(m.repo, m.query.Context, m.maxDepth)
}

func (m *PickerModel) insert(c domain.Candidate) tea.Cmd {
	return func() tea.Msg {
		dm, err := m.resolver().Resolver().ResolveOne(c)
		if err != nil {
			return InsertDoneMsg{Err: err}
		}
		here, _ := dm.Take(domain.HereDestination)
		err = m.sink.Insert(dm)
		return InsertDoneMsg{Here: here, Err: err}
	}
}

func (m *PickerModel) copy(c domain.Candidate) tea.Cmd {
	return func() tea.Msg {
		dm, err := m.resolver().Resolver().ResolveOne(c)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: m.sink.Copy(dm)}
	}
}

// recordPick stores the choice in history; failures are ignored.
func (m *PickerModel) recordPick(c domain.Candidate) {
	if m.history != nil {
		m.history.Add(c.Display)
	}
}

// View renders the picker view
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Snippets"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		if m.status != "" && m.statusErr {
			b.WriteString(styles.ErrorMsg.Render(m.status))
		} else {
			b.WriteString(styles.MutedText.Render("No snippets found"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d snippets", len(m.visible))))
		b.WriteString("\n\n")

		maxVisible := m.listHeight()
		start := 0
		if m.cursor >= maxVisible {
			start = m.cursor - maxVisible + 1
		}
		end := min(start+maxVisible, len(m.visible))

		for i := start; i < end; i++ {
			b.WriteString(m.renderCandidate(m.visible[i], i == m.cursor))
			b.WriteString("\n")
		}

		if remaining := len(m.visible) - end; remaining > 0 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", remaining)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" && !m.statusErr {
		b.WriteString(styles.Success.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())

	return styles.App.Render(b.String())
}

func (m *PickerModel) listHeight() int {
	h := m.height - 12
	if h < 5 {
		h = 5
	}
	return h
}

func (m *PickerModel) renderCandidate(c domain.Candidate, selected bool) string {
	line := c.Display
	if selected {
		return styles.ItemSelected.Render("> " + line)
	}
	return styles.Item.Render("  " + line)
}

func (m *PickerModel) renderHelp() string {
	bindings := []key.Binding{
		PickerKeys.Insert, PickerKeys.Copy, PickerKeys.View, PickerKeys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}
