package tui

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/roadwatch-io/trackview/internal/export"
	"github.com/roadwatch-io/trackview/internal/model"
	"github.com/roadwatch-io/trackview/internal/store"
	"github.com/roadwatch-io/trackview/internal/tenant"
)

const exportFilePerms = 0600

// focusArea tracks which input owns keystrokes.
type focusArea int

const (
	focusTable focusArea = iota
	focusFilter
	focusID
)

// sortCycle is the order the s key walks sortable columns in.
var sortCycle = []model.SortColumn{
	model.SortTimestamp,
	model.SortMessageID,
	model.SortPlate,
	model.SortTrackID,
	model.SortLatitude,
	model.SortLongitude,
}

// storeChangedMsg tells the program the store published a new snapshot.
type storeChangedMsg struct{}

// Model is the terminal front-end. It only dispatches intents into the store
// and renders the snapshots the store publishes.
type Model struct {
	store    *store.Store
	registry *tenant.Registry
	log      zerolog.Logger

	snap        store.Snapshot
	filterInput textinput.Model
	idInput     textinput.Model
	spin        spinner.Model
	focus       focusArea
	cursor      int
	status      string
	styles      styles
	width       int
}

// NewModel builds the initial front-end model over the given store.
func NewModel(s *store.Store, registry *tenant.Registry, log zerolog.Logger) *Model {
	fi := textinput.New()
	fi.Placeholder = "filter text"
	fi.Prompt = "/ "
	fi.Width = 30
	fi.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))

	ii := textinput.New()
	ii.Placeholder = "message id"
	ii.Prompt = "# "
	ii.Width = 20
	ii.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaOrange))

	return &Model{
		store:       s,
		registry:    registry,
		log:         log,
		snap:        s.Snapshot(),
		filterInput: fi,
		idInput:     ii,
		spin:        sp,
		styles:      newStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.snap = m.store.Snapshot()
		m.clampCursor()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.focus {
	case focusFilter:
		return m.handleFilterKey(msg)
	case focusID:
		return m.handleIDKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filterInput.Blur()
		m.focus = focusTable
		return m, nil
	case tea.KeyEsc:
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.focus = focusTable
		m.store.ClearFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.store.SetFilterText(m.filterInput.Value())
	return m, cmd
}

func (m *Model) handleIDKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.idInput.Blur()
		m.focus = focusTable
		if text := m.idInput.Value(); text != "" && !validID(text) {
			m.status = "id must be a whole number"
			return m, nil
		}
		m.store.LookupByID()
		return m, nil
	case tea.KeyEsc:
		m.idInput.Blur()
		m.focus = focusTable
		return m, nil
	}
	var cmd tea.Cmd
	m.idInput, cmd = m.idInput.Update(msg)
	m.store.SetIDQueryText(m.idInput.Value())
	return m, cmd
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.snap.Selected != nil {
		// Detail panel open: only dismissal applies.
		switch msg.String() {
		case "esc", "enter", "q":
			m.store.DismissSelection()
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusFilter
		m.filterInput.SetValue(m.snap.FilterText)
		return m, m.filterInput.Focus()
	case "#":
		m.focus = focusID
		m.idInput.SetValue(m.snap.IDQueryText)
		return m, m.idInput.Focus()
	case "f":
		m.store.SetFilterColumn(nextFilterColumn(m.snap.FilterColumn))
	case "r":
		m.status = ""
		m.store.Refresh()
	case "tab":
		next := m.registry.After(m.snap.ActiveTenant)
		m.status = "tenant: " + next.Name
		m.store.SwitchTenant(next)
	case "s":
		m.store.SortBy(nextSortColumn(m.snap.SortColumn))
	case "o":
		if m.snap.SortColumn != model.SortNone {
			m.store.SortBy(m.snap.SortColumn)
		}
	case "1", "2", "3", "4":
		cols := model.DisplayColumns()
		idx := int(msg.Runes[0] - '1')
		m.store.ToggleColumnVisible(cols[idx])
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.FinalRecords)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.snap.FinalRecords) {
			m.store.SelectRecord(m.snap.FinalRecords[m.cursor])
		}
	case "esc":
		m.store.ClearFilter()
	case "e":
		m.exportFile(export.Delimited(m.snap.FinalRecords), "csv")
	case "x":
		m.exportFile(export.Markup(m.snap.FinalRecords), "xml")
	case "c":
		if err := clipboard.WriteAll(export.Delimited(m.snap.FinalRecords)); err != nil {
			m.status = "clipboard copy failed"
		} else {
			m.status = "export copied to clipboard"
		}
	}
	return m, nil
}

// exportFile writes content to a timestamped file in the working directory.
// Write failures are surfaced on the status line, never fatal.
func (m *Model) exportFile(content, ext string) {
	name := export.Filename(ext)
	if err := os.WriteFile(name, []byte(content), exportFilePerms); err != nil {
		m.log.Error().Err(err).Str("file", name).Msg("export write failed")
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "exported " + name
}

func (m *Model) clampCursor() {
	if n := len(m.snap.FinalRecords); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextFilterColumn(col model.FilterColumn) model.FilterColumn {
	switch col {
	case model.FilterAll:
		return model.FilterPlate
	case model.FilterPlate:
		return model.FilterTrackID
	default:
		return model.FilterAll
	}
}

func nextSortColumn(col model.SortColumn) model.SortColumn {
	for i, c := range sortCycle {
		if c == col {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

func validID(text string) bool {
	for _, r := range text {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return text != "" && text != "-"
}

// Run starts the terminal program and bridges store notifications into it.
func Run(s *store.Store, registry *tenant.Registry, log zerolog.Logger) error {
	m := NewModel(s, registry, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	s.OnChange(func() {
		p.Send(storeChangedMsg{})
	})
	_, err := p.Run()
	return err
}
