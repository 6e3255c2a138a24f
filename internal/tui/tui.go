// Package tui provides a Bubble Tea terminal user interface for
// reviewing tag proposals.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmelchers/titletag/internal/audio"
	"github.com/jmelchers/titletag/internal/config"
	"github.com/jmelchers/titletag/internal/model"
	"github.com/jmelchers/titletag/internal/session"
	"github.com/jmelchers/titletag/internal/titleparse"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateReview
	StateEdit
	StateComplete
	StateError
)

// item is one file under review.
type item struct {
	path     string
	existing audio.Tags
	proposal *model.Proposal
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	spinner   spinner.Model
	editInput textinput.Model
	settings  *config.Settings

	items []*item
	index int

	applied int
	skipped int

	status string
	err    error

	width  int
	height int
}

// NewModel creates a new TUI model for the given settings.
func NewModel(settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ti := textinput.New()
	ti.Placeholder = "TAG VALUE (e.g. YEAR 1999, empty value clears)"
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		state:     StateLoading,
		spinner:   sp,
		editInput: ti,
		settings:  settings,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadFiles(), m.spinner.Tick)
}

// Message types
type (
	// loadDoneMsg is sent when the input directory has been scanned.
	loadDoneMsg struct {
		Items []*item
		Err   error
	}

	// appliedMsg is sent when a proposal has been written to disk.
	appliedMsg struct {
		Count int
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case loadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else if len(msg.Items) == 0 {
			m.state = StateComplete
		} else {
			m.items = msg.Items
			m.state = StateReview
		}

	case appliedMsg:
		if msg.Err != nil {
			m.status = errorStyle.Render(msg.Err.Error())
		}
		m.applied += msg.Count
	}

	if m.state == StateEdit {
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateReview:
		switch msg.String() {
		case "y", "enter":
			cmd := m.applyCurrent()
			return m.advance(), cmd
		case "n":
			m.skipped++
			return m.advance(), nil
		case "a":
			cmd := m.applyRest()
			m.index = len(m.items)
			m.state = StateComplete
			return m, cmd
		case "e":
			m.state = StateEdit
			m.editInput.SetValue("")
			m.editInput.Focus()
			return m, textinput.Blink
		case "q", "esc":
			m.skipped += len(m.items) - m.index
			m.state = StateComplete
			return m, nil
		}

	case StateEdit:
		switch msg.String() {
		case "esc":
			m.state = StateReview
			m.status = ""
			return m, nil
		case "enter":
			line := m.editInput.Value()
			m.editInput.SetValue("")
			if strings.TrimSpace(line) == "" {
				m.state = StateReview
				m.status = ""
				return m, nil
			}
			m.applyEditLine(line)
			return m, nil
		default:
			var cmd tea.Cmd
			m.editInput, cmd = m.editInput.Update(msg)
			return m, cmd
		}

	case StateComplete, StateError:
		if msg.String() == "q" || msg.String() == "enter" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// applyEditLine parses and applies one "TAG VALUE" line to the current
// proposal, keeping the status line updated.
func (m *Model) applyEditLine(line string) {
	edit, err := session.ParseEdit(line)
	if err != nil {
		m.status = warningStyle.Render(fmt.Sprintf("%v (tags: ARTIST ALBUM ALBUM_ARTIST GENRE TITLE TRACK YEAR)", err))
		return
	}
	if err := session.ApplyEdit(m.current().proposal, edit); err != nil {
		m.status = warningStyle.Render(fmt.Sprintf("%s must be a number", edit.Tag))
		return
	}
	m.current().proposal.Update(m.settings.TitleTemplate, m.settings.FilenameTemplate)
	m.status = successStyle.Render(fmt.Sprintf("%s updated", edit.Tag))
}

func (m Model) current() *item {
	return m.items[m.index]
}

func (m Model) advance() Model {
	m.index++
	m.status = ""
	if m.index >= len(m.items) {
		m.state = StateComplete
	} else {
		m.state = StateReview
	}
	return m
}

// applyCurrent persists the current item in the background.
func (m *Model) applyCurrent() tea.Cmd {
	it := m.current()
	return func() tea.Msg {
		return appliedMsg{Count: 1, Err: persist(it)}
	}
}

// applyRest persists the current and all remaining items.
func (m *Model) applyRest() tea.Cmd {
	rest := m.items[m.index:]
	return func() tea.Msg {
		count := 0
		for _, it := range rest {
			if err := persist(it); err != nil {
				return appliedMsg{Count: count, Err: err}
			}
			count++
		}
		return appliedMsg{Count: count}
	}
}

func persist(it *item) error {
	if strings.EqualFold(filepath.Ext(it.path), ".mp3") {
		if err := audio.WriteTags(it.path, it.proposal); err != nil {
			return err
		}
	}
	_, err := audio.Rename(it.path, it.proposal.Filename)
	return err
}

// loadFiles scans the input directory and builds a proposal for every
// audio file that carries a title tag.
func (m Model) loadFiles() tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		entries, err := os.ReadDir(settings.InputDir)
		if err != nil {
			if os.IsNotExist(err) {
				return loadDoneMsg{}
			}
			return loadDoneMsg{Err: err}
		}

		parser := titleparse.New(false, nil)
		var items []*item
		for _, e := range entries {
			if e.IsDir() || !isAudioFile(e.Name()) {
				continue
			}
			path := filepath.Join(settings.InputDir, e.Name())
			tags, err := audio.ReadTags(path)
			if err != nil || tags.Title == "" {
				continue
			}
			prop := parser.Parse(tags.Title)
			if prop == nil {
				continue
			}
			if settings.KeepExistingArtist && tags.Artist != "" {
				parsed := prop.Artists
				prop.ClearArtists()
				prop.Feature([]string{tags.Artist})
				prop.Feature(parsed)
			}
			prop.Update(settings.TitleTemplate, settings.FilenameTemplate)
			items = append(items, &item{path: path, existing: tags, proposal: prop})
		}
		return loadDoneMsg{Items: items}
	}
}

func isAudioFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3", ".m4a", ".flac", ".ogg", ".opus":
		return true
	}
	return false
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏷  titletag"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Review tag proposals"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateReview, StateEdit:
		b.WriteString(m.viewReview())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	return m.spinner.View() + " " + subtitleStyle.Render("Reading input files...") + "\n"
}

func (m Model) viewReview() string {
	var b strings.Builder
	it := m.current()

	b.WriteString(fileStyle.Render(fmt.Sprintf("♪ %s", filepath.Base(it.path))))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d/%d)", m.index+1, len(m.items))))
	b.WriteString("\n\n")

	p := it.proposal
	oldName := strings.TrimSuffix(filepath.Base(it.path), filepath.Ext(it.path))
	b.WriteString(diffLine("ARTIST", it.existing.Artist, p.Artist))
	b.WriteString(diffLine("ALBUM_ARTIST", it.existing.AlbumArtist, p.AlbumArtist))
	b.WriteString(diffLine("ALBUM", it.existing.Album, p.Album))
	b.WriteString(diffLine("GENRE", it.existing.Genre, p.Genre))
	b.WriteString(diffLine("TITLE", it.existing.Title, p.FinalTitle))
	b.WriteString(diffLine("TRACK", model.NumText(it.existing.Track), model.NumText(p.Track)))
	b.WriteString(diffLine("YEAR", model.NumText(it.existing.Year), model.NumText(p.Year)))
	b.WriteString(diffLine("FILENAME", oldName, p.Filename))

	if m.state == StateEdit {
		b.WriteString("\n")
		b.WriteString(m.editInput.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return b.String()
}

func diffLine(tag, old, proposed string) string {
	label := subtitleStyle.Render(fmt.Sprintf("%-15s", tag))
	if old == proposed {
		return fmt.Sprintf("%s %s\n", label, dimStyle.Render("unchanged"))
	}
	if old == "" {
		old = "N/A"
	}
	return fmt.Sprintf("%s %s -> %s\n", label, dimStyle.Render(old), successStyle.Render(proposed))
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf(
		"✨ Review complete\n\nApplied: %d\nSkipped: %d",
		m.applied, m.skipped,
	))
}

func (m Model) viewError() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateReview:
		return "y: apply • n: skip • e: edit • a: apply all • q: quit"
	case StateEdit:
		return "enter: apply edit • esc: back"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
