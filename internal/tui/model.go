package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/library"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

type tab int

const (
	tabResults tab = iota
	tabToRead
	tabReading
	tabCompleted
	tabCount
)

func (t tab) category() catalog.Category {
	switch t {
	case tabToRead:
		return catalog.ToRead
	case tabReading:
		return catalog.Reading
	case tabCompleted:
		return catalog.Completed
	}
	return ""
}

func (t tab) label() string {
	if t == tabResults {
		return "Results"
	}
	return t.category().Label()
}

// searchDoneMsg carries a finished Fetch back into Update.
type searchDoneMsg struct {
	library.SearchCompleted
}

// CoverRemover drops a cached cover image. *cache.Manager satisfies it.
type CoverRemover interface {
	Remove(id string) error
}

// chromeHeight is the number of lines above and below the panel list.
const chromeHeight = 8

// Model is the main readshelf view: search box and genre selector on top,
// the results panel and the three category panels as tabs below.
type Model struct {
	ctx    context.Context
	ctrl   *library.Controller
	covers CoverRemover
	keys   keyMap

	input   textinput.Model
	spinner spinner.Model
	lists   [tabCount]list.Model

	active    tab
	searching bool // search box has focus
	genres    []string
	genreIdx  int
	loading   bool
	status    string
	statusErr bool
	activeCmd string

	width, height int
}

// NewModel creates the main view over ctrl. ctx bounds every search request.
// When covers is non-nil, removing a book also deletes its cached cover.
func NewModel(ctx context.Context, ctrl *library.Controller, covers CoverRemover) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for books..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleHighlight

	m := Model{
		ctx:       ctx,
		ctrl:      ctrl,
		covers:    covers,
		keys:      newKeyMap(),
		input:     ti,
		spinner:   sp,
		searching: true,
		genres:    append([]string{""}, volumes.Genres...),
	}
	for t := tab(0); t < tabCount; t++ {
		l := list.New(nil, newCardDelegate(), 0, 0)
		l.Title = t.label()
		l.SetShowTitle(false)
		l.SetShowHelp(false)
		l.SetFilteringEnabled(false)
		l.DisableQuitKeybindings()
		l.SetStatusBarItemName("book", "books")
		l.Styles.PaginationStyle = StyleHelp
		l.Styles.StatusBar = StyleHelp
		m.lists[t] = l
	}
	m.setSize(80, 24)
	m.refresh()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Genre returns the selected genre; empty means any.
func (m Model) Genre() string {
	return m.genres[m.genreIdx]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case searchDoneMsg:
		if _, err := m.ctrl.Dispatch(msg.SearchCompleted); err != nil {
			m.setStatus(err.Error(), true)
		}
		m.loading = m.ctrl.Pending()
		m.refresh()
		if !m.loading {
			m.active = tabResults
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearchBox(msg)
		}
		return m.updatePanels(msg)
	}

	var cmd tea.Cmd
	if m.searching {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSearchBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.submitSearch()
	case key.Matches(msg, m.keys.Blur), key.Matches(msg, m.keys.NextTab):
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	out, err := m.ctrl.Dispatch(library.SearchCmd{Query: m.input.Value(), Genre: m.Genre()})
	if err != nil || out.Request == nil {
		return m, nil
	}
	m.loading = true
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, m.fetch(out.Request))
}

func (m Model) fetch(req *library.SearchRequest) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return searchDoneMsg{ctrl.Fetch(ctx, req)}
	}
}

func (m Model) updatePanels(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.NextGenre):
		return m.cycleGenre(1)

	case key.Matches(msg, m.keys.PrevGenre):
		return m.cycleGenre(-1)

	case key.Matches(msg, m.keys.Save):
		if m.active == tabResults {
			return m.saveSelected()
		}

	case key.Matches(msg, m.keys.ToRead):
		return m.moveSelected(catalog.ToRead)
	case key.Matches(msg, m.keys.Reading):
		return m.moveSelected(catalog.Reading)
	case key.Matches(msg, m.keys.Completed):
		return m.moveSelected(catalog.Completed)

	case key.Matches(msg, m.keys.Remove):
		if m.active != tabResults {
			return m.removeSelected()
		}
	}

	var cmd tea.Cmd
	m.lists[m.active], cmd = m.lists[m.active].Update(msg)
	return m, cmd
}

func (m Model) cycleGenre(step int) (tea.Model, tea.Cmd) {
	n := len(m.genres)
	m.genreIdx = (m.genreIdx + step + n) % n
	if _, err := m.ctrl.Dispatch(library.FilterCmd{Genre: m.Genre()}); err != nil {
		m.setStatus("Filter failed: "+err.Error(), true)
	}
	m.refresh()
	m.activeCmd = "f"
	return m, highlightCmd()
}

func (m *Model) selected() (CardItem, bool) {
	ci, ok := m.lists[m.active].SelectedItem().(CardItem)
	return ci, ok
}

func (m Model) saveSelected() (tea.Model, tea.Cmd) {
	ci, ok := m.selected()
	if !ok {
		return m, nil
	}
	v, ok := m.ctrl.Result(ci.ID)
	if !ok {
		return m, nil
	}
	_, err := m.ctrl.Dispatch(library.SaveCmd{Volume: v})
	switch {
	case errors.Is(err, library.ErrAlreadySaved):
		m.setStatus(fmt.Sprintf("%q is already in your library", ci.Title), true)
	case err != nil:
		m.setStatus("Save failed: "+err.Error(), true)
	default:
		m.setStatus(fmt.Sprintf("Saved %q to To Read", ci.Title), false)
	}
	m.refresh()
	m.activeCmd = "s"
	return m, highlightCmd()
}

func (m Model) moveSelected(cat catalog.Category) (tea.Model, tea.Cmd) {
	if m.active == tabResults {
		return m, nil
	}
	ci, ok := m.selected()
	if !ok {
		return m, nil
	}
	if _, err := m.ctrl.Dispatch(library.MoveCmd{ID: ci.ID, Category: cat}); err != nil {
		m.setStatus("Move failed: "+err.Error(), true)
	} else {
		m.setStatus(fmt.Sprintf("Moved %q to %s", ci.Title, cat.Label()), false)
	}
	m.refresh()
	m.activeCmd = "1"
	return m, highlightCmd()
}

func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	ci, ok := m.selected()
	if !ok {
		return m, nil
	}
	out, err := m.ctrl.Dispatch(library.RemoveCmd{ID: ci.ID})
	if err != nil {
		m.setStatus("Remove failed: "+err.Error(), true)
	} else {
		m.setStatus(fmt.Sprintf("Removed %q", ci.Title), false)
		if out.Changed && m.covers != nil {
			if err := m.covers.Remove(ci.ID); err != nil {
				m.setStatus(fmt.Sprintf("Removed %q, but its cover could not be deleted: %v", ci.Title, err), true)
			}
		}
	}
	m.refresh()
	m.activeCmd = "x"
	return m, highlightCmd()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// refresh re-renders every panel from the controller.
func (m *Model) refresh() {
	results := m.ctrl.RenderSearchResults()
	m.setItems(tabResults, cardItems(results.Cards))

	panels := m.ctrl.RenderLibrary()
	for _, t := range []tab{tabToRead, tabReading, tabCompleted} {
		m.setItems(t, cardItems(panels.Panel(t.category())))
	}
}

func (m *Model) setItems(t tab, items []list.Item) {
	l := &m.lists[t]
	_ = l.SetItems(items)
	if n := len(items); n > 0 && l.Index() >= n {
		l.Select(n - 1)
	}
}

func (m *Model) setSize(w, h int) {
	m.width, m.height = w, h
	fw, fh := StyleBorder.GetFrameSize()
	lh := h - fh - chromeHeight
	if lh < 4 {
		lh = 4
	}
	for t := range m.lists {
		m.lists[t].SetSize(w-fw, lh)
	}
	m.input.Width = w / 2
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("readshelf"))
	b.WriteString("  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	genre := m.Genre()
	if genre == "" {
		genre = "All Genres"
	}
	b.WriteString(StyleHelp.Render("Genre: "))
	b.WriteString(StyleGenre.Render("‹ " + genre + " ›"))
	if m.loading {
		b.WriteString("  " + m.spinner.View() + StyleHelp.Render(" Searching..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	results := m.ctrl.RenderSearchResults()
	switch {
	case m.status != "" && m.statusErr:
		b.WriteString(StyleError.Render(m.status))
	case m.status != "":
		b.WriteString(StyleSaved.Render(m.status))
	case m.active == tabResults && results.Err != "":
		b.WriteString(StyleError.Render(results.Err))
	case m.active == tabResults && !results.Searched:
		b.WriteString(StyleHelp.Render("Type a title or author and press enter."))
	}
	b.WriteString("\n")

	b.WriteString(m.lists[m.active].View())
	b.WriteString("\n")
	b.WriteString(RenderFooterBar(m.keys.shortcuts(m.active == tabResults), m.activeCmd))

	return StyleBorder.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%s (%d)", t.label(), len(m.lists[t].Items()))
		if t == m.active && !m.searching {
			tabs[t] = StyleTabActive.Render(label)
		} else if t == m.active {
			tabs[t] = StyleHeader.Padding(0, 1).Render(label)
		} else {
			tabs[t] = StyleTab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Run starts the interactive UI and blocks until the user quits.
func Run(ctx context.Context, ctrl *library.Controller, covers CoverRemover) error {
	p := tea.NewProgram(NewModel(ctx, ctrl, covers), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
