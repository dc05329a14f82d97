package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/five82/petpad/internal/clock"
	"github.com/five82/petpad/internal/pets"
	"github.com/five82/petpad/internal/prefs"
	"github.com/five82/petpad/internal/state"
)

// pane identifies which half of the screen receives keys.
type pane int

const (
	paneForm pane = iota
	paneList
)

// Options configures the UI.
type Options struct {
	Session       *state.Session
	ClockInterval time.Duration
	Formatter     clock.Formatter
	ThemeName     string
	PrefsPath     string
	StoreLabel    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	session    *state.Session
	prefsPath  string
	storeLabel string
	keys       keyMap
	printer    *message.Printer

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    pane
	showHelp bool

	// Components
	form  petForm
	clock clock.Model
	list  viewport.Model

	// Data state
	snapshot state.Snapshot
	selected int
}

type startClockMsg struct{}

// New creates the root model. The session must already be initialized.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	m := Model{
		session:    opts.Session,
		prefsPath:  opts.PrefsPath,
		storeLabel: opts.StoreLabel,
		keys:       DefaultKeyMap(),
		printer:    message.NewPrinter(opts.Formatter.Tag()),
		theme:      GetTheme(themeName),
		focus:      paneForm,
		form:       newPetForm(),
		clock:      clock.New(opts.ClockInterval, opts.Formatter),
		list:       viewport.New(0, 0),
	}
	m.form.focusField(fieldName)
	if m.session != nil {
		m.snapshot = m.session.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		func() tea.Msg { return startClockMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.Width = max(msg.Width-4, 10)
		m.list.Height = m.listHeight()
		m.syncList()
		return m, nil

	case startClockMsg:
		return m, m.clock.Start()

	case clock.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input plumbing.
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.focus == paneForm {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.next()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.prev()

	case key.Matches(msg, m.keys.SwitchPane):
		m.focus = paneList
		m.form.blur()
		m.syncList()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitList):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("save prefs: %v", err)
		}
		m.syncList()

	case key.Matches(msg, m.keys.SwitchPane), key.Matches(msg, m.keys.AddPet):
		m.focus = paneForm
		m.syncList()
		return m, m.form.focusField(m.form.focus)

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(m.snapshot.Pets))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.snapshot.Pets))

	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selectedPet(); ok {
			_ = m.session.RemovePet(p.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Like):
		_ = m.session.IncrementLikes()
		m.refresh()

	case key.Matches(msg, m.keys.Unlike):
		_ = m.session.DecrementLikes()
		m.refresh()
	}
	return m, nil
}

// submitForm adds the pet described by the form. The fields are cleared only
// when the pet was saved, so a failed write keeps the user's input.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	name, species, age := m.form.values()
	if err := m.session.AddPet(name, species, age); err != nil {
		m.refresh()
		return m, nil
	}
	m.refresh()
	m.selected = len(m.snapshot.Pets) - 1
	m.syncList()
	return m, m.form.reset()
}

// quit cancels the clock before handing control back to the runtime.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.clock.Stop()
	return m, tea.Quit
}

func (m *Model) refresh() {
	m.snapshot = m.session.Snapshot()
	m.syncList()
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.syncList()
}

func (m Model) selectedPet() (pets.Pet, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Pets) {
		return pets.Pet{}, false
	}
	return m.snapshot.Pets[m.selected], true
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("ui requires a session")
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
