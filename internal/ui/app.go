package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/familyboard/internal/board"
	"github.com/five82/familyboard/internal/composer"
	"github.com/five82/familyboard/internal/nav"
	"github.com/five82/familyboard/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Navigator *nav.Navigator
	Composer  *composer.Composer
	// NativeInput swaps the on-screen key grid for a text field.
	NativeInput bool
	ThemeName   string
	PrefsPath   string
	Logger      *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Domain
	nav      *nav.Navigator
	composer *composer.Composer
	native   bool

	// Configuration
	prefsPath string
	logger    *slog.Logger

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Focus is tracked by control ID for the active screen only.
	focus        string
	focusTouched bool // user moved focus since the screen appeared
	mount        int  // composer mount counter

	draftInput    textinput.Model
	boardViewport viewport.Model
	boardTop      int // first visible grid row
	stripStart    int // first visible note in the strip

	// Help overlay
	modal Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	navigator := opts.Navigator
	if navigator == nil {
		navigator = nav.New(nil, nav.VariantGrid, opts.Logger)
	}
	comp := opts.Composer
	if comp == nil {
		comp = composer.New(composer.Options{ClearOnReject: navigator.Variant() == nav.VariantStrip})
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a note"
	ti.Prompt = ""

	m := Model{
		nav:        navigator,
		composer:   comp,
		native:     opts.NativeInput,
		prefsPath:  opts.PrefsPath,
		logger:     logger,
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		draftInput: ti,
	}
	m.applyTheme()
	m.focus = m.defaultFocus(navigator.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("FamilyBoard")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.boardViewport = viewport.New(msg.Width, m.boardContentHeight())
		}
		m.ready = true
		m.boardViewport.Width = msg.Width
		m.boardViewport.Height = m.boardContentHeight()
		m.help.Width = msg.Width
		m.draftInput.Width = m.draftWidth() - 2
		m.ensureBoardVisible(m.nav.Snapshot().Notes)
		return m, nil

	case focusDraftMsg:
		cmd := m.handleFocusDraft(msg)
		return m, cmd
	}

	// Cursor blink ticks for the native draft field.
	if m.native && m.focus == idDraft {
		var cmd tea.Cmd
		m.draftInput, cmd = m.draftInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	state := m.nav.State()
	snap := m.nav.Snapshot()
	bodyHeight := maxInt(1, m.height-statusLines)

	var body string
	switch state.Base {
	case nav.ScreenBoard:
		body = m.renderBoard(snap.Notes, !state.Overlay)
	default:
		body = m.renderUserSelect(snap.Current, !state.Overlay)
	}
	body = m.theme.Styles().Screen.
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	if state.Overlay {
		body = overlayCenter(body, m.renderComposer(snap.Current), m.width, bodyHeight)
	}

	return body + "\n" + m.renderStatus(snap)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Help overlay swallows keys until it closes
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	active := m.nav.State().Active()

	// Letters belong to the draft while the composer is up
	if active != nav.ScreenComposer {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.modal = newHelpModal()
			return m, nil
		case key.Matches(msg, m.keys.CycleTheme):
			m.cycleTheme()
			return m, nil
		}
	}

	if active == nav.ScreenComposer && m.focus == idDraft {
		if cmd, handled := m.handleDraftKey(msg); handled {
			return m, cmd
		}
	}

	snap := m.nav.Snapshot()
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Up):
		cmd = m.moveFocus(snap, -1, 0)
	case key.Matches(msg, m.keys.Down):
		cmd = m.moveFocus(snap, 1, 0)
	case key.Matches(msg, m.keys.Left):
		cmd = m.moveFocus(snap, 0, -1)
	case key.Matches(msg, m.keys.Right):
		cmd = m.moveFocus(snap, 0, 1)
	case key.Matches(msg, m.keys.Next):
		cmd = m.stepFocus(snap, 1)
	case key.Matches(msg, m.keys.Prev):
		cmd = m.stepFocus(snap, -1)
	case key.Matches(msg, m.keys.Activate):
		if ctl := m.controls(snap).find(m.focus); ctl != nil {
			cmd = ctl.activate(&m)
			// Activation can post or delete notes.
			snap = m.nav.Snapshot()
		}
	case key.Matches(msg, m.keys.Back):
		cmd = m.handleBack(active)
	}

	m.ensureBoardVisible(snap.Notes)
	return m, cmd
}

// handleDraftKey feeds text keys to the focused draft field. Focus movement,
// Enter and Esc fall through to the normal bindings.
func (m *Model) handleDraftKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	for _, b := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Next, m.keys.Prev, m.keys.Activate, m.keys.Back} {
		if key.Matches(msg, b) {
			return nil, false
		}
	}

	if m.native {
		var cmd tea.Cmd
		m.draftInput, cmd = m.draftInput.Update(msg)
		m.composer.SetDraft(m.draftInput.Value())
		return cmd, true
	}

	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.composer.AppendCharacter(r)
		}
	case tea.KeySpace:
		m.composer.AppendSpace()
	case tea.KeyBackspace:
		m.composer.DeleteLastCharacter()
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) handleBack(active nav.Screen) tea.Cmd {
	switch active {
	case nav.ScreenComposer:
		return m.apply(m.nav.Cancel)
	case nav.ScreenBoard:
		return m.apply(m.nav.Back)
	}
	return nil
}

// apply runs a navigator operation and resets screen-local state when it
// changed the active screen.
func (m *Model) apply(op func() bool) tea.Cmd {
	before := m.nav.State()
	if !op() {
		return nil
	}
	if m.nav.State() == before {
		return nil
	}
	return m.enterScreen()
}

// enterScreen resets focus for the newly active screen. Opening the composer
// starts a fresh draft and schedules the one-shot draft focus.
func (m *Model) enterScreen() tea.Cmd {
	m.focus = m.defaultFocus(m.nav.Snapshot())
	m.focusTouched = false
	m.boardTop = 0
	m.stripStart = 0
	m.draftInput.Blur()

	if m.nav.State().Active() != nav.ScreenComposer {
		return nil
	}
	m.mount++
	m.composer.Reset()
	m.syncDraftInput()
	return focusDraftCmd(m.mount)
}

// submitDraft posts the draft if it is not blank.
func (m *Model) submitDraft() tea.Cmd {
	text, ok := m.composer.SubmitDraft()
	m.syncDraftInput()
	if !ok {
		m.logger.Debug("blank draft rejected")
		return nil
	}
	return m.submit(text)
}

func (m *Model) submit(text string) tea.Cmd {
	return m.apply(func() bool {
		_, ok := m.nav.Submit(text)
		return ok
	})
}

// refocusAfterDelete keeps focus on the note that slid into the removed
// slot, or on the plus control once the board is empty.
func (m *Model) refocusAfterDelete(index int) {
	notes := m.nav.Snapshot().Notes
	if len(notes) == 0 {
		m.focus = idPlus
		return
	}
	m.focus = noteID(notes[minInt(index, len(notes)-1)])
}

func (m *Model) syncDraftInput() {
	if !m.native {
		return
	}
	m.draftInput.SetValue(m.composer.Draft())
	m.draftInput.CursorEnd()
}

// Focus

// focusDraftMsg asks for the draft field to take focus for the composer
// mount that issued it.
type focusDraftMsg struct{ mount int }

// focusDraftCmd yields one update cycle before focusing the draft field.
func focusDraftCmd(mount int) tea.Cmd {
	return func() tea.Msg {
		return focusDraftMsg{mount: mount}
	}
}

// handleFocusDraft applies a deferred focus request once. It is dropped when
// the composer has closed or been reopened since, or the user already moved.
func (m *Model) handleFocusDraft(msg focusDraftMsg) tea.Cmd {
	if msg.mount != m.mount || m.focusTouched || !m.nav.Interactive(nav.ScreenComposer) {
		return nil
	}
	return m.setFocus(idDraft)
}

func (m *Model) setFocus(id string) tea.Cmd {
	m.focus = id
	if !m.native {
		return nil
	}
	if id == idDraft {
		return m.draftInput.Focus()
	}
	m.draftInput.Blur()
	return nil
}

func (m *Model) moveFocus(snap board.Snapshot, dr, dc int) tea.Cmd {
	grid := m.controls(snap)
	m.ensureFocus(grid, snap)
	m.focusTouched = true
	return m.setFocus(grid.move(m.focus, dr, dc))
}

func (m *Model) stepFocus(snap board.Snapshot, delta int) tea.Cmd {
	grid := m.controls(snap)
	m.ensureFocus(grid, snap)
	m.focusTouched = true
	return m.setFocus(grid.step(m.focus, delta))
}

// ensureFocus repairs a focus ID that no longer names a control.
func (m *Model) ensureFocus(grid focusGrid, snap board.Snapshot) {
	if grid.find(m.focus) == nil {
		m.focus = m.defaultFocus(snap)
	}
}

// defaultFocus is where focus lands when a screen appears.
func (m Model) defaultFocus(snap board.Snapshot) string {
	switch m.nav.State().Active() {
	case nav.ScreenBoard:
		return idPlus
	case nav.ScreenComposer:
		if left := composer.LeftColumn(); len(left) > 0 {
			return cannedButton{entry: left[0]}.ID()
		}
		return idDraft
	default:
		current := snap.Current
		if !current.Valid() {
			current = board.Identities[0]
		}
		return identityCard{identity: current}.ID()
	}
}

// controls returns the focus grid of the active screen built from snap.
func (m Model) controls(snap board.Snapshot) focusGrid {
	switch m.nav.State().Active() {
	case nav.ScreenBoard:
		return m.boardControls(snap.Notes)
	case nav.ScreenComposer:
		return m.composerControls()
	default:
		row := make([]focusable, 0, len(board.Identities))
		for _, id := range board.Identities {
			row = append(row, identityCard{identity: id})
		}
		return focusGrid{row}
	}
}

func (m Model) boardControls(notes []board.Note) focusGrid {
	var grid focusGrid
	if m.nav.HasBack() {
		grid = append(grid, []focusable{backButton{}})
	}
	for _, row := range m.noteRows(notes) {
		grid = append(grid, row)
	}
	return append(grid, []focusable{plusButton{}})
}

// noteRows lays the notes out in focus order: wrapped rows for the grid, a
// single row for the strip.
func (m Model) noteRows(notes []board.Note) [][]focusable {
	if len(notes) == 0 {
		return nil
	}
	cols := len(notes)
	if m.nav.Variant() == nav.VariantGrid {
		cols = m.gridColumns()
	}
	var rows [][]focusable
	for start := 0; start < len(notes); start += cols {
		end := minInt(start+cols, len(notes))
		row := make([]focusable, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, noteCard{index: i, note: notes[i]})
		}
		rows = append(rows, row)
	}
	return rows
}

func (m Model) composerControls() focusGrid {
	var grid focusGrid
	left, right := composer.LeftColumn(), composer.RightColumn()
	for i := 0; i < maxInt(len(left), len(right)); i++ {
		var row []focusable
		if i < len(left) {
			row = append(row, cannedButton{entry: left[i]})
		}
		if i < len(right) {
			row = append(row, cannedButton{entry: right[i]})
		}
		grid = append(grid, row)
	}
	grid = append(grid, []focusable{draftField{}, addButton{}})
	if !m.native {
		for _, labels := range composer.KeyRows() {
			row := make([]focusable, 0, len(labels))
			for _, label := range labels {
				row = append(row, keyButton{label: label})
			}
			grid = append(grid, row)
		}
	}
	return append(grid, []focusable{cancelButton{}})
}

// Board scrolling

func (m Model) gridColumns() int {
	if m.width <= 0 {
		return GridColumns
	}
	return clamp((m.width-2+noteGap)/(noteWidth+noteGap), 1, GridColumns)
}

func (m Model) stripVisible() int {
	if m.width <= 0 {
		return 1
	}
	return maxInt(1, (m.width-4+noteGap)/(noteWidth+noteGap))
}

func (m Model) boardContentHeight() int {
	return maxInt(noteHeight, m.height-boardHeaderLines-boardFooterLines-statusLines)
}

func (m Model) gridVisibleRows() int {
	return maxInt(1, (m.boardContentHeight()+1)/(noteHeight+1))
}

// ensureBoardVisible scrolls the board so the focused note is on screen.
func (m *Model) ensureBoardVisible(notes []board.Note) {
	if !m.nav.Interactive(nav.ScreenBoard) {
		return
	}
	index := -1
	for i, n := range notes {
		if noteID(n) == m.focus {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	if m.nav.Variant() == nav.VariantStrip {
		m.stripStart = scrollInto(m.stripStart, index, m.stripVisible())
		return
	}
	m.boardTop = scrollInto(m.boardTop, index/m.gridColumns(), m.gridVisibleRows())
}

// scrollInto returns a window start that keeps pos within [start, start+size).
func scrollInto(start, pos, size int) int {
	if pos < start {
		return pos
	}
	if pos >= start+size {
		return pos - size + 1
	}
	return start
}

// Theme

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", slog.String("path", m.prefsPath), slog.String("error", err.Error()))
	}
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	bg := lipgloss.Color(m.theme.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Background(bg)
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint)).Background(bg)
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle

	m.draftInput.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.OnFill())).Background(lipgloss.Color(m.theme.DraftField))
	m.draftInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B5570")).Background(lipgloss.Color(m.theme.DraftField))
	m.draftInput.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.OnFill()))
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
