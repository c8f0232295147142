package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ewilliamsbk88/chore-scheduler/internal/logging"
	"github.com/ewilliamsbk88/chore-scheduler/internal/model"
	"github.com/ewilliamsbk88/chore-scheduler/internal/session"
	"github.com/ewilliamsbk88/chore-scheduler/internal/view"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeMain     ViewMode = iota // Checklist for the active zone
	ViewModeAssignee                 // Assignee picker
	ViewModeDate                     // Week start date entry
	ViewModeHelp                     // Help overlay
)

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// View state
	viewMode ViewMode

	// Session state lives in the manager; the model only tracks UI state
	session *session.Manager
	roster  []string

	// Row cursor over view.ViewModel.Rows()
	cursor int

	// Assignee picker
	assigneeIdx int

	// Week start date entry
	dateInput textinput.Model

	// Key bindings and help
	keys KeyMap
	help help.Model

	debug  DebugPanel
	logger *slog.Logger

	// Ready state
	ready bool
}

// Option configures the root model
type Option func(*Model)

// WithDebug shows the operations panel
func WithDebug(enabled bool) Option {
	return func(m *Model) { m.debug = NewDebugPanel(enabled) }
}

// WithLogger sets the logger for UI events
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// NewRootModel creates the root model for a session. roster lists the
// assignees offered by the picker.
func NewRootModel(mgr *session.Manager, roster []string, opts ...Option) Model {
	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.Prompt = "Week starting: "
	di.PromptStyle = InputPromptStyle
	di.CharLimit = 10
	di.Width = 12

	m := Model{
		viewMode:  ViewModeMain,
		session:   mgr,
		roster:    roster,
		dateInput: di,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		debug:     NewDebugPanel(false),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always quits, regardless of state
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.viewMode {
		case ViewModeDate:
			return m.updateDate(msg)
		case ViewModeAssignee:
			return m.updateAssignee(msg), nil
		case ViewModeHelp:
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
				m.viewMode = ViewModeMain
			}
			return m, nil
		}
		return m.updateMain(msg)
	}

	return m, nil
}

// updateMain handles keys on the checklist. Each action maps to exactly
// one session operation.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewModeHelp

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		m.cursor = max(len(rows)-1, 0)

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(rows) {
			row := rows[m.cursor]
			m.session.ToggleTask(row.Room, row.Frequency, row.Name)
			m.debug.AddEvent("toggle", fmt.Sprintf("%s/%s/%s", row.Room, row.Frequency, row.Name))
		}

	case key.Matches(msg, m.keys.SwitchZone):
		m.session.SwitchZone()
		m.cursor = 0
		m.debug.AddEvent("zone", m.session.State().ActiveZone)

	case key.Matches(msg, m.keys.PrevWeek):
		// Disabled at week 1
		if m.session.CanRetreat() {
			m.session.RetreatWeek()
			m.debug.AddEvent("week", fmt.Sprintf("%d", m.session.State().CurrentWeek))
		}

	case key.Matches(msg, m.keys.NextWeek):
		m.session.AdvanceWeek()
		m.debug.AddEvent("week", fmt.Sprintf("%d", m.session.State().CurrentWeek))

	case key.Matches(msg, m.keys.Assignee):
		m.viewMode = ViewModeAssignee
		m.assigneeIdx = 0
		current := m.session.State().Assignee
		for i, name := range m.roster {
			if name == current {
				m.assigneeIdx = i
				break
			}
		}

	case key.Matches(msg, m.keys.Date):
		m.viewMode = ViewModeDate
		m.dateInput.SetValue(m.session.State().WeekStartDate)
		m.dateInput.CursorEnd()
		m.dateInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// updateAssignee handles the roster picker
func (m Model) updateAssignee(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.assigneeIdx > 0 {
			m.assigneeIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.assigneeIdx < len(m.roster)-1 {
			m.assigneeIdx++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.assigneeIdx < len(m.roster) {
			name := m.roster[m.assigneeIdx]
			m.session.SetAssignee(name)
			m.debug.AddEvent("assignee", name)
		}
		m.viewMode = ViewModeMain
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.viewMode = ViewModeMain
	}
	return m
}

// updateDate handles the week start input. The value is stored as typed.
func (m Model) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		date := strings.TrimSpace(m.dateInput.Value())
		m.session.SetWeekStartDate(date)
		m.debug.AddEvent("date", date)
		if _, err := session.AddDays(date, 0); err != nil {
			m.logger.Warn("week start is not an ISO date", "value", date)
		}
		m.dateInput.Blur()
		m.viewMode = ViewModeMain
		return m, nil
	case tea.KeyEsc:
		m.dateInput.Blur()
		m.viewMode = ViewModeMain
		return m, nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// rows returns the checklist rows of the active zone, or nil when the
// zone cannot be resolved
func (m Model) rows() []view.TaskView {
	vm, err := view.Compose(m.session.Catalog(), m.session.State())
	if err != nil {
		return nil
	}
	return vm.Rows()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	vm, err := view.Compose(m.session.Catalog(), m.session.State())
	if err != nil {
		return ErrorStyle.Render("Error: " + err.Error())
	}

	switch m.viewMode {
	case ViewModeHelp:
		return m.helpView()
	case ViewModeAssignee:
		return m.assigneeView()
	case ViewModeDate:
		return m.dateView()
	default:
		return m.mainView(vm)
	}
}

// mainView renders the checklist dashboard
func (m Model) mainView(vm view.ViewModel) string {
	sections := []string{
		m.renderHeader(vm),
		m.renderControls(vm),
		m.renderRooms(vm),
	}
	if m.debug.IsEnabled() {
		sections = append(sections, m.debug.Render(m.width, 8))
	}
	sections = append(sections, m.renderStatusBar(vm))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line
func (m Model) renderHeader(vm view.ViewModel) string {
	title := HeaderStyle.Render(vm.Heading)
	info := HeaderInfoStyle.Render(fmt.Sprintf("  Assigned to: %s · Week starting: %s", vm.Assignee, vm.WeekStart))

	return lipgloss.NewStyle().
		Width(m.width).
		Render(title+info) + "\n"
}

// renderControls renders the zone and week buttons
func (m Model) renderControls(vm view.ViewModel) string {
	zone := ButtonActiveStyle.Render("z Switch Zones")

	prev := ButtonStyle.Render("← Previous Week")
	if !vm.CanRetreat {
		prev = ButtonDisabledStyle.Render("← Previous Week")
	}

	next := ButtonStyle.Render("Next Week →")

	return lipgloss.NewStyle().
		PaddingLeft(1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, zone, " ", prev, " ", next)) + "\n"
}

// renderRooms lays the room cards out side by side
func (m Model) renderRooms(vm view.ViewModel) string {
	if len(vm.Rooms) == 0 {
		return DimStyle.Render("No rooms in this zone.")
	}

	cardWidth := max(m.width/len(vm.Rooms)-2, 20)

	row := 0
	var cards []string
	for _, r := range vm.Rooms {
		var content strings.Builder
		content.WriteString(RoomTitleStyle.Render(r.Name))
		content.WriteString(DimStyle.Render(fmt.Sprintf("  %d/%d", r.Done, r.Total)))
		content.WriteString("\n")

		for _, s := range r.Sections {
			content.WriteString("\n")
			content.WriteString(SectionLabelStyle.Render(s.Label))
			content.WriteString("\n")
			for _, t := range s.Tasks {
				content.WriteString(m.renderTask(t, row == m.cursor, cardWidth-4))
				content.WriteString("\n")
				row++
			}
		}

		cards = append(cards, RoomStyle.
			Width(cardWidth).
			Render(strings.TrimSuffix(content.String(), "\n")))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderTask renders one checklist row
func (m Model) renderTask(t view.TaskView, selected bool, width int) string {
	iconStyle, textStyle := TaskIconPendingStyle, TaskPendingStyle
	if t.Done {
		iconStyle, textStyle = TaskIconCompleteStyle, TaskCompleteStyle
	}
	line := iconStyle.Render(model.StatusIcon(t.Done)) + " " + textStyle.Render(truncate(t.Name, width-2))
	if selected {
		return TaskSelectedStyle.Render("▸" + line)
	}
	return " " + line
}

// renderStatusBar renders progress and key hints
func (m Model) renderStatusBar(vm view.ViewModel) string {
	progress := ProgressStyle.Render(fmt.Sprintf("%d/%d done", vm.Done, vm.Total))
	zone := DimStyle.Render(" │ " + vm.ZoneTitle + " │ ")
	return StatusBarStyle.Render(progress + zone + m.help.ShortHelpView(m.keys.ShortHelp()))
}

// helpView renders the help overlay
func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true

	content := DialogTitleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		h.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		DimStyle.Render("Press ? or Esc to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, DialogStyle.Render(content))
}

// assigneeView renders the roster picker
func (m Model) assigneeView() string {
	var content strings.Builder
	content.WriteString(DialogTitleStyle.Render("Assigned to"))
	content.WriteString("\n\n")

	for i, name := range m.roster {
		if i == m.assigneeIdx {
			content.WriteString(lipgloss.NewStyle().
				Background(ColorBgHighlight).
				Foreground(ColorFgPrimary).
				Bold(true).
				Padding(0, 1).
				Render("▸ " + name))
		} else {
			content.WriteString(lipgloss.NewStyle().
				Foreground(ColorFgPrimary).
				Padding(0, 1).
				Render("  " + name))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(DimStyle.Render("↑/↓ navigate • Enter select • Esc cancel"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, DialogStyle.Render(content.String()))
}

// dateView renders the week start input
func (m Model) dateView() string {
	content := DialogTitleStyle.Render("Week Starting") + "\n\n" +
		m.dateInput.View() + "\n\n" +
		DimStyle.Render("Enter save • Esc cancel")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, DialogStyle.Render(content))
}

// Helper functions
func truncate(s string, max int) string {
	if max < 1 || len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}
