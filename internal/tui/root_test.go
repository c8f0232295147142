package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ewilliamsbk88/chore-scheduler/internal/catalog"
	"github.com/ewilliamsbk88/chore-scheduler/internal/model"
	"github.com/ewilliamsbk88/chore-scheduler/internal/session"
)

func createTestModel(opts ...Option) Model {
	mgr := session.New(catalog.Default(), session.WithWeekStart("2024-01-01"))
	m := NewRootModel(mgr, []string{"Eric", "Sam"}, opts...)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return newModel.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		newModel, _ := m.Update(msg)
		m = newModel.(Model)
	}
	return m
}

// TestToggleSelectedRow tests that space toggles the task under the cursor
func TestToggleSelectedRow(t *testing.T) {
	m := createTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.session.IsCompleted("kitchen", model.FrequencyWeekly, "Wipe counters and stovetop") {
		t.Fatal("expected first kitchen task to be completed")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.session.IsCompleted("kitchen", model.FrequencyWeekly, "Sweep and Swiffer") {
		t.Error("expected second kitchen task to be completed")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.IsCompleted("kitchen", model.FrequencyWeekly, "Sweep and Swiffer") {
		t.Error("expected second toggle to clear the flag")
	}
}

// TestCursorBounds tests that the cursor stays within the rows of the zone
func TestCursorBounds(t *testing.T) {
	m := createTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}

	m = press(t, m, runes("G"))
	last := len(m.rows()) - 1
	if m.cursor != last {
		t.Errorf("expected cursor %d, got %d", last, m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != last {
		t.Errorf("cursor moved past the last row: %d", m.cursor)
	}

	m = press(t, m, runes("g"))
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after g, got %d", m.cursor)
	}
}

func TestWeekNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantWeek int
		wantDate string
	}{
		{
			name:     "previous at week 1 is a no-op",
			keys:     []tea.KeyMsg{runes("p")},
			wantWeek: 1,
			wantDate: "2024-01-01",
		},
		{
			name:     "next week",
			keys:     []tea.KeyMsg{runes("n")},
			wantWeek: 2,
			wantDate: "2024-01-08",
		},
		{
			name:     "arrow keys",
			keys:     []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}, {Type: tea.KeyLeft}},
			wantWeek: 2,
			wantDate: "2024-01-08",
		},
		{
			name:     "back to week 1 then stop",
			keys:     []tea.KeyMsg{runes("n"), runes("p"), runes("p")},
			wantWeek: 1,
			wantDate: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, createTestModel(), tt.keys...)
			s := m.session.State()
			if s.CurrentWeek != tt.wantWeek {
				t.Errorf("expected week %d, got %d", tt.wantWeek, s.CurrentWeek)
			}
			if s.WeekStartDate != tt.wantDate {
				t.Errorf("expected date %s, got %s", tt.wantDate, s.WeekStartDate)
			}
		})
	}
}

// TestCompletionScopedToWeek tests that paging weeks shows a fresh checklist
func TestCompletionScopedToWeek(t *testing.T) {
	m := createTestModel()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m = press(t, m, space, runes("n"))
	if m.rows()[0].Done {
		t.Error("week 2 should start with the task open")
	}

	m = press(t, m, runes("p"))
	if !m.rows()[0].Done {
		t.Error("week 1 should still show the task done")
	}
}

func TestSwitchZoneResetsCursor(t *testing.T) {
	m := createTestModel()
	m = press(t, m, runes("G"))

	m = press(t, m, runes("z"))
	if got := m.session.State().ActiveZone; got != "back" {
		t.Errorf("expected back zone, got %q", got)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor reset, got %d", m.cursor)
	}
	if first := m.rows()[0]; first.Room != "bedroom" {
		t.Errorf("expected bedroom first, got %q", first.Room)
	}

	m = press(t, m, runes("z"))
	if got := m.session.State().ActiveZone; got != "front" {
		t.Errorf("expected front zone, got %q", got)
	}
}

func TestAssigneePicker(t *testing.T) {
	m := createTestModel()

	m = press(t, m, runes("a"))
	if m.viewMode != ViewModeAssignee {
		t.Fatalf("expected assignee view, got %v", m.viewMode)
	}
	if m.assigneeIdx != 0 {
		t.Errorf("expected current assignee preselected, got %d", m.assigneeIdx)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.viewMode != ViewModeMain {
		t.Errorf("expected main view after select, got %v", m.viewMode)
	}
	if got := m.session.State().Assignee; got != "Sam" {
		t.Errorf("expected Sam, got %q", got)
	}

	m = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.session.State().Assignee; got != "Sam" {
		t.Errorf("esc should keep the assignee, got %q", got)
	}
}

func TestDateEntry(t *testing.T) {
	m := createTestModel()

	m = press(t, m, runes("d"))
	if m.viewMode != ViewModeDate {
		t.Fatalf("expected date view, got %v", m.viewMode)
	}
	if got := m.dateInput.Value(); got != "2024-01-01" {
		t.Errorf("expected input prefilled with current date, got %q", got)
	}

	m.dateInput.SetValue("2024-02-05")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.session.State().WeekStartDate; got != "2024-02-05" {
		t.Errorf("expected 2024-02-05, got %q", got)
	}

	// Typing "q" in the input must not quit or close it
	m = press(t, m, runes("d"))
	m = press(t, m, runes("q"))
	if m.viewMode != ViewModeDate {
		t.Error("q should be typed into the date input")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.session.State().WeekStartDate; got != "2024-02-05" {
		t.Errorf("esc should discard the edit, got %q", got)
	}
}

func TestHelpToggle(t *testing.T) {
	m := createTestModel()

	m = press(t, m, runes("?"))
	if m.viewMode != ViewModeHelp {
		t.Fatalf("expected help view, got %v", m.viewMode)
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help view should list shortcuts")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.viewMode != ViewModeMain {
		t.Errorf("expected main view, got %v", m.viewMode)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := createTestModel()
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestMainViewContent(t *testing.T) {
	m := createTestModel()
	out := m.View()

	for _, want := range []string{
		"Front of House Chores - Week 1",
		"Assigned to: Eric",
		"2024-01-01",
		"Kitchen",
		"Living Room",
		"Home Office",
		"Weekly Tasks",
		"Monthly Tasks",
		"0/25 done",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("main view missing %q", want)
		}
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	mgr := session.New(catalog.Default())
	m := NewRootModel(mgr, []string{"Eric"})
	if got := m.View(); got != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", got)
	}
}

// TestDebugPanelRecordsOperations tests the operations panel
func TestDebugPanelRecordsOperations(t *testing.T) {
	m := createTestModel(WithDebug(true))
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("n"), runes("z"))

	lines := m.debug.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 operations, got %d: %v", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "[toggle] kitchen/weekly/Wipe counters and stovetop") {
		t.Errorf("unexpected toggle line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[week] 2") {
		t.Errorf("unexpected week line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "[zone] back") {
		t.Errorf("unexpected zone line %q", lines[2])
	}
	if !strings.Contains(m.View(), "OPERATIONS") {
		t.Error("debug panel should be rendered")
	}
}

func TestDebugPanelDisabled(t *testing.T) {
	m := createTestModel()
	m = press(t, m, runes("n"))
	if len(m.debug.Lines()) != 0 {
		t.Error("disabled panel should not record operations")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Mop", 10, "Mop"},
		{"Take out trash/recycling", 10, "Take out …"},
		{"Sweep & Swiffer", 0, "Sweep & Swiffer"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

// TestDebugPanelRenderKeepsLastLines checks that a panel of height h
// shows the newest h-3 operations
func TestDebugPanelRenderKeepsLastLines(t *testing.T) {
	d := NewDebugPanel(true)
	for _, op := range []string{"one", "two", "three", "four"} {
		d.AddEvent(op, "")
	}

	out := d.Render(60, 5)
	for _, want := range []string{"[three]", "[four]"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %s:\n%s", want, out)
		}
	}
	for _, old := range []string{"[one]", "[two]"} {
		if strings.Contains(out, old) {
			t.Errorf("render should drop %s:\n%s", old, out)
		}
	}
}
