// Package session holds the mutable checklist state for one run of the
// application: active zone, week counter, week start date, assignee and
// per-week completion flags. Nothing here is persisted.
package session

import (
	"log/slog"
	"time"

	"github.com/ewilliamsbk88/chore-scheduler/internal/catalog"
	"github.com/ewilliamsbk88/chore-scheduler/internal/logging"
	"github.com/ewilliamsbk88/chore-scheduler/internal/model"
	"github.com/google/uuid"
)

// DateLayout is the ISO 8601 calendar date format used for week start dates
const DateLayout = "2006-01-02"

// DefaultAssignee is used when no assignee option is given
const DefaultAssignee = "Eric"

// State is a snapshot of the session
type State struct {
	ActiveZone     string
	CurrentWeek    int
	WeekStartDate  string
	Assignee       string
	CompletedTasks map[model.CompletionKey]bool
}

// Completed reports the flag for key, false when absent
func (s State) Completed(key model.CompletionKey) bool {
	return s.CompletedTasks[key]
}

// Manager owns the session state. It is not safe for concurrent use; the
// UI drives it from a single goroutine.
type Manager struct {
	id      string
	catalog *catalog.Catalog
	state   State
	logger  *slog.Logger
}

type options struct {
	zone      string
	assignee  string
	weekStart string
	clock     func() time.Time
	logger    *slog.Logger
}

// Option configures a Manager
type Option func(*options)

// WithZone sets the starting zone. Unknown keys fall back to the first zone.
func WithZone(key string) Option {
	return func(o *options) { o.zone = key }
}

// WithAssignee sets the starting assignee
func WithAssignee(name string) Option {
	return func(o *options) { o.assignee = name }
}

// WithWeekStart sets the starting week date instead of today (UTC)
func WithWeekStart(date string) Option {
	return func(o *options) { o.weekStart = date }
}

// WithClock overrides time.Now for the default week start
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithLogger sets the logger used for state transitions
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a session at week 1
func New(cat *catalog.Catalog, opts ...Option) *Manager {
	o := options{
		zone:     catalog.ZoneFront,
		assignee: DefaultAssignee,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if !cat.Has(o.zone) {
		o.zone = cat.ZoneKeys()[0]
	}
	if o.weekStart == "" {
		o.weekStart = o.clock().UTC().Format(DateLayout)
	}

	id := uuid.New().String()[:8]
	m := &Manager{
		id:      id,
		catalog: cat,
		logger:  o.logger.With("session", id),
		state: State{
			ActiveZone:     o.zone,
			CurrentWeek:    1,
			WeekStartDate:  o.weekStart,
			Assignee:       o.assignee,
			CompletedTasks: make(map[model.CompletionKey]bool),
		},
	}
	m.logger.Info("session started",
		"zone", m.state.ActiveZone,
		"week_start", m.state.WeekStartDate,
		"assignee", m.state.Assignee,
	)
	return m
}

// ID returns the short session id attached to log records
func (m *Manager) ID() string {
	return m.id
}

// Catalog returns the catalog the session was created with
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// State returns a copy of the current state
func (m *Manager) State() State {
	s := m.state
	s.CompletedTasks = make(map[model.CompletionKey]bool, len(m.state.CompletedTasks))
	for k, v := range m.state.CompletedTasks {
		s.CompletedTasks[k] = v
	}
	return s
}

// IsCompleted reports a task's flag in the current week
func (m *Manager) IsCompleted(room string, freq model.Frequency, task string) bool {
	return m.IsCompletedInWeek(room, freq, task, m.state.CurrentWeek)
}

// IsCompletedInWeek reports a task's flag in an arbitrary week
func (m *Manager) IsCompletedInWeek(room string, freq model.Frequency, task string, week int) bool {
	return m.state.CompletedTasks[model.CompletionKey{Room: room, Frequency: freq, Task: task, Week: week}]
}

// CanRetreat reports whether RetreatWeek would move
func (m *Manager) CanRetreat() bool {
	return m.state.CurrentWeek > 1
}

// ToggleTask flips the completion flag of a task for the current week.
// Keys are recorded even when they are not in the catalog.
func (m *Manager) ToggleTask(room string, freq model.Frequency, task string) {
	key := model.CompletionKey{Room: room, Frequency: freq, Task: task, Week: m.state.CurrentWeek}
	done := !m.state.CompletedTasks[key]
	m.state.CompletedTasks[key] = done
	m.logger.Debug("task toggled",
		"room", room,
		"frequency", string(freq),
		"task", task,
		"week", key.Week,
		"done", done,
	)
}

// AdvanceWeek moves to the next week and pushes the start date 7 days later
func (m *Manager) AdvanceWeek() {
	m.state.CurrentWeek++
	m.state.WeekStartDate = m.shiftDate(7)
	m.logger.Debug("week advanced", "week", m.state.CurrentWeek, "week_start", m.state.WeekStartDate)
}

// RetreatWeek moves to the previous week. It never goes below week 1.
func (m *Manager) RetreatWeek() {
	if m.state.CurrentWeek <= 1 {
		return
	}
	m.state.CurrentWeek--
	m.state.WeekStartDate = m.shiftDate(-7)
	m.logger.Debug("week retreated", "week", m.state.CurrentWeek, "week_start", m.state.WeekStartDate)
}

// SwitchZone flips between the catalog's two zones
func (m *Manager) SwitchZone() {
	next, err := m.catalog.Other(m.state.ActiveZone)
	if err != nil {
		// ActiveZone only ever holds catalog keys; reset rather than stall.
		next = m.catalog.ZoneKeys()[0]
		m.logger.Warn("active zone not in catalog", "zone", m.state.ActiveZone, "error", err)
	}
	m.state.ActiveZone = next
	m.logger.Debug("zone switched", "zone", next)
}

// SetAssignee stores name as-is
func (m *Manager) SetAssignee(name string) {
	m.state.Assignee = name
	m.logger.Debug("assignee set", "assignee", name)
}

// SetWeekStartDate stores date as-is, without checking its format
func (m *Manager) SetWeekStartDate(date string) {
	m.state.WeekStartDate = date
	m.logger.Debug("week start set", "week_start", date)
}

// shiftDate returns the week start moved by days. An unparseable date is
// returned unchanged.
func (m *Manager) shiftDate(days int) string {
	next, err := AddDays(m.state.WeekStartDate, days)
	if err != nil {
		m.logger.Warn("week start date not shifted", "week_start", m.state.WeekStartDate, "error", err)
		return m.state.WeekStartDate
	}
	return next
}

// AddDays adds days to an ISO date. Arithmetic is done in UTC so daylight
// saving changes never skew the result.
func AddDays(date string, days int) (string, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}
