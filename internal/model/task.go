package model

// Frequency is the cadence bucket a chore belongs to
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Frequencies returns the frequencies in display order
func Frequencies() []Frequency {
	return []Frequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly}
}

// Label returns the section heading for the frequency
func (f Frequency) Label() string {
	switch f {
	case FrequencyWeekly:
		return "Weekly Tasks"
	case FrequencyBiweekly:
		return "Biweekly Tasks"
	case FrequencyMonthly:
		return "Monthly Tasks"
	default:
		return string(f) + " Tasks"
	}
}

// TaskSet holds a room's chores per frequency. A nil list means the room
// has no chores at that frequency.
type TaskSet struct {
	Weekly   []string
	Biweekly []string
	Monthly  []string
}

// For returns the task list for a frequency and whether the room defines it
func (ts TaskSet) For(f Frequency) ([]string, bool) {
	switch f {
	case FrequencyWeekly:
		return ts.Weekly, ts.Weekly != nil
	case FrequencyBiweekly:
		return ts.Biweekly, ts.Biweekly != nil
	case FrequencyMonthly:
		return ts.Monthly, ts.Monthly != nil
	default:
		return nil, false
	}
}

// Clone returns a deep copy
func (ts TaskSet) Clone() TaskSet {
	return TaskSet{
		Weekly:   cloneList(ts.Weekly),
		Biweekly: cloneList(ts.Biweekly),
		Monthly:  cloneList(ts.Monthly),
	}
}

// Count returns the number of chores across all frequencies
func (ts TaskSet) Count() int {
	return len(ts.Weekly) + len(ts.Biweekly) + len(ts.Monthly)
}

func cloneList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// CompletionKey identifies one completion flag. Week is the session's
// week counter, not a calendar week.
type CompletionKey struct {
	Room      string
	Frequency Frequency
	Task      string
	Week      int
}

// StatusIcon returns the checklist icon for a completion flag
func StatusIcon(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}
