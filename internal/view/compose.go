// Package view derives what one screen shows from the catalog and a
// session snapshot. It holds no state and is recomputed on every change.
package view

import (
	"fmt"

	"github.com/ewilliamsbk88/chore-scheduler/internal/catalog"
	"github.com/ewilliamsbk88/chore-scheduler/internal/model"
	"github.com/ewilliamsbk88/chore-scheduler/internal/session"
)

// ViewModel is everything needed to render the active zone
type ViewModel struct {
	ZoneKey    string
	ZoneTitle  string
	Heading    string
	Week       int
	WeekStart  string
	Assignee   string
	CanRetreat bool
	Rooms      []RoomView
	Done       int
	Total      int
}

// RoomView is one room card
type RoomView struct {
	Key      string
	Name     string
	Sections []SectionView
	Done     int
	Total    int
}

// SectionView is one frequency list inside a room
type SectionView struct {
	Frequency model.Frequency
	Label     string
	Tasks     []TaskView
}

// TaskView is a chore row annotated with its completion for the current week
type TaskView struct {
	Room      string
	Frequency model.Frequency
	Name      string
	Index     int
	Done      bool
}

// Compose projects the catalog and state into a ViewModel. The only
// failure is an active zone missing from the catalog.
func Compose(cat *catalog.Catalog, st session.State) (ViewModel, error) {
	zone, err := cat.Zone(st.ActiveZone)
	if err != nil {
		return ViewModel{}, err
	}

	vm := ViewModel{
		ZoneKey:    zone.Key,
		ZoneTitle:  zone.Title,
		Heading:    fmt.Sprintf("%s Chores - Week %d", zone.Title, st.CurrentWeek),
		Week:       st.CurrentWeek,
		WeekStart:  st.WeekStartDate,
		Assignee:   st.Assignee,
		CanRetreat: st.CurrentWeek > 1,
	}

	for _, room := range zone.Areas {
		rv := RoomView{Key: room.Key, Name: room.Name, Total: room.Tasks.Count()}
		for _, freq := range model.Frequencies() {
			tasks, ok := room.Tasks.For(freq)
			if !ok {
				continue
			}
			sec := SectionView{Frequency: freq, Label: freq.Label()}
			for i, name := range tasks {
				done := st.Completed(model.CompletionKey{
					Room:      room.Key,
					Frequency: freq,
					Task:      name,
					Week:      st.CurrentWeek,
				})
				sec.Tasks = append(sec.Tasks, TaskView{
					Room:      room.Key,
					Frequency: freq,
					Name:      name,
					Index:     i,
					Done:      done,
				})
				if done {
					rv.Done++
				}
			}
			rv.Sections = append(rv.Sections, sec)
		}
		vm.Rooms = append(vm.Rooms, rv)
		vm.Done += rv.Done
		vm.Total += rv.Total
	}

	return vm, nil
}

// Rows flattens every task in render order: rooms, then frequencies,
// then list order
func (vm ViewModel) Rows() []TaskView {
	rows := make([]TaskView, 0, vm.Total)
	for _, r := range vm.Rooms {
		for _, s := range r.Sections {
			rows = append(rows, s.Tasks...)
		}
	}
	return rows
}
