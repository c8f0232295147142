package model

// Room is a space in the house with its chores
type Room struct {
	Key   string
	Name  string
	Tasks TaskSet
}

// Zone groups rooms (e.g. "Front of House"). Areas keep declaration order.
type Zone struct {
	Key   string
	Title string
	Areas []Room
}

// Area returns the room with the given key
func (z Zone) Area(key string) (Room, bool) {
	for _, r := range z.Areas {
		if r.Key == key {
			return r, true
		}
	}
	return Room{}, false
}

// Clone returns a deep copy so callers cannot alter catalog data
func (z Zone) Clone() Zone {
	areas := make([]Room, len(z.Areas))
	for i, r := range z.Areas {
		areas[i] = Room{Key: r.Key, Name: r.Name, Tasks: r.Tasks.Clone()}
	}
	return Zone{Key: z.Key, Title: z.Title, Areas: areas}
}
