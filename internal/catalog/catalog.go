package catalog

import (
	"errors"
	"fmt"

	"github.com/ewilliamsbk88/chore-scheduler/internal/model"
)

// ErrNotFound is matched by every NotFoundError via errors.Is
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when a zone or room key is not in the catalog
type NotFoundError struct {
	Kind string // "zone" or "room"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Catalog is the immutable zone → room → chores structure
type Catalog struct {
	zones []model.Zone
	index map[string]int
}

// New builds a catalog from zones in display order. It validates the
// structure the session manager depends on: exactly two zones, unique
// non-empty zone keys and unique non-empty room keys per zone.
func New(zones []model.Zone) (*Catalog, error) {
	if len(zones) != 2 {
		return nil, fmt.Errorf("catalog must define exactly 2 zones, got %d", len(zones))
	}

	c := &Catalog{index: make(map[string]int, len(zones))}
	for i, z := range zones {
		if z.Key == "" {
			return nil, fmt.Errorf("zone %d: key must not be empty", i)
		}
		if _, dup := c.index[z.Key]; dup {
			return nil, fmt.Errorf("zone %q: duplicate key", z.Key)
		}
		seen := make(map[string]bool, len(z.Areas))
		for j, r := range z.Areas {
			if r.Key == "" {
				return nil, fmt.Errorf("zone %q room %d: key must not be empty", z.Key, j)
			}
			if seen[r.Key] {
				return nil, fmt.Errorf("zone %q room %q: duplicate key", z.Key, r.Key)
			}
			seen[r.Key] = true
		}
		c.index[z.Key] = i
		c.zones = append(c.zones, z.Clone())
	}
	return c, nil
}

// Zone returns the zone for key, or a *NotFoundError
func (c *Catalog) Zone(key string) (model.Zone, error) {
	i, ok := c.index[key]
	if !ok {
		return model.Zone{}, &NotFoundError{Kind: "zone", Key: key}
	}
	return c.zones[i].Clone(), nil
}

// Room returns a room inside a zone
func (c *Catalog) Room(zoneKey, roomKey string) (model.Room, error) {
	i, ok := c.index[zoneKey]
	if !ok {
		return model.Room{}, &NotFoundError{Kind: "zone", Key: zoneKey}
	}
	r, ok := c.zones[i].Area(roomKey)
	if !ok {
		return model.Room{}, &NotFoundError{Kind: "room", Key: roomKey}
	}
	return model.Room{Key: r.Key, Name: r.Name, Tasks: r.Tasks.Clone()}, nil
}

// ZoneKeys returns zone keys in declaration order
func (c *Catalog) ZoneKeys() []string {
	keys := make([]string, len(c.zones))
	for i, z := range c.zones {
		keys[i] = z.Key
	}
	return keys
}

// Has reports whether key names a zone
func (c *Catalog) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Other returns the zone that is not key. Catalogs always hold two zones.
func (c *Catalog) Other(key string) (string, error) {
	i, ok := c.index[key]
	if !ok {
		return "", &NotFoundError{Kind: "zone", Key: key}
	}
	return c.zones[1-i].Key, nil
}

// Zones returns copies of all zones in declaration order
func (c *Catalog) Zones() []model.Zone {
	out := make([]model.Zone, len(c.zones))
	for i, z := range c.zones {
		out[i] = z.Clone()
	}
	return out
}
