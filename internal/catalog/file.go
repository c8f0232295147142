package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ewilliamsbk88/chore-scheduler/internal/model"
	"gopkg.in/yaml.v3"
)

// document is the on-disk catalog layout. Lists keep YAML order, which
// is the order zones and rooms are displayed in.
type document struct {
	Zones []zoneDoc `yaml:"zones"`
}

type zoneDoc struct {
	Key   string    `yaml:"key"`
	Title string    `yaml:"title"`
	Areas []roomDoc `yaml:"areas"`
}

type roomDoc struct {
	Key   string  `yaml:"key"`
	Name  string  `yaml:"name"`
	Tasks taskDoc `yaml:"tasks"`
}

// taskDoc keeps an explicit empty list (weekly: []) apart from a missing
// one: only nil pointers are omitted when writing.
type taskDoc struct {
	Weekly   *[]string `yaml:"weekly,omitempty"`
	Biweekly *[]string `yaml:"biweekly,omitempty"`
	Monthly  *[]string `yaml:"monthly,omitempty"`
}

func newTaskDoc(ts model.TaskSet) taskDoc {
	return taskDoc{
		Weekly:   listRef(ts.Weekly),
		Biweekly: listRef(ts.Biweekly),
		Monthly:  listRef(ts.Monthly),
	}
}

func (td taskDoc) taskSet() model.TaskSet {
	return model.TaskSet{
		Weekly:   listValue(td.Weekly),
		Biweekly: listValue(td.Biweekly),
		Monthly:  listValue(td.Monthly),
	}
}

func listRef(list []string) *[]string {
	if list == nil {
		return nil
	}
	return &list
}

func listValue(ref *[]string) []string {
	if ref == nil {
		return nil
	}
	if *ref == nil {
		return []string{}
	}
	return *ref
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	zones := make([]model.Zone, 0, len(doc.Zones))
	for _, zd := range doc.Zones {
		z := model.Zone{Key: zd.Key, Title: zd.Title}
		for _, rd := range zd.Areas {
			z.Areas = append(z.Areas, model.Room{Key: rd.Key, Name: rd.Name, Tasks: rd.Tasks.taskSet()})
		}
		zones = append(zones, z)
	}
	return New(zones)
}

// Marshal encodes a catalog in the format Parse reads
func Marshal(c *Catalog) ([]byte, error) {
	var doc document
	for _, z := range c.zones {
		zd := zoneDoc{Key: z.Key, Title: z.Title}
		for _, r := range z.Areas {
			zd.Areas = append(zd.Areas, roomDoc{Key: r.Key, Name: r.Name, Tasks: newTaskDoc(r.Tasks)})
		}
		doc.Zones = append(doc.Zones, zd)
	}
	return yaml.Marshal(&doc)
}
