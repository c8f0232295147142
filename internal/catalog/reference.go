package catalog

import "github.com/ewilliamsbk88/chore-scheduler/internal/model"

// Zone keys of the reference catalog
const (
	ZoneFront = "front"
	ZoneBack  = "back"
)

// Default returns the built-in household catalog
func Default() *Catalog {
	c, err := New(referenceZones())
	if err != nil {
		// The reference data is constant; a failure here is a programming error.
		panic("catalog: invalid reference data: " + err.Error())
	}
	return c
}

func referenceZones() []model.Zone {
	return []model.Zone{
		{
			Key:   ZoneFront,
			Title: "Front of House",
			Areas: []model.Room{
				{
					Key:  "kitchen",
					Name: "Kitchen",
					Tasks: model.TaskSet{
						Weekly: []string{
							"Wipe counters and stovetop",
							"Sweep and Swiffer",
							"Take out trash/recycling",
							"Clean out fridge",
							"Meal prep",
							"Grocery shop",
						},
						Biweekly: []string{
							"Mop floors",
						},
						Monthly: []string{
							"Clean oven",
							"Clean cabinet interiors",
							"Deep clean dishwasher",
							"Clean window treatments",
						},
					},
				},
				{
					Key:  "livingRoom",
					Name: "Living Room",
					Tasks: model.TaskSet{
						Weekly: []string{
							"Dust surfaces",
							"Declutter",
							"Sweep and Swiffer",
						},
						Biweekly: []string{
							"Mop",
						},
						Monthly: []string{
							"Clean window treatments",
							"Deep clean upholstery",
							"Clean baseboards",
						},
					},
				},
				{
					Key:  "office",
					Name: "Home Office",
					Tasks: model.TaskSet{
						Weekly: []string{
							"Dust surfaces",
							"Sweep & Swiffer",
							"Organize desk",
							"Declutter",
						},
						Monthly: []string{
							"Deep clean electronics",
							"Clean window treatments",
							"Wipe baseboards",
						},
					},
				},
			},
		},
		{
			Key:   ZoneBack,
			Title: "Back of House",
			Areas: []model.Room{
				{
					Key:  "bedroom",
					Name: "Bedroom",
					Tasks: model.TaskSet{
						Weekly: []string{
							"Change bedding",
							"Sweep and Swiffer",
							"Dust surfaces",
						},
						Monthly: []string{
							"Clean window treatments",
							"Deep clean under furniture",
						},
					},
				},
				{
					Key:  "bathrooms",
					Name: "Bathrooms",
					Tasks: model.TaskSet{
						Weekly: []string{
							"Clean toilet",
							"Clean shower/tub",
							"Clean sink and counter",
							"Sweep and Swiffer",
							"Clean mirrors",
						},
						Biweekly: []string{
							"Mop",
						},
						Monthly: []string{
							"Deep clean grout",
							"Clean exhaust fan",
							"Wash shower curtain",
							"Clean cabinet interiors",
							"Organize under sink",
						},
					},
				},
				{
					Key:  "laundry",
					Name: "Laundry",
					Tasks: model.TaskSet{
						Weekly: []string{
							"Personal laundry",
							"Towels",
							"Bedding",
							"Put away clothes",
						},
						Monthly: []string{
							"Clean washer/dryer",
							"Deep clean lint trap",
							"Wipe surfaces",
						},
					},
				},
			},
		},
	}
}
