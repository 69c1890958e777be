// Package reference loads the bundled MEATER meat dataset: a nested document
// of categories, animals, cut types, cuts and temperature presets that the
// vendor app ships with, flattened here into two ID-keyed lookup tables.
package reference

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed meats.json
var meatsJSON []byte

// TemperatureRange is a named doneness preset for a cut.
type TemperatureRange struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AnimalID    int    `json:"animal_id"`
	CutID       int    `json:"cut_id"`
	MinTempC    int    `json:"min_temp_c"`
	MaxTempC    int    `json:"max_temp_c"`
	TargetTempC int    `json:"target_temp_c"`
	MinTempF    int    `json:"min_temp_f"`
	MaxTempF    int    `json:"max_temp_f"`
	TargetTempF int    `json:"target_temp_f"`
	StartHex    string `json:"start_hex,omitempty"`
	EndHex      string `json:"end_hex,omitempty"`
	Description string `json:"description"`
	ImageName   string `json:"image_name"`
	USDASafe    bool   `json:"usda_safe"`
}

// Cut describes a specific meat cut together with its doneness presets.
type Cut struct {
	ID                     int                `json:"id"`
	Name                   string             `json:"name"`
	NameLong               string             `json:"name_long"`
	AnimalID               int                `json:"animal_id"`
	CutTypeID              int                `json:"cut_type_id"`
	EstimatedThickness     float64            `json:"estimated_thickness,omitempty"`
	USDASafeC              int                `json:"usda_safe_c,omitempty"`
	USDASafeF              int                `json:"usda_safe_f,omitempty"`
	MostPopularTempRangeID int                `json:"most_popular_temp_range_id,omitempty"`
	CutOrder               int                `json:"cut_order"`
	InsertionInstruction   string             `json:"insertion_instruction,omitempty"`
	TemperatureRanges      []TemperatureRange `json:"temperature_ranges"`
}

// Tables holds the flattened lookup tables. Immutable after Load; safe for
// unsynchronized concurrent reads.
type Tables struct {
	Cuts    map[int]Cut
	Presets map[int]TemperatureRange
}

type meatsDocument struct {
	Categories []struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Animals []struct {
			ID       int    `json:"id"`
			Name     string `json:"name"`
			CutTypes []struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
				Cuts []Cut  `json:"cuts"`
			} `json:"cut_types"`
		} `json:"animals"`
	} `json:"categories"`
}

// Load parses the bundled dataset into the two lookup tables. A malformed or
// empty dataset is a packaging error, not a runtime condition, so callers are
// expected to treat a non-nil error as fatal.
func Load() (*Tables, error) {
	return load(meatsJSON)
}

func load(raw []byte) (*Tables, error) {
	var doc meatsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse meat dataset: %w", err)
	}

	t := &Tables{
		Cuts:    make(map[int]Cut),
		Presets: make(map[int]TemperatureRange),
	}
	for _, category := range doc.Categories {
		for _, animal := range category.Animals {
			for _, cutType := range animal.CutTypes {
				for _, cut := range cutType.Cuts {
					t.Cuts[cut.ID] = cut
					for _, tr := range cut.TemperatureRanges {
						t.Presets[tr.ID] = tr
					}
				}
			}
		}
	}
	if len(t.Cuts) == 0 {
		return nil, fmt.Errorf("meat dataset contains no cuts")
	}
	return t, nil
}

// Cut returns the cut for the given ID. Missing IDs are expected when the
// vendor ships cuts newer than the bundled dataset.
func (t *Tables) Cut(id int) (Cut, bool) {
	c, ok := t.Cuts[id]
	return c, ok
}

// Preset returns the temperature preset for the given ID.
func (t *Tables) Preset(id int) (TemperatureRange, bool) {
	p, ok := t.Presets[id]
	return p, ok
}
