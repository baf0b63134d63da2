package domain

// Preset is a charted view of one bundled advanced profile.
type Preset struct {
	Name     string `json:"name" yaml:"name"` // document file name, unique within the catalog
	Title    string `json:"title" yaml:"title"`
	Notes    string `json:"notes" yaml:"notes"`
	Data     string `json:"data" yaml:"data"` // raw advanced_shot step text, newline-terminated
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Beverage string `json:"beverage,omitempty" yaml:"beverage,omitempty"` // canonical beverage_type tag
}

// PresetSummary is a lightweight view of a preset for listing.
type PresetSummary struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Beverage string `json:"beverage,omitempty" yaml:"beverage,omitempty"`
}

// Summary returns the listing view of p.
func (p *Preset) Summary() PresetSummary {
	return PresetSummary{
		Name:     p.Name,
		Title:    p.Title,
		Author:   p.Author,
		Beverage: p.Beverage,
	}
}
