package domain

import "context"

// PresetSource provides presets. The bundled catalog is the only
// implementation today; anything that can list and fetch by name fits.
type PresetSource interface {
	List(ctx context.Context) ([]PresetSummary, error)
	Get(ctx context.Context, name string) (*Preset, error)
	Search(ctx context.Context, query string) ([]PresetSummary, error)
}

// ProfileStore keeps analyzed profiles keyed by preset name so repeated
// views do not re-run the analyzer.
type ProfileStore interface {
	Save(ctx context.Context, name string, profile *AnalyzedProfile) error
	Load(ctx context.Context, name string) (*AnalyzedProfile, error)
	Delete(ctx context.Context, name string) error
}

// IntentParser converts a line typed into the browser into an intent.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
