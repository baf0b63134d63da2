package domain

// IntentType classifies what the user wants to do in the browser.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListPresets
	IntentSelectPreset
	IntentShowPreset
	IntentSearch
	IntentAbout
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListPresets:
		return "list_presets"
	case IntentSelectPreset:
		return "select_preset"
	case IntentShowPreset:
		return "show_preset"
	case IntentSearch:
		return "search"
	case IntentAbout:
		return "about"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. preset number or search query
}
