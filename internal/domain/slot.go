package domain

import "sort"

// SlotName identifies a persisted shortcut (e.g. "push_to_talk")
type SlotName string

// Built-in slot names
const (
	SlotPushToTalk          SlotName = "push_to_talk"
	SlotPasteLastTranscript SlotName = "paste_last_transcript"
)

// SlotDefinition describes a configurable shortcut.
// All shortcut slots are defined here as the single source of truth.
type SlotDefinition struct {
	Default Binding
	Help    string
	Name    SlotName
	Title   string
}

// AllSlotDefinitions contains every shortcut the application listens for
var AllSlotDefinitions = []SlotDefinition{
	{Name: SlotPushToTalk, Default: "ctrl+space", Title: "Push to talk", Help: "hold to record, release to transcribe"},
	{Name: SlotPasteLastTranscript, Default: "ctrl+shift+space", Title: "Paste last transcript", Help: "paste the last transcript into the focused field"},
}

// FindSlotDefinition returns the definition for name
func FindSlotDefinition(name SlotName) (SlotDefinition, bool) {
	for _, def := range AllSlotDefinitions {
		if def.Name == name {
			return def, true
		}
	}
	return SlotDefinition{}, false
}

// SlotNames returns the names of all defined slots, sorted
func SlotNames() []string {
	names := make([]string, 0, len(AllSlotDefinitions))
	for _, def := range AllSlotDefinitions {
		names = append(names, string(def.Name))
	}
	sort.Strings(names)
	return names
}
