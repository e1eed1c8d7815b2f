package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/gobwas/glob"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ports"
	"github.com/renato0307/keycap/internal/services"
)

// ShortcutsCmd manages shortcuts
type ShortcutsCmd struct {
	Capture ShortcutsCaptureCmd `cmd:"capture" help:"Record a new shortcut by pressing it"`
	Get     ShortcutsGetCmd     `cmd:"get" help:"Print the current binding of a shortcut"`
	List    ShortcutsListCmd    `cmd:"list" help:"List all shortcuts" default:"1"`
	Reset   ShortcutsResetCmd   `cmd:"reset" help:"Restore the default binding of a shortcut"`
	Set     ShortcutsSetCmd     `cmd:"set" help:"Set a shortcut from text (e.g. ctrl+shift+k)"`
}

// ShortcutsListCmd lists shortcuts
type ShortcutsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Match  string `help:"Only show shortcuts whose name matches this glob (e.g. 'paste_*')" short:"m"`
}

// shortcutEntry is the JSON shape of a listed shortcut
type shortcutEntry struct {
	Binding domain.Binding  `json:"binding"`
	Custom  bool            `json:"custom"`
	Default domain.Binding  `json:"default"`
	Name    domain.SlotName `json:"name"`
	Title   string          `json:"title"`
}

// Run executes the list command
func (s *ShortcutsListCmd) Run(cli *CLI) error {
	slots, err := filterSlots(cli.Container.ShortcutService.Slots(), s.Match)
	if err != nil {
		return err
	}

	entries := make([]shortcutEntry, 0, len(slots))
	for _, slot := range slots {
		entries = append(entries, shortcutEntry{
			Binding: slot.Current(),
			Custom:  !slot.IsDefault(),
			Default: slot.Default(),
			Name:    slot.Name(),
			Title:   slot.Title(),
		})
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	store, _ := cli.Container.Settings.ResolveStore()
	fmt.Printf("Shortcuts (store: %s, settings file: %s)\n\n", store, config.GetSettingsFilePath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tBinding\tDefault\tDescription")
	fmt.Fprintln(w, "────\t───────\t───────\t───────────")
	for _, e := range entries {
		def := "(default)"
		if e.Custom {
			def = e.Default.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Binding, def, e.Title)
	}
	w.Flush()

	if stale := staleBindings(context.Background(), cli.Container.store); len(stale) > 0 {
		fmt.Println()
		fmt.Println("Ignored stored shortcuts for unknown names:")
		for _, name := range stale {
			fmt.Printf("  %s\n", name)
		}
	}

	fmt.Println()
	fmt.Println("Use 'keycap shortcuts capture <name>' or 'keycap shortcuts set <name> <binding>' to customize.")
	return nil
}

// staleBindings returns the sorted names of stored bindings that match no
// defined slot. Stores that cannot list their contents report none.
func staleBindings(ctx context.Context, store ports.BindingStore) []domain.SlotName {
	lister, ok := store.(ports.BindingLister)
	if !ok {
		return nil
	}

	all, err := lister.ListBindings(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to list stored shortcuts", "error", err)
		return nil
	}

	var stale []domain.SlotName
	for name := range all {
		if _, known := domain.FindSlotDefinition(name); !known {
			stale = append(stale, name)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i] < stale[j] })
	return stale
}

// filterSlots keeps the slots whose name matches pattern. An empty pattern keeps all.
func filterSlots(slots []*services.Slot, pattern string) ([]*services.Slot, error) {
	if pattern == "" {
		return slots, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid match pattern '%s': %w", pattern, err)
	}

	var matched []*services.Slot
	for _, slot := range slots {
		if g.Match(string(slot.Name())) {
			matched = append(matched, slot)
		}
	}
	return matched, nil
}

// ShortcutsGetCmd prints one shortcut
type ShortcutsGetCmd struct {
	Name string `arg:"" help:"Shortcut name (${slots})" enum:"${slots}"`
}

// Run executes the get command
func (s *ShortcutsGetCmd) Run(cli *CLI) error {
	slot, err := cli.Container.ShortcutService.Slot(domain.SlotName(s.Name))
	if err != nil {
		return err
	}
	fmt.Println(slot.Current())
	return nil
}

// ShortcutsSetCmd sets a shortcut from text
type ShortcutsSetCmd struct {
	Name    string `arg:"" help:"Shortcut name (${slots})" enum:"${slots}"`
	Binding string `arg:"" help:"Binding, keys joined by '+' (e.g. ctrl+shift+k)"`
}

// Run executes the set command
func (s *ShortcutsSetCmd) Run(cli *CLI) error {
	binding, err := cli.Container.ShortcutService.Set(context.Background(), domain.SlotName(s.Name), s.Binding)
	if err != nil {
		return fmt.Errorf("failed to set shortcut: %w", err)
	}
	fmt.Printf("Set '%s' to: %s\n", s.Name, binding)
	return nil
}

// ShortcutsResetCmd resets a shortcut to its default
type ShortcutsResetCmd struct {
	Name string `arg:"" help:"Shortcut name (${slots})" enum:"${slots}"`
}

// Run executes the reset command
func (s *ShortcutsResetCmd) Run(cli *CLI) error {
	dispatcher := services.NewInlineDispatcher()
	manager := cli.Container.NewCaptureManager(dispatcher)

	binding, err := manager.Reset(context.Background(), domain.SlotName(s.Name))
	if err != nil {
		return err
	}
	if err := firstFailure(dispatcher.Outcomes()); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}

	fmt.Printf("Reset '%s' to: %s\n", s.Name, binding)
	return nil
}

// firstFailure returns the error of the first failed persist outcome.
// Listener failures are best effort and only reported as warnings.
func firstFailure(outcomes []services.Outcome) error {
	for _, o := range outcomes {
		if o.OK() {
			continue
		}
		if o.Kind == services.RequestPersist {
			return o.Err
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", o.Err)
	}
	return nil
}
