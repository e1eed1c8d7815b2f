package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/domain"
)

func TestNewContainer_MalformedShortcutKeepsSettingsStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KEYCAP_HOME", home)
	content := `{"store": "settings", "shortcuts": {"push_to_talk": 42, "paste_last_transcript": "alt+p"}}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := config.LoadSettings()
	require.NoError(t, err)

	container, err := NewContainer(settings)
	require.NoError(t, err)
	defer container.Close()

	store, err := container.Settings.ResolveStore()
	require.NoError(t, err)
	assert.Equal(t, config.StoreSettings, store)
	assert.NoFileExists(t, filepath.Join(home, "shortcuts.db"))

	push, err := container.ShortcutService.Slot(domain.SlotPushToTalk)
	require.NoError(t, err)
	assert.Equal(t, domain.Binding("ctrl+space"), push.Current())

	paste, err := container.ShortcutService.Slot(domain.SlotPasteLastTranscript)
	require.NoError(t, err)
	assert.Equal(t, domain.Binding("alt+p"), paste.Current())
}
