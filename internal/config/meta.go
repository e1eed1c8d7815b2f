package config

import (
	"reflect"
	"strings"

	"github.com/renato0307/keycap/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "ShortcutsConfig" {
		return map[string]string{
			"push_to_talk":          "ctrl+space",
			"paste_last_transcript": "ctrl+shift+space",
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 1000
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "db_path":
			return "~/.keycap/shortcuts.db"
		case "listener_marker":
			return "~/.keycap/listener.suspended"
		case "serve_host":
			return DefaultServeHost
		case "serve_port":
			return DefaultServePort
		case "store":
			return DefaultStore
		default:
			return "example"
		}
	}

	return nil
}
