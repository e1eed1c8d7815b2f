package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/keycap/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "push_to_talk")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output struct {
					Format       map[string]any `json:"format"`
					SettingsFile string         `json:"settings_file"`
				}
				harness.AssertValidJSON(t, result, &output)
				assert.NotEmpty(t, output.SettingsFile)
				assert.Contains(t, output.Format, "shortcuts")
				assert.Equal(t, "sqlite", output.Format["store"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}
