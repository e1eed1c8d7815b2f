package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/keycap/internal/cmd"
	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/version"
)

func main() {
	// Load settings from ~/.keycap/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("keycap"),
		kong.Description(version.Tagline),
		kong.Vars{
			"slots":   strings.Join(domain.SlotNames(), ","),
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}
