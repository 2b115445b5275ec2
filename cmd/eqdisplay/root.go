package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/eqdisplay/internal/app"
)

// runApp is swapped out in tests.
var runApp = app.Run

func newRootCmd(version string) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "eqdisplay",
		Short: "Terminal dashboard for EQ Alert",
		Long: `eqdisplay follows the display feed written by the EQ Alert engine and
renders it as a four page terminal dashboard: events, state, settings and help.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Version = version
			return runApp(cmd.Context(), opts)
		},
	}
	root.SetVersionTemplate(`{{printf "eqdisplay version %s\n" .Version}}`)

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/eqdisplay/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/eqdisplay/prefs.toml)")
	flags.StringVar(&opts.EventFeed, "feed", "", "display feed to follow, overrides event_feed")
	flags.StringVar(&opts.StateFile, "state", "", "state file to load, overrides state_file")
	flags.DurationVar(&opts.PollEvery, "poll", 0, "feed poll interval, e.g. 500ms (default from config)")

	root.AddCommand(newVersionCmd(version))
	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of eqdisplay",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eqdisplay version %s\n", version)
		},
	}
}
