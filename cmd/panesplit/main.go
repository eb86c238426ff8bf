package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/panesplit/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "panesplit: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "panesplit",
		Short: "Resizable split panes in the terminal",
		Long: `panesplit tiles text panes in a row or column and lets you drag the
dividers with the mouse or step them with the arrow keys. Panes can tail
files named in the layout config.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "layout config path (default ~/.config/panesplit/layout.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences path (default ~/.config/panesplit/prefs.toml)")
	flags.IntVar(&opts.RefreshSeconds, "refresh", 0, "content refresh interval in seconds")
	flags.StringVar(&opts.LogFile, "log-file", "", "diagnostic log file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	return root
}
