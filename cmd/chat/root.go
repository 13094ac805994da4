package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	modeCLI = "cli"
	modeWeb = "web"
)

type options struct {
	mode       string
	host       string
	port       int
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Weather & joke chat assistant",
		Long: `Classifies each question as weather or joke with an LLM, then answers it
from OpenWeatherMap or with a short joke. Runs as an interactive terminal
(--mode cli) or as an HTTP server with a browser UI (--mode web).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.mode != modeCLI && opts.mode != modeWeb {
				return fmt.Errorf("invalid --mode %q: must be %q or %q", opts.mode, modeCLI, modeWeb)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", modeCLI, "run mode: cli or web")
	cmd.Flags().StringVar(&opts.host, "host", "0.0.0.0", "web host for --mode web")
	cmd.Flags().IntVar(&opts.port, "port", 8101, "web port for --mode web")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config.yaml (default: ./config, ., /etc/app/)")

	cmd.SetContext(context.Background())
	return cmd
}
