// Package cli wires a launcher profile into a command line program.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/meowmi-server/internal/browser"
	"github.com/f4ah6o/meowmi-server/internal/buildinfo"
	"github.com/f4ah6o/meowmi-server/internal/launcher"
	"github.com/f4ah6o/meowmi-server/internal/profile"
	"github.com/f4ah6o/meowmi-server/internal/root"
)

type options struct {
	profile string
	// resolveRoot returns the served directory.
	resolveRoot func() (string, error)
	port        int
	// opener is nil outside tests.
	opener browser.Opener
}

// Execute runs the launcher for the named profile and exits 1 on failure.
func Execute(use, profileName string) {
	cmd := newCommand(use, options{
		profile:     profileName,
		resolveRoot: root.Executable,
		port:        launcher.DefaultPort,
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand(use string, opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		Short:        fmt.Sprintf("Serve this program's directory at http://localhost:%d", opts.port),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      buildinfo.String(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	return cmd
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := profile.Get(opts.profile)
	if err != nil {
		return err
	}
	dir, err := opts.resolveRoot()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil)).With("profile", p.Name)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return launcher.New(launcher.Config{
		Root:    dir,
		Port:    opts.port,
		Profile: p,
		Stdout:  stdout,
		Logger:  logger,
		Opener:  opts.opener,
	}).Run(ctx)
}
