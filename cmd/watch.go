package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cfgen/internal/overrides"
	"cfgen/internal/watch"
	"cfgen/pkg/logging"

	"github.com/spf13/cobra"
)

// newWatchCmd creates the command that generates once, then regenerates
// whenever the override file changes. It replaces per-build rebuild hooks in
// environments where the build system does not track the override file.
func newWatchCmd() *cobra.Command {
	opts := &buildOptions{}
	var outPath string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Generate once, then regenerate whenever cfg.toml changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runGenerate(opts, outPath); err != nil {
				return err
			}

			root, ok := opts.context().Locator().Locate()
			if !ok {
				return fmt.Errorf("cannot watch: project root not found (supply --root or --out-dir)")
			}
			overridePath := filepath.Join(root, overrides.OverrideFileName)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.New(overridePath, debounce, func() {
				if err := runGenerate(opts, outPath); err != nil {
					logging.Error("Watch", err, "Regeneration failed")
				}
			})
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			<-ctx.Done()
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: <package>_cfg.gen.go beside the manifest)")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "how long to wait for changes to settle before regenerating")
	return cmd
}
