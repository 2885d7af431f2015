package cmd

import (
	"path/filepath"

	"cfgen/internal/emit"
	"cfgen/internal/resolver"
	"cfgen/internal/schema"

	"github.com/spf13/cobra"
)

// newGenerateCmd creates the command that runs the full pipeline: load the
// schema manifest, resolve it against the override file, write the generated
// Go source. Intended to be invoked from a go:generate directive.
func newGenerateCmd() *cobra.Command {
	opts := &buildOptions{}
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve a component's schema and write its generated Go file",
		Long: `Resolves the component's schema manifest against the project's cfg.toml
and writes a generated Go source file carrying the final values.

Typical use from the component's package:

	//go:generate cfgen generate --out-dir $CFGEN_OUT_DIR`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, outPath)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: <package>_cfg.gen.go beside the manifest)")
	return cmd
}

func runGenerate(opts *buildOptions, outPath string) error {
	s, err := schema.Load(opts.schemaPath)
	if err != nil {
		return err
	}

	cfg, err := resolver.New().Resolve(s, opts.context())
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(opts.schemaPath), emit.DefaultOutputPath(s))
	}
	return emit.New().WriteFile(cfg, outPath)
}
