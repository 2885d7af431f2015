package cmd

import (
	"cfgen/internal/resolver"
	"cfgen/internal/schema"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newResolveCmd creates the diagnostic command that resolves a schema and
// prints the outcome without writing anything. Useful for checking which
// overrides actually apply before a build.
func newResolveCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a component's schema and print the resulting values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schema.Load(opts.schemaPath)
			if err != nil {
				return err
			}

			cfg, err := resolver.New().Resolve(s, opts.context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetTitle("%s", cfg.Component)
			t.AppendHeader(table.Row{"Field", "Type", "Source", "Value"})
			for _, f := range cfg.Fields {
				t.AppendRow(table.Row{f.Name, f.Type.String(), string(f.Source), f.Value.String()})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
