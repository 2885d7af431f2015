package cmd

import (
	"os"
	"strings"

	"cfgen/internal/overrides"
	"cfgen/internal/resolver"
	"cfgen/internal/schema"
	"cfgen/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (resolution failed, invalid arguments).
	ExitCodeError = 1
)

// Environment variables recognized as fallbacks for build-context flags.
// Build pipelines that cannot pass flags set these instead; explicit flags
// always win.
const (
	envOutDir    = "CFGEN_OUT_DIR"
	envComponent = "CFGEN_COMPONENT"
	envStrict    = "CFGEN_STRICT"
)

var verbose bool

// rootCmd represents the base command for the cfgen application.
var rootCmd = &cobra.Command{
	Use:   "cfgen",
	Short: "Resolve build-time configuration schemas against cfg.toml overrides",
	Long: `cfgen resolves a component's declared configuration schema against the
single shared override file (cfg.toml) at the project root, then generates a
Go source file carrying the final values.

Library components declare overridable settings in a schema manifest; only the
root build target supplies actual overrides, keyed by component name. Every
field falls back to its declared default when no override applies.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logging.Init(level, cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. It is called by
// main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "cfgen version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

// buildOptions are the flags shared by every command that runs a resolution
// pass. They map one-to-one onto the engine's BuildContext.
type buildOptions struct {
	schemaPath string
	outDir     string
	root       string
	sentinel   string
	component  string
	strict     bool
}

func (o *buildOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.schemaPath, "schema", "s", schema.DefaultManifestName, "path to the schema manifest")
	cmd.Flags().StringVar(&o.outDir, "out-dir", "", "build output directory hint for root discovery (env "+envOutDir+")")
	cmd.Flags().StringVar(&o.root, "root", "", "explicit project root, skips discovery")
	cmd.Flags().StringVar(&o.sentinel, "sentinel", overrides.DefaultSentinel, "output-root directory name the discovery walk looks for")
	cmd.Flags().StringVar(&o.component, "component", "", "component identity in the override table (env "+envComponent+", default: schema package)")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail when no override source is found (env "+envStrict+")")
}

// context assembles the engine's BuildContext, applying environment fallbacks
// for anything left unset. The engine itself never reads the environment.
func (o *buildOptions) context() resolver.BuildContext {
	outDir := o.outDir
	if outDir == "" {
		outDir = os.Getenv(envOutDir)
	}
	component := o.component
	if component == "" {
		component = os.Getenv(envComponent)
	}
	strict := o.strict
	if !strict {
		if v := os.Getenv(envStrict); v != "" {
			strict = v == "1" || strings.EqualFold(v, "true") ||
				strings.Contains(v, "require_cfg_present")
		}
	}
	return resolver.BuildContext{
		OutDir:      outDir,
		Root:        o.root,
		Sentinel:    o.sentinel,
		ComponentID: component,
		Strict:      strict,
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newWatchCmd())
}
