// Package cli provides the command-line interface for Tincture.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/hue"
	"github.com/jmylchreest/tincture/internal/version"
)

// annotationCreatesCatalog marks commands that may run before the catalog
// file exists.
const annotationCreatesCatalog = "tincture/creates-catalog"

// app carries state shared by every command of one root command tree.
type app struct {
	verbose bool
	quiet   bool
	catalog string
	envFile string
	preview previewMode

	logger hclog.Logger
	config config.Config
	hues   *hue.Registry
}

// NewRootCmd builds the complete command tree. Each call returns an
// independent tree with its own hue registry.
func NewRootCmd() *cobra.Command {
	a := &app{preview: previewAuto}

	rootCmd := &cobra.Command{
		Use:   "tincture",
		Short: "Convert and classify colours across RGB, HSV and CMYK",
		Long: `Tincture converts colours between the RGB, HSV and CMYK colour models,
classifies them as black, white, grey or primary, and finds the nearest
named hue on the colour wheel.

Colours may be given as RRGGBB or AARRGGBB hex (with or without '#') or as
SVG colour keywords such as "teal".`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.catalog, "catalog", "", "hue catalog file to load (json/yaml, optionally .xz)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with TINCTURE_* settings")
	rootCmd.PersistentFlags().Var(&a.preview, "preview", "colour swatches (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInspectCmd(a),
		newClassifyCmd(a),
		newAdjustCmd(a, "darken"),
		newAdjustCmd(a, "lighten"),
		newHueCmd(a),
	)

	return rootCmd
}

// setup resolves logging, configuration and the hue registry before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose && !a.quiet {
		a.logger = hclog.New(&hclog.LoggerOptions{
			Name:   "tincture",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Debug,
		})
	} else {
		a.logger = hclog.NewNullLogger()
	}

	cfg, err := config.NewBuilder().
		WithDotEnv(a.envFile).
		WithEnvConfig().
		Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.catalog != "" {
		cfg.CatalogPath = a.catalog
	}
	a.config = cfg
	a.logger.Debug("configuration resolved",
		"black_point", cfg.Thresholds.BlackPoint,
		"white_point", cfg.Thresholds.WhitePoint,
		"grey_threshold", cfg.Thresholds.GreyThreshold,
		"primary_variance", cfg.PrimaryVariance,
		"catalog", cfg.CatalogPath)

	a.hues = hue.New(hue.WithLogger(a.logger.Named("hues")))
	if cfg.CatalogPath != "" {
		if _, err := os.Stat(cfg.CatalogPath); errors.Is(err, os.ErrNotExist) && cmd.Annotations[annotationCreatesCatalog] == "true" {
			a.logger.Debug("catalog does not exist yet", "path", cfg.CatalogPath)
			return nil
		}
		if _, err := a.hues.LoadFile(cfg.CatalogPath); err != nil {
			return fmt.Errorf("failed to load hue catalog: %w", err)
		}
	}
	return nil
}

// infof writes an informational message to stderr unless --quiet is set.
func (a *app) infof(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

// out returns the command's standard output.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(out(cmd), version.String())
		},
	}
}
