/*
versionstamp stamps a build with its product version.

Usage:

	versionstamp [flags]
	versionstamp print <version>
	versionstamp version

It writes product-version.txt into the build output directory and, when
building for Windows, compiles version and icon resources into a .syso
object that go build links into the binary.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icedream/versionstamp"
	"github.com/icedream/versionstamp/internal/config"
	"github.com/icedream/versionstamp/internal/logging"
)

// Build information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      struct {
			outDir, version, target, sysoDir, jsonPath, icon string
			verbose                                          bool
		}
	)

	root := &cobra.Command{
		Use:           "versionstamp",
		Short:         "Stamp build artifacts with the product version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loaded, err := config.Load(configPath)
			if err != nil {
				return report(cmd, err)
			}
			cfg.ApplyEnv(os.LookupEnv)

			changed := func(name string, v *string) *string {
				if cmd.Flags().Changed(name) {
					return v
				}
				return nil
			}
			o := config.CLIOverrides{
				OutDir:   changed("out-dir", &flags.outDir),
				Version:  changed("version", &flags.version),
				Target:   changed("target", &flags.target),
				SysoDir:  changed("syso-dir", &flags.sysoDir),
				JSONPath: changed("emit-json", &flags.jsonPath),
				Icon:     changed("icon", &flags.icon),
			}
			if cmd.Flags().Changed("verbose") {
				o.Verbose = &flags.verbose
			}
			cfg.Merge(o)

			log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
			if loaded != "" {
				log.Debug().Str("path", loaded).Msg("loaded config")
			}
			if cfg.Version == "" {
				cfg.Version = gitVersion()
				log.Info().Str("version", cfg.Version).Msg("no version configured, using git")
			}

			sc, err := cfg.StampConfig(log)
			if err != nil {
				return report(cmd, err)
			}
			if _, err := versionstamp.Run(sc); err != nil {
				log.Error().Err(err).Msg("build step failed")
				return err
			}
			return nil
		},
	}

	f := root.Flags()
	f.StringVar(&configPath, "config", "", "path to config file (default: versionstamp.yaml or versionstamp.yml)")
	f.StringVar(&flags.outDir, "out-dir", "", "existing build output directory (env OUT_DIR)")
	f.StringVar(&flags.version, "version", "", "raw package version, e.g. 1.0.0 (env PKG_VERSION, default: latest git tag)")
	f.StringVar(&flags.target, "target", "", "target platform as goos/goarch (env GOOS/GOARCH, default: host)")
	f.StringVar(&flags.sysoDir, "syso-dir", ".", "directory receiving the Windows resource object")
	f.StringVar(&flags.jsonPath, "emit-json", "", "also write the resource descriptor as goversioninfo JSON to this path")
	f.StringVar(&flags.icon, "icon", versionstamp.DefaultIconPath, "icon to embed on Windows, empty for none")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPrintCmd(), newVersionCmd())
	return root
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <version>",
		Short: "Print the product version derived from a package version",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionstamp.ProductVersion(args[0]))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "versionstamp version %s, commit %s, built at %s\n", version, commit, date)
		},
	}
}

func report(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}
