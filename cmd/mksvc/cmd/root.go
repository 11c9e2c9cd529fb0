// Package cmd implements the mksvc CLI.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/plexsphere/mksvc/internal/packaging"
)

// DefaultConfigPath is the default installer config file. It does not have
// to exist; defaults apply when it is absent.
const DefaultConfigPath = "/etc/mksvc/config.yaml"

var cfgFile string

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("mksvc version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

var rootCmd = &cobra.Command{
	Use:   "mksvc <command-file> <service-name> [working-directory]",
	Short: "mksvc installs a command as a systemd service",
	Long: "mksvc reads a command from a file, generates a systemd unit for it, and\n" +
		"installs, enables, and starts the service. Without root privileges it\n" +
		"stages the unit file in a temporary directory and prints the exact\n" +
		"commands needed to finish the install by hand.",
	Args: cobra.RangeArgs(2, 3),
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", DefaultConfigPath, "config file path")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("mksvc version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Past argument validation; runtime failures should not print usage.
	cmd.SilenceUsage = true

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	cfg, err := packaging.ParseConfig(cfgFile, !cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("mksvc: %w", err)
	}

	workingDir := ""
	if len(args) == 3 {
		workingDir = args[2]
	}

	spec, err := packaging.NewServiceSpec(args[0], args[1], workingDir, logger)
	if err != nil {
		return fmt.Errorf("mksvc: %w", err)
	}

	installer := packaging.NewInstaller(
		*cfg,
		packaging.NewSystemdController(),
		packaging.NewFileMover(),
		packaging.NewPrivilegeChecker(),
		cmd.OutOrStdout(),
		logger,
	)
	if err := installer.Run(spec); err != nil {
		return fmt.Errorf("mksvc: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
