package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// VersionInfo holds build-time version details
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Flag values; empty strings mean "not set on the command line"
	configPath string
	runtime    string
	shell      string
	verbose    bool

	// Terminal streams, replaceable in tests
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "tuxdock",
		Short: "Numbered menu for everyday container runtime tasks",
		Long: `Tux-Dock is an interactive menu over the docker (or podman) CLI.
Pull images, run, start, stop and remove containers, attach shells and look up
container IP addresses by picking numbers instead of typing subcommands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunMenu(cmd.Context())
		},
	}

	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Config file (default $XDG_CONFIG_HOME/tuxdock/config.yaml)")
	a.rootCmd.Flags().StringVar(&a.runtime, "runtime", "",
		"Container runtime: docker, podman or auto")
	a.rootCmd.Flags().StringVar(&a.shell, "shell", "",
		"Shell started by run and exec actions")
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output (logs every runtime command)")

	a.rootCmd.AddCommand(NewVersionCmd(a))
}
