package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RevCBH/tuxdock/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version and the resolved runtime settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.writeVersion(cmd.OutOrStdout())
			return nil
		},
	}
}

// writeVersion prints build metadata followed by the settings a menu
// session would start with. A config that fails to load is reported
// inline so the command stays usable for diagnosing it.
func (a *App) writeVersion(w io.Writer) {
	info := a.versionInfo
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}

	fmt.Fprintf(w, "tuxdock version %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built: %s\n", info.Date)

	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	fmt.Fprintf(w, "config: %s\n", path)

	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintf(w, "runtime: unavailable (%v)\n", err)
		return
	}
	fmt.Fprintf(w, "runtime: %s (shell %s)\n", cfg.Runtime, cfg.Shell)
}
