package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vmarchenko/rockfall/internal/platform/tui"
)

var (
	serveAddress     string
	serveHostKey     string
	serveIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Serve the game over SSH so other people can play in their own
terminal:

  rockfall serve --ssh :2222

Then connect with:

  ssh -p 2222 localhost

Each session gets the menu, the game and the scoreboard rendered
through the client's own terminal. Runs are saved to the shared
database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := wireTheme(cfg); err != nil {
			return err
		}

		server, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     serveAddress,
			HostKeyPath: serveHostKey,
			DBPath:      flagDBPath,
			IdleTimeout: serveIdleTimeout,
			Runtime:     runtimeFromConfig(cfg, 0, 0),
		})
		if err != nil {
			return err
		}
		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", "", "Host key path (auto-generated when empty)")
	serveCmd.Flags().DurationVar(&serveIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}
