package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd/types"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/core"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/logger"
)

func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Starts the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(types.FlagHome)
			if err != nil {
				return err
			}

			logLevel, err := cmd.Flags().GetString(types.FlagLogLevel)
			if err != nil {
				return err
			}

			if err := logger.SetLevel(logLevel); err != nil {
				return err
			}

			app, err := core.NewApp(home)
			if err != nil {
				return err
			}

			return app.Start()
		},
	}
}
