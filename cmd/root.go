package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd/config"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd/types"
)

func RootCmd() *cobra.Command {
	r := &cobra.Command{
		Use:   "forgedash",
		Short: "Forgedash serves the model viewer dashboard and its data management tree.",
	}

	r.PersistentFlags().String(types.FlagHome, types.DefaultHome, "sets the home directory for forgedash")
	r.PersistentFlags().String(types.FlagLogLevel, types.DefaultLogLevel, "log level: debug, info, warn or error")

	r.AddCommand(StartCmd(), VersionCmd(), config.ConfigCmd())

	return r
}

func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
