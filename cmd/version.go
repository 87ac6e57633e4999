package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
)

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the forgedash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "forgedash %s (%s)\n", config.Version(), config.Commit())
		},
	}
}
