package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlgen/pkg/buildinfo"
)

// versionCommand prints which pumlgen build is running, one field per line.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the pumlgen version, commit and build date",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := buildinfo.Get()
			printKeyValue("version", info.Version)
			printKeyValue("commit", info.Commit)
			printKeyValue("built", info.Date)
		},
	}
}
