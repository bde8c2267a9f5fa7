package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storacha/daclient/pkg/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of daclient",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildVersion(""))
	},
}

func buildVersion(indent string) string {
	return fmt.Sprintf(
		"%sversion: %s\n%scommit: %s\n%sbuilt at: %s\n%sbuilt by: %s",
		indent, build.Version,
		indent, build.Commit,
		indent, build.Date,
		indent, build.BuiltBy,
	)
}
