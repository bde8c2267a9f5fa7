package credits

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil/format"
	"github.com/storacha/daclient/pkg/identifier"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the credit accounts owned by your address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ids, err := s.client.GetIdentifiers(s.ctx)
		if err != nil {
			return err
		}
		return s.formatter.Format(&format.Identifiers{
			Owner: s.client.Address().Hex(),
			Identifiers: lo.Map(ids, func(id identifier.Identifier, _ int) string {
				return id.String()
			}),
		})
	},
}
