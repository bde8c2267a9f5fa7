package credits

import (
	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil/format"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new credit account owned by your address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.client.CreateIdentifier(s.ctx)
		if err != nil {
			return err
		}
		return s.formatter.Format(&format.Owner{
			Identifier: id.String(),
			Owner:      s.client.Address().Hex(),
		})
	},
}
