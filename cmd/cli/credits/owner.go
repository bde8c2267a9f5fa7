package credits

import (
	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil/format"
)

var ownerCmd = &cobra.Command{
	Use:   "owner <identifier>",
	Short: "Show the address that owns an identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIdentifier(args[0])
		if err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		owner, err := s.client.GetIdentifierOwner(s.ctx, id)
		if err != nil {
			return err
		}
		return s.formatter.Format(&format.Owner{Identifier: id.String(), Owner: owner.Hex()})
	},
}
