package credits

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil/format"
	"github.com/storacha/daclient/pkg/ledger"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <identifier>",
	Short: "Show the credit balance of an identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	id, err := parseIdentifier(args[0])
	if err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	bal, err := s.client.GetBalance(s.ctx, id)
	if err != nil {
		return err
	}
	wei, err := ledger.ToWei(bal)
	if err != nil {
		return err
	}
	return s.formatter.Format(&format.Balance{
		Identifier: id.String(),
		Wei:        humanize.BigComma(wei),
		Amount:     ledger.FormatEther(wei),
	})
}
