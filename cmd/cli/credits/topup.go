package credits

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil/format"
	"github.com/storacha/daclient/pkg/ledger"
)

var topupCmd = &cobra.Command{
	Use:   "topup <identifier>",
	Short: "Add credits to an identifier",
	Long: `Send native currency to the ledger, crediting the given identifier, and wait
for the transaction to be mined. A reverted transaction is reported with
status "failed".

Examples:
  daclient credits topup 0x01 --amount 0.25`,
	Args: cobra.ExactArgs(1),
	RunE: runTopup,
}

func init() {
	topupCmd.Flags().String("amount", "", "Amount in native currency units, e.g. 0.25 (required)")
	cobra.CheckErr(topupCmd.MarkFlagRequired("amount"))
}

func runTopup(cmd *cobra.Command, args []string) error {
	id, err := parseIdentifier(args[0])
	if err != nil {
		return err
	}
	amountStr, _ := cmd.Flags().GetString("amount")
	wei, err := ledger.ParseEther(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if wei.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.client.TopupCredits(s.ctx, id, ledger.FromWei(wei))
	if err != nil {
		return err
	}
	if err := s.formatter.Format(&format.Topup{
		Identifier:      id.String(),
		Amount:          ledger.FormatEther(wei),
		TransactionHash: res.TransactionHash.Hex(),
		Status:          res.Status,
	}); err != nil {
		return err
	}
	if res.Status != ledger.TopupSuccess {
		return fmt.Errorf("topup transaction %s failed", res.TransactionHash.Hex())
	}
	return nil
}
