package credits

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil"
	"github.com/storacha/daclient/cmd/cliutil/format"
	"github.com/storacha/daclient/pkg/client"
	"github.com/storacha/daclient/pkg/identifier"
)

var Cmd = &cobra.Command{
	Use:   "credits",
	Short: "Manage prepaid credit accounts on the ledger",
	Long: `Commands for creating credit accounts, checking balances and topping them
up. All of them need --rpc-url and --ledger-address.`,
}

func init() {
	Cmd.AddCommand(balanceCmd)
	Cmd.AddCommand(topupCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(ownerCmd)
}

// session is what every credits command needs to do its work.
type session struct {
	ctx       context.Context
	client    *client.Client
	formatter format.Formatter
	cancel    context.CancelFunc
}

func (s *session) Close() {
	s.cancel()
	_ = s.client.Close()
}

func newSession(cmd *cobra.Command) (*session, error) {
	formatter, err := cliutil.Formatter(cmd)
	if err != nil {
		return nil, err
	}
	c, err := cliutil.NewClient()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), cliutil.LedgerCommandTimeout)
	return &session{ctx: ctx, client: c, formatter: formatter, cancel: cancel}, nil
}

func parseIdentifier(s string) (identifier.Identifier, error) {
	id, err := identifier.FromHex(s)
	if err != nil {
		return identifier.Identifier{}, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return id, nil
}
