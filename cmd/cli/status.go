package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil"
	"github.com/storacha/daclient/pkg/poller"
	"github.com/storacha/daclient/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Show the status of an upload job",
	Long: `Show the current status of an upload job, or with --wait poll until it
reaches the target status.

Examples:
  daclient status 5f0c...
  daclient status 5f0c... --wait --target FINALIZED --interval 30s`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().Bool("wait", false, "Poll until the job reaches the target status")
	addWaitFlags(statusCmd)
}

// addWaitFlags registers the polling overrides shared by commands that wait.
func addWaitFlags(cmd *cobra.Command) {
	cmd.Flags().String("target", string(poller.DefaultTarget), "Status to wait for")
	cmd.Flags().Int("max-checks", 0, "Maximum status checks (default from config)")
	cmd.Flags().Duration("interval", 0, "Delay between status checks (default from config)")
	cmd.Flags().Duration("initial-delay", -1, "Delay before the first check (default from config)")
	cmd.Flags().Bool("progress", false, "Show a spinner on stderr while waiting")
}

// waitOptions builds the poll overrides from flags. The returned func stops
// the progress spinner, if one was started, and must be called once the wait
// is over.
func waitOptions(cmd *cobra.Command) ([]poller.WaitOption, func(), error) {
	var opts []poller.WaitOption
	done := func() {}

	target, _ := cmd.Flags().GetString("target")
	st, err := types.ParseStatus(target)
	if err != nil {
		return nil, done, err
	}
	opts = append(opts, poller.WithTargetStatus(st))

	if n, _ := cmd.Flags().GetInt("max-checks"); n > 0 {
		opts = append(opts, poller.WithMaxChecks(n))
	}
	if d, _ := cmd.Flags().GetDuration("interval"); d > 0 {
		opts = append(opts, poller.WithCheckInterval(d))
	}
	if d, _ := cmd.Flags().GetDuration("initial-delay"); d >= 0 {
		opts = append(opts, poller.WithInitialDelay(d))
	}
	if show, _ := cmd.Flags().GetBool("progress"); show {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetDescription(fmt.Sprintf("waiting for %s", st)),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "\n")
			}),
		)
		opts = append(opts, poller.WithOnCheck(func(n int, resp types.StatusResponse) {
			bar.Describe(fmt.Sprintf("check %d: %s", n, resp.Status))
			_ = bar.Add(1)
		}))
		done = func() { _ = bar.Finish() }
	}
	return opts, done, nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	formatter, err := cliutil.Formatter(cmd)
	if err != nil {
		return err
	}
	c, err := cliutil.NewClient()
	if err != nil {
		return err
	}
	defer c.Close()

	var st types.StatusResponse
	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		opts, done, err := waitOptions(cmd)
		if err != nil {
			return err
		}
		st, err = c.WaitForStatus(ctx, jobID, opts...)
		done()
		if err != nil {
			return err
		}
	} else {
		st, err = c.GetStatus(ctx, jobID)
		if err != nil {
			return err
		}
	}
	return formatter.Format(&st)
}
