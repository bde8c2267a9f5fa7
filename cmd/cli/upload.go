package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file|->",
	Short: "Sign and upload content",
	Long: `Sign content with the configured key and submit it to the DA service.

Pass "-" to read the content from stdin. With --identifier the upload is
charged to that credit account. With --wait the command blocks until the job
is confirmed.

Examples:
  daclient upload ./blob.json --identifier 0x01
  echo hello | daclient upload - --wait`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("identifier", "", "Credit account to charge the upload to (hex)")
	uploadCmd.Flags().Bool("wait", false, "Wait until the job is confirmed")
	addWaitFlags(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	content, err := cliutil.ReadContent(cmd, args[0])
	if err != nil {
		return err
	}
	idFlag, _ := cmd.Flags().GetString("identifier")
	id, err := cliutil.ParseIdentifier(idFlag)
	if err != nil {
		return err
	}
	formatter, err := cliutil.Formatter(cmd)
	if err != nil {
		return err
	}

	c, err := cliutil.NewClient()
	if err != nil {
		return err
	}
	defer c.Close()

	up, err := c.Upload(ctx, content, id)
	if err != nil {
		return err
	}
	if wait, _ := cmd.Flags().GetBool("wait"); !wait {
		return formatter.Format(&up)
	}

	opts, done, err := waitOptions(cmd)
	if err != nil {
		return err
	}
	log.Infow("waiting for job", "job_id", up.JobID)
	st, err := c.WaitForStatus(ctx, up.JobID, opts...)
	done()
	if err != nil {
		return fmt.Errorf("job %s: %w", up.JobID, err)
	}
	return formatter.Format(&st)
}
