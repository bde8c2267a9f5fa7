package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/storacha/daclient/cmd/cliutil"
	"github.com/storacha/daclient/pkg/resolver"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Retrieve stored content",
	Long: `Retrieve content by request id, job id, or batch header hash and blob index.
When more than one is given the request id wins, then the job id.

With --job-id and --wait the command first waits for the job to be confirmed
and retrieves by the request id it reports.

Examples:
  daclient retrieve --request-id 9e1a...
  daclient retrieve --job-id 5f0c... --wait -f out.bin
  daclient retrieve --batch-header-hash 0xabc... --blob-index 3`,
	Args: cobra.NoArgs,
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().String("request-id", "", "Request id reported by a confirmed job")
	retrieveCmd.Flags().String("job-id", "", "Upload job id")
	retrieveCmd.Flags().Bool("wait", false, "Wait for --job-id to be confirmed first")
	retrieveCmd.Flags().String("batch-header-hash", "", "Batch header hash")
	retrieveCmd.Flags().Uint32("blob-index", 0, "Blob index within the batch")
	retrieveCmd.Flags().StringP("file", "f", "", "Write content to this file instead of stdout")
}

func runRetrieve(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	opts := resolver.RetrieveOptions{}
	opts.RequestID, _ = flags.GetString("request-id")
	opts.JobID, _ = flags.GetString("job-id")
	opts.WaitForCompletion, _ = flags.GetBool("wait")
	opts.BatchHeaderHash, _ = flags.GetString("batch-header-hash")
	if flags.Changed("blob-index") {
		idx, _ := flags.GetUint32("blob-index")
		opts.BlobIndex = resolver.BlobIndex(idx)
	}

	c, err := cliutil.NewClient()
	if err != nil {
		return err
	}
	defer c.Close()

	p, err := c.Retrieve(ctx, opts)
	if err != nil {
		return err
	}

	path, _ := flags.GetString("file")
	if path == "" {
		_, err = cmd.OutOrStdout().Write(p.Raw)
		return err
	}
	if err := os.WriteFile(path, p.Raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	kind := "binary"
	if p.Structured {
		kind = "json"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s) to %s\n", humanize.Bytes(uint64(len(p.Raw))), kind, path)
	return nil
}
