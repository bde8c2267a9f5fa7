package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storacha/daclient/cmd/cliutil/format"
	"github.com/storacha/daclient/pkg/client"
	"github.com/storacha/daclient/pkg/config"
	"github.com/storacha/daclient/pkg/identifier"
)

// NewClient builds a client from flags, DACLIENT_ environment variables and
// the config file, in that order of precedence.
func NewClient(opts ...client.Option) (*client.Client, error) {
	cfg, err := config.Load(viper.GetViper(), config.Config{})
	if err != nil {
		return nil, err
	}
	return client.New(cfg, opts...)
}

// Formatter returns the formatter selected by the --output flag.
func Formatter(cmd *cobra.Command) (format.Formatter, error) {
	out, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	f, err := format.ParseOutputFormat(out)
	if err != nil {
		return nil, err
	}
	return format.NewFormatter(f, cmd.OutOrStdout()), nil
}

// ReadContent reads upload content from path, or from stdin when path is "-".
func ReadContent(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("reading content: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("content exceeds %s", humanize.IBytes(MaxUploadSize))
	}
	return string(data), nil
}

// ParseIdentifier parses an optional --identifier flag value. An empty value
// yields nil.
func ParseIdentifier(s string) (*identifier.Identifier, error) {
	if s == "" {
		return nil, nil
	}
	id, err := identifier.FromHex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return &id, nil
}
