package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat represents the format for CLI output
type OutputFormat string

const (
	TableFormat OutputFormat = "table"
	JSONFormat  OutputFormat = "json"
)

// ParseOutputFormat parses a string into an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "table", "":
		return TableFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (valid formats: table or json)", s)
	}
}

// Formatter is an interface for formatting output
type Formatter interface {
	Format(data interface{}) error
}

// NewFormatter creates a formatter based on the output format
func NewFormatter(format OutputFormat, writer io.Writer) Formatter {
	switch format {
	case JSONFormat:
		return &JSONFormatter{writer: writer}
	default:
		return &TableFormatter{writer: writer}
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	writer io.Writer
}

func (f *JSONFormatter) Format(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Balance is the credit balance of one identifier.
type Balance struct {
	Identifier string `json:"identifier"`
	Wei        string `json:"wei"`
	Amount     string `json:"amount"`
}

// Topup is the outcome of a credit topup.
type Topup struct {
	Identifier      string `json:"identifier"`
	Amount          string `json:"amount"`
	TransactionHash string `json:"transactionHash"`
	Status          string `json:"status"`
}

// Identifiers lists the credit accounts owned by an address.
type Identifiers struct {
	Owner       string   `json:"owner"`
	Identifiers []string `json:"identifiers"`
}

// Owner names the account owning an identifier.
type Owner struct {
	Identifier string `json:"identifier"`
	Owner      string `json:"owner"`
}
