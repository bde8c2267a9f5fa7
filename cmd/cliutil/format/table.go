package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/storacha/daclient/pkg/types"
)

// TableFormatter formats output as a table
type TableFormatter struct {
	writer io.Writer
}

func (f *TableFormatter) Format(data interface{}) error {
	switch v := data.(type) {
	case *types.UploadResponse:
		return f.fields([][2]string{{"JOB ID", v.JobID}, {"REQUEST ID", v.RequestID}})
	case *types.StatusResponse:
		return f.formatStatus(v)
	case *Balance:
		return f.fields([][2]string{{"IDENTIFIER", v.Identifier}, {"BALANCE", v.Amount}, {"WEI", v.Wei}})
	case *Topup:
		return f.fields([][2]string{
			{"IDENTIFIER", v.Identifier},
			{"AMOUNT", v.Amount},
			{"TRANSACTION", v.TransactionHash},
			{"STATUS", v.Status},
		})
	case *Owner:
		return f.fields([][2]string{{"IDENTIFIER", v.Identifier}, {"OWNER", v.Owner}})
	case *Identifiers:
		return f.formatIdentifiers(v)
	default:
		return fmt.Errorf("table format not supported for type %T", data)
	}
}

func (f *TableFormatter) formatStatus(st *types.StatusResponse) error {
	rows := [][2]string{{"STATUS", statusStyle(st.Status).Render(st.Status.String())}}
	if st.RequestID != "" {
		rows = append(rows, [2]string{"REQUEST ID", st.RequestID})
	}
	if st.BlobInfo != nil {
		rows = append(rows,
			[2]string{"BATCH HEADER HASH", st.BlobInfo.BatchHeaderHash},
			[2]string{"BLOB INDEX", strconv.FormatUint(uint64(st.BlobInfo.BlobIndex), 10)},
		)
	}
	if st.Error != "" {
		rows = append(rows, [2]string{"ERROR", st.Error})
	}
	return f.fields(rows)
}

func (f *TableFormatter) formatIdentifiers(ids *Identifiers) error {
	if len(ids.Identifiers) == 0 {
		noIDsStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
		_, err := fmt.Fprintln(f.writer, noIDsStyle.Render("No identifiers owned by "+ids.Owner))
		return err
	}

	rows := make([]table.Row, 0, len(ids.Identifiers))
	for i, id := range ids.Identifiers {
		rows = append(rows, table.Row{strconv.Itoa(i), id})
	}
	return f.render([]table.Column{
		{Title: "INDEX", Width: 6},
		{Title: "IDENTIFIER", Width: 66},
	}, rows)
}

// fields renders label/value pairs as a two column table.
func (f *TableFormatter) fields(pairs [][2]string) error {
	rows := make([]table.Row, 0, len(pairs))
	width := 0
	for _, p := range pairs {
		rows = append(rows, table.Row{p[0], p[1]})
		width = max(width, lipgloss.Width(p[1]))
	}
	return f.render([]table.Column{
		{Title: "FIELD", Width: 18},
		{Title: "VALUE", Width: max(width, 8)},
	}, rows)
}

func (f *TableFormatter) render(columns []table.Column, rows []table.Row) error {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(max(len(rows), 1)),
		table.WithWidth(256),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Cell
	t.SetStyles(s)

	view := t.View()
	if view == "" {
		return f.fallbackTextOutput(rows)
	}
	_, err := fmt.Fprintln(f.writer, view)
	return err
}

// fallbackTextOutput provides a simple text output when table rendering fails
func (f *TableFormatter) fallbackTextOutput(rows []table.Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(f.writer, "%s: %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

func statusStyle(st types.Status) lipgloss.Style {
	switch {
	case st.Failed():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case st.Terminal():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	}
}
