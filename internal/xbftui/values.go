// Copyright (c) 2026 Neomantra Corp

package xbftui

import (
	"fmt"

	"github.com/nimblemarkets/xbf-go"
	"github.com/segmentio/encoding/json"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ValuesPageModel shows a scrolling table of the decoded top-level
// values of an XBF stream, one row per value.
type ValuesPageModel struct {
	config    Config
	values    []xbf.Value
	lastError error

	table  table.Model
	width  int
	height int
}

func NewValuesPage(config Config) ValuesPageModel {
	t := table.New(table.WithColumns([]table.Column{
		{Title: "#", Width: 6},
		{Title: "Kind", Width: 12},
		{Title: "Value", Width: 80},
	}), table.WithStyles(xbfTableStyles),
		table.WithFocused(true))

	return ValuesPageModel{
		config: config,
		table:  t,
		width:  20,
		height: 10,
	}
}

func (m ValuesPageModel) Init() tea.Cmd {
	if m.values == nil {
		return loadValues(m.config.Path, m.config.MaxValues)
	}
	return nil
}

func (m ValuesPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 2)
		m.table.SetHeight(msg.Height - 4)

	case ValuesMsg:
		m.lastError = msg.Error
		m.values = msg.Values

		rows := make([]table.Row, 0, len(m.values))
		for i, v := range m.values {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i),
				kindOf(xbf.MetadataOf(v)),
				previewValue(v),
			})
		}
		m.table.SetRows(rows)
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ValuesPageModel) View() string {
	var pane string
	if m.lastError == nil {
		pane = m.table.View()
	} else {
		pane = lipgloss.NewStyle().Width(m.table.Width()).Render(
			fmt.Sprintf("Error: %s", m.lastError.Error()))
	}
	return xbfBorderStyle.Render(pane)
}

///////////////////////////////////////////////////////////////////////////////

type ValuesMsg struct {
	Values []xbf.Value
	Error  error
}

func loadValues(path string, maxValues int) tea.Cmd {
	return func() tea.Msg {
		reader, closer, err := xbf.MakeCompressedReader(path, false)
		if err != nil {
			return ValuesMsg{Error: err}
		}
		defer closer.Close()

		scanner := xbf.NewStreamScanner(reader)
		if _, err := scanner.Metadata(); err != nil {
			return ValuesMsg{Error: err}
		}

		var values []xbf.Value
		for (maxValues <= 0 || len(values) < maxValues) && scanner.Next() {
			values = append(values, scanner.Value())
		}
		if err := scanner.Err(); err != nil {
			return ValuesMsg{Values: values, Error: err}
		}
		return ValuesMsg{Values: values}
	}
}

// previewValue renders a single value compactly for the values table,
// falling back to a raw kind string if JSON projection or marshaling
// fails (ValueToJSON fails only for an unsupported value type).
func previewValue(v xbf.Value) string {
	j, err := xbf.ValueToJSON(v)
	if err != nil {
		return fmt.Sprintf("<%s>", kindOf(xbf.MetadataOf(v)))
	}
	b, err := json.Marshal(j)
	if err != nil {
		return fmt.Sprintf("<%s>", kindOf(xbf.MetadataOf(v)))
	}
	s := string(b)
	const maxLen = 76
	if len(s) > maxLen {
		s = s[:maxLen-1] + "…"
	}
	return s
}

// kindOf renders a short type-kind label for a metadata value, reusing
// DescribeMetadata's own "kind"/"type"/"name" fields rather than
// hand-rolling a second type switch.
func kindOf(m xbf.Metadata) string {
	desc, ok := xbf.DescribeMetadata(m).(map[string]any)
	if !ok {
		return "?"
	}
	switch desc["kind"] {
	case "primitive":
		return fmt.Sprintf("%v", desc["type"])
	case "vector":
		return fmt.Sprintf("vector<%s>", kindOf(elementMetadataOf(m)))
	case "struct":
		return fmt.Sprintf("struct %v", desc["name"])
	default:
		return "?"
	}
}

func elementMetadataOf(m xbf.Metadata) xbf.Metadata {
	if vm, ok := m.(*xbf.VectorMetadata); ok {
		return vm.Inner()
	}
	return nil
}
