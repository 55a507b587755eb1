// Copyright (c) 2026 Neomantra Corp

package xbftui

import (
	"fmt"
	"strings"

	"github.com/nimblemarkets/xbf-go"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MetadataPageModel shows the leading type tree of an XBF stream as a
// flattened, indented table — one row per layer of nesting.
type MetadataPageModel struct {
	config    Config
	metadata  xbf.Metadata
	lastError error

	table  table.Model
	width  int
	height int
}

func NewMetadataPage(config Config) MetadataPageModel {
	t := table.New(table.WithColumns([]table.Column{
		{Title: "Field", Width: 30},
		{Title: "Type", Width: 60},
	}), table.WithStyles(xbfTableStyles),
		table.WithFocused(true))

	return MetadataPageModel{
		config: config,
		table:  t,
		width:  20,
		height: 10,
	}
}

func (m MetadataPageModel) Init() tea.Cmd {
	if m.metadata == nil {
		return loadMetadata(m.config.Path)
	}
	return nil
}

func (m MetadataPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 2)
		m.table.SetHeight(msg.Height - 4)

	case MetadataMsg:
		m.lastError = msg.Error
		m.metadata = msg.Metadata
		m.table.SetRows(flattenMetadata("root", m.metadata, 0))
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MetadataPageModel) View() string {
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

type MetadataMsg struct {
	Metadata xbf.Metadata
	Error    error
}

func loadMetadata(path string) tea.Cmd {
	return func() tea.Msg {
		reader, closer, err := xbf.MakeCompressedReader(path, false)
		if err != nil {
			return MetadataMsg{Error: err}
		}
		defer closer.Close()

		metadata, err := xbf.DeserializeMetadata(reader)
		if err != nil {
			return MetadataMsg{Error: err}
		}
		return MetadataMsg{Metadata: metadata}
	}
}

// flattenMetadata walks a metadata tree depth-first, rendering each
// layer as one table row indented by its nesting depth.
func flattenMetadata(name string, m xbf.Metadata, depth int) []table.Row {
	indent := strings.Repeat("  ", depth)
	switch v := m.(type) {
	case *xbf.StructMetadata:
		rows := []table.Row{{indent + name, fmt.Sprintf("struct %s", v.Name())}}
		for _, decl := range v.Fields() {
			rows = append(rows, flattenMetadata(decl.Name, decl.Metadata, depth+1)...)
		}
		return rows
	case *xbf.VectorMetadata:
		rows := []table.Row{{indent + name, "vector"}}
		rows = append(rows, flattenMetadata("element", v.Inner(), depth+1)...)
		return rows
	default:
		return []table.Row{{indent + name, kindOf(m)}}
	}
}
