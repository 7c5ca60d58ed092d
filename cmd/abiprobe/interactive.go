package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/abi-probe/layout"
	"github.com/wippyai/abi-probe/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	entityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	driftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	items    []inspectorItem
	detail   table.Model
	selected int
	state    modelState
}

type inspectorItem struct {
	name    string
	summary string
	ok      bool
	rows    []table.Row
	columns []table.Column
}

type modelState int

const (
	stateSelect modelState = iota
	stateDetail
)

func newInspectorModel() *inspectorModel {
	items := make([]inspectorItem, 0, len(layout.Descriptors())+2)
	for _, d := range layout.Descriptors() {
		items = append(items, entityItem(d))
	}
	items = append(items, constantsItem(), callbacksItem())
	return &inspectorModel{items: items}
}

func entityItem(d layout.Descriptor) inspectorItem {
	info, calcErr := layout.Calculate(d.Name, d.Fields)
	measured, errs := layout.Verify(d)

	item := inspectorItem{
		name: d.Name,
		ok:   calcErr == nil && len(errs) == 0,
		columns: []table.Column{
			{Title: "Field", Width: 22},
			{Title: "Kind", Width: 8},
			{Title: "Expect", Width: 8},
			{Title: "Actual", Width: 8},
			{Title: "Status", Width: 8},
		},
	}
	item.summary = fmt.Sprintf("size %d", measured.Size)

	for i, f := range d.Fields {
		kind := f.Kind.String()
		if f.Count > 1 {
			kind = fmt.Sprintf("%s[%d]", f.Kind, f.Count)
		}
		expect, actual := "?", "?"
		status := "ok"
		if calcErr == nil && i < len(info.FieldOffs) {
			expect = fmt.Sprintf("%d", info.FieldOffs[i])
		}
		if i < len(measured.FieldOffs) {
			actual = fmt.Sprintf("%d", measured.FieldOffs[i])
		}
		if expect != actual {
			status = "drift"
		}
		item.rows = append(item.rows, table.Row{f.Name, kind, expect, actual, status})
	}

	sizeStatus := "ok"
	if calcErr != nil || measured.Size != info.Size || (d.Size != 0 && measured.Size != d.Size) {
		sizeStatus = "drift"
	}
	item.rows = append(item.rows, table.Row{
		"(total size)", "",
		fmt.Sprintf("%d", info.Size),
		fmt.Sprintf("%d", measured.Size),
		sizeStatus,
	})
	return item
}

func constantsItem() inspectorItem {
	item := inspectorItem{
		name: "constants",
		ok:   len(registry.VerifyConstants()) == 0,
		columns: []table.Column{
			{Title: "Name", Width: 22},
			{Title: "Key", Width: 8},
			{Title: "Expect", Width: 8},
			{Title: "Actual", Width: 8},
			{Title: "Status", Width: 8},
		},
	}
	consts := registry.Constants()
	item.summary = fmt.Sprintf("%d values", len(consts))
	for _, c := range consts {
		status := "ok"
		if c.Actual != c.Expected {
			status = "drift"
		}
		item.rows = append(item.rows, table.Row{
			c.Name, c.Key,
			fmt.Sprintf("%d", c.Expected),
			fmt.Sprintf("%d", c.Actual),
			status,
		})
	}
	return item
}

func callbacksItem() inspectorItem {
	addrs := registry.Addresses()
	item := inspectorItem{
		name:    "callbacks",
		ok:      len(registry.VerifyCallbacks(addrs)) == 0,
		summary: "4 shapes",
		columns: []table.Column{
			{Title: "Callback", Width: 22},
			{Title: "Address", Width: 18},
			{Title: "Status", Width: 10},
		},
	}
	for _, cb := range []struct {
		name string
		addr uintptr
	}{
		{"traffic", addrs.Traffic},
		{"memory", addrs.Memory},
		{"log", addrs.Log},
		{"state change", addrs.State},
	} {
		status := "obtained"
		if cb.addr == 0 {
			status = "null"
		}
		item.rows = append(item.rows, table.Row{cb.name, fmt.Sprintf("0x%x", cb.addr), status})
	}
	return item
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.items)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelect {
				m.openDetail()
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateSelect
			}
		}
	}

	if m.state == stateDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) openDetail() {
	item := m.items[m.selected]

	height := len(item.rows)
	if height > 12 {
		height = 12
	}
	t := table.New(
		table.WithColumns(item.columns),
		table.WithRows(item.rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = selectedStyle
	t.SetStyles(s)

	m.detail = t
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ABI Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		b.WriteString("Select an entry to inspect:\n\n")
		for i, item := range m.items {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + item.name))
			} else {
				b.WriteString("  " + entityStyle.Render(item.name))
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", item.summary, m.verdict(item)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateDetail:
		item := m.items[m.selected]
		b.WriteString(fmt.Sprintf("%s %s\n\n", entityStyle.Render(item.name), m.verdict(item)))
		b.WriteString(m.detail.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *inspectorModel) verdict(item inspectorItem) string {
	if item.ok {
		return okStyle.Render("match")
	}
	return driftStyle.Render("drift")
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
